package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrCatalogUnavailable indicates the books API could not be reached or answered with an error
	ErrCatalogUnavailable = errors.New("book catalog is unavailable")

	// ErrNoResults indicates a catalog query returned nothing displayable
	ErrNoResults = errors.New("no books found")

	// ErrInvalidPayment indicates the payment form failed validation
	ErrInvalidPayment = errors.New("invalid payment details")

	// ErrPaymentCanceled indicates the simulated payment was interrupted
	ErrPaymentCanceled = errors.New("payment canceled")

	// ErrNotLoggedIn indicates an admin page was requested without a session
	ErrNotLoggedIn = errors.New("admin is not logged in")

	// ErrInvalidCredentials indicates the admin login was rejected
	ErrInvalidCredentials = errors.New("invalid admin credentials")

	// ErrStorageClosed indicates the local storage was used after Close
	ErrStorageClosed = errors.New("storage is closed")

	// ErrElementNotFound indicates an HTML element id is missing from a page
	ErrElementNotFound = errors.New("element not found")
)

// ValidationError carries per-field messages for a rejected form
type ValidationError struct {
	Fields map[string]string // field name -> message
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return ErrInvalidPayment.Error() + ": " + strings.Join(parts, "; ")
}

// Unwrap lets errors.Is match ErrInvalidPayment
func (e *ValidationError) Unwrap() error {
	return ErrInvalidPayment
}
