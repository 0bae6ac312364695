package tui

import (
	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// BooksLoadedMsg carries the result of the landing page load or a search.
// Seq identifies the request so stale results can be dropped.
type BooksLoadedMsg struct {
	Result service.BrowseResult
	Seq    int
}

// CountsLoadedMsg carries the stored favorites and the ids of purchased books
type CountsLoadedMsg struct {
	Favorites []string
	Owned     []string
}

// FavoriteToggledMsg signals that a book was added to or removed from favorites
type FavoriteToggledMsg struct {
	BookID    string
	Title     string
	Favorited bool
}

// PaymentFailedMsg signals that checkout rejected the form or was interrupted
type PaymentFailedMsg struct {
	Err error
}

// PurchaseCompletedMsg signals a successful simulated purchase
type PurchaseCompletedMsg struct {
	Receipt *domain.Receipt
}

// LibraryLoadedMsg carries the purchased books
type LibraryLoadedMsg struct {
	Books []domain.Book
}

// ShowLibraryMsg moves from the success screen to the library
type ShowLibraryMsg struct{}

// PreviewOpenedMsg signals that a link was handed to the browser
type PreviewOpenedMsg struct {
	Title string
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
