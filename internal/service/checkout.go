package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mmcdole/bookvibe/internal/config"
	"github.com/mmcdole/bookvibe/internal/domain"
)

var (
	expiryPattern = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
	cardPattern   = regexp.MustCompile(`^\d{12,19}$`)
)

// CheckoutService runs the simulated payment flow
type CheckoutService struct {
	purchases *PurchaseService
	taxRate   float64
	delay     time.Duration
	currency  string
	validate  *validator.Validate
	logger    *slog.Logger

	newOrderID func() string
	now        func() time.Time
}

// NewCheckoutService creates a checkout service that records purchases in purchases
func NewCheckoutService(purchases *PurchaseService, cfg config.CheckoutConfig, logger *slog.Logger) *CheckoutService {
	if logger == nil {
		logger = slog.Default()
	}
	currency := cfg.Currency
	if currency == "" {
		currency = "USD"
	}
	return &CheckoutService{
		purchases:  purchases,
		taxRate:    cfg.TaxRate,
		delay:      cfg.ProcessingDelay,
		currency:   currency,
		validate:   newPaymentValidator(),
		logger:     logger,
		newOrderID: uuid.NewString,
		now:        time.Now,
	}
}

func newPaymentValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	_ = v.RegisterValidation("card", validateCardNumber)
	_ = v.RegisterValidation("expiry", validateExpiry)
	return v
}

func validateCardNumber(fl validator.FieldLevel) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(fl.Field().String())
	return cardPattern.MatchString(digits)
}

func validateExpiry(fl validator.FieldLevel) bool {
	m := expiryPattern.FindStringSubmatch(fl.Field().String())
	if m == nil {
		return false
	}
	month, _ := strconv.Atoi(m[1])
	return month >= 1 && month <= 12
}

// Quote returns the price breakdown for book
func (s *CheckoutService) Quote(book domain.Book) domain.Quote {
	price := Price(book, s.currency)
	tax := roundCents(price.Amount * s.taxRate)
	return domain.Quote{
		Subtotal: price.Amount,
		Tax:      tax,
		Total:    roundCents(price.Amount + tax),
		Currency: price.CurrencyCode,
	}
}

// Validate checks the payment form. The returned error is a *domain.ValidationError
// keyed by PaymentDetails field name.
func (s *CheckoutService) Validate(details domain.PaymentDetails) error {
	err := s.validate.Struct(details)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate payment: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.StructField()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "card":
		return fmt.Sprintf("%s must be 12 to 19 digits", field)
	case "expiry":
		return fmt.Sprintf("%s must be MM/YY", field)
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Checkout validates details, simulates payment processing and records exactly one purchase.
// Cancelling ctx during processing records nothing and returns ErrPaymentCanceled.
func (s *CheckoutService) Checkout(ctx context.Context, book domain.Book, details domain.PaymentDetails) (*domain.Receipt, error) {
	if err := s.Validate(details); err != nil {
		return nil, err
	}

	quote := s.Quote(book)
	s.logger.Info("processing payment", "book_id", book.ID, "total", quote.Total)

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			s.logger.Warn("payment canceled", "book_id", book.ID, "error", ctx.Err())
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentCanceled, ctx.Err())
		}
	}

	if err := s.purchases.Append(book); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	receipt := &domain.Receipt{
		OrderID:     s.newOrderID(),
		Book:        book,
		Quote:       quote,
		PurchasedAt: s.now(),
	}
	s.logger.Info("purchase complete", "book_id", book.ID, "order_id", receipt.OrderID)
	return receipt, nil
}
