package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// Payment form field positions. The country selector follows the text inputs.
const (
	FieldCardNumber = iota
	FieldExpiry
	FieldCVV
	FieldName
	FieldEmail
	FieldAddress
	FieldCity
	FieldZip
	FieldCountry
	fieldCount
)

type fieldSpec struct {
	key         string // PaymentDetails field name, matches validation error keys
	label       string
	placeholder string
	limit       int
	secret      bool
}

var paymentFields = []fieldSpec{
	{key: "CardNumber", label: "Card Number", placeholder: "1234 5678 9012 3456", limit: 23},
	{key: "ExpiryDate", label: "Expiry Date", placeholder: "MM/YY", limit: 5},
	{key: "CVV", label: "CVV", placeholder: "123", limit: 4, secret: true},
	{key: "Name", label: "Cardholder Name", placeholder: "John Doe", limit: 60},
	{key: "Email", label: "Email", placeholder: "john@example.com", limit: 80},
	{key: "Address", label: "Address", placeholder: "123 Main St", limit: 80},
	{key: "City", label: "City", placeholder: "New York", limit: 40},
	{key: "ZipCode", label: "ZIP Code", placeholder: "10001", limit: 10},
}

// PaymentForm is the simulated checkout form
type PaymentForm struct {
	visible bool
	book    domain.Book
	quote   domain.Quote

	inputs  []textinput.Model
	country int // index into domain.Countries
	focus   int

	errors map[string]string // field key -> message
	failed string            // non-field failure
	width  int
}

// NewPaymentForm creates a payment form
func NewPaymentForm() PaymentForm {
	inputs := make([]textinput.Model, len(paymentFields))
	for i, f := range paymentFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = f.limit
		ti.Width = 30
		ti.Prompt = ""
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
		ti.PlaceholderStyle = styles.DimStyle
		if f.secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		inputs[i] = ti
	}
	return PaymentForm{inputs: inputs, errors: map[string]string{}}
}

// Open shows the form for book with an empty card section
func (p *PaymentForm) Open(book domain.Book, quote domain.Quote) tea.Cmd {
	p.visible = true
	p.book = book
	p.quote = quote
	p.errors = map[string]string{}
	p.failed = ""
	p.country = 0
	for i := range p.inputs {
		p.inputs[i].SetValue("")
	}
	return p.setFocus(0)
}

// Close hides the form
func (p *PaymentForm) Close() {
	p.visible = false
	for i := range p.inputs {
		p.inputs[i].Blur()
	}
}

// IsVisible returns whether the form is shown
func (p PaymentForm) IsVisible() bool {
	return p.visible
}

// Book returns the book being purchased
func (p PaymentForm) Book() domain.Book {
	return p.book
}

// Quote returns the price breakdown shown in the order summary
func (p PaymentForm) Quote() domain.Quote {
	return p.quote
}

// Focused returns the focused field position
func (p PaymentForm) Focused() int {
	return p.focus
}

// SetSize sets the form width
func (p *PaymentForm) SetSize(width int) {
	p.width = width
}

// SetValue fills field i; used to restore or prefill the form
func (p *PaymentForm) SetValue(i int, v string) {
	if i >= 0 && i < len(p.inputs) {
		p.inputs[i].SetValue(v)
	}
}

// SetCountry selects a country by code; unknown codes are ignored
func (p *PaymentForm) SetCountry(code string) {
	for i, c := range domain.Countries {
		if c.Code == code {
			p.country = i
			return
		}
	}
}

// Details collects the form values
func (p PaymentForm) Details() domain.PaymentDetails {
	v := func(i int) string { return strings.TrimSpace(p.inputs[i].Value()) }
	return domain.PaymentDetails{
		CardNumber: v(FieldCardNumber),
		ExpiryDate: v(FieldExpiry),
		CVV:        v(FieldCVV),
		Name:       v(FieldName),
		Email:      v(FieldEmail),
		Address:    v(FieldAddress),
		City:       v(FieldCity),
		ZipCode:    v(FieldZip),
		Country:    domain.Countries[p.country].Code,
	}
}

// SetError shows a checkout failure. Validation errors are shown next to
// their fields and focus moves to the first invalid one.
func (p *PaymentForm) SetError(err error) tea.Cmd {
	p.errors = map[string]string{}
	p.failed = ""

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		p.failed = err.Error()
		return nil
	}

	first := -1
	for i, f := range paymentFields {
		if msg, ok := verr.Fields[f.key]; ok {
			p.errors[f.key] = msg
			if first == -1 {
				first = i
			}
		}
	}
	if msg, ok := verr.Fields["Country"]; ok {
		p.errors["Country"] = msg
		if first == -1 {
			first = FieldCountry
		}
	}
	if first == -1 {
		return nil
	}
	return p.setFocus(first)
}

// ErrorFor returns the validation message shown for a field key
func (p PaymentForm) ErrorFor(key string) string {
	return p.errors[key]
}

func (p *PaymentForm) setFocus(i int) tea.Cmd {
	p.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range p.inputs {
		if j == p.focus {
			cmd = p.inputs[j].Focus()
		} else {
			p.inputs[j].Blur()
		}
	}
	return cmd
}

// Update handles form input, returns (form, cmd, submitted)
func (p PaymentForm) Update(msg tea.Msg) (PaymentForm, tea.Cmd, bool) {
	if !p.visible {
		return p, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return p, nil, true
		case "tab", "down":
			return p, p.setFocus(p.focus + 1), false
		case "shift+tab", "up":
			return p, p.setFocus(p.focus - 1), false
		}

		if p.focus == FieldCountry {
			switch keyMsg.String() {
			case "left", "h":
				p.country = (p.country - 1 + len(domain.Countries)) % len(domain.Countries)
			case "right", "l", " ":
				p.country = (p.country + 1) % len(domain.Countries)
			}
			return p, nil, false
		}
	}

	if p.focus < len(p.inputs) {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return p, cmd, false
	}
	return p, nil, false
}

// View renders the payment form
func (p PaymentForm) View() string {
	if !p.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("🔒 Secure Checkout"))
	b.WriteString("\n")

	// Order summary
	b.WriteString(styles.TitleStyle.Render("Order Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s\n%s\n", p.book.Title(), styles.DimStyle.Render("by "+p.book.AuthorLine())))
	b.WriteString(summaryLine("Subtotal:", p.quote.Subtotal, p.quote.Currency))
	b.WriteString(summaryLine("Tax:", p.quote.Tax, p.quote.Currency))
	b.WriteString(summaryLine("Total:", p.quote.Total, p.quote.Currency))
	b.WriteString("\n")

	b.WriteString(styles.TitleStyle.Render("Payment Information"))
	b.WriteString("\n")
	for i := FieldCardNumber; i <= FieldEmail; i++ {
		b.WriteString(p.renderField(i))
	}
	b.WriteString("\n")
	b.WriteString(styles.TitleStyle.Render("Billing Address"))
	b.WriteString("\n")
	for i := FieldAddress; i <= FieldZip; i++ {
		b.WriteString(p.renderField(i))
	}
	b.WriteString(p.renderCountry())
	b.WriteString("\n")

	if p.failed != "" {
		b.WriteString(styles.ErrorStyle.Render(p.failed))
		b.WriteString("\n")
	}

	b.WriteString(styles.BadgeStyle.Render(fmt.Sprintf("Complete Purchase - %s", styles.FormatPrice(p.quote.Total, p.quote.Currency))))
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("✓ Instant download after purchase   ✓ 30-day money-back guarantee"))
	b.WriteString("\n")
	b.WriteString(styles.HelpDescStyle.Render("tab/S-tab move · ←/→ country · enter pay · esc cancel"))

	style := styles.ModalStyle
	if p.width > 0 {
		style = style.Width(min(p.width, 72))
	}
	return style.Render(b.String())
}

func summaryLine(label string, amount float64, currency string) string {
	return fmt.Sprintf("%s %s\n", styles.Pad(label, 10), styles.FormatPrice(amount, currency))
}

func (p PaymentForm) label(i int, text string) string {
	if p.focus == i {
		return styles.FocusedLabelStyle.Render(styles.Pad(text, 16))
	}
	return styles.LabelStyle.Render(styles.Pad(text, 16))
}

func (p PaymentForm) renderField(i int) string {
	f := paymentFields[i]
	line := p.label(i, f.label) + p.inputs[i].View()
	if msg := p.errors[f.key]; msg != "" {
		line += "  " + styles.ErrorStyle.Render(msg)
	}
	return line + "\n"
}

func (p PaymentForm) renderCountry() string {
	name := domain.Countries[p.country].Name
	value := styles.DimStyle.Render("‹ ") + lipgloss.NewStyle().Foreground(styles.White).Render(name) + styles.DimStyle.Render(" ›")
	line := p.label(FieldCountry, "Country") + value
	if msg := p.errors["Country"]; msg != "" {
		line += "  " + styles.ErrorStyle.Render(msg)
	}
	return line + "\n"
}
