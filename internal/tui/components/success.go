package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// RenderSuccess renders the purchase confirmation shown before the library opens
func RenderSuccess(receipt *domain.Receipt, frame int) string {
	var b strings.Builder
	b.WriteString(styles.SuccessStyle.Bold(true).Render("✓ Purchase Successful!"))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Your book has been added to your library"))
	b.WriteString("\n")

	if receipt != nil {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render(receipt.Book.Title()))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Order " + receipt.OrderID))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Paid " + styles.FormatPrice(receipt.Quote.Total, receipt.Quote.Currency) + " " + humanize.Time(receipt.PurchasedAt)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SpinnerFrame(frame) + " " + styles.DimStyle.Render("Redirecting to your journal collection..."))

	return styles.ModalStyle.
		BorderForeground(styles.Green).
		Align(lipgloss.Center).
		Render(b.String())
}

// RenderProcessing renders the payment spinner
func RenderProcessing(book domain.Book, frame int) string {
	content := SpinnerFrame(frame) + " " + styles.TitleStyle.Render("Processing payment...") + "\n\n" +
		styles.DimStyle.Render(book.Title())
	return styles.ModalStyle.Render(content)
}
