package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// DetailsView describes what the details overlay shows for one book
type DetailsView struct {
	Book     domain.Book
	Price    domain.Money
	Favorite bool
	Owned    bool
	Width    int
}

// RenderDetails renders the book details overlay
func RenderDetails(v DetailsView) string {
	width := v.Width
	if width <= 0 {
		width = 70
	}
	inner := width - 6 // modal border and padding
	info := v.Book.VolumeInfo

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render(v.Book.Title()))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("by " + v.Book.AuthorLine()))
	b.WriteString("\n\n")

	if info.AverageRating > 0 {
		b.WriteString(styles.RenderStars(info.AverageRating))
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf(" %.1f (%s ratings)", info.AverageRating, humanize.Comma(int64(info.RatingsCount)))))
		b.WriteString("\n")
	}

	var facts []string
	if year := v.Book.PublishedYear(); year != domain.UnknownYear {
		facts = append(facts, "Published "+year)
	}
	if info.PageCount > 0 {
		facts = append(facts, humanize.Comma(int64(info.PageCount))+" pages")
	}
	if info.Language != "" {
		facts = append(facts, strings.ToUpper(info.Language))
	}
	if len(facts) > 0 {
		b.WriteString(styles.DimStyle.Render(strings.Join(facts, " · ")))
		b.WriteString("\n")
	}

	if len(info.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("Categories"))
		b.WriteString("\n")
		var badges []string
		for _, c := range info.Categories {
			badges = append(badges, styles.DimBadgeStyle.Render(c))
		}
		b.WriteString(strings.Join(badges, " "))
		b.WriteString("\n")
	}

	if info.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.TitleStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(styles.LightGray).Render(info.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.RenderPrice(v.Price.Amount, v.Price.CurrencyCode))
	if v.Favorite {
		b.WriteString("  " + styles.FavoriteStyle.Render("♥ Favorite"))
	}
	if v.Owned {
		b.WriteString("  " + styles.OwnedBadgeStyle.Render("Owned"))
	}
	b.WriteString("\n\n")

	purchase := fmt.Sprintf("[b] Purchase for %s", styles.FormatPrice(v.Price.Amount, v.Price.CurrencyCode))
	actions := []string{styles.HelpKeyStyle.Render(purchase)}
	if info.PreviewLink != "" {
		actions = append(actions, styles.HelpKeyStyle.Render("[o] Preview"))
	}
	actions = append(actions,
		styles.HelpDescStyle.Render("[f] Favorite"),
		styles.HelpDescStyle.Render("[esc] Close"),
	)
	b.WriteString(strings.Join(actions, "  "))

	return styles.ModalStyle.Width(width).Render(b.String())
}
