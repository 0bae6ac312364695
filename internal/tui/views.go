package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/bookvibe/internal/service"
	"github.com/mmcdole/bookvibe/internal/tui/components"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	var body string
	switch m.State {
	case StateLibrary:
		body = m.Library.View()
	default:
		body = m.renderStore()
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		lipgloss.NewStyle().Height(m.Height-HeaderHeight-FooterHeight).MaxHeight(m.Height-HeaderHeight-FooterHeight).Render(body),
		m.renderFooter(),
	)

	// Overlays
	var overlay string
	switch m.State {
	case StateDetails:
		if m.details != nil {
			overlay = components.RenderDetails(components.DetailsView{
				Book:     *m.details,
				Price:    service.Price(*m.details, m.currency),
				Favorite: m.Grid.IsFavorite(m.details.ID),
				Owned:    m.owned[m.details.ID],
				Width:    m.modalWidth(),
			})
		}
	case StatePayment:
		overlay = m.Payment.View()
	case StateProcessing:
		overlay = components.RenderProcessing(m.Payment.Book(), m.SpinnerFrame)
	case StateSuccess:
		overlay = components.RenderSuccess(m.receipt, m.SpinnerFrame)
	}
	if overlay != "" {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			overlay)
	}

	return view
}

// renderHeader renders the title bar with favorites and library counts
func (m Model) renderHeader() string {
	left := styles.HeaderStyle.Render("📚 BookVibe")
	right := styles.FavoriteStyle.Render(fmt.Sprintf("♥ %d", m.Grid.FavoriteCount())) + "  " +
		styles.AccentStyle.Render(fmt.Sprintf("📖 My Library (%d)", m.bought))

	gap := max(m.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// renderStore renders the hero, the search bar, notices and results
func (m Model) renderStore() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Discover Amazing Books"))
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Powered by Google Books API"))
	b.WriteString("\n\n")
	b.WriteString(m.Search.View())
	b.WriteString("\n\n")

	if m.Notice != "" {
		b.WriteString(m.renderNotice())
		b.WriteString("\n")
	}

	if m.Loading {
		b.WriteString(components.SpinnerFrame(m.SpinnerFrame) + " " + styles.DimStyle.Render(m.LoadingText))
		return b.String()
	}

	b.WriteString(m.Grid.View())
	return b.String()
}

func (m Model) renderNotice() string {
	width := max(m.Width-2, 10)
	return styles.NoticeStyle.Width(width).Render(m.Notice)
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			left = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			left = styles.SuccessStyle.Render(m.StatusMsg)
		}
	}

	center := m.renderHints()
	right := styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

// renderHints shows the most useful keys for the current state
func (m Model) renderHints() string {
	hint := func(k, desc string) string {
		return styles.AccentStyle.Render(k) + styles.DimStyle.Render(" "+desc)
	}

	var hints []string
	switch m.State {
	case StateBrowsing:
		hints = []string{hint("/", "search"), hint("enter", "details"), hint("b", "buy"), hint("f", "favorite"), hint("L", "library")}
	case StateSearching:
		hints = []string{hint("enter", "search"), hint("esc", "cancel")}
	case StateDetails:
		hints = []string{hint("b", "buy"), hint("o", "preview"), hint("esc", "close")}
	case StatePayment:
		hints = []string{hint("tab", "next field"), hint("enter", "pay"), hint("esc", "cancel")}
	case StateProcessing:
		hints = []string{hint("esc", "cancel payment")}
	case StateLibrary:
		hints = []string{hint("r", "read now"), hint("/", "search"), hint("esc", "Back to Store")}
	}
	return strings.Join(hints, "  ")
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	help := `
BROWSE                          BOOK
  j/k/h/l    Move                  enter  Details
  Home/End   First/last book       b      Buy now
  /          Search                f      Toggle favorite
  g/G        Next/previous genre   o      Open preview
  1-6        Quick searches
  p          Popular books        LIBRARY
  Ctrl+f     Filter results        L      My library
  v          Grid/list view        r      Read now

CHECKOUT                        OTHER
  Tab/S-Tab  Next/previous field   q      Quit
  ←/→        Change country        ?      This help
  Enter      Complete purchase     Esc    Close / Cancel

Press any key to return...
`

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(help))
}
