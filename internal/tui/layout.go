package tui

import "github.com/charmbracelet/lipgloss"

// Vertical chrome around the book grid
const (
	HeaderHeight    = 1
	HeroHeight      = 3 // title, subtitle, blank line
	SearchBarHeight = 3 // input, quick searches, blank line
	FooterHeight    = 1
	ChromeHeight    = HeaderHeight + HeroHeight + SearchBarHeight + FooterHeight

	MaxModalWidth = 72
)

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	gridHeight := m.Height - ChromeHeight
	if m.Notice != "" {
		gridHeight -= m.noticeHeight()
	}
	m.Grid.SetSize(m.Width, max(gridHeight, 1))
	m.Search.SetSize(m.Width)
	m.Payment.SetSize(m.modalWidth())
	m.Library.SetSize(m.Width, m.Height-HeaderHeight-FooterHeight)
}

func (m Model) modalWidth() int {
	return min(m.Width-4, MaxModalWidth)
}

func (m Model) noticeHeight() int {
	return lipgloss.Height(m.renderNotice())
}
