package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// SearchBar holds the search terms, the genre and the quick searches
type SearchBar struct {
	input  textinput.Model
	genre  string
	active bool
	width  int
}

// NewSearchBar creates a search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search for books, authors, or genres..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 120
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	ti.PlaceholderStyle = styles.DimStyle
	return SearchBar{input: ti, genre: domain.GenreAll}
}

// Focus starts editing the terms
func (s *SearchBar) Focus() tea.Cmd {
	s.active = true
	return s.input.Focus()
}

// Blur stops editing
func (s *SearchBar) Blur() {
	s.active = false
	s.input.Blur()
}

// IsActive reports whether keystrokes go to the search input
func (s SearchBar) IsActive() bool {
	return s.active
}

// Terms returns the trimmed search terms
func (s SearchBar) Terms() string {
	return strings.TrimSpace(s.input.Value())
}

// SetTerms replaces the search terms
func (s *SearchBar) SetTerms(terms string) {
	s.input.SetValue(terms)
	s.input.CursorEnd()
}

// Genre returns the selected genre
func (s SearchBar) Genre() string {
	return s.genre
}

// CycleGenre selects the next (step 1) or previous (step -1) genre
func (s *SearchBar) CycleGenre(step int) string {
	s.genre = domain.NextGenre(s.genre, step)
	return s.genre
}

// SetSize sets the width
func (s *SearchBar) SetSize(width int) {
	s.width = width
	s.input.Width = max(width-30, 20)
}

// Update handles typing, returns (bar, cmd, submitted)
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	if !s.active {
		return s, nil, false
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			s.Blur()
			return s, nil, true
		case "esc":
			s.Blur()
			return s, nil, false
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

// View renders the search input, the genre and the quick search shortcuts
func (s SearchBar) View() string {
	var b strings.Builder
	b.WriteString(s.input.View())
	b.WriteString("  ")
	b.WriteString(styles.DimBadgeStyle.Render(domain.GenreLabel(s.genre)))
	b.WriteString("\n")

	quick := make([]string, len(domain.QuickSearches))
	for i, q := range domain.QuickSearches {
		quick[i] = styles.HelpKeyStyle.Render(fmt.Sprintf("%d", i+1)) + " " + styles.HelpDescStyle.Render(q)
	}
	b.WriteString(strings.Join(quick, "  "))
	return b.String()
}
