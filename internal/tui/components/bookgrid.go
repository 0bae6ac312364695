package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/search"
	"github.com/mmcdole/bookvibe/internal/service"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// ViewMode selects how the store lays out books
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

// ParseViewMode maps a config value to a ViewMode; anything but "list" is a grid
func ParseViewMode(s string) ViewMode {
	if strings.EqualFold(s, "list") {
		return ViewList
	}
	return ViewGrid
}

// String returns the config name of the mode
func (v ViewMode) String() string {
	if v == ViewList {
		return "list"
	}
	return "grid"
}

// Layout constants for the book grid
const (
	// Border adds 1 char on each side
	BorderWidth  = 2
	BorderHeight = 2

	// Lines inside a grid cell: title, author, rating, price
	CellLines = 4

	// Filter bar line plus scroll indicator line
	GridChromeLines = 2

	MinCellWidth = 18
)

// BookGrid shows the current result set as a grid of cards or a list of rows.
// ctrl+f filters the loaded books in place with fuzzy matching.
type BookGrid struct {
	books     []domain.Book
	favorites map[string]bool
	currency  string

	mode    ViewMode
	columns int // preferred columns in grid mode

	// Selection (index into visible results)
	cursor int
	offset int // first visible row

	// Dimensions
	width  int
	height int

	// Filter state
	index        *search.Index
	filterActive bool
	filterTyping bool
	filterInput  textinput.Model
	results      []search.Result
}

// NewBookGrid creates a book grid
func NewBookGrid(mode ViewMode, columns int, currency string) BookGrid {
	ti := textinput.New()
	ti.Placeholder = "type to filter..."
	ti.Prompt = "filter: "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	if columns <= 0 {
		columns = 4
	}
	return BookGrid{
		favorites:   make(map[string]bool),
		currency:    currency,
		mode:        mode,
		columns:     columns,
		filterInput: ti,
		index:       search.NewIndex(nil),
	}
}

// SetBooks replaces the result set and resets selection and filter
func (g *BookGrid) SetBooks(books []domain.Book) {
	g.books = books
	g.index = search.NewIndex(books)
	g.cursor = 0
	g.offset = 0
	g.clearFilter()
}

// Books returns the full result set
func (g BookGrid) Books() []domain.Book {
	return g.books
}

// SetFavorites sets the favorite book ids used for the heart marker
func (g *BookGrid) SetFavorites(ids []string) {
	g.favorites = make(map[string]bool, len(ids))
	for _, id := range ids {
		g.favorites[id] = true
	}
}

// SetFavorite updates one book's favorite marker
func (g *BookGrid) SetFavorite(id string, favorited bool) {
	if favorited {
		g.favorites[id] = true
	} else {
		delete(g.favorites, id)
	}
}

// FavoriteCount returns the number of favorite books
func (g BookGrid) FavoriteCount() int {
	return len(g.favorites)
}

// IsFavorite reports whether id is marked as favorite
func (g BookGrid) IsFavorite(id string) bool {
	return g.favorites[id]
}

// SetSize sets the available area
func (g *BookGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
	g.ensureVisible()
}

// Mode returns the current layout
func (g BookGrid) Mode() ViewMode {
	return g.mode
}

// ToggleMode switches between grid and list
func (g *BookGrid) ToggleMode() {
	if g.mode == ViewGrid {
		g.mode = ViewList
	} else {
		g.mode = ViewGrid
	}
	g.offset = 0
	g.ensureVisible()
}

// Selected returns the book under the cursor, or nil when nothing is shown
func (g BookGrid) Selected() *domain.Book {
	visible := g.visible()
	if g.cursor < 0 || g.cursor >= len(visible) {
		return nil
	}
	b := visible[g.cursor].Book
	return &b
}

// Cursor returns the selected position among visible books
func (g BookGrid) Cursor() int {
	return g.cursor
}

// VisibleCount returns the number of books currently shown
func (g BookGrid) VisibleCount() int {
	return len(g.visible())
}

// Move moves the cursor by dx cells horizontally and dy rows vertically
func (g *BookGrid) Move(dx, dy int) {
	n := len(g.visible())
	if n == 0 {
		return
	}
	step := dx + dy*g.perRow()
	g.cursor = clamp(g.cursor+step, 0, n-1)
	g.ensureVisible()
}

// First selects the first book
func (g *BookGrid) First() {
	g.cursor = 0
	g.ensureVisible()
}

// Last selects the last book
func (g *BookGrid) Last() {
	if n := len(g.visible()); n > 0 {
		g.cursor = n - 1
	}
	g.ensureVisible()
}

// ToggleFilter opens the filter bar, or closes an empty one
func (g *BookGrid) ToggleFilter() tea.Cmd {
	if g.filterActive && g.filterInput.Value() == "" {
		g.clearFilter()
		return nil
	}
	g.filterActive = true
	g.filterTyping = true
	return g.filterInput.Focus()
}

// IsFiltering reports whether a filter is applied or being typed
func (g BookGrid) IsFiltering() bool {
	return g.filterActive
}

// IsFilterTyping reports whether keystrokes go to the filter input
func (g BookGrid) IsFilterTyping() bool {
	return g.filterTyping
}

// ClearFilter removes the filter and shows every book
func (g *BookGrid) ClearFilter() {
	g.clearFilter()
}

func (g *BookGrid) clearFilter() {
	g.filterActive = false
	g.filterTyping = false
	g.filterInput.SetValue("")
	g.filterInput.Blur()
	g.results = nil
	g.cursor = 0
	g.offset = 0
}

// Update feeds keystrokes to the filter input while typing
func (g BookGrid) Update(msg tea.Msg) (BookGrid, tea.Cmd) {
	if !g.filterTyping {
		return g, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			g.clearFilter()
			return g, nil
		case "enter":
			// Keep the filter applied, return keys to navigation
			g.filterTyping = false
			g.filterInput.Blur()
			if g.filterInput.Value() == "" {
				g.clearFilter()
			}
			return g, nil
		}
	}

	var cmd tea.Cmd
	prev := g.filterInput.Value()
	g.filterInput, cmd = g.filterInput.Update(msg)
	if g.filterInput.Value() != prev {
		g.applyFilter()
	}
	return g, cmd
}

func (g *BookGrid) applyFilter() {
	query := g.filterInput.Value()
	if strings.TrimSpace(query) == "" {
		g.results = nil
	} else {
		g.results = g.index.Filter(query)
	}
	g.cursor = 0
	g.offset = 0
}

// visible returns the books currently shown, filtered when a query is set
func (g BookGrid) visible() []search.Result {
	if g.filterActive && strings.TrimSpace(g.filterInput.Value()) != "" {
		return g.results
	}
	return g.index.Filter("")
}

func (g BookGrid) perRow() int {
	if g.mode == ViewList {
		return 1
	}
	cols := g.columns
	if g.width > 0 {
		if fit := g.width / (MinCellWidth + BorderWidth); fit < cols {
			cols = fit
		}
	}
	return max(cols, 1)
}

func (g BookGrid) rowHeight() int {
	if g.mode == ViewList {
		return 1
	}
	return CellLines + BorderHeight
}

func (g BookGrid) visibleRows() int {
	avail := g.height - GridChromeLines
	if avail <= 0 {
		return 1
	}
	return max(avail/g.rowHeight(), 1)
}

func (g *BookGrid) ensureVisible() {
	row := g.cursor / g.perRow()
	rows := g.visibleRows()
	if row < g.offset {
		g.offset = row
	}
	if row >= g.offset+rows {
		g.offset = row - rows + 1
	}
}

// View renders the grid or list
func (g BookGrid) View() string {
	var b strings.Builder

	if g.filterActive {
		b.WriteString(g.filterInput.View())
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  %d/%d", len(g.visible()), len(g.books))))
		b.WriteString("\n")
	}

	visible := g.visible()
	if len(visible) == 0 {
		if g.filterActive {
			b.WriteString(styles.DimStyle.Render("No matches found"))
		} else {
			b.WriteString(styles.DimStyle.Render("No books to show"))
		}
		return b.String()
	}

	perRow := g.perRow()
	start := g.offset * perRow
	end := min(start+g.visibleRows()*perRow, len(visible))

	if g.mode == ViewList {
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			lines = append(lines, g.renderRow(visible[i], i == g.cursor))
		}
		b.WriteString(strings.Join(lines, "\n"))
	} else {
		var rows []string
		for i := start; i < end; i += perRow {
			var cells []string
			for j := i; j < min(i+perRow, end); j++ {
				cells = append(cells, g.renderCell(visible[j], j == g.cursor, perRow))
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	if end < len(visible) {
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("↓ %d more", len(visible)-end)))
	}
	return b.String()
}

func (g BookGrid) heart(id string) string {
	if g.favorites[id] {
		return styles.FavoriteStyle.Render("♥")
	}
	return styles.DimStyle.Render("♡")
}

func (g BookGrid) renderCell(r search.Result, selected bool, perRow int) string {
	cellWidth := MinCellWidth
	if g.width > 0 {
		cellWidth = max(g.width/perRow-BorderWidth, MinCellWidth)
	}
	inner := cellWidth - 2 // horizontal padding

	book := r.Book
	title := styles.Truncate(book.Title(), inner)
	titleMatches := r.MatchedIndexes
	if len([]rune(title)) < len([]rune(book.Title())) {
		titleMatches = nil
	}

	rating := styles.DimStyle.Render("No rating")
	if book.VolumeInfo.AverageRating > 0 {
		rating = styles.RenderStars(book.VolumeInfo.AverageRating) + " " +
			styles.DimStyle.Render(fmt.Sprintf("(%s)", humanize.Comma(int64(book.VolumeInfo.RatingsCount))))
	}

	price := service.Price(book, g.currency)
	lines := []string{
		highlightMatches(title, titleMatches, false),
		styles.SubtitleStyle.Render(styles.Truncate(book.AuthorLine(), inner)),
		rating,
		styles.RenderPrice(price.Amount, price.CurrencyCode) + "  " + g.heart(book.ID),
	}

	style := styles.GridCellStyle
	if selected {
		style = styles.GridCellSelectedStyle
	}
	return style.Width(cellWidth).Render(strings.Join(lines, "\n"))
}

func (g BookGrid) renderRow(r search.Result, selected bool) string {
	book := r.Book
	price := service.Price(book, g.currency)
	priceText := styles.FormatPrice(price.Amount, price.CurrencyCode)

	width := g.width
	if width <= 0 {
		width = 80
	}
	labelWidth := max(width-len(priceText)-14, 10)

	label := search.Label(book)
	matches := r.MatchedIndexes
	if truncated := styles.Truncate(label, labelWidth); truncated != label {
		label = truncated
		matches = nil
	}

	year := book.PublishedYear()
	return fmt.Sprintf("%s %s %s %s",
		g.heart(book.ID),
		highlightMatches(styles.Pad(label, labelWidth), matches, selected),
		styles.DimStyle.Render(styles.Pad(year, 7)),
		styles.PriceStyle.Render(priceText),
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
