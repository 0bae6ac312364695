package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/search"
	"github.com/mmcdole/bookvibe/internal/tui/styles"
)

// LibraryEntryLines is the height of one purchased book in the list
const LibraryEntryLines = 3

// Library lists purchased books. Typing after "/" ranks them by title.
type Library struct {
	books  []domain.Book
	ranked []domain.Book
	cursor int
	offset int
	width  int
	height int
	loaded bool

	filterTyping bool
	filterInput  textinput.Model
}

// NewLibrary creates the library view
func NewLibrary() Library {
	ti := textinput.New()
	ti.Placeholder = "search your collection..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle
	return Library{filterInput: ti}
}

// SetBooks replaces the purchased books
func (l *Library) SetBooks(books []domain.Book) {
	l.books = books
	l.loaded = true
	l.cursor = 0
	l.offset = 0
	l.rank()
}

// SetSize sets the available area
func (l *Library) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Len returns the number of books shown
func (l Library) Len() int {
	return len(l.ranked)
}

// Selected returns the book under the cursor
func (l Library) Selected() *domain.Book {
	if l.cursor < 0 || l.cursor >= len(l.ranked) {
		return nil
	}
	b := l.ranked[l.cursor]
	return &b
}

// Move moves the cursor by delta entries
func (l *Library) Move(delta int) {
	if len(l.ranked) == 0 {
		return
	}
	l.cursor = clamp(l.cursor+delta, 0, len(l.ranked)-1)
	rows := l.visibleEntries()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
}

// StartFilter focuses the collection search
func (l *Library) StartFilter() tea.Cmd {
	l.filterTyping = true
	return l.filterInput.Focus()
}

// IsFilterTyping reports whether keystrokes go to the collection search
func (l Library) IsFilterTyping() bool {
	return l.filterTyping
}

// Update feeds keystrokes to the collection search while typing
func (l Library) Update(msg tea.Msg) (Library, tea.Cmd) {
	if !l.filterTyping {
		return l, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			l.filterTyping = false
			l.filterInput.SetValue("")
			l.filterInput.Blur()
			l.rank()
			return l, nil
		case "enter":
			l.filterTyping = false
			l.filterInput.Blur()
			return l, nil
		}
	}

	var cmd tea.Cmd
	prev := l.filterInput.Value()
	l.filterInput, cmd = l.filterInput.Update(msg)
	if l.filterInput.Value() != prev {
		l.rank()
	}
	return l, cmd
}

func (l *Library) rank() {
	l.ranked = search.RankLibrary(l.filterInput.Value(), l.books)
	l.cursor = 0
	l.offset = 0
}

func (l Library) visibleEntries() int {
	avail := l.height - 6 // heading, count, filter bar
	if avail <= 0 {
		return 1
	}
	return max(avail/LibraryEntryLines, 1)
}

// View renders the library
func (l Library) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("📖 My Digital Library"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("Your purchased books and journals"))
	b.WriteString("\n\n")

	if l.loaded && len(l.books) == 0 {
		b.WriteString(styles.TitleStyle.Render("Your Library is Empty"))
		b.WriteString("\n")
		b.WriteString(styles.DimStyle.Render("Purchase some books to start building your digital collection"))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpKeyStyle.Render("[esc] Browse Books"))
		return b.String()
	}

	b.WriteString(styles.AccentStyle.Render(fmt.Sprintf("Your Collection (%d books)", len(l.books))))
	b.WriteString("  ")
	b.WriteString(styles.DimStyle.Render("Access your purchased books anytime, anywhere"))
	b.WriteString("\n")
	if l.filterTyping || l.filterInput.Value() != "" {
		b.WriteString(l.filterInput.View())
		b.WriteString("\n")
	}

	if len(l.ranked) == 0 {
		b.WriteString(styles.DimStyle.Render("No matches found"))
		return b.String()
	}

	end := min(l.offset+l.visibleEntries(), len(l.ranked))
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderEntry(l.ranked[i], i == l.cursor))
	}
	if end < len(l.ranked) {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("↓ %d more", len(l.ranked)-end)))
	}
	return b.String()
}

func (l Library) renderEntry(book domain.Book, selected bool) string {
	width := l.width
	if width <= 0 {
		width = 80
	}
	info := book.VolumeInfo

	marker := "  "
	title := styles.NormalItemStyle.Render(styles.Truncate(book.Title(), width-20))
	if selected {
		marker = styles.AccentStyle.Render("▸ ")
		title = styles.SelectedItemStyle.Render(styles.Truncate(book.Title(), width-20))
	}

	meta := []string{book.PublishedYear()}
	if info.PageCount > 0 {
		meta = append(meta, humanize.Comma(int64(info.PageCount))+" pages")
	}
	if info.AverageRating > 0 {
		meta = append(meta, fmt.Sprintf("★ %.1f", info.AverageRating))
	}

	var badges []string
	for _, c := range book.TopCategories(2) {
		badges = append(badges, styles.DimBadgeStyle.Render(c))
	}
	badges = append(badges, styles.OwnedBadgeStyle.Render("Owned"))

	return fmt.Sprintf("%s%s\n    %s  %s\n    %s\n",
		marker, title,
		styles.SubtitleStyle.Render(book.AuthorLine()),
		styles.DimStyle.Render(strings.Join(meta, " · ")),
		strings.Join(badges, " "),
	)
}
