package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// Result is a filtered book with match metadata for highlighting
type Result struct {
	Book           domain.Book
	Index          int   // position in the indexed slice
	MatchedIndexes []int // rune positions in Label that matched
	Score          int   // higher is better
}

// Label returns the text that was matched: "Title · Authors"
func Label(b domain.Book) string {
	return b.Title() + " · " + b.AuthorLine()
}

// Index implements sahilm/fuzzy.Source over book labels
type Index struct {
	books       []domain.Book
	lowerLabels []string // Pre-computed lowercase labels
}

// NewIndex indexes books for filtering
func NewIndex(books []domain.Book) *Index {
	idx := &Index{
		books:       books,
		lowerLabels: make([]string, len(books)),
	}
	for i, b := range books {
		idx.lowerLabels[i] = strings.ToLower(Label(b))
	}
	return idx
}

// String returns the lowercase label at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.lowerLabels[i] }

// Len returns the number of books (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.books) }

// Filter returns books matching query, best first.
// A blank query returns every book in index order with no highlights.
func (idx *Index) Filter(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]Result, len(idx.books))
		for i, b := range idx.books {
			results[i] = Result{Book: b, Index: i}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, idx)
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Book:           idx.books[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
