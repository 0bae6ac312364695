package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// RankLibrary orders owned books by how closely their title or authors match query.
// Books that do not match are dropped. A blank query returns books unchanged.
func RankLibrary(query string, books []domain.Book) []domain.Book {
	query = strings.TrimSpace(query)
	if query == "" {
		return books
	}

	targets := make([]string, len(books))
	for i, b := range books {
		targets[i] = Label(b)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Stable(ranks)

	out := make([]domain.Book, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, books[r.OriginalIndex])
	}
	return out
}
