package domain

import "strings"

// GenreAll disables the subject filter
const GenreAll = "all"

// Genres lists the selectable subject filters in display order
var Genres = []string{
	GenreAll,
	"fiction",
	"non-fiction",
	"mystery",
	"romance",
	"science-fiction",
	"fantasy",
	"biography",
	"history",
	"self-help",
	"business",
	"technology",
}

// QuickSearches are one-key search shortcuts. They are submitted lowercased.
var QuickSearches = []string{"Fiction", "Mystery", "Romance", "Sci-Fi", "Fantasy", "Biography"}

// GenreLabel returns the display label for a genre slug
func GenreLabel(genre string) string {
	if genre == "" || genre == GenreAll {
		return "All Genres"
	}
	label := strings.ReplaceAll(genre, "-", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}

// NextGenre returns the genre after current, wrapping around.
// Unknown genres restart at the beginning.
func NextGenre(current string, step int) string {
	idx := 0
	for i, g := range Genres {
		if g == current {
			idx = i
			break
		}
	}
	n := len(Genres)
	return Genres[((idx+step)%n+n)%n]
}

// Query is a catalog search request
type Query struct {
	Terms string
	Genre string
}

// Encode returns the unescaped q parameter for the books API.
// The space before the subject filter becomes "+" once URL encoded.
func (q Query) Encode() string {
	terms := strings.TrimSpace(q.Terms)
	if q.Genre != "" && q.Genre != GenreAll {
		return terms + " subject:" + q.Genre
	}
	return terms
}
