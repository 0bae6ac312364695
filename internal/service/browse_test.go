package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/bookvibe/internal/catalog"
	"github.com/mmcdole/bookvibe/internal/domain"
)

var popularQueries = []string{"bestseller fiction", "harry potter", "classic literature"}

func TestPopularUsesFirstQueryWithCoveredBooks(t *testing.T) {
	fc := newFakeCatalog()
	fc.errs["bestseller fiction"] = domain.ErrCatalogUnavailable
	fc.results["harry potter"] = []domain.Book{book("a", "No Cover", "X")}
	fc.results["classic literature"] = []domain.Book{
		withCover(book("b", "Emma", "Jane Austen")),
		withCover(book("c", "", "Nobody")),
	}

	res := NewBrowseService(fc, popularQueries, nil).Popular(context.Background())

	assert.False(t, res.FromSamples)
	assert.Empty(t, res.Notice)
	require.Len(t, res.Books, 1)
	assert.Equal(t, "b", res.Books[0].ID)
	assert.Equal(t, "classic literature", res.Query.Terms)
	assert.Len(t, fc.calls, 3)
}

func TestPopularStopsAtFirstSuccess(t *testing.T) {
	fc := newFakeCatalog()
	fc.results["bestseller fiction"] = []domain.Book{withCover(book("a", "Emma", "Jane Austen"))}

	res := NewBrowseService(fc, popularQueries, nil).Popular(context.Background())
	assert.Len(t, res.Books, 1)
	assert.Len(t, fc.calls, 1)
}

func TestPopularFallsBackToSamples(t *testing.T) {
	fc := newFakeCatalog()
	for _, q := range popularQueries {
		fc.errs[q] = domain.ErrCatalogUnavailable
	}

	res := NewBrowseService(fc, popularQueries, nil).Popular(context.Background())

	assert.True(t, res.FromSamples)
	assert.Equal(t, NoticeCatalogUnavailable, res.Notice)
	assert.ErrorIs(t, res.Err, domain.ErrCatalogUnavailable)
	assert.Equal(t, catalog.SampleBooks(), res.Books)
}

func TestSearchBlankLoadsPopular(t *testing.T) {
	fc := newFakeCatalog()
	fc.results["bestseller fiction"] = []domain.Book{withCover(book("a", "Emma", "Jane Austen"))}

	res := NewBrowseService(fc, popularQueries, nil).Search(context.Background(), "   ", "fantasy")
	require.Len(t, res.Books, 1)
	assert.Equal(t, "bestseller fiction", fc.calls[0].Terms)
}

func TestSearchAppliesGenreAndKeepsCoverlessBooks(t *testing.T) {
	fc := newFakeCatalog()
	fc.results["dragons subject:fantasy"] = []domain.Book{
		book("a", "Dragon Rider", "Cornelia Funke"),
		book("b", "Untitled"),
	}

	res := NewBrowseService(fc, popularQueries, nil).Search(context.Background(), " dragons ", "fantasy")

	assert.False(t, res.FromSamples)
	require.Len(t, res.Books, 1)
	assert.Equal(t, "a", res.Books[0].ID)
	assert.Equal(t, domain.Query{Terms: "dragons", Genre: "fantasy"}, res.Query)
}

func TestSearchWithoutValidResultsFallsBackToSamples(t *testing.T) {
	cases := []struct {
		name   string
		setup  func(*fakeCatalog)
		notice string
	}{
		{
			name:   "no results",
			setup:  func(*fakeCatalog) {},
			notice: `No books found for "qwzx". Try a different search term.`,
		},
		{
			name: "no valid results",
			setup: func(fc *fakeCatalog) {
				fc.results["qwzx"] = []domain.Book{book("a", "Anonymous Pamphlet")}
			},
			notice: `No valid books found for "qwzx". Try a different search term.`,
		},
		{
			name: "catalog failure",
			setup: func(fc *fakeCatalog) {
				fc.errs["qwzx"] = domain.ErrCatalogUnavailable
			},
			notice: NoticeSearchFailed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fc := newFakeCatalog()
			tc.setup(fc)

			res := NewBrowseService(fc, popularQueries, nil).Search(context.Background(), "qwzx", domain.GenreAll)

			assert.True(t, res.FromSamples)
			assert.Equal(t, tc.notice, res.Notice)
			assert.Error(t, res.Err)
			assert.Equal(t, catalog.SampleBooks(), res.Books)
		})
	}
}
