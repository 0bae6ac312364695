package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/bookvibe/internal/catalog"
	"github.com/mmcdole/bookvibe/internal/domain"
)

// User-visible notices shown alongside sample books
const (
	NoticeCatalogUnavailable = "Unable to connect to Google Books API. Showing sample books instead."
	NoticeSearchFailed       = "Failed to search books. Please check your internet connection and try again."
)

// BrowseResult is what the store view displays after a load or search
type BrowseResult struct {
	Books       []domain.Book
	Query       domain.Query
	FromSamples bool   // Books is the offline sample set
	Notice      string // empty when the catalog answered normally
	Err         error  // underlying failure, if any
}

// BrowseService loads the landing page and runs searches against the catalog
type BrowseService struct {
	catalog         domain.Catalog
	fallbackQueries []string
	samples         func() []domain.Book
	logger          *slog.Logger
}

// NewBrowseService creates a browse service. fallbackQueries are tried in order for the landing page.
func NewBrowseService(c domain.Catalog, fallbackQueries []string, logger *slog.Logger) *BrowseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowseService{
		catalog:         c,
		fallbackQueries: fallbackQueries,
		samples:         catalog.SampleBooks,
		logger:          logger,
	}
}

// Popular tries each fallback query in order and returns the first one with
// displayable books (title, author and cover). When none succeed the sample set is returned.
func (s *BrowseService) Popular(ctx context.Context) BrowseResult {
	var lastErr error
	for _, terms := range s.fallbackQueries {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		q := domain.Query{Terms: terms}
		books, err := s.catalog.Search(ctx, q)
		if err != nil {
			s.logger.Warn("popular query failed", "query", terms, "error", err)
			lastErr = err
			continue
		}

		valid := filterBooks(books, isDisplayableWithCover)
		if len(valid) > 0 {
			s.logger.Info("loaded popular books", "query", terms, "count", len(valid))
			return BrowseResult{Books: valid, Query: q}
		}
		s.logger.Debug("popular query had no displayable books", "query", terms, "count", len(books))
	}

	s.logger.Info("loading sample books as fallback", "error", lastErr)
	if lastErr == nil {
		lastErr = domain.ErrNoResults
	}
	return BrowseResult{
		Books:       s.samples(),
		FromSamples: true,
		Notice:      NoticeCatalogUnavailable,
		Err:         lastErr,
	}
}

// Search runs a query with an optional genre filter. Blank terms load the landing page.
// Searches with no displayable result fall back to the sample set with a notice.
func (s *BrowseService) Search(ctx context.Context, terms, genre string) BrowseResult {
	terms = strings.TrimSpace(terms)
	if terms == "" {
		return s.Popular(ctx)
	}

	q := domain.Query{Terms: terms, Genre: genre}
	books, err := s.catalog.Search(ctx, q)
	if err != nil {
		s.logger.Error("search failed", "query", terms, "genre", genre, "error", err)
		return s.fallback(q, NoticeSearchFailed, err)
	}

	if len(books) == 0 {
		return s.fallback(q, fmt.Sprintf("No books found for %q. Try a different search term.", terms), domain.ErrNoResults)
	}

	valid := filterBooks(books, domain.Book.HasTitleAndAuthor)
	if len(valid) == 0 {
		return s.fallback(q, fmt.Sprintf("No valid books found for %q. Try a different search term.", terms), domain.ErrNoResults)
	}

	s.logger.Info("search complete", "query", terms, "genre", genre, "count", len(valid))
	return BrowseResult{Books: valid, Query: q}
}

func (s *BrowseService) fallback(q domain.Query, notice string, err error) BrowseResult {
	return BrowseResult{
		Books:       s.samples(),
		Query:       q,
		FromSamples: true,
		Notice:      notice,
		Err:         err,
	}
}

func isDisplayableWithCover(b domain.Book) bool {
	return b.HasTitleAndAuthor() && b.HasCover()
}

func filterBooks(books []domain.Book, keep func(domain.Book) bool) []domain.Book {
	var out []domain.Book
	for _, b := range books {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}
