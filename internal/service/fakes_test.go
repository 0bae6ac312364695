package service

import (
	"context"
	"sync"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// fakeCatalog answers queries from a map keyed by encoded query
type fakeCatalog struct {
	mu      sync.Mutex
	results map[string][]domain.Book
	errs    map[string]error
	calls   []domain.Query
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		results: make(map[string][]domain.Book),
		errs:    make(map[string]error),
	}
}

func (f *fakeCatalog) Search(ctx context.Context, q domain.Query) ([]domain.Book, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, q)
	if err := f.errs[q.Encode()]; err != nil {
		return nil, err
	}
	return f.results[q.Encode()], nil
}

func book(id, title string, authors ...string) domain.Book {
	return domain.Book{ID: id, VolumeInfo: domain.VolumeInfo{Title: title, Authors: authors}}
}

func withCover(b domain.Book) domain.Book {
	b.VolumeInfo.ImageLinks = &domain.ImageLinks{Thumbnail: "http://books.example/" + b.ID + ".jpg"}
	return b
}
