package service

import (
	"sync"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/store"
)

// PurchaseService manages the purchased books list in local storage.
// Entries are only ever appended.
type PurchaseService struct {
	storage domain.Storage
	mu      sync.Mutex
}

// NewPurchaseService creates a purchase service
func NewPurchaseService(storage domain.Storage) *PurchaseService {
	return &PurchaseService{storage: storage}
}

// List returns purchased books oldest first
func (s *PurchaseService) List() ([]domain.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Count returns the number of purchases, repeats included
func (s *PurchaseService) Count() (int, error) {
	books, err := s.List()
	return len(books), err
}

// Owns reports whether the book id was purchased at least once
func (s *PurchaseService) Owns(id string) (bool, error) {
	books, err := s.List()
	if err != nil {
		return false, err
	}
	for _, b := range books {
		if b.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// Append records one purchase of book
func (s *PurchaseService) Append(book domain.Book) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return err
	}
	return store.SetJSON(s.storage, store.KeyPurchases, append(books, book))
}

func (s *PurchaseService) load() ([]domain.Book, error) {
	books := []domain.Book{}
	if _, err := store.GetJSON(s.storage, store.KeyPurchases, &books); err != nil {
		return nil, err
	}
	return books, nil
}
