package service

import (
	"slices"
	"sync"

	"github.com/mmcdole/bookvibe/internal/domain"
	"github.com/mmcdole/bookvibe/internal/store"
)

// FavoritesService manages the favorite book ids in local storage.
// The stored list is rewritten wholesale on every change.
type FavoritesService struct {
	storage domain.Storage
	mu      sync.Mutex
}

// NewFavoritesService creates a favorites service
func NewFavoritesService(storage domain.Storage) *FavoritesService {
	return &FavoritesService{storage: storage}
}

// List returns favorite ids in insertion order
func (s *FavoritesService) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// IsFavorite reports whether id is a favorite
func (s *FavoritesService) IsFavorite(id string) (bool, error) {
	ids, err := s.List()
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, id), nil
}

// Count returns the number of favorites
func (s *FavoritesService) Count() (int, error) {
	ids, err := s.List()
	return len(ids), err
}

// Add marks id as favorite. Adding an existing favorite changes nothing.
func (s *FavoritesService) Add(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load()
	if err != nil {
		return err
	}
	if slices.Contains(ids, id) {
		return nil
	}
	return store.SetJSON(s.storage, store.KeyFavorites, append(ids, id))
}

// Remove unmarks id. Removing a non-favorite changes nothing.
func (s *FavoritesService) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load()
	if err != nil {
		return err
	}
	if !slices.Contains(ids, id) {
		return nil
	}
	return store.SetJSON(s.storage, store.KeyFavorites, slices.DeleteFunc(ids, func(v string) bool { return v == id }))
}

// Toggle flips id and reports whether it is now a favorite
func (s *FavoritesService) Toggle(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.load()
	if err != nil {
		return false, err
	}

	if slices.Contains(ids, id) {
		ids = slices.DeleteFunc(ids, func(v string) bool { return v == id })
		return false, store.SetJSON(s.storage, store.KeyFavorites, ids)
	}
	return true, store.SetJSON(s.storage, store.KeyFavorites, append(ids, id))
}

func (s *FavoritesService) load() ([]string, error) {
	ids := []string{}
	if _, err := store.GetJSON(s.storage, store.KeyFavorites, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}
