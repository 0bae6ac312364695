package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// Keys used by the application, shared with the original browser storage layout
const (
	KeyFavorites = "bookFavorites"
	KeyPurchases = "purchasedBooks"
	KeyAdmin     = "admin"
	KeyAdminUser = "admin_user"
)

var bucketLocalStorage = []byte("local_storage")

// LocalStorage implements domain.Storage using BoltDB.
type LocalStorage struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects cache and closed
	closed bool

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string]string
}

var _ domain.Storage = (*LocalStorage)(nil)

// Open opens the storage database at path, creating parent directories.
// An empty path keeps everything in memory.
func Open(path string) (*LocalStorage, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &LocalStorage{cache: make(map[string]string)}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketLocalStorage)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &LocalStorage{db: db, cache: make(map[string]string)}, nil
}

// Memory returns a storage that is never persisted
func Memory() *LocalStorage {
	s, _ := Open("")
	return s
}

func (s *LocalStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *LocalStorage) GetItem(key string) (string, bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return "", false, domain.ErrStorageClosed
	}
	if v, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return v, true, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return "", false, nil
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketLocalStorage).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	if value == nil {
		return "", false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = string(value)
	s.mu.Unlock()

	return string(value), true, nil
}

// SetItem persists value and then caches it. Holding the lock across the
// write keeps the cache from getting ahead of the database.
func (s *LocalStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStorageClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketLocalStorage).Put([]byte(key), []byte(value))
		})
		if err != nil {
			return fmt.Errorf("failed to write %q: %w", key, err)
		}
	}

	s.cache[key] = value
	return nil
}

func (s *LocalStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStorageClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketLocalStorage).Delete([]byte(key))
		})
		if err != nil {
			return fmt.Errorf("failed to delete %q: %w", key, err)
		}
	}

	delete(s.cache, key)
	return nil
}

func (s *LocalStorage) Keys() ([]string, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, domain.ErrStorageClosed
	}
	seen := make(map[string]struct{}, len(s.cache))
	for k := range s.cache {
		seen[k] = struct{}{}
	}
	s.mu.RUnlock()

	if s.db != nil {
		err := s.db.View(func(tx *bolt.Tx) error {
			return tx.Bucket(bucketLocalStorage).ForEach(func(k, _ []byte) error {
				seen[string(k)] = struct{}{}
				return nil
			})
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list keys: %w", err)
		}
	}

	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *LocalStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.ErrStorageClosed
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			if err := tx.DeleteBucket(bucketLocalStorage); err != nil {
				return err
			}
			_, err := tx.CreateBucket(bucketLocalStorage)
			return err
		})
		if err != nil {
			return err
		}
	}

	s.cache = make(map[string]string)
	return nil
}
