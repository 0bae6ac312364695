package store

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/bookvibe/internal/domain"
)

// GetJSON decodes the value stored under key into dest.
// found is false when the key is absent; dest is left untouched.
func GetJSON(s domain.Storage, key string, dest any) (bool, error) {
	raw, ok, err := s.GetItem(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return true, fmt.Errorf("corrupt value for %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v and overwrites key
func SetJSON(s domain.Storage, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return s.SetItem(key, string(data))
}
