package domain

// Storage is a string key-value store with browser local storage semantics.
// Values are JSON documents read and written wholesale.
type Storage interface {
	// GetItem returns the value for key and whether it exists
	GetItem(key string) (string, bool, error)

	// SetItem overwrites the value for key
	SetItem(key, value string) error

	// RemoveItem deletes key; missing keys are not an error
	RemoveItem(key string) error

	// Keys returns all keys in sorted order
	Keys() ([]string, error)

	// Clear deletes every key
	Clear() error

	// Close releases the underlying database
	Close() error
}
