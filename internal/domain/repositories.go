package domain

import (
	"context"
)

// Catalog searches the remote book catalog
type Catalog interface {
	// Search returns the raw volumes for a query, unfiltered
	Search(ctx context.Context, q Query) ([]Book, error)
}
