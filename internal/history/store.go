// Package history records visited pages. The SQLite backend lives under the
// data dir; the in-memory backend serves tests and --no-history runs.
package history

import (
	"context"
	"errors"

	"github.com/kmj8843/mdrowser/pkg/api"
)

// Store is the visit log interface.
type Store interface {
	// Record inserts a visit, or bumps the count and refreshes the row when
	// the URL was seen before.
	Record(ctx context.Context, v api.Visit) error
	// List returns visits most recent first, up to limit (<=0 means all).
	List(ctx context.Context, limit int) ([]api.Visit, error)
	// Search returns visits whose URL or title contains the substring,
	// most recent first.
	Search(ctx context.Context, q string, limit int) ([]api.Visit, error)
	// Get returns the visit for an exact URL.
	Get(ctx context.Context, url string) (api.Visit, error)
	// Clear removes all visits and reports how many were deleted.
	Clear(ctx context.Context) (int64, error)
	Close() error
}

var ErrNotFound = errors.New("not found")
