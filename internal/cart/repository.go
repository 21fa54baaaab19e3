package cart

import (
	"context"
	"errors"
)

// ErrCorrupt signals that the persisted cart could not be decoded. Callers
// treat it as an empty cart rather than a failure; the stored blob is
// replaced on the next save.
var ErrCorrupt = errors.New("stored cart is unreadable")

// Repository persists the full item list per visitor cart. Implementations:
// Redis in production, in-memory in tests.
type Repository interface {
	Load(ctx context.Context, cartID string) ([]Item, error)
	Save(ctx context.Context, cartID string, items []Item) error
	Delete(ctx context.Context, cartID string) error
}
