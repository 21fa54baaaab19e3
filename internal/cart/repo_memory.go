package cart

import (
	"context"
	"sync"
)

// MemoryRepository is the in-memory substitute used in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{carts: make(map[string][]Item)}
}

func (r *MemoryRepository) Load(_ context.Context, cartID string) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.carts[cartID]
	if !ok {
		return nil, nil
	}
	items := make([]Item, len(stored))
	copy(items, stored)
	return items, nil
}

func (r *MemoryRepository) Save(_ context.Context, cartID string, items []Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := make([]Item, len(items))
	copy(stored, items)
	r.carts[cartID] = stored
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, cartID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, cartID)
	return nil
}
