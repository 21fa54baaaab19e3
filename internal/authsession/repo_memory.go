package authsession

import (
	"context"
	"sync"
)

// MemoryRepository is the in-memory substitute used in tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]StoredCredentials
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]StoredCredentials)}
}

func (r *MemoryRepository) Load(_ context.Context, sessionID string) (*StoredCredentials, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	creds, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	copied := creds
	return &copied, nil
}

func (r *MemoryRepository) Save(_ context.Context, sessionID string, creds StoredCredentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = creds
	return nil
}

func (r *MemoryRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}
