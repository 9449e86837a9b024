package session

import (
	"context"
	"sync"
)

// DefaultStorageKey is the fixed name under which the bearer token is
// persisted, matching what earlier deployments of the web client used.
const DefaultStorageKey = "token"

// TokenStore persists a single token value under a fixed key.
//
// Load returns "" with a nil error when no value is stored. Delete on an
// absent value is a no-op.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// MemoryStore is a TokenStore that lives and dies with the process.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored token, or "" when none is set.
func (m *MemoryStore) Load(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

// Save replaces the stored token.
func (m *MemoryStore) Save(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Delete removes the stored token.
func (m *MemoryStore) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
