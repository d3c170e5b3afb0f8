package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store implementation.
// It's the default store and the substitute to inject in tests.
// Entries live until deleted or the process exits; session-end semantics
// are owned by whoever constructs the store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	closed  bool
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]string),
	}
}

// Get retrieves the value for key if an entry exists.
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrStoreClosed{}
	}

	v, ok := m.entries[key]
	return v, ok, nil
}

// Set writes the value for key, creating or overwriting the entry.
func (m *MemoryStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}

	m.entries[key] = value
	return nil
}

// Delete removes the entry for key.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed{}
	}

	delete(m.entries, key)
	return nil
}

// Close marks the store closed. Subsequent operations fail with ErrStoreClosed.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	m.entries = nil
	return nil
}

// Count returns the number of entries in the store.
// This is for monitoring/testing purposes.
func (m *MemoryStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
