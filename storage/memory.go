package storage

import (
	"context"
	"sync"

	"github.com/inkpaste/inkpaste/models"
)

var _ PasteStore = (*MemoryStore)(nil)

// MemoryStore implements PasteStore with an in-process map. Used for
// development and tests; records do not survive a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	pastes map[string]models.Paste
}

// NewMemoryStore creates an empty in-memory storage backend.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pastes: make(map[string]models.Paste),
	}
}

// Put inserts a new paste, rejecting duplicate IDs.
func (m *MemoryStore) Put(_ context.Context, paste *models.Paste) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.pastes[paste.ID]; ok {
		return ErrDuplicateID
	}
	m.pastes[paste.ID] = *paste
	return nil
}

// Get retrieves a paste by its ID.
func (m *MemoryStore) Get(_ context.Context, id string) (*models.Paste, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	paste, ok := m.pastes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &paste, nil
}

// Delete removes a paste; absent IDs are ignored.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.pastes, id)
	return nil
}

// Take removes and returns the paste under a single lock, so exactly one
// concurrent caller wins.
func (m *MemoryStore) Take(_ context.Context, id string) (*models.Paste, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	paste, ok := m.pastes[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.pastes, id)
	return &paste, nil
}

// Ping is a no-op for the in-memory backend.
func (m *MemoryStore) Ping(_ context.Context) error { return nil }

// Close is a no-op for the in-memory backend.
func (m *MemoryStore) Close() error { return nil }
