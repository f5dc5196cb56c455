package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the session in process memory. Used by tests and
// one-shot CLI invocations that log in per run.
type MemoryStore struct {
	mu sync.RWMutex
	s  Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.s, nil
}

func (m *MemoryStore) Save(ctx context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = s
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = cleared(m.s)
	return nil
}

var _ Store = (*MemoryStore)(nil)
