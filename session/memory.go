package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	states map[string]UserState
}

// NewMemoryStore returns a Store that keeps every state for the lifetime of
// the process.
func NewMemoryStore() Store {
	return &memoryStore{
		states: make(map[string]UserState),
	}
}

func (m *memoryStore) Get(_ context.Context, id string) (UserState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if st, ok := m.states[id]; ok {
		return st, nil
	}
	return NewUserState(), nil
}

func (m *memoryStore) Set(_ context.Context, id string, st UserState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[id] = st
	return nil
}

func (m *memoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.states)
}
