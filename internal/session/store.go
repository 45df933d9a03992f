package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no session exists for an id.
	ErrNotFound = errors.New("session not found")

	// ErrStaleLoad is returned when an upload finished after a newer upload
	// or a reset. Its result was discarded.
	ErrStaleLoad = errors.New("stale load discarded")
)

// Store persists session states.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (State, error)
	Put(ctx context.Context, st State) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteIdle removes sessions last updated before the cutoff and
	// returns how many were removed.
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]State
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID]State)}
}

func (m *MemoryStore) Get(_ context.Context, id uuid.UUID) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	st, ok := m.sessions[id]
	if !ok {
		return State{}, ErrNotFound
	}
	return st.clone(), nil
}

func (m *MemoryStore) Put(_ context.Context, st State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[st.ID] = st.clone()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) DeleteIdle(_ context.Context, before time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, st := range m.sessions {
		if st.UpdatedAt.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}
