package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/fonts"
)

// LoadFunc produces the card set of an upload. It runs on its own goroutine
// and should return promptly once ctx is cancelled.
type LoadFunc func(ctx context.Context) (cards.Set, error)

// Manager applies user actions to sessions.
type Manager struct {
	store  Store
	fonts  *fonts.Catalog
	logger *slog.Logger
	now    func() time.Time

	// mu serialises read-modify-write cycles against the store.
	mu sync.Mutex
}

// NewManager creates a Manager backed by store.
func NewManager(store Store, catalog *fonts.Catalog, logger *slog.Logger) *Manager {
	if logger == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("logger cannot be nil for session.Manager")
	}
	return &Manager{
		store:  store,
		fonts:  catalog,
		logger: logger.With(slog.String("component", "session_manager")),
		now:    time.Now,
	}
}

// Fonts returns the catalog sessions choose from.
func (m *Manager) Fonts() *fonts.Catalog { return m.fonts }

// Create starts an empty session using the catalog's default font.
func (m *Manager) Create(ctx context.Context) (State, error) {
	now := m.now()
	st := State{
		ID:        uuid.New(),
		Cards:     cards.Set{},
		Font:      m.fonts.Default(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Put(ctx, st); err != nil {
		return State{}, fmt.Errorf("creating session: %w", err)
	}
	m.logger.Debug("session created", slog.String("session_id", st.ID.String()))
	return st, nil
}

// Get returns the current state of a session.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (State, error) {
	return m.store.Get(ctx, id)
}

// Load runs load and, if nothing superseded it while it ran, replaces the
// session's card set with the result. Starting a load supersedes any load
// still in flight. A failed load leaves the card set untouched.
func (m *Manager) Load(ctx context.Context, id uuid.UUID, load LoadFunc) (State, error) {
	token, err := m.update(ctx, id, func(st State, now time.Time) (State, error) {
		return st.nextGeneration(now), nil
	})
	if err != nil {
		return State{}, err
	}

	type result struct {
		set cards.Set
		err error
	}
	done := make(chan result, 1)
	go func() {
		set, err := load(ctx)
		done <- result{set: set, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		return State{}, ctx.Err()
	case res = <-done:
	}
	if err := ctx.Err(); err != nil {
		return State{}, err
	}
	if res.err != nil {
		return State{}, res.err
	}

	st, err := m.update(ctx, id, func(st State, now time.Time) (State, error) {
		if st.Generation != token.Generation {
			return State{}, ErrStaleLoad
		}
		return st.withCards(res.set, now), nil
	})
	if err != nil {
		if errors.Is(err, ErrStaleLoad) {
			m.logger.Info("discarding stale load",
				slog.String("session_id", id.String()),
				slog.Uint64("generation", token.Generation))
		}
		return State{}, err
	}
	m.logger.Info("card set loaded",
		slog.String("session_id", id.String()),
		slog.Int("cards", len(st.Cards)),
		slog.Int("pages", st.PageCount()))
	return st, nil
}

// Reset replaces the card set with an empty one and invalidates any load
// still in flight.
func (m *Manager) Reset(ctx context.Context, id uuid.UUID) (State, error) {
	st, err := m.update(ctx, id, func(st State, now time.Time) (State, error) {
		return st.nextGeneration(now).withCards(cards.Set{}, now), nil
	})
	if err != nil {
		return State{}, err
	}
	m.logger.Debug("session reset", slog.String("session_id", id.String()))
	return st, nil
}

// SelectFont changes the typeface of a session.
func (m *Manager) SelectFont(ctx context.Context, id uuid.UUID, name string) (State, error) {
	f, err := m.fonts.Lookup(name)
	if err != nil {
		return State{}, err
	}
	return m.update(ctx, id, func(st State, now time.Time) (State, error) {
		return st.withFont(f, now), nil
	})
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.Delete(ctx, id)
}

// Sweep removes sessions idle for longer than ttl.
func (m *Manager) Sweep(ctx context.Context, ttl time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, err := m.store.DeleteIdle(ctx, m.now().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("sweeping sessions: %w", err)
	}
	if n > 0 {
		m.logger.Info("swept idle sessions", slog.Int("count", n))
	}
	return n, nil
}

func (m *Manager) update(ctx context.Context, id uuid.UUID, fn func(State, time.Time) (State, error)) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, err := m.store.Get(ctx, id)
	if err != nil {
		return State{}, err
	}
	next, err := fn(st, m.now())
	if err != nil {
		return State{}, err
	}
	if err := m.store.Put(ctx, next); err != nil {
		return State{}, fmt.Errorf("saving session: %w", err)
	}
	return next, nil
}
