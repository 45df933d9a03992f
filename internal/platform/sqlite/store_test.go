package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/session"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "sessions.db")
	s, err := Open(context.Background(), path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func sampleState() session.State {
	now := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	return session.State{
		ID: uuid.New(),
		Cards: cards.Set{
			{ID: "card-1", Term: "Hond", Definition: "Een trouw huisdier"},
			{ID: "card-2", Term: "", Definition: "Muis"},
		},
		Font:       fonts.Font{Name: "Lato", Family: "'Lato', sans-serif"},
		Generation: 3,
		CreatedAt:  now,
		UpdatedAt:  now.Add(time.Minute),
	}
}

func TestStore_PutGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := openTestStore(t)
	st := sampleState()

	require.NoError(t, s.Put(ctx, st))
	got, err := s.Get(ctx, st.ID)
	require.NoError(t, err)

	assert.Equal(t, st.Cards, got.Cards)
	assert.Equal(t, st.Font, got.Font)
	assert.Equal(t, st.Generation, got.Generation)
	assert.True(t, st.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, st.UpdatedAt.Equal(got.UpdatedAt))
}

func TestStore_PutReplaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := openTestStore(t)
	st := sampleState()
	require.NoError(t, s.Put(ctx, st))

	st.Cards = nil
	st.Generation++
	require.NoError(t, s.Put(ctx, st))

	got, err := s.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Cards)
	assert.Equal(t, uint64(4), got.Generation)
}

func TestStore_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := openTestStore(t)

	_, err := s.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, uuid.New()), session.ErrNotFound)
}

func TestStore_DeleteIdle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := openTestStore(t)

	old := sampleState()
	fresh := sampleState()
	fresh.UpdatedAt = old.UpdatedAt.Add(90 * time.Minute)
	require.NoError(t, s.Put(ctx, old))
	require.NoError(t, s.Put(ctx, fresh))

	n, err := s.DeleteIdle(ctx, old.UpdatedAt.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(ctx, old.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	_, err = s.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, path := openTestStore(t)
	st := sampleState()
	require.NoError(t, s.Put(ctx, st))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, st.Cards, got.Cards)
}

func TestStore_WithManager(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s, _ := openTestStore(t)
	m := session.NewManager(s, fonts.Builtin(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	st, err := m.Create(ctx)
	require.NoError(t, err)
	_, err = m.Load(ctx, st.ID, func(context.Context) (cards.Set, error) {
		return cards.Set{{ID: "card-0", Term: "a", Definition: "b"}}, nil
	})
	require.NoError(t, err)

	reset, err := m.Reset(ctx, st.ID)
	require.NoError(t, err)
	assert.True(t, reset.Empty())
	assert.Equal(t, uint64(2), reset.Generation)
}
