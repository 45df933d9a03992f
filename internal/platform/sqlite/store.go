// Package sqlite persists sessions in an embedded SQLite database so card
// sets survive a server restart.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/session"
	"github.com/youruser/flashcards/internal/util"
)

//go:embed migrations/*.sql
var migrations embed.FS

// timeLayout is fixed width so timestamps compare correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is a session.Store backed by SQLite.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ session.Store = (*Store)(nil)

// Open opens (creating if needed) the database at path and migrates it to
// the latest schema.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows one writer at a time.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, logger: logger.With(slog.String("component", "sqlite_store"))}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, s.db, dir)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	for _, r := range results {
		s.logger.Info("applied migration",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (session.State, error) {
	const q = `
SELECT cards, font_name, font_family, generation, created_at, updated_at
FROM sessions
WHERE id = ?;
`
	var (
		rawCards             string
		st                   session.State
		createdAt, updatedAt string
	)
	err := s.db.QueryRowContext(ctx, q, id.String()).Scan(
		&rawCards, &st.Font.Name, &st.Font.Family, &st.Generation, &createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return session.State{}, session.ErrNotFound
	}
	if err != nil {
		return session.State{}, fmt.Errorf("get session: %w", err)
	}

	st.ID = id
	if err := json.Unmarshal([]byte(rawCards), &st.Cards); err != nil {
		return session.State{}, fmt.Errorf("decode cards of session %s: %w", id, err)
	}
	if st.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return session.State{}, fmt.Errorf("parse created_at: %w", err)
	}
	if st.UpdatedAt, err = time.Parse(timeLayout, updatedAt); err != nil {
		return session.State{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return st, nil
}

func (s *Store) Put(ctx context.Context, st session.State) error {
	set := st.Cards
	if set == nil {
		set = cards.Set{}
	}
	raw, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("encode cards: %w", err)
	}
	const stmt = `
INSERT INTO sessions (id, cards, font_name, font_family, generation, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  cards = excluded.cards,
  font_name = excluded.font_name,
  font_family = excluded.font_family,
  generation = excluded.generation,
  updated_at = excluded.updated_at;
`
	_, err = s.db.ExecContext(ctx, stmt,
		st.ID.String(), string(raw), st.Font.Name, st.Font.Family, st.Generation,
		st.CreatedAt.UTC().Format(timeLayout), st.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?;`, id.String())
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n == 0 {
		return session.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteIdle(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE updated_at < ?;`, before.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}
	return int(n), nil
}
