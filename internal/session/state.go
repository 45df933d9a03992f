package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/layout"
)

// State is the immutable snapshot of one session.
type State struct {
	ID         uuid.UUID
	Cards      cards.Set
	Font       fonts.Font
	Generation uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Empty reports whether no card set is loaded.
func (s State) Empty() bool { return len(s.Cards) == 0 }

// Pages composes the current card set. The result is recomputed on every
// call.
func (s State) Pages() []layout.PagePair { return layout.Compose(s.Cards) }

// PageCount is the number of physical page sides the set prints on.
func (s State) PageCount() int { return layout.PageCount(len(s.Cards)) }

func (s State) clone() State {
	s.Cards = s.Cards.Clone()
	return s
}

func (s State) withCards(set cards.Set, now time.Time) State {
	s.Cards = set.Clone()
	s.UpdatedAt = now
	return s
}

func (s State) withFont(f fonts.Font, now time.Time) State {
	s.Font = f
	s.UpdatedAt = now
	return s
}

func (s State) nextGeneration(now time.Time) State {
	s.Generation++
	s.UpdatedAt = now
	return s
}
