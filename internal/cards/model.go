package cards

import "strings"

// Card is one term/definition pair destined for a single physical flashcard.
// ID is derived from the source row and is only used as a rendering key.
type Card struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Valid reports whether the card carries at least one non-blank side.
func (c Card) Valid() bool {
	return strings.TrimSpace(c.Term) != "" || strings.TrimSpace(c.Definition) != ""
}

// Set is an ordered collection of cards. Order is source row order and
// decides page placement.
type Set []Card

// Len returns the number of cards in the set.
func (s Set) Len() int { return len(s) }

// Head returns up to n cards from the start of the set.
func (s Set) Head(n int) Set {
	if n > len(s) {
		n = len(s)
	}
	if n < 0 {
		n = 0
	}
	out := make(Set, n)
	copy(out, s[:n])
	return out
}

// Clone returns a copy that shares no backing array with s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}
