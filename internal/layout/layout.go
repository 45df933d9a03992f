// Package layout maps an ordered card set onto duplex A4 page grids.
//
// Every sheet holds a 2x2 grid numbered row-major:
//
//	slot 0  slot 1
//	slot 2  slot 3
//
// A long-edge duplex print flips the sheet about its vertical axis, so a
// cell printed at front row r, column c lands behind back row r, column
// 1-c. Back pages therefore swap the two columns of every row; with that
// permutation applied, each definition sits directly behind its term once
// the sheet is cut into quarters.
package layout

import "github.com/youruser/flashcards/internal/cards"

const (
	// Columns and Rows describe the physical grid of one sheet side.
	Columns = 2
	Rows    = 2
	// Capacity is the number of slots on every page.
	Capacity = Columns * Rows
)

// Side tells which face of the sheet a page is printed on.
type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// Slot is one grid cell. A blank slot pads an incomplete page; it has no
// card, no id and no text.
type Slot struct {
	card  cards.Card
	blank bool
}

// CardSlot wraps c in a filled slot.
func CardSlot(c cards.Card) Slot { return Slot{card: c} }

// BlankSlot returns a padding slot.
func BlankSlot() Slot { return Slot{blank: true} }

// Blank reports whether the slot is padding.
func (s Slot) Blank() bool { return s.blank }

// Card returns the card in the slot and false for a blank slot.
func (s Slot) Card() (cards.Card, bool) {
	if s.blank {
		return cards.Card{}, false
	}
	return s.card, true
}

// Key returns the rendering key of the slot; blank slots have none.
func (s Slot) Key() string {
	if s.blank {
		return ""
	}
	return s.card.ID
}

// Text returns what the slot shows on the given side: the term on the
// front, the definition on the back, nothing when blank.
func (s Slot) Text(side Side) string {
	if s.blank {
		return ""
	}
	if side == Back {
		return s.card.Definition
	}
	return s.card.Term
}

// Page is one side of one physical sheet. It always has Capacity slots.
type Page struct {
	Side  Side
	Slots [Capacity]Slot
}

// Cell returns the slot at row r, column c.
func (p Page) Cell(r, c int) Slot { return p.Slots[r*Columns+c] }

// Filled counts the non-blank slots.
func (p Page) Filled() int {
	n := 0
	for _, s := range p.Slots {
		if !s.blank {
			n++
		}
	}
	return n
}

// PagePair is the front and back page built from one chunk of cards.
type PagePair struct {
	Index int
	Front Page
	Back  Page
}
