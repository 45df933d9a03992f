package layout

import "github.com/youruser/flashcards/internal/cards"

// Compose partitions set into chunks of Capacity cards, pads the last chunk
// with blanks and returns one PagePair per chunk in set order. Card i ends
// up on pair i/Capacity, front slot i%Capacity. An empty set yields no
// pairs.
func Compose(set cards.Set) []PagePair {
	pairs := make([]PagePair, 0, PairCount(len(set)))
	for start := 0; start < len(set); start += Capacity {
		end := start + Capacity
		if end > len(set) {
			end = len(set)
		}
		front := frontPage(set[start:end])
		pairs = append(pairs, PagePair{
			Index: len(pairs),
			Front: front,
			Back:  Mirror(front),
		})
	}
	return pairs
}

func frontPage(chunk cards.Set) Page {
	p := Page{Side: Front}
	for k := range p.Slots {
		if k < len(chunk) {
			p.Slots[k] = CardSlot(chunk[k])
		} else {
			p.Slots[k] = BlankSlot()
		}
	}
	return p
}

// Mirror returns the back page for front: within every row the two columns
// trade places. Blank slots are moved like any other slot.
func Mirror(front Page) Page {
	back := Page{Side: Back}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Columns; c++ {
			back.Slots[r*Columns+c] = front.Slots[r*Columns+(Columns-1-c)]
		}
	}
	return back
}

// PairCount is the number of page pairs needed for n cards.
func PairCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + Capacity - 1) / Capacity
}

// PageCount is the number of physical page sides needed for n cards.
func PageCount(n int) int {
	return 2 * PairCount(n)
}

// Stream flattens pairs into print order: front, back, front, back, ...
// The print pipeline cannot reorder pages, so this order is final.
func Stream(pairs []PagePair) []Page {
	out := make([]Page, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p.Front, p.Back)
	}
	return out
}
