package api

import (
	"time"

	"github.com/youruser/flashcards/internal/cards"
	"github.com/youruser/flashcards/internal/fonts"
	"github.com/youruser/flashcards/internal/layout"
	"github.com/youruser/flashcards/internal/session"
)

// PreviewCards is how many cards a session summary shows.
const PreviewCards = 4

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// SessionResponse summarises a session for the preview screen.
type SessionResponse struct {
	ID        string       `json:"id"`
	CardCount int          `json:"card_count"`
	PageCount int          `json:"page_count"`
	Font      fonts.Font   `json:"font"`
	Preview   []cards.Card `json:"preview"`
	Remaining int          `json:"remaining"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// FontRequest selects a typeface.
type FontRequest struct {
	Font string `json:"font" binding:"required"`
}

// LayoutResponse is the composed page grid of a session.
type LayoutResponse struct {
	PageCount int                `json:"page_count"`
	Pairs     []PagePairResponse `json:"pairs"`
}

// PagePairResponse is one front/back pair.
type PagePairResponse struct {
	Index int          `json:"index"`
	Front PageResponse `json:"front"`
	Back  PageResponse `json:"back"`
}

// PageResponse is one page side.
type PageResponse struct {
	Side  string         `json:"side"`
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse is one grid cell. Blank cells carry no id and no text.
type SlotResponse struct {
	Slot   int    `json:"slot"`
	Blank  bool   `json:"blank"`
	CardID string `json:"card_id,omitempty"`
	Text   string `json:"text,omitempty"`
}

func sessionToResponse(st session.State) SessionResponse {
	preview := st.Cards.Head(PreviewCards)
	return SessionResponse{
		ID:        st.ID.String(),
		CardCount: len(st.Cards),
		PageCount: st.PageCount(),
		Font:      st.Font,
		Preview:   preview,
		Remaining: len(st.Cards) - len(preview),
		UpdatedAt: st.UpdatedAt,
	}
}

func layoutToResponse(pairs []layout.PagePair) LayoutResponse {
	out := LayoutResponse{
		PageCount: 2 * len(pairs),
		Pairs:     make([]PagePairResponse, 0, len(pairs)),
	}
	for _, p := range pairs {
		out.Pairs = append(out.Pairs, PagePairResponse{
			Index: p.Index,
			Front: pageToResponse(p.Front),
			Back:  pageToResponse(p.Back),
		})
	}
	return out
}

func pageToResponse(p layout.Page) PageResponse {
	out := PageResponse{Side: p.Side.String(), Slots: make([]SlotResponse, 0, layout.Capacity)}
	for i, s := range p.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Slot:   i,
			Blank:  s.Blank(),
			CardID: s.Key(),
			Text:   s.Text(p.Side),
		})
	}
	return out
}
