// internal/game/view.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/yukon/engine"
)

// CardView is one card as a front end may show it. Face-down cards carry no
// rank or suit.
type CardView struct {
	FaceUp bool   `json:"faceUp"`
	Code   string `json:"code,omitempty"` // "AH", "TD", ... when face up.
	Red    bool   `json:"red,omitempty"`
}

// FoundationView is the visible state of one foundation.
type FoundationView struct {
	Top    *CardView `json:"top,omitempty"` // Nil when empty.
	Height int       `json:"height"`
}

// BoardView is a point-in-time snapshot of a session.
type BoardView struct {
	SessionID   uuid.UUID                             `json:"sessionId"`
	Phase       string                                `json:"phase"`
	Columns     [engine.NumColumns][]CardView         `json:"columns"` // Buried-most card first.
	Foundations [engine.NumFoundations]FoundationView `json:"foundations"`
	DeckSize    int                                   `json:"deckSize"`
	LastCommand string                                `json:"lastCommand"`
	Message     string                                `json:"message"`
	Won         bool                                  `json:"won"`

	// Deck is the deck listing, populated only when the last command asked to
	// show it (SW during Startup). Cards are shown face up.
	Deck []CardView `json:"deck,omitempty"`
}

// ShowDeck reports whether the front end should list the deck.
func (v BoardView) ShowDeck() bool { return v.Message == engine.MessageShowDeck }

func cardView(c engine.Card) CardView {
	if !c.FaceUp {
		return CardView{}
	}
	return CardView{FaceUp: true, Code: c.Code(), Red: c.IsRed()}
}

// viewLocked builds the snapshot. The caller must hold s.Mu.
func (s *Session) viewLocked() BoardView {
	g := s.engine
	v := BoardView{
		SessionID:   s.ID,
		Phase:       g.Phase().String(),
		DeckSize:    g.DeckSize(),
		LastCommand: g.LastCommand(),
		Message:     g.Message(),
		Won:         g.Won(),
	}

	for col := 0; col < engine.NumColumns; col++ {
		h := g.ColumnHeight(col)
		cards := make([]CardView, 0, h)
		for d := 0; d < h; d++ {
			c, _ := g.ColumnCard(col, d)
			cards = append(cards, cardView(c))
		}
		v.Columns[col] = cards
	}

	for f := 0; f < engine.NumFoundations; f++ {
		fv := FoundationView{Height: g.FoundationHeight(f)}
		if top, ok := g.FoundationTop(f); ok {
			top.FaceUp = true
			cv := cardView(top)
			fv.Top = &cv
		}
		v.Foundations[f] = fv
	}

	if v.ShowDeck() {
		deck := g.DeckCards()
		v.Deck = make([]CardView, len(deck))
		for i, c := range deck {
			c.FaceUp = true
			v.Deck[i] = cardView(c)
		}
	}
	return v
}
