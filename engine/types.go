package engine

import "fmt"

// Suit identifies one of the four suits. The order matches the default
// ordered deck: clubs, diamonds, hearts, spades.
type Suit uint8

const (
	SuitClubs    Suit = 0
	SuitDiamonds Suit = 1
	SuitHearts   Suit = 2
	SuitSpades   Suit = 3

	NumSuits = 4
)

// Rank is the card rank, 1 (Ace) through 13 (King). Rank 0 marks EmptyCard.
type Rank uint8

const (
	RankAce   Rank = 1
	RankTwo   Rank = 2
	RankThree Rank = 3
	RankFour  Rank = 4
	RankFive  Rank = 5
	RankSix   Rank = 6
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13

	NumRanks = 13
)

const (
	rankCodes = " A23456789TJQK"
	suitCodes = "CDHS"
)

// Card is a playing card. Rank and Suit are its identity; FaceUp is the only
// mutable part and is changed by the deal and by the reveal after a move.
type Card struct {
	Rank   Rank
	Suit   Suit
	FaceUp bool
}

// EmptyCard represents the absence of a card.
var EmptyCard = Card{}

// NewCard constructs a face-down Card from suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit}
}

// IsEmpty reports whether c is EmptyCard.
func (c Card) IsEmpty() bool { return c.Rank == 0 }

// Same reports whether c and o have the same identity, ignoring orientation.
func (c Card) Same(o Card) bool { return c.Rank == o.Rank && c.Suit == o.Suit }

// IsRed returns true for hearts and diamonds.
func (c Card) IsRed() bool { return c.Suit == SuitHearts || c.Suit == SuitDiamonds }

// Code returns the two-character deck-file code, e.g. "AC" or "TH".
func (c Card) Code() string {
	if c.IsEmpty() || c.Rank > RankKing || c.Suit >= NumSuits {
		return "??"
	}
	return string([]byte{rankCodes[c.Rank], suitCodes[c.Suit]})
}

// String implements fmt.Stringer. Face-down cards print as "[]".
func (c Card) String() string {
	if c.IsEmpty() {
		return "--"
	}
	if !c.FaceUp {
		return "[]"
	}
	return c.Code()
}

// RankFromCode maps a rank character to a Rank.
func RankFromCode(ch byte) (Rank, bool) {
	switch {
	case ch == 'A':
		return RankAce, true
	case ch >= '2' && ch <= '9':
		return Rank(ch - '0'), true
	case ch == 'T':
		return RankTen, true
	case ch == 'J':
		return RankJack, true
	case ch == 'Q':
		return RankQueen, true
	case ch == 'K':
		return RankKing, true
	}
	return 0, false
}

// SuitFromCode maps a suit character to a Suit.
func SuitFromCode(ch byte) (Suit, bool) {
	switch ch {
	case 'C':
		return SuitClubs, true
	case 'D':
		return SuitDiamonds, true
	case 'H':
		return SuitHearts, true
	case 'S':
		return SuitSpades, true
	}
	return 0, false
}

// ParseCard parses a two-character code such as "KS". The card is face down.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return EmptyCard, fmt.Errorf("card code %q: want 2 characters", code)
	}
	r, ok := RankFromCode(code[0])
	if !ok {
		return EmptyCard, fmt.Errorf("card code %q: unknown rank %q", code, code[0])
	}
	s, ok := SuitFromCode(code[1])
	if !ok {
		return EmptyCard, fmt.Errorf("card code %q: unknown suit %q", code, code[1])
	}
	return NewCard(s, r), nil
}

// String returns the suit name.
func (s Suit) String() string {
	switch s {
	case SuitClubs:
		return "clubs"
	case SuitDiamonds:
		return "diamonds"
	case SuitHearts:
		return "hearts"
	case SuitSpades:
		return "spades"
	}
	return "invalid"
}
