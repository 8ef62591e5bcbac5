package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DeckSize is the number of cards in a complete deck.
const DeckSize = NumSuits * NumRanks

// NewOrderedDeck returns the 52 cards face down, clubs to spades, ace to king.
func NewOrderedDeck() Pile {
	cards := make([]Card, 0, DeckSize)
	for s := Suit(0); s < NumSuits; s++ {
		for r := RankAce; r <= RankKing; r++ {
			cards = append(cards, NewCard(s, r))
		}
	}
	return Pile{buf: cards}
}

// DecodeDeck reads a deck file: one two-character card code per line, blank
// lines skipped. Unknown codes and duplicates fail with ErrBadDeck; anything
// other than exactly 52 cards fails with ErrDeckSize. Cards come back face
// down.
func DecodeDeck(r io.Reader) (Pile, error) {
	var (
		seen  [NumSuits][NumRanks + 1]bool
		cards = make([]Card, 0, DeckSize)
		line  int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		c, err := ParseCard(text)
		if err != nil {
			return Pile{}, fmt.Errorf("line %d: %w: %v", line, ErrBadDeck, err)
		}
		if seen[c.Suit][c.Rank] {
			return Pile{}, fmt.Errorf("line %d: %w: duplicate %s", line, ErrBadDeck, c.Code())
		}
		seen[c.Suit][c.Rank] = true
		cards = append(cards, c)
	}
	if err := sc.Err(); err != nil {
		return Pile{}, fmt.Errorf("read deck: %w", err)
	}
	if len(cards) != DeckSize {
		return Pile{}, fmt.Errorf("%w: got %d cards, want %d", ErrDeckSize, len(cards), DeckSize)
	}
	return Pile{buf: cards}, nil
}

// EncodeDeck writes p head to tail, one code per line.
func EncodeDeck(w io.Writer, p *Pile) error {
	bw := bufio.NewWriter(w)
	for _, c := range p.cards() {
		if _, err := bw.WriteString(c.Code() + "\n"); err != nil {
			return fmt.Errorf("write deck: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write deck: %w", err)
	}
	return nil
}

// LoadDeckFile opens path and decodes it with DecodeDeck.
func LoadDeckFile(path string) (Pile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Pile{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Pile{}, fmt.Errorf("%w: %v", ErrCantOpen, err)
	}
	defer f.Close()
	return DecodeDeck(f)
}

// SaveDeckFile writes p to path, replacing any existing file.
func SaveDeckFile(path string, p *Pile) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCantOpen, err)
	}
	if err := EncodeDeck(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrCantOpen, err)
	}
	return nil
}
