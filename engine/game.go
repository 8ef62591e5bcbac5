// Package engine implements the rules of Yukon solitaire.
//
// A GameState owns the deck, the seven tableau columns and the four
// foundations. Front ends drive it through Execute, one textual command at a
// time, and draw it through the read-only query methods. The engine never
// prints, logs or exits the process.
package engine

import (
	"fmt"
	"math/rand/v2"
)

const (
	NumColumns     = 7
	NumFoundations = 4
)

// Phase is the coarse game state.
type Phase uint8

const (
	PhaseStartup Phase = iota // deck handling: LD, SW, SI, SR, SD, P, QQ
	PhasePlay                 // dealt: moves and Q
)

func (p Phase) String() string {
	switch p {
	case PhaseStartup:
		return "STARTUP"
	case PhasePlay:
		return "PLAY"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Deal layout: column i receives columnSize[i] cards of which the first
// faceDownThreshold[i] are face down.
var (
	columnSize        = [NumColumns]int{1, 6, 7, 8, 9, 10, 11}
	faceDownThreshold = [NumColumns]int{0, 1, 2, 3, 4, 5, 6}
)

// dealRows is the longest column in the layout.
const dealRows = 11

// GameState holds the complete state of one Yukon game.
type GameState struct {
	phase       Phase
	deck        Pile
	columns     [NumColumns]Pile
	foundations [NumFoundations]Pile
	lastCommand string
	message     string

	// backup is a face-down copy of the deck taken right before the first
	// deal. Q moves it back into the deck.
	backup *Pile

	rules HouseRules
	rng   *rand.Rand
}

// ---------------------------------------------------------------------------
// NewGame
// ---------------------------------------------------------------------------

// NewGame returns an empty game in the Startup phase. The seed drives the
// random split of SI and the SR shuffle.
func NewGame(seed uint64, rules HouseRules) *GameState {
	return &GameState{
		phase: PhaseStartup,
		rules: rules,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (g *GameState) requirePhase(p Phase) error {
	if g.phase != p {
		return fmt.Errorf("%w: not available in %s", ErrUnknown, g.phase)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Startup operations
// ---------------------------------------------------------------------------

// LoadDeck replaces the deck. An empty path loads the ordered 52-card deck.
// The current deck is discarded before the file is read, so a failed load
// leaves the game without a deck.
func (g *GameState) LoadDeck(path string) error {
	if err := g.requirePhase(PhaseStartup); err != nil {
		return err
	}
	g.deck.Reset()
	if path == "" {
		g.deck = NewOrderedDeck()
		return nil
	}
	p, err := LoadDeckFile(path)
	if err != nil {
		return err
	}
	g.deck = p
	return nil
}

// Interleave riffles the deck at split (see Interleave).
func (g *GameState) Interleave(split int) error {
	if err := g.requirePhase(PhaseStartup); err != nil {
		return err
	}
	return Interleave(&g.deck, split, g.rng)
}

// RandomShuffle shuffles the deck uniformly.
func (g *GameState) RandomShuffle() error {
	if err := g.requirePhase(PhaseStartup); err != nil {
		return err
	}
	return RandomShuffle(&g.deck, g.rng)
}

// SaveDeck writes the deck to path, or to the default deck path when empty.
func (g *GameState) SaveDeck(path string) error {
	if err := g.requirePhase(PhaseStartup); err != nil {
		return err
	}
	if g.deck.Len() == 0 {
		return ErrNoDeck
	}
	return SaveDeckFile(g.rules.deckPath(path), &g.deck)
}

// Deal lays the deck out on the tableau and enters Play. The deck must hold
// a full layout; otherwise nothing changes. The pre-deal deck is snapshotted
// unless a snapshot already exists.
func (g *GameState) Deal() error {
	if err := g.requirePhase(PhaseStartup); err != nil {
		return err
	}
	need := 0
	for _, n := range columnSize {
		need += n
	}
	if g.deck.Len() < need {
		return fmt.Errorf("%w: deck has %d cards, layout needs %d", ErrNotEnough, g.deck.Len(), need)
	}

	if g.backup == nil {
		snap := g.deck.CloneFaceDown()
		g.backup = &snap
	}

	for row := 0; row < dealRows; row++ {
		for col := 0; col < NumColumns; col++ {
			if row >= columnSize[col] {
				continue
			}
			c, _ := g.deck.PopFront()
			c.FaceUp = row >= faceDownThreshold[col]
			g.columns[col].Append(c)
		}
	}
	g.phase = PhasePlay
	return nil
}

// ---------------------------------------------------------------------------
// Leaving Play
// ---------------------------------------------------------------------------

// Quit abandons the deal: the tableau and foundations are cleared and the
// pre-deal deck is restored from the snapshot, which is consumed.
func (g *GameState) Quit() error {
	if err := g.requirePhase(PhasePlay); err != nil {
		return err
	}
	for i := range g.columns {
		g.columns[i].Reset()
	}
	for i := range g.foundations {
		g.foundations[i].Reset()
	}
	g.deck.Reset()
	if g.backup != nil {
		g.deck = *g.backup
		g.backup = nil
	}
	g.phase = PhaseStartup
	return nil
}

// quitApp accepts QQ. It only ends the session: Startup never holds a
// snapshot, so there is nothing to drop.
func (g *GameState) quitApp() error {
	return g.requirePhase(PhaseStartup)
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

// Phase returns the current phase.
func (g *GameState) Phase() Phase { return g.phase }

// LastCommand returns the text of the last command passed to Execute.
func (g *GameState) LastCommand() string { return g.lastCommand }

// Message returns the result of the last command.
func (g *GameState) Message() string { return g.message }

// ColumnHeight returns the number of cards in column col (0-based).
func (g *GameState) ColumnHeight(col int) int {
	if col < 0 || col >= NumColumns {
		return 0
	}
	return g.columns[col].Len()
}

// ColumnCard returns the card at depth in column col. Depth 0 is the
// buried-most card (the first one dealt); ColumnHeight(col)-1 is the exposed
// card at the tail.
func (g *GameState) ColumnCard(col, depth int) (Card, bool) {
	if col < 0 || col >= NumColumns {
		return EmptyCard, false
	}
	return g.columns[col].At(depth)
}

// FoundationTop returns the top card of foundation f (0-based).
func (g *GameState) FoundationTop(f int) (Card, bool) {
	if f < 0 || f >= NumFoundations || g.foundations[f].Len() == 0 {
		return EmptyCard, false
	}
	return g.foundations[f].PeekFront(), true
}

// FoundationHeight returns the number of cards on foundation f.
func (g *GameState) FoundationHeight(f int) int {
	if f < 0 || f >= NumFoundations {
		return 0
	}
	return g.foundations[f].Len()
}

// DeckSize returns the number of cards left in the deck.
func (g *GameState) DeckSize() int { return g.deck.Len() }

// DeckCards returns a copy of the deck from front to back.
func (g *GameState) DeckCards() []Card { return g.deck.Cards() }

// HasBackup reports whether a pre-deal snapshot is held.
func (g *GameState) HasBackup() bool { return g.backup != nil }

// Won reports whether every foundation holds a full suit.
func (g *GameState) Won() bool {
	for i := range g.foundations {
		if g.foundations[i].Len() != NumRanks {
			return false
		}
	}
	return true
}
