package engine

import "fmt"

// PileKind distinguishes the two kinds of pile a move can address.
type PileKind uint8

const (
	PileColumn PileKind = iota
	PileFoundation
)

// PileRef addresses a column or foundation by 0-based index.
type PileRef struct {
	Kind  PileKind
	Index int
}

func (r PileRef) String() string {
	if r.Kind == PileFoundation {
		return fmt.Sprintf("F%d", r.Index+1)
	}
	return fmt.Sprintf("C%d", r.Index+1)
}

func (r PileRef) valid() bool {
	switch r.Kind {
	case PileColumn:
		return r.Index >= 0 && r.Index < NumColumns
	case PileFoundation:
		return r.Index >= 0 && r.Index < NumFoundations
	}
	return false
}

// Move describes a card move. Card names the first card of the run to move
// and is EmptyCard when the move takes the exposed card of the source.
type Move struct {
	From PileRef
	To   PileRef
	Card Card
}

func (m Move) String() string {
	if m.Card.IsEmpty() {
		return m.From.String() + "->" + m.To.String()
	}
	return m.From.String() + ":" + m.Card.Code() + "->" + m.To.String()
}

// ApplyMove executes m. A rejected move returns an error and leaves every
// pile exactly as it was.
func (g *GameState) ApplyMove(m Move) error {
	if err := g.requirePhase(PhasePlay); err != nil {
		return err
	}
	if !m.From.valid() || !m.To.valid() {
		return fmt.Errorf("%w: %s", ErrBadMove, m)
	}

	switch {
	case m.From.Kind == PileFoundation:
		if m.To.Kind != PileColumn || !m.Card.IsEmpty() {
			return fmt.Errorf("%w: %s", ErrBadMove, m)
		}
		return g.foundationToColumn(m.From.Index, m.To.Index)
	case m.To.Kind == PileFoundation:
		return g.columnToFoundation(m.From.Index, m.Card, m.To.Index)
	default:
		if m.From.Index == m.To.Index {
			return fmt.Errorf("%w: %s", ErrBadMove, m)
		}
		return g.columnToColumn(m.From.Index, m.Card, m.To.Index)
	}
}

// faceUpMatch matches the face-up card with c's identity.
func faceUpMatch(c Card) func(Card) bool {
	return func(o Card) bool { return o.FaceUp && o.Same(c) }
}

// foundationToColumn moves the top of foundation f onto column dc.
func (g *GameState) foundationToColumn(f, dc int) error {
	found := &g.foundations[f]
	top := found.PeekFront()
	if top.IsEmpty() {
		return ErrFoundationEmpty
	}
	dest := &g.columns[dc]
	if !g.rules.CanPlaceOnColumn(dest.PeekBack(), top) {
		return fmt.Errorf("%w: %s onto %s", ErrBadMove, top.Code(), dest.PeekBack())
	}
	c, _ := found.PopFront()
	dest.Append(c)
	return nil
}

// columnToFoundation moves the exposed card of column sc onto foundation f.
// A named card must be that exposed card.
func (g *GameState) columnToFoundation(sc int, named Card, f int) error {
	src := &g.columns[sc]
	tail := src.PeekBack()
	if tail.IsEmpty() {
		return ErrEmptyColumn
	}
	if !named.IsEmpty() {
		i := src.IndexFunc(faceUpMatch(named))
		if i < 0 {
			return fmt.Errorf("%w: %s in C%d", ErrCardNotFound, named.Code(), sc+1)
		}
		if i != src.Len()-1 {
			return fmt.Errorf("%w: only the exposed card can go to a foundation", ErrBadMove)
		}
	}
	if !tail.FaceUp {
		return ErrFaceDown
	}
	found := &g.foundations[f]
	top := found.PeekFront()
	if !CanPlaceOnFoundation(top, tail) {
		if top.IsEmpty() {
			return ErrNeedAce
		}
		return fmt.Errorf("%w: %s onto %s", ErrBadFoundation, tail.Code(), top.Code())
	}
	c, _ := src.PopBack()
	found.PushFront(c)
	src.RevealBack()
	return nil
}

// columnToColumn moves a run from column sc onto column dc. The run starts at
// the first face-up card (from the head) matching named, or at the exposed
// card when named is EmptyCard.
func (g *GameState) columnToColumn(sc int, named Card, dc int) error {
	src := &g.columns[sc]
	if named.IsEmpty() {
		named = src.PeekBack()
		if named.IsEmpty() {
			return ErrEmptyColumn
		}
	}
	match := faceUpMatch(named)
	i := src.IndexFunc(match)
	if i < 0 {
		return fmt.Errorf("%w: %s in C%d", ErrCardNotFound, named.Code(), sc+1)
	}
	lead, _ := src.At(i)
	dest := &g.columns[dc]
	if !g.rules.CanPlaceOnColumn(dest.PeekBack(), lead) {
		return fmt.Errorf("%w: %s onto %s", ErrBadMove, lead.Code(), dest.PeekBack())
	}
	dest.SpliceSuffixFrom(src, match)
	src.RevealBack()
	return nil
}
