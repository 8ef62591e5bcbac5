package engine

import "testing"

func card(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

func up(code string) Card {
	c := card(code)
	c.FaceUp = true
	return c
}

func codes(p *Pile) string {
	s := ""
	for i, c := range p.Cards() {
		if i > 0 {
			s += " "
		}
		s += c.Code()
	}
	return s
}

func TestPileAppendAndPop(t *testing.T) {
	var p Pile
	p.Append(card("AC"))
	p.Append(card("2C"))
	p.Append(card("3C"))

	if p.Len() != 3 {
		t.Fatalf("Len = %d, want 3", p.Len())
	}
	if p.PeekFront().Code() != "AC" || p.PeekBack().Code() != "3C" {
		t.Fatalf("front/back = %s/%s, want AC/3C", p.PeekFront().Code(), p.PeekBack().Code())
	}

	c, ok := p.PopFront()
	if !ok || c.Code() != "AC" {
		t.Fatalf("PopFront = %v,%v, want AC,true", c, ok)
	}
	c, ok = p.PopBack()
	if !ok || c.Code() != "3C" {
		t.Fatalf("PopBack = %v,%v, want 3C,true", c, ok)
	}
	if codes(&p) != "2C" {
		t.Errorf("remaining = %q, want 2C", codes(&p))
	}
}

func TestPileEmpty(t *testing.T) {
	var p Pile
	if _, ok := p.PopFront(); ok {
		t.Error("PopFront on empty pile reported ok")
	}
	if _, ok := p.PopBack(); ok {
		t.Error("PopBack on empty pile reported ok")
	}
	if !p.PeekFront().IsEmpty() || !p.PeekBack().IsEmpty() {
		t.Error("peeks on empty pile should return EmptyCard")
	}
	if _, ok := p.At(0); ok {
		t.Error("At(0) on empty pile reported ok")
	}
	p.RevealBack() // must not panic
}

// TestPilePushFrontGrows pushes enough cards to force several reallocations
// and checks the order survives.
func TestPilePushFrontGrows(t *testing.T) {
	var p Pile
	deck := NewOrderedDeck()
	for _, c := range deck.Cards() {
		p.PushFront(c)
	}
	if p.Len() != DeckSize {
		t.Fatalf("Len = %d, want %d", p.Len(), DeckSize)
	}
	if p.PeekFront().Code() != "KS" || p.PeekBack().Code() != "AC" {
		t.Errorf("front/back = %s/%s, want KS/AC", p.PeekFront().Code(), p.PeekBack().Code())
	}
	for i := 0; i < DeckSize; i++ {
		c, _ := p.PopFront()
		want, _ := deck.At(DeckSize - 1 - i)
		if c != want {
			t.Fatalf("pop %d = %s, want %s", i, c.Code(), want.Code())
		}
	}
}

func TestPileMixedEnds(t *testing.T) {
	var p Pile
	p.Append(card("5H"))
	p.PushFront(card("4H"))
	p.Append(card("6H"))
	p.PushFront(card("3H"))
	p.PopFront()
	p.PushFront(card("2H"))
	if got := codes(&p); got != "2H 4H 5H 6H" {
		t.Errorf("pile = %q, want %q", got, "2H 4H 5H 6H")
	}
}

func TestPileSpliceSuffixFrom(t *testing.T) {
	src := PileOf(card("KS"), up("QH"), up("JC"), up("TD"))
	var dst Pile
	dst.Append(up("KD"))

	ok := dst.SpliceSuffixFrom(&src, func(c Card) bool { return c.Same(card("QH")) })
	if !ok {
		t.Fatal("SpliceSuffixFrom found no match")
	}
	if got := codes(&src); got != "KS" {
		t.Errorf("src = %q, want KS", got)
	}
	if got := codes(&dst); got != "KD QH JC TD" {
		t.Errorf("dst = %q, want %q", got, "KD QH JC TD")
	}
}

func TestPileSpliceSuffixNoMatch(t *testing.T) {
	src := PileOf(card("KS"), card("QH"))
	dst := PileOf(card("AC"))
	if dst.SpliceSuffixFrom(&src, func(c Card) bool { return c.Rank == RankTwo }) {
		t.Fatal("SpliceSuffixFrom reported a match")
	}
	if codes(&src) != "KS QH" || codes(&dst) != "AC" {
		t.Errorf("piles changed: src=%q dst=%q", codes(&src), codes(&dst))
	}
}

func TestPileSpliceWholePileAfterPops(t *testing.T) {
	src := PileOf(card("AC"), card("2C"), card("3C"))
	src.PopFront()
	var dst Pile
	if !dst.SpliceSuffixFrom(&src, func(Card) bool { return true }) {
		t.Fatal("SpliceSuffixFrom found no match")
	}
	if src.Len() != 0 {
		t.Errorf("src.Len = %d, want 0", src.Len())
	}
	if codes(&dst) != "2C 3C" {
		t.Errorf("dst = %q, want %q", codes(&dst), "2C 3C")
	}
	src.Append(card("4C"))
	if codes(&src) != "4C" {
		t.Errorf("src after reuse = %q, want 4C", codes(&src))
	}
}

func TestPileSpliceOntoSelfRefused(t *testing.T) {
	p := PileOf(card("AC"), card("2C"))
	if p.SpliceSuffixFrom(&p, func(Card) bool { return true }) {
		t.Error("splicing a pile onto itself should be refused")
	}
	if codes(&p) != "AC 2C" {
		t.Errorf("pile changed: %q", codes(&p))
	}
}

func TestPileCloneFaceDownIsDeep(t *testing.T) {
	p := PileOf(up("AC"), up("2C"))
	clone := p.CloneFaceDown()
	for _, c := range clone.Cards() {
		if c.FaceUp {
			t.Errorf("clone card %s is face up", c.Code())
		}
	}
	clone.PopFront()
	if p.Len() != 2 {
		t.Errorf("original Len = %d after popping clone, want 2", p.Len())
	}
	if c, _ := p.At(0); !c.FaceUp {
		t.Error("cloning changed the original's orientation")
	}
}

func TestPileCardsIsCopy(t *testing.T) {
	p := PileOf(card("AC"))
	cs := p.Cards()
	cs[0].FaceUp = true
	if p.PeekFront().FaceUp {
		t.Error("mutating Cards() result changed the pile")
	}
}

func TestPileRevealBack(t *testing.T) {
	p := PileOf(card("AC"), card("2C"))
	p.RevealBack()
	if c, _ := p.At(0); c.FaceUp {
		t.Error("RevealBack flipped the head")
	}
	if !p.PeekBack().FaceUp {
		t.Error("RevealBack did not flip the tail")
	}
}
