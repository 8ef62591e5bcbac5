package engine

// Pile is an ordered, exclusively owned sequence of cards. It is a slice with
// a head offset so both ends support O(1) insertion and removal: Append and
// PopFront never shift elements, and PushFront only reallocates when the
// reserved front space is used up.
//
// Index 0 is the head. Columns grow at the tail (the tail is the exposed card),
// foundations grow at the head (the head is the top), and the deck is dealt
// from the head.
type Pile struct {
	buf  []Card
	head int
}

// Len returns the number of cards in the pile.
func (p *Pile) Len() int { return len(p.buf) - p.head }

func (p *Pile) cards() []Card { return p.buf[p.head:] }

// Append adds c at the tail.
func (p *Pile) Append(c Card) {
	p.buf = append(p.buf, c)
}

// PushFront adds c at the head.
func (p *Pile) PushFront(c Card) {
	if p.head == 0 {
		n := p.Len()
		room := n
		if room < 4 {
			room = 4
		}
		buf := make([]Card, room+n, room+2*n+4)
		copy(buf[room:], p.cards())
		p.buf = buf
		p.head = room
	}
	p.head--
	p.buf[p.head] = c
}

// PopFront removes and returns the head card. ok is false on an empty pile.
func (p *Pile) PopFront() (c Card, ok bool) {
	if p.Len() == 0 {
		return EmptyCard, false
	}
	c = p.buf[p.head]
	p.buf[p.head] = EmptyCard
	p.head++
	if p.head == len(p.buf) {
		p.buf = p.buf[:0]
		p.head = 0
	}
	return c, true
}

// PopBack removes and returns the tail card. ok is false on an empty pile.
func (p *Pile) PopBack() (c Card, ok bool) {
	if p.Len() == 0 {
		return EmptyCard, false
	}
	last := len(p.buf) - 1
	c = p.buf[last]
	p.buf[last] = EmptyCard
	p.buf = p.buf[:last]
	if p.Len() == 0 {
		p.buf = p.buf[:0]
		p.head = 0
	}
	return c, true
}

// PeekFront returns the head card, or EmptyCard.
func (p *Pile) PeekFront() Card {
	if p.Len() == 0 {
		return EmptyCard
	}
	return p.buf[p.head]
}

// PeekBack returns the tail card, or EmptyCard.
func (p *Pile) PeekBack() Card {
	if p.Len() == 0 {
		return EmptyCard
	}
	return p.buf[len(p.buf)-1]
}

// At returns the card at depth i counted from the head.
func (p *Pile) At(i int) (Card, bool) {
	if i < 0 || i >= p.Len() {
		return EmptyCard, false
	}
	return p.buf[p.head+i], true
}

// IndexFunc returns the depth of the first card from the head satisfying
// match, or -1.
func (p *Pile) IndexFunc(match func(Card) bool) int {
	for i, c := range p.cards() {
		if match(c) {
			return i
		}
	}
	return -1
}

// SpliceSuffixFrom detaches the run of src that starts at the first card
// (from the head) satisfying match and ends at the tail, and appends it to p
// in order. It reports whether a match was found; on false neither pile is
// changed. Splicing a pile onto itself is refused.
func (p *Pile) SpliceSuffixFrom(src *Pile, match func(Card) bool) bool {
	if p == src {
		return false
	}
	i := src.IndexFunc(match)
	if i < 0 {
		return false
	}
	cut := src.head + i
	p.buf = append(p.buf, src.buf[cut:]...)
	clear(src.buf[cut:])
	src.buf = src.buf[:cut]
	if src.Len() == 0 {
		src.buf = src.buf[:0]
		src.head = 0
	}
	return true
}

// RevealBack turns the tail card face up. No-op on an empty pile.
func (p *Pile) RevealBack() {
	if p.Len() == 0 {
		return
	}
	p.buf[len(p.buf)-1].FaceUp = true
}

// Cards returns a copy of the pile from head to tail.
func (p *Pile) Cards() []Card {
	out := make([]Card, p.Len())
	copy(out, p.cards())
	return out
}

// CloneFaceDown returns a deep copy of the pile with every card face down.
func (p *Pile) CloneFaceDown() Pile {
	out := p.Cards()
	for i := range out {
		out[i].FaceUp = false
	}
	return Pile{buf: out}
}

// Reset drops every card.
func (p *Pile) Reset() {
	p.buf = nil
	p.head = 0
}

// replace swaps the contents for cards, taking ownership of the slice.
func (p *Pile) replace(cards []Card) {
	p.buf = cards
	p.head = 0
}

// PileOf builds a pile holding cards in order. The slice is copied.
func PileOf(cards ...Card) Pile {
	buf := make([]Card, len(cards))
	copy(buf, cards)
	return Pile{buf: buf}
}
