package engine

import "math/rand/v2"

// Interleave riffles p: it cuts the pile at split and alternates one card from
// each half, starting with the first half, then appends whatever remains of
// the longer half. Order within each half is kept, as is each card's
// orientation.
//
// A split outside [1, len-1] is replaced by a uniformly random one drawn from
// rng. A nil rng uses the math/rand/v2 global source.
func Interleave(p *Pile, split int, rng *rand.Rand) error {
	n := p.Len()
	if n == 0 {
		return ErrNoDeck
	}
	if n < 2 {
		return nil
	}
	if split <= 0 || split >= n {
		split = intN(rng, n-1) + 1
	}

	src := p.cards()
	first, second := src[:split], src[split:]
	out := make([]Card, 0, n)
	for i := 0; i < len(first) || i < len(second); i++ {
		if i < len(first) {
			out = append(out, first[i])
		}
		if i < len(second) {
			out = append(out, second[i])
		}
	}
	p.replace(out)
	return nil
}

// RandomShuffle permutes p uniformly at random (Fisher-Yates).
func RandomShuffle(p *Pile, rng *rand.Rand) error {
	if p.Len() == 0 {
		return ErrNoDeck
	}
	cards := p.cards()
	swap := func(i, j int) { cards[i], cards[j] = cards[j], cards[i] }
	if rng == nil {
		rand.Shuffle(len(cards), swap)
	} else {
		rng.Shuffle(len(cards), swap)
	}
	return nil
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
