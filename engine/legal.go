package engine

// CanPlaceOnColumn reports whether src may land on a column whose exposed
// tail is dest (EmptyCard for an empty column). An empty column takes only a
// King. Otherwise dest must be one rank higher than src and of a different
// suit; colour is not checked here, see HouseRules.CanPlaceOnColumn.
func CanPlaceOnColumn(dest, src Card) bool {
	if dest.IsEmpty() {
		return src.Rank == RankKing
	}
	if dest.Suit == src.Suit {
		return false
	}
	return dest.Rank == src.Rank+1
}

// CanPlaceOnFoundation reports whether src may go on a foundation whose top
// is dest (EmptyCard for an empty foundation): an Ace first, then the next
// rank of the same suit.
func CanPlaceOnFoundation(dest, src Card) bool {
	if dest.IsEmpty() {
		return src.Rank == RankAce
	}
	return dest.Suit == src.Suit && src.Rank == dest.Rank+1
}

// CanPlaceOnColumn applies the column rule, adding red/black alternation when
// StrictColors is set.
func (r *HouseRules) CanPlaceOnColumn(dest, src Card) bool {
	if !CanPlaceOnColumn(dest, src) {
		return false
	}
	if r.StrictColors && !dest.IsEmpty() {
		return dest.IsRed() != src.IsRed()
	}
	return true
}
