package engine

// HouseRules holds configurable game rule settings.
type HouseRules struct {
	// StrictColors requires red/black alternation on the tableau. When false
	// a card only has to differ in suit from the card it lands on.
	StrictColors    bool
	DefaultDeckPath string // used by SD without a path
}

// DefaultHouseRules returns the standard Yukon house rules.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		StrictColors:    false,
		DefaultDeckPath: "cards.txt",
	}
}

// deckPath returns path, or the configured default when path is empty.
func (r *HouseRules) deckPath(path string) string {
	if path != "" {
		return path
	}
	if r.DefaultDeckPath == "" {
		return "cards.txt"
	}
	return r.DefaultDeckPath
}
