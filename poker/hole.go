package poker

// HoleType classifies a two-card starting hand by the relationship between
// its cards.
type HoleType uint8

const (
	Offsuit HoleType = iota
	Suited
	Paired
)

func (t HoleType) String() string {
	switch t {
	case Offsuit:
		return "Offsuit"
	case Suited:
		return "Suited"
	case Paired:
		return "Paired"
	default:
		return "Unknown"
	}
}

// HoleType classifies the hand as paired, suited or offsuit. It returns
// ErrInvalidHandSize unless the hand holds exactly two cards.
func (h *Hand) HoleType() (HoleType, error) {
	if h.Len() != 2 {
		return 0, ErrInvalidHandSize
	}

	c1, c2 := h.cards[0], h.cards[1]
	switch {
	case c1.Rank == c2.Rank:
		return Paired, nil
	case c1.Suit == c2.Suit:
		return Suited, nil
	default:
		return Offsuit, nil
	}
}
