package poker

import "math/bits"

// Category enumerates the nine poker hand classes ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandRank is the strength of a hand: a category plus a tie-break detail that
// only orders hands within the same category. The detail packs the
// category-defining rank bits above the kicker bits (major << 13 | minor), so
// numeric comparison of details respects group significance before kickers.
type HandRank struct {
	Category Category
	Detail   uint32
}

// NewHandRank creates a HandRank from a category and tie-break detail.
func NewHandRank(c Category, detail uint32) HandRank {
	return HandRank{Category: c, Detail: detail}
}

// Compare returns 1 if hr beats other, -1 if other beats hr and 0 on a tie.
// The category always dominates: any TwoPair beats any OnePair regardless of
// their details.
func (hr HandRank) Compare(other HandRank) int {
	switch {
	case hr.Category != other.Category:
		if hr.Category > other.Category {
			return 1
		}
		return -1
	case hr.Detail != other.Detail:
		if hr.Detail > other.Detail {
			return 1
		}
		return -1
	default:
		return 0
	}
}

func (hr HandRank) String() string {
	return hr.Category.String()
}

// detailShift separates the major rank bits from the kicker bits in a detail.
const detailShift = 13

// wheelMask is ace plus two through five.
const wheelMask = 0x100F

// rankMask13 keeps the thirteen rank bits.
const rankMask13 = 0x1FFF

// straightRank returns the straight rank for a 13-bit rank mask: 0 for the
// wheel up to 9 for an ace-high run, or false when no five-card run exists.
func straightRank(valueSet uint16) (uint32, bool) {
	valueSet &= rankMask13
	run := valueSet & (valueSet << 1) & (valueSet << 2) & (valueSet << 3) & (valueSet << 4)
	if run != 0 {
		// The surviving bit marks the high end of the run; deduct the four
		// lower cards to get a rank of 1 (six high) through 9 (ace high).
		return uint32(bits.Len16(run)) - 4, true
	}
	if valueSet&wheelMask == wheelMask {
		return 0, true
	}
	return 0, false
}

// keepHighest clears all but the highest set bit.
func keepHighest(mask uint16) uint32 {
	return 1 << (bits.Len16(mask) - 1)
}

// keepN clears the lowest set bits until at most n remain.
func keepN(mask uint16, n int) uint32 {
	for bits.OnesCount16(mask) > n {
		mask &= mask - 1
	}
	return uint32(mask)
}

// handCounts holds the bitmask views of a card set used by the ranking engine.
//
// countToValue[k] has bit r set iff rank r occurs exactly k times.
// suitValueSets[s] has bit r set iff suit s holds rank r.
// valueSet has bit r set iff rank r is present at all.
type handCounts struct {
	countToValue  [5]uint16
	suitValueSets [4]uint16
	valueSet      uint16
}

func computeCounts(cards []Card) handCounts {
	var counts handCounts
	var valueToCount [13]uint8
	for _, c := range cards {
		counts.valueSet |= 1 << c.Rank
		counts.suitValueSets[c.Suit] |= 1 << c.Rank
		valueToCount[c.Rank]++
	}
	for value, count := range valueToCount {
		counts.countToValue[count] |= 1 << value
	}
	return counts
}

// RankCards ranks five, six or seven distinct cards, returning the strength
// of the best achievable five-card hand without enumerating sub-hands.
// Duplicate cards or other cardinalities are unchecked preconditions.
func RankCards(cards []Card) HandRank {
	counts := computeCounts(cards)
	valueSet := counts.valueSet

	for _, suitSet := range counts.suitValueSets {
		if bits.OnesCount16(suitSet) < 5 {
			continue
		}
		// At most one suit can hold five of up to seven cards.
		if rank, ok := straightRank(suitSet); ok {
			return NewHandRank(StraightFlush, rank)
		}
		return NewHandRank(Flush, keepN(suitSet, 5))
	}

	if quads := counts.countToValue[4]; quads != 0 {
		high := keepHighest(valueSet &^ quads)
		return NewHandRank(FourOfAKind, uint32(quads)<<detailShift|high)
	}

	if trips := counts.countToValue[3]; trips != 0 && bits.OnesCount16(trips) == 2 {
		set := keepHighest(trips)
		pair := uint32(trips) &^ set
		return NewHandRank(FullHouse, set<<detailShift|pair)
	}

	if trips, pairs := counts.countToValue[3], counts.countToValue[2]; trips != 0 && pairs != 0 {
		return NewHandRank(FullHouse, uint32(trips)<<detailShift|keepHighest(pairs))
	}

	if rank, ok := straightRank(valueSet); ok {
		return NewHandRank(Straight, rank)
	}

	if trips := counts.countToValue[3]; trips != 0 {
		low := keepN(valueSet&^trips, 2)
		return NewHandRank(ThreeOfAKind, uint32(trips)<<detailShift|low)
	}

	if pairs := counts.countToValue[2]; bits.OnesCount16(pairs) >= 2 {
		kept := keepN(pairs, 2)
		low := keepHighest(valueSet &^ uint16(kept))
		return NewHandRank(TwoPair, kept<<detailShift|low)
	}

	if pair := counts.countToValue[2]; pair != 0 {
		low := keepN(valueSet&^pair, 3)
		return NewHandRank(OnePair, uint32(pair)<<detailShift|low)
	}

	return NewHandRank(HighCard, keepN(valueSet, 5))
}

// RankFiveCards ranks exactly five distinct cards. The count of distinct
// ranks plus a straight/flush check fully determines the category, so the
// general precedence chain is bypassed. Other cardinalities are an unchecked
// precondition.
func RankFiveCards(cards []Card) HandRank {
	counts := computeCounts(cards)
	valueSet := counts.valueSet

	switch bits.OnesCount16(valueSet) {
	case 5:
		isFlush := false
		for _, suitSet := range counts.suitValueSets {
			if bits.OnesCount16(suitSet) == 5 {
				isFlush = true
				break
			}
		}
		rank, isStraight := straightRank(valueSet)
		switch {
		case isStraight && isFlush:
			return NewHandRank(StraightFlush, rank)
		case isStraight:
			return NewHandRank(Straight, rank)
		case isFlush:
			return NewHandRank(Flush, uint32(valueSet))
		default:
			return NewHandRank(HighCard, uint32(valueSet))
		}
	case 4:
		major := counts.countToValue[2]
		minor := valueSet ^ major
		return NewHandRank(OnePair, uint32(major)<<detailShift|uint32(minor))
	case 3:
		if trips := counts.countToValue[3]; trips != 0 {
			minor := valueSet ^ trips
			return NewHandRank(ThreeOfAKind, uint32(trips)<<detailShift|uint32(minor))
		}
		major := counts.countToValue[2]
		minor := valueSet ^ major
		return NewHandRank(TwoPair, uint32(major)<<detailShift|uint32(minor))
	default: // 2
		if trips := counts.countToValue[3]; trips != 0 {
			minor := valueSet ^ trips
			return NewHandRank(FullHouse, uint32(trips)<<detailShift|uint32(minor))
		}
		major := counts.countToValue[4]
		minor := valueSet ^ major
		return NewHandRank(FourOfAKind, uint32(major)<<detailShift|uint32(minor))
	}
}

// CompareRanks returns the indices of the ranks tied for the maximum.
// An empty input yields an empty result.
func CompareRanks(ranks []HandRank) []int {
	if len(ranks) == 0 {
		return nil
	}

	winners := []int{0}
	best := ranks[0]
	for i, rank := range ranks[1:] {
		switch rank.Compare(best) {
		case 1:
			best = rank
			winners = winners[:0]
			winners = append(winners, i+1)
		case 0:
			winners = append(winners, i+1)
		}
	}
	return winners
}
