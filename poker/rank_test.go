package poker

import (
	"math/rand"
	"testing"
)

func mustHand(t *testing.T, codes ...string) *Hand {
	t.Helper()
	h, err := ParseHand(codes...)
	if err != nil {
		t.Fatalf("ParseHand(%v) failed: %v", codes, err)
	}
	return h
}

func bit(r Rank) uint32 {
	return 1 << r
}

func TestRankFiveHighCard(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "H8", "C9", "CT", "C5")
	want := NewHandRank(HighCard, bit(Ace)|bit(Eight)|bit(Nine)|bit(Ten)|bit(Five))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveFlush(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "D8", "D9", "DT", "D5")
	want := NewHandRank(Flush, bit(Ace)|bit(Eight)|bit(Nine)|bit(Ten)|bit(Five))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveFullHouse(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "CA", "D9", "C9", "S9")
	want := NewHandRank(FullHouse, bit(Nine)<<detailShift|bit(Ace))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveTwoPair(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "CA", "D9", "C9", "ST")
	want := NewHandRank(TwoPair, (bit(Ace)|bit(Nine))<<detailShift|bit(Ten))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveOnePair(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "CA", "D9", "C8", "ST")
	want := NewHandRank(OnePair, bit(Ace)<<detailShift|bit(Nine)|bit(Eight)|bit(Ten))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveFourOfAKind(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "CA", "SA", "HA", "ST")
	want := NewHandRank(FourOfAKind, bit(Ace)<<detailShift|bit(Ten))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveThreeOfAKind(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "C2", "S2", "H2", "S5", "D6")
	want := NewHandRank(ThreeOfAKind, bit(Two)<<detailShift|bit(Five)|bit(Six))
	if got := h.RankFive(); got != want {
		t.Errorf("RankFive = %+v, want %+v", got, want)
	}
}

func TestRankFiveWheel(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "C2", "S3", "H4", "S5")
	if got := h.RankFive(); got != NewHandRank(Straight, 0) {
		t.Errorf("RankFive = %+v, want wheel straight 0", got)
	}

	sixHigh := mustHand(t, "C2", "S3", "H4", "S5", "D6").RankFive()
	if sixHigh != NewHandRank(Straight, 1) {
		t.Errorf("six-high straight = %+v, want detail 1", sixHigh)
	}
	if got := NewHandRank(Straight, 0).Compare(sixHigh); got != -1 {
		t.Errorf("wheel should lose to a six-high straight, Compare = %d", got)
	}
}

func TestRankFiveRoyalFlush(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "DA", "DK", "DQ", "DJ", "DT")
	// Ace-high straight flush is the highest possible hand.
	if got := h.RankFive(); got != NewHandRank(StraightFlush, 9) {
		t.Errorf("RankFive = %+v, want straight flush 9", got)
	}
}

func TestRankSevenStraightFlush(t *testing.T) {
	t.Parallel()
	// The nine-high straight flush is embedded in the same cards; the
	// ace-high one must win.
	h := mustHand(t, "DA", "DK", "DQ", "DJ", "DT", "D9", "D8")
	if got := h.Rank(); got != NewHandRank(StraightFlush, 9) {
		t.Errorf("Rank = %+v, want straight flush 9", got)
	}
}

func TestRankSevenStraightFlushWheel(t *testing.T) {
	t.Parallel()
	// The wheel straight flush beats the seven-high plain straight.
	h := mustHand(t, "D2", "D3", "D4", "D5", "H6", "C7", "DA")
	if got := h.Rank(); got != NewHandRank(StraightFlush, 0) {
		t.Errorf("Rank = %+v, want straight flush 0", got)
	}
}

func TestRankSevenBestStraightFlushAboveWheel(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "D6", "DK", "DA", "D2", "D5", "D4", "D3")
	if got := h.Rank(); got != NewHandRank(StraightFlush, 1) {
		t.Errorf("Rank = %+v, want straight flush 1", got)
	}
}

func TestRankSevenStraights(t *testing.T) {
	t.Parallel()
	straights := [][]string{
		{"H2", "C3", "S4", "D5", "D6", "S6", "HK"},
		{"C3", "S4", "D5", "D6", "H7", "ST", "HK"},
		{"S4", "D5", "D6", "H7", "C8", "ST", "HK"},
		{"C5", "C6", "H7", "H8", "D9", "HA", "DA"},
		{"C6", "C7", "H8", "H9", "ST", "CK", "S6"},
		{"C7", "H8", "H9", "ST", "CK", "S6", "HJ"},
		{"H8", "H9", "ST", "CQ", "S6", "HJ", "SA"},
		{"H9", "ST", "CQ", "S6", "HJ", "SK", "CK"},
		{"ST", "CQ", "S6", "HJ", "SK", "CA", "H5"},
	}
	for i, codes := range straights {
		want := NewHandRank(Straight, uint32(i)+1)
		if got := mustHand(t, codes...).Rank(); got != want {
			t.Errorf("straight %d: Rank = %+v, want %+v", i+1, got, want)
		}
	}
}

func TestRankSevenFourOfAKind(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "S2", "H2", "D2", "C2", "DK", "H9", "S4")
	want := NewHandRank(FourOfAKind, bit(Two)<<detailShift|bit(King))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func TestRankSevenFourOfAKindPlusSet(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "S2", "H2", "D2", "C2", "D8", "S8", "C8")
	want := NewHandRank(FourOfAKind, bit(Two)<<detailShift|bit(Eight))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func TestRankSevenFullHouseTwoSets(t *testing.T) {
	t.Parallel()
	// Two sets: the higher one is the triple.
	h := mustHand(t, "SA", "H2", "D2", "C2", "D8", "S8", "C8")
	want := NewHandRank(FullHouse, bit(Eight)<<detailShift|bit(Two))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func TestRankSevenFullHouseBestPair(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "H2", "D2", "C2", "D8", "S8", "DK", "SK")
	want := NewHandRank(FullHouse, bit(Two)<<detailShift|bit(King))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func TestRankSevenTwoPairFromThreePair(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "H2", "D2", "D8", "S8", "DK", "SK", "HT")
	want := NewHandRank(TwoPair, (bit(King)|bit(Eight))<<detailShift|bit(Ten))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func TestRankSevenTwoPair(t *testing.T) {
	t.Parallel()
	h := mustHand(t, "H2", "D2", "D8", "S8", "DK", "S6", "HT")
	want := NewHandRank(TwoPair, (bit(Two)|bit(Eight))<<detailShift|bit(King))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func TestCategoryDominatesDetail(t *testing.T) {
	t.Parallel()
	// Any two pair beats any one pair, whatever the details say.
	lowTwoPair := NewHandRank(TwoPair, 0)
	maxOnePair := NewHandRank(OnePair, 1<<26-1)
	if got := lowTwoPair.Compare(maxOnePair); got != 1 {
		t.Errorf("TwoPair(0).Compare(OnePair(max)) = %d, want 1", got)
	}
	if got := maxOnePair.Compare(lowTwoPair); got != -1 {
		t.Errorf("OnePair(max).Compare(TwoPair(0)) = %d, want -1", got)
	}
	if got := lowTwoPair.Compare(lowTwoPair); got != 0 {
		t.Errorf("self compare = %d, want 0", got)
	}
}

func TestCompareRanks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		ranks []HandRank
		want  []int
	}{
		{
			name: "single winner",
			ranks: []HandRank{
				NewHandRank(HighCard, 1),
				NewHandRank(OnePair, 1<<detailShift),
				NewHandRank(OnePair, 1<<detailShift),
				NewHandRank(TwoPair, 2<<detailShift),
			},
			want: []int{3},
		},
		{
			name: "tied winners",
			ranks: []HandRank{
				NewHandRank(HighCard, 1),
				NewHandRank(OnePair, 1<<detailShift),
				NewHandRank(TwoPair, 2<<detailShift),
				NewHandRank(TwoPair, 2<<detailShift),
			},
			want: []int{2, 3},
		},
		{
			name:  "single entry",
			ranks: []HandRank{NewHandRank(HighCard, 1)},
			want:  []int{0},
		},
		{
			name:  "empty input",
			ranks: nil,
			want:  nil,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := CompareRanks(tc.ranks)
			if len(got) != len(tc.want) {
				t.Fatalf("CompareRanks = %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("CompareRanks = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

// TestRankMatchesBruteForce checks that ranking seven cards equals the best
// RankFiveCards over all 21 five-card sub-selections.
func TestRankMatchesBruteForce(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	deck := NewDeck(rng)

	for deal := 0; deal < 200; deal++ {
		deck.Reset()
		cards := deck.Deal(7)

		best := NewHandRank(HighCard, 0)
		first := true
		sub := make([]Card, 0, 5)
		for i := 0; i < 7; i++ {
			for j := i + 1; j < 7; j++ {
				sub = sub[:0]
				for k := 0; k < 7; k++ {
					if k != i && k != j {
						sub = append(sub, cards[k])
					}
				}
				rank := RankFiveCards(sub)
				if first || rank.Compare(best) == 1 {
					best = rank
					first = false
				}
			}
		}

		if got := RankCards(cards); got != best {
			t.Fatalf("deal %d (%v): RankCards = %+v, brute force best = %+v",
				deal, cards, got, best)
		}
	}
}

func TestRankSixCards(t *testing.T) {
	t.Parallel()
	// Six cards: the pair of aces plus the three highest kickers.
	h := mustHand(t, "DA", "CA", "D9", "C8", "ST", "H3")
	want := NewHandRank(OnePair, bit(Ace)<<detailShift|bit(Ten)|bit(Nine)|bit(Eight))
	if got := h.Rank(); got != want {
		t.Errorf("Rank = %+v, want %+v", got, want)
	}
}

func BenchmarkRankCards(b *testing.B) {
	h, err := ParseHand("DA", "DK", "DQ", "HJ", "ST", "C9", "C2")
	if err != nil {
		b.Fatal(err)
	}
	cards := h.Cards()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RankCards(cards)
	}
}

func BenchmarkRankFiveCards(b *testing.B) {
	h, err := ParseHand("DA", "DK", "DQ", "HJ", "ST")
	if err != nil {
		b.Fatal(err)
	}
	cards := h.Cards()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RankFiveCards(cards)
	}
}
