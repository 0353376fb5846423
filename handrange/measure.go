// Package handrange expands compact starting-hand range notation such as
// "88+, AJo+" into de-duplicated combination counts and the fraction of the
// 1326 possible two-card holdings they cover.
package handrange

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/lox/rangecalc/poker"
)

// ErrInvalidRange is returned when a range token does not match the grammar.
var ErrInvalidRange = errors.New("invalid range token")

// totalCombinations is the number of distinct two-card holdings: C(52,2).
const totalCombinations = 1326

// Deals per specific rank combination.
const (
	offsuitCombos = 12
	suitedCombos  = 4
	pairedCombos  = 6
)

// rangeToken matches a single range token: two ranks, an optional suitedness
// suffix and an optional plus. Built once on first use, immutable after.
var rangeToken = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)^[AKQJT2-9]{2}[os]?\+?$`)
})

type tokenKind uint8

const (
	kindOffsuit tokenKind = iota
	kindSuited
	kindPaired
	// kindUnsuited is a two-rank token with no suffix: it stands for every
	// suit combination, both suited and offsuit.
	kindUnsuited
)

// combinations collects the specific rank combinations a range covers, one
// label set per class. Insertion is idempotent, so overlapping tokens such as
// "88+, 22+" are counted once.
type combinations struct {
	offsuit map[string]struct{}
	suited  map[string]struct{}
	paired  map[string]struct{}
}

func newCombinations() *combinations {
	return &combinations{
		offsuit: make(map[string]struct{}),
		suited:  make(map[string]struct{}),
		paired:  make(map[string]struct{}),
	}
}

func (c *combinations) count() int {
	return len(c.offsuit)*offsuitCombos + len(c.suited)*suitedCombos + len(c.paired)*pairedCombos
}

// Measure parses comma-separated range notation and returns the fraction of
// all 1326 starting hands it covers. The first token that fails the grammar
// aborts the whole computation; no partial result is produced.
func Measure(rangeText string) (float64, error) {
	count, err := Combos(rangeText)
	if err != nil {
		return 0, err
	}
	return float64(count) / totalCombinations, nil
}

// Combos returns the de-duplicated combination count behind Measure.
func Combos(rangeText string) (int, error) {
	combos := newCombinations()
	for _, token := range strings.Split(rangeText, ",") {
		token = strings.TrimSpace(token)
		if !rangeToken().MatchString(token) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidRange, token)
		}
		expandToken(token, combos)
	}
	return combos.count(), nil
}

// expandToken inserts the labels for one grammar-matched token.
func expandToken(token string, combos *combinations) {
	high, low, kind := parseToken(token)

	if !strings.HasSuffix(token, "+") {
		switch kind {
		case kindOffsuit:
			combos.offsuit[pairLabel(high, low)] = struct{}{}
		case kindSuited:
			combos.suited[pairLabel(high, low)] = struct{}{}
		case kindPaired:
			combos.paired[high.String()] = struct{}{}
		case kindUnsuited:
			combos.offsuit[pairLabel(high, low)] = struct{}{}
			combos.suited[pairLabel(high, low)] = struct{}{}
		}
		return
	}

	switch kind {
	case kindPaired:
		// Every pair from the stated rank up through Ace.
		for r := high; ; r++ {
			combos.paired[r.String()] = struct{}{}
			if r == poker.Ace {
				break
			}
		}
	default:
		// Widen the kicker from low up to, but excluding, high.
		for r := low; r < high; r++ {
			switch kind {
			case kindOffsuit:
				combos.offsuit[pairLabel(high, r)] = struct{}{}
			case kindSuited:
				combos.suited[pairLabel(high, r)] = struct{}{}
			case kindUnsuited:
				combos.offsuit[pairLabel(high, r)] = struct{}{}
				combos.suited[pairLabel(high, r)] = struct{}{}
			}
		}
	}
}

// parseToken splits a grammar-matched token into its ranks and class.
// The ranks are normalized so high >= low.
func parseToken(token string) (high, low poker.Rank, kind tokenKind) {
	// The grammar guarantees both rank characters.
	r1, _ := poker.RankFromChar(token[0])
	r2, _ := poker.RankFromChar(token[1])
	high, low = r1, r2
	if low > high {
		high, low = low, high
	}

	rest := strings.TrimSuffix(token[2:], "+")
	switch strings.ToLower(rest) {
	case "o":
		return high, low, kindOffsuit
	case "s":
		return high, low, kindSuited
	}
	if r1 == r2 {
		return high, low, kindPaired
	}
	return high, low, kindUnsuited
}

func pairLabel(high, low poker.Rank) string {
	return string([]byte{high.Char(), low.Char()})
}
