// Package poker provides the card primitives and the hand ranking engine for
// Texas Hold'em style games. Ranking is pure and allocation-light so it can be
// called from hot loops in downstream bot and equity code.
package poker

import "fmt"

// Rank is a card rank ordinal from Two (0) to Ace (12). Aces are always high.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// RankFromChar parses a single case-insensitive rank character (2-9, T, J, Q, K, A).
func RankFromChar(c byte) (Rank, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < len(rankChars); i++ {
		if rankChars[i] == c {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnexpectedRankChar, string(c))
}

// Char returns the canonical upper-case character for the rank.
func (r Rank) Char() byte {
	return rankChars[r]
}

// Gap returns the absolute rank distance between two ranks.
func (r Rank) Gap(other Rank) uint8 {
	if r > other {
		return uint8(r - other)
	}
	return uint8(other - r)
}

// GapToAce returns the distance from the rank up to Ace.
func (r Rank) GapToAce() uint8 {
	return uint8(Ace - r)
}

func (r Rank) String() string {
	return string(r.Char())
}

// Suit is a card suit. Suits have no ordering significance to hand ranking;
// the ordinal is only used as a bit-plane index.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitChars = "CDHS"

// SuitFromChar parses a single case-insensitive suit character (S, H, D, C).
func SuitFromChar(c byte) (Suit, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	for i := 0; i < len(suitChars); i++ {
		if suitChars[i] == c {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnexpectedSuitChar, string(c))
}

// Char returns the canonical upper-case character for the suit.
func (s Suit) Char() byte {
	return suitChars[s]
}

func (s Suit) String() string {
	return string(s.Char())
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card from a suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ParseCard parses a two-letter card code of the form <suit><rank>,
// e.g. "SA" for the ace of spades or "h7" for the seven of hearts.
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrUnexpectedCardChar, code)
	}
	suit, err := SuitFromChar(code[0])
	if err != nil {
		return Card{}, err
	}
	rank, err := RankFromChar(code[1])
	if err != nil {
		return Card{}, err
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// String returns the two-letter card code. Parsing the result yields the
// identical card.
func (c Card) String() string {
	return string([]byte{c.Suit.Char(), c.Rank.Char()})
}
