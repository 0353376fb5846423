package poker

import "strings"

// Hand is a mutable ordered sequence of cards. Two cards make a hole hand;
// the ranking entry points expect five to seven.
type Hand struct {
	cards []Card
}

// NewHand creates a hand from explicit cards.
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, len(cards))}
	copy(h.cards, cards)
	return h
}

// ParseHand creates a hand from two-letter card codes.
func ParseHand(codes ...string) (*Hand, error) {
	h := &Hand{cards: make([]Card, 0, len(codes))}
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		h.cards = append(h.cards, c)
	}
	return h, nil
}

// Add appends a card to the hand.
func (h *Hand) Add(c Card) *Hand {
	h.cards = append(h.cards, c)
	return h
}

// RemoveAt removes the card at index i.
func (h *Hand) RemoveAt(i int) *Hand {
	h.cards = append(h.cards[:i], h.cards[i+1:]...)
	return h
}

// Truncate shortens the hand to n cards.
func (h *Hand) Truncate(n int) *Hand {
	h.cards = h.cards[:n]
	return h
}

// Len returns the number of cards in the hand.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Card returns the card at index i.
func (h *Hand) Card(i int) Card {
	return h.cards[i]
}

// Cards returns the underlying card slice.
func (h *Hand) Cards() []Card {
	return h.cards
}

// Rank returns the best five-card rank of the hand. See RankCards.
func (h *Hand) Rank() HandRank {
	return RankCards(h.cards)
}

// RankFive ranks the hand assuming it holds exactly five cards. See RankFiveCards.
func (h *Hand) RankFive() HandRank {
	return RankFiveCards(h.cards)
}

func (h *Hand) String() string {
	codes := make([]string, len(h.cards))
	for i, c := range h.cards {
		codes[i] = c.String()
	}
	return strings.Join(codes, " ")
}
