package poker

import "errors"

var (
	// ErrUnexpectedRankChar is returned when a rank character is not one of 2-9TJQKA.
	ErrUnexpectedRankChar = errors.New("unable to parse rank character")

	// ErrUnexpectedSuitChar is returned when a suit character is not one of SHDC.
	ErrUnexpectedSuitChar = errors.New("unable to parse suit character")

	// ErrUnexpectedCardChar is returned when a card code is not exactly two characters.
	ErrUnexpectedCardChar = errors.New("card code must be two characters")

	// ErrInvalidHandSize is returned by the hole classifier for hands that are
	// not exactly two cards.
	ErrInvalidHandSize = errors.New("hand must contain exactly 2 cards")
)
