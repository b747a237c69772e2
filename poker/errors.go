package poker

import "errors"

// Precondition violations. Callers get these wrapped with context and can
// match them with errors.Is.
var (
	ErrHandSize      = errors.New("hand must contain exactly 5 cards")
	ErrHoleSize      = errors.New("hole cards must contain exactly 2 cards")
	ErrCommunitySize = errors.New("community cards must contain 3 or 5 cards")
	ErrInvalidCard   = errors.New("invalid card")
	ErrDuplicateCard = errors.New("duplicate card")
	ErrNoHands       = errors.New("no hands to compare")
	ErrMalformedHand = errors.New("hand grouping does not match its category")
	ErrDeckEmpty     = errors.New("deck is empty")
	ErrCardNotInDeck = errors.New("card not in deck")
)
