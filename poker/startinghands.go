package poker

import (
	"fmt"
	"strings"
)

// NumStartingHands is the number of strategically distinct hold'em starting hands.
const NumStartingHands = 169

// StartingHand is a canonical pair of hole cards. Cards[0] never outranks
// Cards[1]. Canonical suits are diamonds for the low card, and hearts for
// the high card unless the hand is suited.
type StartingHand struct {
	Cards [HoleSize]Card
}

// NewStartingHand returns the canonical starting hand for two ranks
func NewStartingHand(a, b Rank, suited bool) (StartingHand, error) {
	if !a.valid() || !b.valid() {
		return StartingHand{}, fmt.Errorf("ranks %v,%v: %w", a, b, ErrInvalidCard)
	}
	if a == b && suited {
		return StartingHand{}, fmt.Errorf("pair of %v cannot be suited: %w", a, ErrDuplicateCard)
	}
	low, high := min(a, b), max(a, b)
	highSuit := Hearts
	if suited {
		highSuit = Diamonds
	}
	return StartingHand{Cards: [HoleSize]Card{
		NewCard(low, Diamonds),
		NewCard(high, highSuit),
	}}, nil
}

// StartingHands enumerates all 169 canonical starting hands: every pair, every
// offsuit combination and every suited combination, ordered by low rank then
// high rank with the offsuit form before the suited form.
func StartingHands() []StartingHand {
	hands := make([]StartingHand, 0, NumStartingHands)
	for low := Two; low <= Ace; low++ {
		for high := low; high <= Ace; high++ {
			h, _ := NewStartingHand(low, high, false)
			hands = append(hands, h)
			if high != low {
				h, _ = NewStartingHand(low, high, true)
				hands = append(hands, h)
			}
		}
	}
	return hands
}

// Low returns the lower rank
func (h StartingHand) Low() Rank { return h.Cards[0].Rank }

// High returns the higher rank
func (h StartingHand) High() Rank { return h.Cards[1].Rank }

// Suited reports whether both cards share a suit
func (h StartingHand) Suited() bool { return h.Cards[0].Suit == h.Cards[1].Suit }

// IsPair reports whether both cards share a rank
func (h StartingHand) IsPair() bool { return h.Low() == h.High() }

// Label returns the report label: ranks low to high joined by a comma, with a
// trailing "s" when suited ("2,As", "K,K", "9,J").
func (h StartingHand) Label() string {
	label := h.Low().String() + "," + h.High().String()
	if h.Suited() {
		label += "s"
	}
	return label
}

// String returns the hole cards in notation
func (h StartingHand) String() string {
	return FormatCards(h.Cards[:])
}

// ParseStartingHandLabel is the inverse of Label. Ten may be written "T" or "10".
func ParseStartingHandLabel(label string) (StartingHand, error) {
	label = strings.Trim(strings.TrimSpace(label), `"`)
	suited := strings.HasSuffix(label, "s")
	label = strings.TrimSuffix(label, "s")

	parts := strings.Split(label, ",")
	if len(parts) != 2 {
		return StartingHand{}, fmt.Errorf("invalid starting hand label %q", label)
	}
	a, err := parseRank(strings.TrimSpace(parts[0]))
	if err != nil {
		return StartingHand{}, fmt.Errorf("invalid starting hand label %q: %w", label, err)
	}
	b, err := parseRank(strings.TrimSpace(parts[1]))
	if err != nil {
		return StartingHand{}, fmt.Errorf("invalid starting hand label %q: %w", label, err)
	}
	return NewStartingHand(a, b, suited)
}
