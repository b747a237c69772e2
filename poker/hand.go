package poker

import (
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// Hand is a five-card poker hand. Card order is irrelevant to every
// operation on it.
type Hand [HandSize]Card

// NewHand builds a hand from exactly five distinct valid cards
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("got %d cards: %w", len(cards), ErrHandSize)
	}
	copy(h[:], cards)
	if err := h.Validate(); err != nil {
		return Hand{}, err
	}
	return h, nil
}

// MustParseHand parses a five-card hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := NewHand(MustParseCards(s)...)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Validate checks that every card is valid and no card repeats
func (h Hand) Validate() error {
	return validateCards(h[:])
}

func validateCards(cards []Card) error {
	var seen [DeckSize]bool
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%v: %w", c, ErrInvalidCard)
		}
		idx := int(c.Suit)*13 + int(c.Rank-Two)
		if seen[idx] {
			return fmt.Errorf("%s: %w", c, ErrDuplicateCard)
		}
		seen[idx] = true
	}
	return nil
}

// Cards returns the hand's cards as a slice
func (h Hand) Cards() []Card {
	return h[:]
}

// String returns the cards in notation, e.g. "As Ks Qs Js Ts"
func (h Hand) String() string {
	return FormatCards(h[:])
}

// Pretty returns the cards with suit symbols
func (h Hand) Pretty() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.Pretty()
	}
	return strings.Join(parts, " ")
}

// IsFlush reports whether all five cards share a suit
func (h Hand) IsFlush() bool {
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return false
		}
	}
	return true
}

// IsStraight reports whether the ranks are five consecutive values, counting
// the wheel (A-2-3-4-5) as a straight.
func (h Hand) IsStraight() bool {
	ranks := h.sortedRanks()
	if isWheel(ranks) {
		return true
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return false
		}
	}
	return ranks[len(ranks)-1]-ranks[0] == 4
}

// StraightHighCard returns the effective top rank of a straight: Five for the
// wheel, otherwise the highest rank.
func (h Hand) StraightHighCard() Rank {
	ranks := h.sortedRanks()
	if isWheel(ranks) {
		return Five
	}
	return ranks[len(ranks)-1]
}

// CountOfRank returns how many cards of rank r the hand holds
func (h Hand) CountOfRank(r Rank) int {
	return countOfRank(h[:], r)
}

// HighestRankWithCount returns the greatest rank occurring exactly n times,
// or NoRank.
func (h Hand) HighestRankWithCount(n int) Rank {
	return highestRankWithCount(h[:], n)
}

// HasFullHouse reports a trip plus a pair of a different rank
func (h Hand) HasFullHouse() bool {
	return h.HighestRankWithCount(3) != NoRank && h.HighestRankWithCount(2) != NoRank
}

// HasTwoPair reports whether a second pair remains once the highest pair is
// set aside.
func (h Hand) HasTwoPair() bool {
	pair := h.HighestRankWithCount(2)
	if pair == NoRank {
		return false
	}
	return highestRankWithCount(withoutRank(h[:], pair), 2) != NoRank
}

// Kickers returns, in descending order, the ranks outside the hand's primary
// grouping: the trip if there is one, otherwise the highest pair. A hand with
// no grouping returns all five ranks.
func (h Hand) Kickers() []Rank {
	group := h.HighestRankWithCount(3)
	if group == NoRank {
		group = h.HighestRankWithCount(2)
	}
	return descendingRanks(withoutRank(h[:], group))
}

// Ranks returns all five ranks in descending order
func (h Hand) Ranks() []Rank {
	return descendingRanks(h[:])
}

// Category classifies the hand. The first matching category in strength
// order wins.
func (h Hand) Category() Category {
	flush, straight := h.IsFlush(), h.IsStraight()
	switch {
	case straight && flush:
		return StraightFlush
	case h.HighestRankWithCount(4) != NoRank:
		return FourOfAKind
	case h.HasFullHouse():
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case h.HighestRankWithCount(3) != NoRank:
		return Set
	case h.HasTwoPair():
		return TwoPair
	case h.HighestRankWithCount(2) != NoRank:
		return Pair
	default:
		return HighCard
	}
}

// Classify returns the category of h
func Classify(h Hand) Category {
	return h.Category()
}

func (h Hand) sortedRanks() [HandSize]Rank {
	var ranks [HandSize]Rank
	for i, c := range h {
		ranks[i] = c.Rank
	}
	slices.Sort(ranks[:])
	return ranks
}

func isWheel(sorted [HandSize]Rank) bool {
	return sorted == [HandSize]Rank{Two, Three, Four, Five, Ace}
}

func countOfRank(cards []Card, r Rank) int {
	n := 0
	for _, c := range cards {
		if c.Rank == r {
			n++
		}
	}
	return n
}

func highestRankWithCount(cards []Card, n int) Rank {
	best := NoRank
	for _, c := range cards {
		if c.Rank > best && countOfRank(cards, c.Rank) == n {
			best = c.Rank
		}
	}
	return best
}

// withoutRank returns the cards whose rank differs from r. NoRank keeps all.
func withoutRank(cards []Card, r Rank) []Card {
	rest := make([]Card, 0, len(cards))
	for _, c := range cards {
		if c.Rank != r {
			rest = append(rest, c)
		}
	}
	return rest
}

func descendingRanks(cards []Card) []Rank {
	ranks := make([]Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	slices.Sort(ranks)
	slices.Reverse(ranks)
	return ranks
}
