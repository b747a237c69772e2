package poker

import "fmt"

const (
	// HoleSize is the number of private cards in hold'em.
	HoleSize = 2
	// FlopSize is the community card count when only the flop is dealt.
	FlopSize = 3
	// BoardSize is the community card count of a full board.
	BoardSize = 5
)

// BestHand picks the strongest five-card hand from two hole cards and three
// or five community cards. When several subsets tie, the first in enumeration
// order is returned; they are equally strong.
func BestHand(hole, community []Card) (Hand, error) {
	if len(hole) != HoleSize {
		return Hand{}, fmt.Errorf("got %d hole cards: %w", len(hole), ErrHoleSize)
	}
	if len(community) != FlopSize && len(community) != BoardSize {
		return Hand{}, fmt.Errorf("got %d community cards: %w", len(community), ErrCommunitySize)
	}

	pool := make([]Card, 0, len(hole)+len(community))
	pool = append(pool, hole...)
	pool = append(pool, community...)
	if err := validateCards(pool); err != nil {
		return Hand{}, err
	}

	candidates := Combinations(pool)
	winners, err := SelectWinnerIndices(candidates)
	if err != nil {
		return Hand{}, err
	}
	return candidates[winners[0]], nil
}

// Combinations returns every five-card subset of cards in lexicographic index
// order: C(5,5)=1, C(6,5)=6, C(7,5)=21. Fewer than five cards yields nil.
func Combinations(cards []Card) []Hand {
	n := len(cards)
	if n < HandSize {
		return nil
	}

	var hands []Hand
	var idx [HandSize]int
	for i := range idx {
		idx[i] = i
	}
	for {
		var h Hand
		for i, j := range idx {
			h[i] = cards[j]
		}
		hands = append(hands, h)

		// Advance the rightmost index that still has room
		i := HandSize - 1
		for i >= 0 && idx[i] == n-HandSize+i {
			i--
		}
		if i < 0 {
			return hands
		}
		idx[i]++
		for j := i + 1; j < HandSize; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
