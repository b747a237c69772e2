package poker

import (
	"fmt"
	"slices"
)

// reduceStep narrows a candidate set (indices into hands) to the candidates
// that are maximal under one tie-break criterion.
type reduceStep func(hands []Hand, candidates []int) ([]int, error)

// tieBreaks holds the ordered reduction steps for each category. Steps run
// only while more than one candidate remains.
var tieBreaks = [NumCategories][]reduceStep{
	HighCard:      {byRankSequence(Hand.Kickers)},
	Pair:          {byRank(pairRank), byRankSequence(Hand.Kickers)},
	TwoPair:       {byRank(pairRank), byRank(secondPairRank), byTwoPairKicker},
	Set:           {byRank(tripRank), byRankSequence(Hand.Kickers)},
	Straight:      {byRank(Hand.StraightHighCard)},
	Flush:         {byRankSequence(Hand.Kickers)},
	FullHouse:     {byRank(tripRank), byRank(pairRank)},
	FourOfAKind:   {byRank(quadRank), byRank(singleRank)},
	StraightFlush: {byRank(Hand.StraightHighCard)},
}

// SelectWinners returns every hand that is tied for best. The result is never
// empty; more than one hand means a split pot.
func SelectWinners(hands []Hand) ([]Hand, error) {
	idx, err := SelectWinnerIndices(hands)
	if err != nil {
		return nil, err
	}
	winners := make([]Hand, len(idx))
	for i, j := range idx {
		winners[i] = hands[j]
	}
	return winners, nil
}

// SelectWinnerIndices is SelectWinners reporting positions in hands, in
// ascending order, so callers can map winners back to players.
func SelectWinnerIndices(hands []Hand) ([]int, error) {
	if len(hands) == 0 {
		return nil, ErrNoHands
	}

	categories := make([]Category, len(hands))
	top := HighCard
	for i, h := range hands {
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("hand %d: %w", i, err)
		}
		categories[i] = h.Category()
		top = max(top, categories[i])
	}

	candidates := make([]int, 0, len(hands))
	for i, c := range categories {
		if c == top {
			candidates = append(candidates, i)
		}
	}

	for _, step := range tieBreaks[top] {
		if len(candidates) == 1 {
			break
		}
		var err error
		candidates, err = step(hands, candidates)
		if err != nil {
			return nil, err
		}
	}
	return candidates, nil
}

// byRank keeps the candidates whose key equals the maximum key.
func byRank(key func(Hand) Rank) reduceStep {
	return func(hands []Hand, candidates []int) ([]int, error) {
		best := NoRank
		for _, i := range candidates {
			best = max(best, key(hands[i]))
		}
		kept := make([]int, 0, len(candidates))
		for _, i := range candidates {
			if key(hands[i]) == best {
				kept = append(kept, i)
			}
		}
		return kept, nil
	}
}

// byRankSequence keeps the candidates whose descending rank sequence is
// lexicographically greatest.
func byRankSequence(key func(Hand) []Rank) reduceStep {
	return func(hands []Hand, candidates []int) ([]int, error) {
		keys := make([][]Rank, len(candidates))
		var best []Rank
		for n, i := range candidates {
			keys[n] = key(hands[i])
			if best == nil || slices.Compare(keys[n], best) > 0 {
				best = keys[n]
			}
		}
		kept := make([]int, 0, len(candidates))
		for n, i := range candidates {
			if slices.Equal(keys[n], best) {
				kept = append(kept, i)
			}
		}
		return kept, nil
	}
}

// byTwoPairKicker compares the one card outside both pairs. Anything other
// than exactly one such card means the hand is not really two pair.
func byTwoPairKicker(hands []Hand, candidates []int) ([]int, error) {
	for _, i := range candidates {
		if len(twoPairRest(hands[i])) != 1 {
			return nil, fmt.Errorf("two pair %s: %w", hands[i], ErrMalformedHand)
		}
	}
	return byRank(func(h Hand) Rank {
		return twoPairRest(h)[0].Rank
	})(hands, candidates)
}

func twoPairRest(h Hand) []Card {
	high := pairRank(h)
	if high == NoRank {
		return h[:]
	}
	return withoutRank(withoutRank(h[:], high), secondPairRank(h))
}

func quadRank(h Hand) Rank   { return h.HighestRankWithCount(4) }
func tripRank(h Hand) Rank   { return h.HighestRankWithCount(3) }
func pairRank(h Hand) Rank   { return h.HighestRankWithCount(2) }
func singleRank(h Hand) Rank { return h.HighestRankWithCount(1) }

// secondPairRank finds the pair left once the highest pair is removed.
func secondPairRank(h Hand) Rank {
	return highestRankWithCount(withoutRank(h[:], pairRank(h)), 2)
}
