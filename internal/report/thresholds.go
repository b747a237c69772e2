// Package report renders simulation results for the terminal.
package report

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/showdown/internal/results"
	"github.com/lox/showdown/poker"
)

// Percentile positions into the ranking of all starting hands
const (
	thresholdPercentile = 0.25
	top10Percentile     = 0.10
	top20Percentile     = 0.20
)

// Tier buckets a starting hand by how its win fraction ranks
type Tier int

const (
	TierOther Tier = iota
	TierPlayable
	TierTop20
	TierTop10
)

func (t Tier) String() string {
	switch t {
	case TierTop10:
		return "top 10%"
	case TierTop20:
		return "top 20%"
	case TierPlayable:
		return "top 25%"
	default:
		return "other"
	}
}

// Thresholds are the win fractions at the 10%, 20% and 25% marks of the
// starting hand ranking
type Thresholds struct {
	Top10     float64
	Top20     float64
	Threshold float64
}

// ComputeThresholds reads the percentile marks off rows ordered best first.
// Indices are taken against all 169 starting hands.
func ComputeThresholds(rows []results.Row) (Thresholds, error) {
	idx := percentileIndex(thresholdPercentile)
	if len(rows) <= idx {
		return Thresholds{}, fmt.Errorf("need more than %d results to compute thresholds, got %d", idx, len(rows))
	}

	sorted := slices.Clone(rows)
	results.Sort(sorted)

	return Thresholds{
		Top10:     sorted[percentileIndex(top10Percentile)].Fraction,
		Top20:     sorted[percentileIndex(top20Percentile)].Fraction,
		Threshold: sorted[idx].Fraction,
	}, nil
}

func percentileIndex(p float64) int {
	return int(math.RoundToEven(poker.NumStartingHands * p))
}

// Tier classifies a win fraction
func (t Thresholds) Tier(fraction float64) Tier {
	switch {
	case fraction >= t.Top10:
		return TierTop10
	case fraction >= t.Top20:
		return TierTop20
	case fraction >= t.Threshold:
		return TierPlayable
	default:
		return TierOther
	}
}

// Group is one archetype's rows, in the order they were given
type Group struct {
	Archetype poker.Archetype
	Rows      []results.Row
}

// SplitByArchetype partitions rows into the chart groups. Every pair and
// every suited consecutive hand is kept. Suited connectors and field hands
// are kept only when their fraction is strictly above threshold.
func SplitByArchetype(rows []results.Row, threshold float64) []Group {
	groups := make([]Group, len(poker.Archetypes))
	index := make(map[poker.Archetype]int, len(poker.Archetypes))
	for i, a := range poker.Archetypes {
		groups[i].Archetype = a
		index[a] = i
	}

	for _, row := range rows {
		archetype := poker.CategorizeStartingHand(row.Hand)
		switch archetype {
		case poker.ArchetypePairs, poker.ArchetypeSuitedConsecutive:
		default:
			if row.Fraction <= threshold {
				continue
			}
		}
		i := index[archetype]
		groups[i].Rows = append(groups[i].Rows, row)
	}
	return groups
}
