package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/poker"
)

func TestTally_Empty(t *testing.T) {
	var tally Tally

	assert.Zero(t, tally.WinFraction())
	assert.Zero(t, tally.WinRate())
	assert.Zero(t, tally.TieRate())
	assert.Zero(t, tally.StdError())
	require.NoError(t, tally.Validate())
}

func TestTally_Add(t *testing.T) {
	var tally Tally
	tally.Add(true, false, poker.Flush)
	tally.Add(true, true, poker.Straight)
	tally.Add(false, false, poker.HighCard)
	tally.Add(false, true, poker.Pair)

	assert.Equal(t, 4, tally.Trials)
	assert.Equal(t, 1, tally.Wins)
	assert.Equal(t, 1, tally.Ties)
	assert.Equal(t, 0.5, tally.WinFraction(), "splits count toward the win fraction")
	assert.Equal(t, 0.25, tally.WinRate())
	assert.Equal(t, 0.25, tally.TieRate())
	assert.Equal(t, 1, tally.Categories[poker.Flush])
	assert.Equal(t, 1, tally.Categories[poker.Straight])
	assert.Zero(t, tally.Categories[poker.HighCard], "losses record no category")
	require.NoError(t, tally.Validate())
}

func TestTally_Merge(t *testing.T) {
	a := Tally{Trials: 10, Wins: 3, Ties: 1}
	a.Categories[poker.Pair] = 4
	b := Tally{Trials: 5, Wins: 2}
	b.Categories[poker.Set] = 2

	a.Merge(b)
	assert.Equal(t, 15, a.Trials)
	assert.Equal(t, 5, a.Wins)
	assert.Equal(t, 1, a.Ties)
	assert.Equal(t, 6, a.Categories.Total())
	require.NoError(t, a.Validate())
}

func TestTally_ConfidenceInterval(t *testing.T) {
	tally := Tally{Trials: 400, Wins: 200}
	tally.Categories[poker.HighCard] = 200

	se := tally.StdError()
	assert.InDelta(t, 0.025, se, 1e-12)

	lo, hi := tally.ConfidenceInterval95()
	assert.InDelta(t, 0.5-1.96*0.025, lo, 1e-12)
	assert.InDelta(t, 0.5+1.96*0.025, hi, 1e-12)

	sure := Tally{Trials: 3, Wins: 3}
	lo, hi = sure.ConfidenceInterval95()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1.0, hi)
	assert.False(t, math.IsNaN(sure.StdError()))
}

func TestTally_Validate(t *testing.T) {
	assert.Error(t, Tally{Trials: 1, Wins: 2}.Validate())
	assert.Error(t, Tally{Trials: 2, Wins: 1}.Validate(), "missing category count")
	assert.Error(t, Tally{Trials: -1}.Validate())
}

func TestCategoryCounts(t *testing.T) {
	var c CategoryCounts
	assert.Zero(t, c.Fraction(poker.Pair))

	c[poker.Pair] = 3
	c[poker.TwoPair] = 1
	assert.Equal(t, 4, c.Total())
	assert.Equal(t, 0.75, c.Fraction(poker.Pair))
}
