package results

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/simulator"
	"github.com/lox/showdown/internal/statistics"
	"github.com/lox/showdown/poker"
)

func startingHand(t *testing.T, label string) poker.StartingHand {
	t.Helper()
	h, err := poker.ParseStartingHandLabel(label)
	require.NoError(t, err)
	return h
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "holdem_10000_runs_6_hands.csv", Filename("holdem", 10000, 6, false))
	assert.Equal(t, "holdem_500_runs_2_hands_floponly.csv", Filename("holdem", 500, 2, true))
}

func TestWrite(t *testing.T) {
	rows := []Row{
		{Hand: startingHand(t, "A,A"), Fraction: 0.85},
		{Hand: startingHand(t, "2,As"), Fraction: 0.5},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows))
	assert.Equal(t, "\"A,A\", 0.850000\n\"2,As\", 0.500000\n", buf.String())
}

func TestRead(t *testing.T) {
	input := strings.Join([]string{
		`"A,A", 0.852000`,
		`"10,Js", 0.412500`,
		`"2,7", 0.120000`,
	}, "\n") + "\n"

	rows, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "A,A", rows[0].Label())
	assert.Equal(t, 0.852, rows[0].Fraction)
	assert.Equal(t, "T,Js", rows[1].Label(), "ten written as 10 is accepted")
	assert.Equal(t, "2,7", rows[2].Label())
}

func TestReadErrors(t *testing.T) {
	tests := map[string]string{
		"bad label":       `"A,X", 0.5`,
		"bad fraction":    `"A,A", lots`,
		"out of range":    `"A,A", 1.5`,
		"missing field":   `"A,A"`,
		"duplicate hands": "\"A,A\", 0.5\n\"A,A\", 0.4",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Read(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestSaveLoadAllStartingHands(t *testing.T) {
	hands := poker.StartingHands()
	rows := make([]Row, len(hands))
	for i, h := range hands {
		rows[i] = Row{Hand: h, Fraction: float64(i) / float64(len(hands))}
	}
	Sort(rows)

	path := filepath.Join(t.TempDir(), "out", Filename("holdem", 10, 2, false))
	require.NoError(t, Save(path, rows))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].Hand, loaded[i].Hand)
		assert.InDelta(t, rows[i].Fraction, loaded[i].Fraction, 1e-6)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFromSummaryAndSort(t *testing.T) {
	win := statistics.Tally{Trials: 4, Wins: 3}
	win.Categories[poker.Pair] = 3
	lose := statistics.Tally{Trials: 4, Wins: 1}
	lose.Categories[poker.HighCard] = 1

	rows := FromSummary(&simulator.HoldemSummary{Results: []simulator.HandResult{
		{Hand: startingHand(t, "2,7"), Tally: lose},
		{Hand: startingHand(t, "K,K"), Tally: win},
	}})
	require.Len(t, rows, 2)
	assert.Equal(t, 0.25, rows[0].Fraction)

	Sort(rows)
	assert.Equal(t, "K,K", rows[0].Label())
	assert.Equal(t, 0.75, rows[0].Fraction)
}
