package poker

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestHandFullHouse(t *testing.T) {
	t.Parallel()
	hole := MustParseCards("AsAh")
	community := MustParseCards("AdKcKd2s3h")

	best, err := BestHand(hole, community)
	require.NoError(t, err)

	assert.Equal(t, FullHouse, best.Category())
	assert.ElementsMatch(t, MustParseCards("AsAhAdKcKd"), best.Cards())
}

func TestBestHandFlopOnly(t *testing.T) {
	t.Parallel()
	best, err := BestHand(MustParseCards("7h8h"), MustParseCards("9hThJh"))
	require.NoError(t, err)
	assert.Equal(t, StraightFlush, best.Category())
	assert.Equal(t, Jack, best.StraightHighCard())
}

func TestBestHandPlaysTheBoard(t *testing.T) {
	t.Parallel()
	community := MustParseCards("AsKdQcJhTs")
	best, err := BestHand(MustParseCards("2c3d"), community)
	require.NoError(t, err)
	assert.Equal(t, Straight, best.Category())
	assert.ElementsMatch(t, community, best.Cards())
}

func TestBestHandUsesBestKicker(t *testing.T) {
	t.Parallel()
	best, err := BestHand(MustParseCards("Qh2c"), MustParseCards("AsAhAdAc3d"))
	require.NoError(t, err)
	assert.Equal(t, FourOfAKind, best.Category())
	assert.Equal(t, 1, best.CountOfRank(Queen))
}

func TestBestHandPreconditions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		hole      string
		community string
		wantErr   error
	}{
		{"one hole card", "As", "KsQsJs", ErrHoleSize},
		{"three hole cards", "AsAhAd", "KsQsJs", ErrHoleSize},
		{"four community cards", "AsAh", "KsQsJsTs", ErrCommunitySize},
		{"two community cards", "AsAh", "KsQs", ErrCommunitySize},
		{"hole card repeated on board", "AsAh", "AsQsJs", ErrDuplicateCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := BestHand(MustParseCards(tt.hole), MustParseCards(tt.community))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBestHandIsNeverBeatenBySubset(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 300; i++ {
		cards, err := NewDeck(rng).DrawN(7)
		require.NoError(t, err)

		best, err := BestHand(cards[:2], cards[2:])
		require.NoError(t, err)

		for _, subset := range Combinations(cards) {
			winners, err := SelectWinners([]Hand{subset, best})
			require.NoError(t, err)
			require.Contains(t, winners, best, "%s beats chosen %s", subset, best)
		}
	}
}

func TestCombinations(t *testing.T) {
	t.Parallel()
	seven := MustParseCards("AsKsQsJsTs9s8s")

	assert.Len(t, Combinations(seven), 21)
	assert.Len(t, Combinations(seven[:5]), 1)
	assert.Len(t, Combinations(seven[:6]), 6)
	assert.Nil(t, Combinations(seven[:4]))

	seen := make(map[Hand]bool)
	for _, h := range Combinations(seven) {
		require.NoError(t, h.Validate())
		require.False(t, seen[h])
		seen[h] = true
	}
}
