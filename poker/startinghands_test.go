package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartingHands(t *testing.T) {
	t.Parallel()

	hands := StartingHands()
	require.Len(t, hands, NumStartingHands)

	labels := make(map[string]bool, len(hands))
	pairs, suited := 0, 0
	for _, h := range hands {
		assert.False(t, labels[h.Label()], "duplicate starting hand %s", h.Label())
		labels[h.Label()] = true
		assert.LessOrEqual(t, h.Low(), h.High())
		assert.NotEqual(t, h.Cards[0], h.Cards[1])
		if h.IsPair() {
			pairs++
		}
		if h.Suited() {
			suited++
		}
	}
	assert.Equal(t, 13, pairs)
	assert.Equal(t, 78, suited)

	assert.Equal(t, "2,2", hands[0].Label())
	assert.Equal(t, "2,3", hands[1].Label())
	assert.Equal(t, "2,3s", hands[2].Label())
	assert.Equal(t, "A,A", hands[len(hands)-1].Label())
}

func TestStartingHandLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b   Rank
		suited bool
		want   string
	}{
		{Two, Ace, true, "2,As"},
		{King, King, false, "K,K"},
		{Jack, Nine, false, "9,J"},
		{Ten, Queen, true, "T,Qs"},
	}
	for _, tt := range tests {
		h, err := NewStartingHand(tt.a, tt.b, tt.suited)
		require.NoError(t, err)
		assert.Equal(t, tt.want, h.Label())
	}
}

func TestNewStartingHandCanonicalSuits(t *testing.T) {
	t.Parallel()

	offsuit, err := NewStartingHand(Ace, Two, false)
	require.NoError(t, err)
	assert.Equal(t, NewCard(Two, Diamonds), offsuit.Cards[0])
	assert.Equal(t, NewCard(Ace, Hearts), offsuit.Cards[1])

	suited, err := NewStartingHand(Ace, Two, true)
	require.NoError(t, err)
	assert.Equal(t, NewCard(Ace, Diamonds), suited.Cards[1])

	_, err = NewStartingHand(Ace, Ace, true)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	_, err = NewStartingHand(NoRank, Ace, false)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestParseStartingHandLabel(t *testing.T) {
	t.Parallel()

	for _, h := range StartingHands() {
		got, err := ParseStartingHandLabel(h.Label())
		require.NoError(t, err, h.Label())
		assert.Equal(t, h, got)
	}

	h, err := ParseStartingHandLabel(`"10,Js"`)
	require.NoError(t, err)
	assert.Equal(t, "T,Js", h.Label())

	h, err = ParseStartingHandLabel(" K,9 ")
	require.NoError(t, err)
	assert.Equal(t, "9,K", h.Label())

	for _, bad := range []string{"", "A", "A,K,Q", "A,X", "A,As", "1,2"} {
		_, err := ParseStartingHandLabel(bad)
		assert.Error(t, err, bad)
	}
}
