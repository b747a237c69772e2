package poker

import (
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// NewStandardCards returns all 52 cards ordered by suit, then rank.
func NewStandardCards() []Card {
	cards := make([]Card, 0, DeckSize)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Deck holds the cards remaining in a single trial. Draws are uniform over the
// remaining cards and remove the drawn card. A Deck must not be shared between
// goroutines.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full 52-card deck drawing from rng
func NewDeck(rng *rand.Rand) *Deck {
	return &Deck{
		cards: NewStandardCards(),
		rng:   rng,
	}
}

// Draw removes and returns a uniformly random card
func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}

	i := d.rng.IntN(len(d.cards))
	card := d.cards[i]

	// Swap-remove; order of the remaining cards carries no meaning
	last := len(d.cards) - 1
	d.cards[i] = d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// DrawN draws n cards
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d remaining: %w", n, len(d.cards), ErrDeckEmpty)
	}
	cards := make([]Card, n)
	for i := range cards {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}

// Remove takes specific cards out of the deck, e.g. a fixed hand under test.
// A card that is not present is reported as ErrCardNotInDeck.
func (d *Deck) Remove(cards ...Card) error {
	for _, card := range cards {
		idx := -1
		for i, c := range d.cards {
			if c == card {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("remove %s: %w", card, ErrCardNotInDeck)
		}
		last := len(d.cards) - 1
		d.cards[idx] = d.cards[last]
		d.cards = d.cards[:last]
	}
	return nil
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
