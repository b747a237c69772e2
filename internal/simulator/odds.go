package simulator

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/statistics"
	"github.com/lox/showdown/poker"
)

// PlayerOdds is the equity of one hole hand
type PlayerOdds struct {
	Hole  []poker.Card
	Tally statistics.Tally
	// Final category of the player's best hand in every iteration
	Final statistics.CategoryCounts
}

// OddsSummary is the result of an equity calculation
type OddsSummary struct {
	Players    []PlayerOdds
	Board      []poker.Card
	Iterations int
	Seed       int64
	Elapsed    time.Duration
}

// RunOdds estimates each hole hand's equity by completing board with random
// cards Runs times. A full five-card board is evaluated once.
func (s *Simulator) RunOdds(ctx context.Context, holes [][]poker.Card, board []poker.Card) (*OddsSummary, error) {
	if len(holes) == 0 {
		return nil, poker.ErrNoHands
	}
	for i, hole := range holes {
		if len(hole) != poker.HoleSize {
			return nil, fmt.Errorf("hand %d: %w: got %d cards", i+1, poker.ErrHoleSize, len(hole))
		}
	}
	switch len(board) {
	case 0, poker.FlopSize, poker.FlopSize + 1, poker.BoardSize:
	default:
		return nil, fmt.Errorf("%w: board must have 0, 3, 4 or 5 cards, got %d", poker.ErrCommunitySize, len(board))
	}
	if err := validateNoDuplicates(holes, board); err != nil {
		return nil, err
	}

	iterations := s.config.Runs
	if len(board) == poker.BoardSize {
		iterations = 1
	}
	if iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", iterations)
	}

	start := s.clock.Now()
	rng := randutil.New(s.config.Seed)
	summary := &OddsSummary{
		Players:    make([]PlayerOdds, len(holes)),
		Board:      board,
		Iterations: iterations,
		Seed:       s.config.Seed,
	}
	for i, hole := range holes {
		summary.Players[i].Hole = hole
	}

	known := slices.Concat(append(slices.Clone(holes), board)...)
	best := make([]poker.Hand, len(holes))

	s.logger.Info("Calculating odds", "players", len(holes), "board", poker.FormatCards(board), "iterations", iterations, "seed", s.config.Seed)

	for iter := 0; iter < iterations; iter++ {
		if iter%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		deck := poker.NewDeck(rng)
		if err := deck.Remove(known...); err != nil {
			return nil, err
		}
		extra, err := deck.DrawN(poker.BoardSize - len(board))
		if err != nil {
			return nil, err
		}
		fullBoard := slices.Concat(board, extra)

		for i, hole := range holes {
			if best[i], err = poker.BestHand(hole, fullBoard); err != nil {
				return nil, fmt.Errorf("hand %d: %w", i+1, err)
			}
			summary.Players[i].Final[best[i].Category()]++
		}

		winners, err := poker.SelectWinnerIndices(best)
		if err != nil {
			return nil, err
		}
		split := len(winners) > 1
		for i := range holes {
			won := slices.Contains(winners, i)
			summary.Players[i].Tally.Add(won, split, best[i].Category())
		}
	}

	summary.Elapsed = s.clock.Since(start)
	return summary, nil
}

func validateNoDuplicates(holes [][]poker.Card, board []poker.Card) error {
	seen := make(map[poker.Card]bool)
	for _, card := range board {
		if !card.Valid() {
			return fmt.Errorf("board: %w: %v", poker.ErrInvalidCard, card)
		}
		if seen[card] {
			return fmt.Errorf("%w: %s on board", poker.ErrDuplicateCard, card)
		}
		seen[card] = true
	}
	for i, hole := range holes {
		for _, card := range hole {
			if !card.Valid() {
				return fmt.Errorf("hand %d: %w: %v", i+1, poker.ErrInvalidCard, card)
			}
			if seen[card] {
				return fmt.Errorf("%w: %s in hand %d", poker.ErrDuplicateCard, card, i+1)
			}
			seen[card] = true
		}
	}
	return nil
}
