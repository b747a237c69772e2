package simulator

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/showdown/internal/randutil"
	"github.com/lox/showdown/internal/statistics"
	"github.com/lox/showdown/poker"
)

const (
	// MaxFiveCardPlayers is the most five-card hands one deck can deal.
	MaxFiveCardPlayers = poker.DeckSize / poker.HandSize
	// MaxHoldemPlayers is the most hold'em players one deck can seat with a full board.
	MaxHoldemPlayers = (poker.DeckSize - poker.BoardSize) / poker.HoleSize

	// how often long loops look at ctx
	cancelCheckInterval = 1024
)

// Config holds configuration for running simulations
type Config struct {
	Runs     int   // Deals per simulation (five-card) or trials per starting hand (hold'em)
	Players  int   // Hands dealt per trial, including the hand under test
	FlopOnly bool  // Hold'em: stop after the flop
	Seed     int64 // 0 picks a time-based seed
	Workers  int   // Parallel starting hands; 0 means one per CPU

	Logger   *log.Logger
	Clock    quartz.Clock
	Progress Progress
}

// Progress receives hold'em simulation progress. Calls are serialised.
type Progress interface {
	OnStart(total int)
	OnHandComplete(result HandResult, completed, total int)
}

// HandResult is the outcome of simulating one starting hand
type HandResult struct {
	Hand  poker.StartingHand
	Tally statistics.Tally
}

// HoldemSummary is the result of a full starting-hand simulation
type HoldemSummary struct {
	Results []HandResult // Sorted by win fraction, best first
	Seed    int64
	Elapsed time.Duration
}

// FiveCardSummary is the result of a five-card showdown simulation
type FiveCardSummary struct {
	Runs       int
	Categories statistics.CategoryCounts // Winning category per deal
	Seed       int64
	Elapsed    time.Duration
}

// Simulator runs Monte Carlo showdown simulations
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	s := &Simulator{config: config, logger: config.Logger, clock: config.Clock}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	if s.config.Workers <= 0 {
		s.config.Workers = runtime.NumCPU()
	}
	s.config.Seed = randutil.SeedOrNow(s.config.Seed)
	return s
}

// Seed returns the seed the simulator runs with
func (s *Simulator) Seed() int64 {
	return s.config.Seed
}

// RunFiveCard deals Players five-card hands per run from a fresh deck and
// counts the category of the winning hand.
func (s *Simulator) RunFiveCard(ctx context.Context) (*FiveCardSummary, error) {
	if s.config.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", s.config.Runs)
	}
	if s.config.Players < 1 || s.config.Players > MaxFiveCardPlayers {
		return nil, fmt.Errorf("five-card players must be between 1 and %d, got %d", MaxFiveCardPlayers, s.config.Players)
	}

	start := s.clock.Now()
	rng := randutil.New(s.config.Seed)
	summary := &FiveCardSummary{Runs: s.config.Runs, Seed: s.config.Seed}
	debug := s.logger.GetLevel() <= log.DebugLevel

	s.logger.Info("Running five-card simulation", "runs", s.config.Runs, "players", s.config.Players, "seed", s.config.Seed)

	for run := 0; run < s.config.Runs; run++ {
		if run%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		hands, err := dealFiveCardHands(rng, s.config.Players)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", run, err)
		}
		winners, err := poker.SelectWinnerIndices(hands)
		if err != nil {
			return nil, fmt.Errorf("run %d: %w", run, err)
		}

		category := hands[winners[0]].Category()
		summary.Categories[category]++

		if debug {
			for _, w := range winners {
				s.logger.Debug("Winner", "run", run, "hand", hands[w].String(), "category", category)
			}
		}
	}

	summary.Elapsed = s.clock.Since(start)
	s.logger.Info("Five-card simulation complete", "runs", s.config.Runs, "elapsed", summary.Elapsed)
	return summary, nil
}

func dealFiveCardHands(rng *rand.Rand, players int) ([]poker.Hand, error) {
	deck := poker.NewDeck(rng)
	hands := make([]poker.Hand, players)
	for i := range hands {
		cards, err := deck.DrawN(poker.HandSize)
		if err != nil {
			return nil, err
		}
		if hands[i], err = poker.NewHand(cards...); err != nil {
			return nil, err
		}
	}
	return hands, nil
}

// RunHoldem simulates every canonical starting hand against Players-1
// random opponents. Each starting hand draws from its own random stream, so
// results depend only on the seed and not on the worker count.
func (s *Simulator) RunHoldem(ctx context.Context) (*HoldemSummary, error) {
	if s.config.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", s.config.Runs)
	}
	if s.config.Players < 2 || s.config.Players > MaxHoldemPlayers {
		return nil, fmt.Errorf("hold'em players must be between 2 and %d, got %d", MaxHoldemPlayers, s.config.Players)
	}

	start := s.clock.Now()
	hands := poker.StartingHands()
	results := make([]HandResult, len(hands))

	s.logger.Info("Running hold'em simulation",
		"hands", len(hands),
		"runs", s.config.Runs,
		"players", s.config.Players,
		"flop_only", s.config.FlopOnly,
		"workers", s.config.Workers,
		"seed", s.config.Seed)

	var mu sync.Mutex
	completed := 0
	if s.config.Progress != nil {
		s.config.Progress.OnStart(len(hands))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i, hand := range hands {
		g.Go(func() error {
			tally, err := s.simulateStartingHand(ctx, hand, randutil.Stream(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("%s: %w", hand.Label(), err)
			}
			results[i] = HandResult{Hand: hand, Tally: tally}

			mu.Lock()
			defer mu.Unlock()
			completed++
			s.logger.Debug("Starting hand complete",
				"hand", hand.Label(),
				"win", fmt.Sprintf("%.2f%%", tally.WinFraction()*100),
				"completed", completed)
			if s.config.Progress != nil {
				s.config.Progress.OnHandComplete(results[i], completed, len(hands))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(results, func(a, b HandResult) int {
		return cmp.Compare(b.Tally.WinFraction(), a.Tally.WinFraction())
	})

	summary := &HoldemSummary{Results: results, Seed: s.config.Seed, Elapsed: s.clock.Since(start)}
	s.logger.Info("Hold'em simulation complete", "elapsed", summary.Elapsed)
	return summary, nil
}

func (s *Simulator) simulateStartingHand(ctx context.Context, hand poker.StartingHand, rng *rand.Rand) (statistics.Tally, error) {
	var tally statistics.Tally
	for run := 0; run < s.config.Runs; run++ {
		if run%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
		}
		outcome, err := PlayHoldemTrial(rng, hand.Cards[:], s.config.Players-1, s.config.FlopOnly)
		if err != nil {
			return tally, fmt.Errorf("trial %d: %w", run, err)
		}
		tally.Add(outcome.Won, outcome.Split, outcome.Category)
	}
	return tally, tally.Validate()
}

// Outcome describes one hold'em trial from the hero's point of view
type Outcome struct {
	Won      bool           // Hero is among the winners
	Split    bool           // More than one player won
	Category poker.Category // Category of the winning hand
	Winners  []int          // Seat indices of the winners; the hero sits last
	Board    []poker.Card
	Best     []poker.Hand // Best hand per seat
}

// PlayHoldemTrial deals one hand of hold'em: the hero's cards are taken out
// of a fresh deck, each opponent receives two cards, then the flop (and turn
// and river unless flopOnly). Every seat's best five-card hand goes to
// showdown.
func PlayHoldemTrial(rng *rand.Rand, hero []poker.Card, opponents int, flopOnly bool) (Outcome, error) {
	deck := poker.NewDeck(rng)
	if err := deck.Remove(hero...); err != nil {
		return Outcome{}, err
	}

	holes := make([][]poker.Card, 0, opponents+1)
	for range opponents {
		hole, err := deck.DrawN(poker.HoleSize)
		if err != nil {
			return Outcome{}, err
		}
		holes = append(holes, hole)
	}
	holes = append(holes, hero)

	boardSize := poker.BoardSize
	if flopOnly {
		boardSize = poker.FlopSize
	}
	board, err := deck.DrawN(boardSize)
	if err != nil {
		return Outcome{}, err
	}

	best := make([]poker.Hand, len(holes))
	for i, hole := range holes {
		if best[i], err = poker.BestHand(hole, board); err != nil {
			return Outcome{}, fmt.Errorf("seat %d: %w", i, err)
		}
	}

	winners, err := poker.SelectWinnerIndices(best)
	if err != nil {
		return Outcome{}, err
	}

	heroSeat := len(holes) - 1
	return Outcome{
		Won:      slices.Contains(winners, heroSeat),
		Split:    len(winners) > 1,
		Category: best[winners[0]].Category(),
		Winners:  winners,
		Board:    board,
		Best:     best,
	}, nil
}
