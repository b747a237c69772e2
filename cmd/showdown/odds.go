package main

import (
	"fmt"
	"strings"

	"github.com/lox/showdown/cmd/showdown/shared"
	"github.com/lox/showdown/internal/report"
	"github.com/lox/showdown/internal/simulator"
	"github.com/lox/showdown/poker"
)

type OddsCmd struct {
	Hands      []string `arg:"" help:"Player hands, one argument each (e.g. AcKd QhJs)"`
	Board      string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Categories bool     `short:"c" help:"Show each hand's final category distribution"`
	Iterations int      `short:"i" help:"Number of Monte Carlo iterations" default:"100000"`
	Seed       int64    `help:"Random seed for reproducible results"`
}

func (c *OddsCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	holes, err := parseHands(c.Hands)
	if err != nil {
		return fmt.Errorf("failed to parse hands: %w", err)
	}

	var board []poker.Card
	if c.Board != "" {
		if board, err = poker.ParseCards(c.Board); err != nil {
			return fmt.Errorf("failed to parse board: %w", err)
		}
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	summary, err := simulator.New(simulator.Config{
		Runs:   c.Iterations,
		Seed:   c.Seed,
		Logger: logger,
	}).RunOdds(ctx, holes, board)
	if err != nil {
		return err
	}

	return report.RenderOdds(g.stdout(), summary, c.Categories)
}

func parseHands(args []string) ([][]poker.Card, error) {
	holes := make([][]poker.Card, 0, len(args))
	for i, arg := range args {
		hole, err := poker.ParseCards(strings.TrimSpace(arg))
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		if len(hole) != poker.HoleSize {
			return nil, fmt.Errorf("hand %d: must contain exactly 2 cards, got %d", i+1, len(hole))
		}
		holes = append(holes, hole)
	}
	return holes, nil
}
