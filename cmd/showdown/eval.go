package main

import (
	"fmt"

	"github.com/lox/showdown/internal/report"
	"github.com/lox/showdown/poker"
)

type EvalCmd struct {
	Hands []string `arg:"" help:"Hands to compare, e.g. 'AsKsQsJsTs' (two-card hole hands with --board)"`
	Board string   `short:"b" help:"Community cards; each hand is then a two-card hole hand"`
}

func (c *EvalCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	var board []poker.Card
	if c.Board != "" {
		if board, err = poker.ParseCards(c.Board); err != nil {
			return fmt.Errorf("failed to parse board: %w", err)
		}
	}

	entries := make([]report.Entry, len(c.Hands))
	for i, s := range c.Hands {
		cards, err := poker.ParseCards(s)
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}

		var hand poker.Hand
		if board == nil {
			hand, err = poker.NewHand(cards...)
		} else {
			hand, err = poker.BestHand(cards, board)
		}
		if err != nil {
			return fmt.Errorf("hand %d: %w", i+1, err)
		}
		entries[i] = report.Entry{Label: poker.FormatCards(cards), Hand: hand}
		logger.Debug("Evaluated hand", "hand", entries[i].Label, "best", hand.String(), "category", hand.Category())
	}

	hands := make([]poker.Hand, len(entries))
	for i, e := range entries {
		hands[i] = e.Hand
	}
	winners, err := poker.SelectWinnerIndices(hands)
	if err != nil {
		return err
	}

	if len(board) > 0 {
		fmt.Fprintf(g.stdout(), "board %s\n\n", poker.FormatCards(board))
	}
	return report.RenderShowdown(g.stdout(), entries, winners)
}
