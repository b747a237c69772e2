package main

import (
	"fmt"

	"github.com/lox/showdown/internal/report"
	"github.com/lox/showdown/internal/results"
)

type ChartCmd struct {
	File string `arg:"" help:"Results CSV written by the holdem command" type:"existingfile"`
}

func (c *ChartCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	rows, err := results.Load(c.File)
	if err != nil {
		return err
	}
	logger.Debug("Loaded results", "path", c.File, "rows", len(rows))

	return renderChart(g, rows)
}

func renderChart(g *Globals, rows []results.Row) error {
	thresholds, err := report.ComputeThresholds(rows)
	if err != nil {
		return fmt.Errorf("failed to compute thresholds: %w", err)
	}
	return report.RenderChart(g.stdout(), report.SplitByArchetype(rows, thresholds.Threshold), thresholds)
}
