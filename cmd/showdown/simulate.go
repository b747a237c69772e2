package main

import (
	"fmt"
	"path/filepath"

	"github.com/coder/quartz"

	"github.com/lox/showdown/cmd/showdown/shared"
	"github.com/lox/showdown/internal/config"
	"github.com/lox/showdown/internal/report"
	"github.com/lox/showdown/internal/results"
	"github.com/lox/showdown/internal/simulator"
)

// SimulationFlags override the simulation block of the config file
type SimulationFlags struct {
	Runs    int   `short:"r" help:"Number of runs"`
	Players int   `short:"p" help:"Hands dealt per run"`
	Seed    int64 `help:"Random seed for reproducible results"`
	Workers int   `short:"w" help:"Parallel workers (0 = one per CPU)"`
}

func (f SimulationFlags) apply(s *config.SimulationSettings) {
	if f.Runs != 0 {
		s.Runs = f.Runs
	}
	if f.Players != 0 {
		s.Players = f.Players
	}
	if f.Seed != 0 {
		s.Seed = f.Seed
	}
	if f.Workers != 0 {
		s.Workers = f.Workers
	}
}

type HoldemCmd struct {
	SimulationFlags

	FlopOnly   bool   `short:"f" help:"Stop each run after the flop"`
	Output     string `short:"o" help:"Results file (defaults to a name derived from the run in the output dir)" type:"path"`
	Chart      bool   `help:"Chart the results when done"`
	NoProgress bool   `help:"Hide the progress bar"`
}

func (c *HoldemCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	c.apply(&cfg.Simulation)
	cfg.Simulation.Game = config.GameHoldem
	cfg.Simulation.FlopOnly = cfg.Simulation.FlopOnly || c.FlopOnly
	cfg.Output.Chart = cfg.Output.Chart || c.Chart
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	clock := quartz.NewReal()
	simConfig := simulator.Config{
		Runs:     cfg.Simulation.Runs,
		Players:  cfg.Simulation.Players,
		FlopOnly: cfg.Simulation.FlopOnly,
		Seed:     cfg.Simulation.Seed,
		Workers:  cfg.Simulation.Workers,
		Logger:   logger,
		Clock:    clock,
	}
	if !c.NoProgress {
		simConfig.Progress = newProgressBar(g.stderr(), clock, g.NoColor)
	}

	summary, err := simulator.New(simConfig).RunHoldem(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	rows := results.FromSummary(summary)
	path := c.Output
	if path == "" {
		name := results.Filename(config.GameHoldem, cfg.Simulation.Runs, cfg.Simulation.Players, cfg.Simulation.FlopOnly)
		path = filepath.Join(cfg.Output.Dir, name)
	}
	if err := results.Save(path, rows); err != nil {
		return err
	}
	logger.Info("Saved results", "path", path, "seed", summary.Seed, "elapsed", summary.Elapsed)
	fmt.Fprintf(g.stdout(), "wrote %s\n", path)

	if !cfg.Output.Chart {
		return nil
	}
	return renderChart(g, rows)
}

type FiveCmd struct {
	SimulationFlags
}

func (c *FiveCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	c.apply(&cfg.Simulation)
	cfg.Simulation.Game = config.GameFiveCard
	cfg.Simulation.FlopOnly = false
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	summary, err := simulator.New(simulator.Config{
		Runs:    cfg.Simulation.Runs,
		Players: cfg.Simulation.Players,
		Seed:    cfg.Simulation.Seed,
		Logger:  logger,
	}).RunFiveCard(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return report.RenderCategoryTally(g.stdout(), summary)
}
