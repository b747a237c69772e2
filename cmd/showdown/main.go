package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/lox/showdown/cmd/showdown/shared"
	"github.com/lox/showdown/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Version  kong.VersionFlag `help:"Show version"`
	Config   string           `help:"HCL configuration file" default:"showdown.hcl" type:"path"`
	LogLevel string           `help:"Log level (debug, info, warn, error); overrides the config file"`
	NoColor  bool             `help:"Disable coloured output"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Holdem HoldemCmd `cmd:"" help:"Simulate every hold'em starting hand and save the results"`
	Five   FiveCmd   `cmd:"" help:"Simulate five-card showdowns and tally winning categories"`
	Chart  ChartCmd  `cmd:"" help:"Chart hold'em results from a CSV file"`
	Eval   EvalCmd   `cmd:"" help:"Evaluate hands and pick the winners"`
	Odds   OddsCmd   `cmd:"" help:"Calculate hold'em equity for explicit hands"`
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("showdown"),
		kong.Description("Poker hand evaluation and Monte Carlo showdown simulation"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options()...)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

// setup loads the config file, applies global overrides and builds the logger
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.LoadConfig(g.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}

	logger, err := shared.SetupLogger(cfg.Log.Level, g.stderr())
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded configuration", "path", g.Config)
	return cfg, logger, nil
}
