// Package config loads showdown settings from HCL.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/showdown/internal/simulator"
)

// Game names
const (
	GameHoldem   = "holdem"
	GameFiveCard = "five"
)

// Config represents the complete showdown configuration
type Config struct {
	Simulation SimulationSettings
	Output     OutputSettings
	Log        LogSettings
}

// SimulationSettings controls the Monte Carlo runs
type SimulationSettings struct {
	Runs     int    `hcl:"runs,optional"`
	Players  int    `hcl:"players,optional"`
	Game     string `hcl:"game,optional"`
	FlopOnly bool   `hcl:"flop_only,optional"`
	Seed     int64  `hcl:"seed,optional"`
	Workers  int    `hcl:"workers,optional"`
}

// OutputSettings controls where results go
type OutputSettings struct {
	Dir   string `hcl:"dir,optional"`
	Chart bool   `hcl:"chart,optional"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
}

// every block is optional in the file
type fileConfig struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
	Log        *LogSettings        `hcl:"log,block"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Runs:    10000,
			Players: 6,
			Game:    GameHoldem,
		},
		Output: OutputSettings{
			Dir: ".",
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the
// defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if fc.Simulation != nil {
		config.Simulation = *fc.Simulation
	}
	if fc.Output != nil {
		config.Output = *fc.Output
	}
	if fc.Log != nil {
		config.Log = *fc.Log
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()

	if config.Simulation.Runs == 0 {
		config.Simulation.Runs = defaults.Simulation.Runs
	}
	if config.Simulation.Players == 0 {
		config.Simulation.Players = defaults.Simulation.Players
	}
	if config.Simulation.Game == "" {
		config.Simulation.Game = defaults.Simulation.Game
	}
	if config.Output.Dir == "" {
		config.Output.Dir = defaults.Output.Dir
	}
	if config.Log.Level == "" {
		config.Log.Level = defaults.Log.Level
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Runs <= 0 {
		return fmt.Errorf("runs must be positive")
	}

	switch c.Simulation.Game {
	case GameHoldem:
		if c.Simulation.Players < 2 || c.Simulation.Players > simulator.MaxHoldemPlayers {
			return fmt.Errorf("hold'em players must be between 2 and %d", simulator.MaxHoldemPlayers)
		}
	case GameFiveCard:
		if c.Simulation.Players < 1 || c.Simulation.Players > simulator.MaxFiveCardPlayers {
			return fmt.Errorf("five-card players must be between 1 and %d", simulator.MaxFiveCardPlayers)
		}
		if c.Simulation.FlopOnly {
			return fmt.Errorf("flop_only applies to hold'em only")
		}
	default:
		return fmt.Errorf("unknown game: %s", c.Simulation.Game)
	}

	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers cannot be negative")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output dir is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	return nil
}
