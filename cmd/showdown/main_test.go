package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/results"
	"github.com/lox/showdown/poker"
)

// run parses args like the binary would and runs the selected command
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithConfig(t, filepath.Join(t.TempDir(), "missing.hcl"), args...)
}

func runWithConfig(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, options()...)
	require.NoError(t, err)

	args = append([]string{"--config", configPath, "--no-color", "--log-level", "error"}, args...)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	cli.Stdout = &stdout
	cli.Stderr = &stderr
	err = kctx.Run(&cli.Globals)
	return stdout.String(), err
}

func TestParseHands(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected int
		hasError bool
	}{
		{name: "Single hand", input: []string{"AcKh"}, expected: 1},
		{name: "Multiple hands", input: []string{"AcKh", "KdQs"}, expected: 2},
		{name: "Hand with spaces", input: []string{"Ac Kh"}, expected: 1},
		{name: "Ten as 10", input: []string{"10c10h"}, expected: 1},
		{name: "Invalid hand - too many cards", input: []string{"AcKhQd"}, hasError: true},
		{name: "Invalid hand - too few cards", input: []string{"Ac"}, hasError: true},
		{name: "Invalid card format", input: []string{"AcXy"}, hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := parseHands(tt.input)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, hands, tt.expected)
		})
	}
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, "eval", "2h 2d 2c Kc Qd", "2s 2c 5d 6h 7c")
	require.NoError(t, err)
	assert.Contains(t, out, "set")
	assert.Contains(t, out, "winner")

	out, err = run(t, "eval", "--board", "Qs Js Ts 2c 3d", "AsKs", "QhQd")
	require.NoError(t, err)
	assert.Contains(t, out, "board Qs Js Ts 2c 3d")
	assert.Contains(t, out, "straight flush")
}

func TestEvalCommandErrors(t *testing.T) {
	_, err := run(t, "eval", "As Ks")
	assert.ErrorIs(t, err, poker.ErrHandSize)

	_, err = run(t, "eval", "--board", "Qs Js Ts 2c", "AsKs")
	assert.ErrorIs(t, err, poker.ErrCommunitySize)

	_, err = run(t, "eval", "As Ks Qs Js Ts", "As Kd Qd Jd 9c")
	require.NoError(t, err, "hands are compared independently")
}

func TestOddsCommand(t *testing.T) {
	out, err := run(t, "odds", "--iterations", "500", "--seed", "3", "--categories", "--board", "Kd8s3h", "AsAh", "7c2d")
	require.NoError(t, err)
	assert.Contains(t, out, "As Ah")
	assert.Contains(t, out, "7c 2d")
	assert.Contains(t, out, "500 iterations")
	assert.Contains(t, out, "pair")

	_, err = run(t, "odds", "AsAh", "AsKd")
	assert.ErrorIs(t, err, poker.ErrDuplicateCard)
}

func TestFiveCommand(t *testing.T) {
	out, err := run(t, "five", "--runs", "200", "--players", "4", "--seed", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "200 deals")
	assert.Contains(t, out, "seed 8")

	_, err = run(t, "five", "--runs", "10", "--players", "11")
	assert.Error(t, err)
}

func TestHoldemAndChartCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	out, err := run(t, "holdem", "--runs", "20", "--players", "2", "--seed", "4", "--workers", "2", "--no-progress", "--output", path, "--chart")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)
	assert.Contains(t, out, "Suited Consecutive")

	rows, err := results.Load(path)
	require.NoError(t, err)
	assert.Len(t, rows, poker.NumStartingHands)

	out, err = run(t, "chart", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Hold'em hand results")
	assert.Contains(t, out, "Pairs")
}

func TestHoldemDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "showdown.hcl")
	require.NoError(t, os.WriteFile(cfg, []byte(`
simulation {
  runs    = 5
  players = 3
}
output {
  dir = "`+filepath.ToSlash(filepath.Join(dir, "out"))+`"
}
`), 0o644))

	_, err := runWithConfig(t, cfg, "holdem", "--flop-only", "--no-progress", "--seed", "1")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "out", "holdem_5_runs_3_hands_floponly.csv"))
	assert.NoError(t, err)
}

func TestChartCommandTooFewRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.csv")
	require.NoError(t, os.WriteFile(path, []byte("\"A,A\", 0.850000\n"), 0o644))

	_, err := run(t, "chart", path)
	assert.Error(t, err)
}
