package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/game"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// parseCLI parses args the way main does, without exiting on error
func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()

	var cli CLI
	parser, err := kong.New(&cli, kong.Name("poker-odds"))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cli := parseCLI(t, args...)
	if cli.Config == "poker-odds.hcl" {
		cli.Config = filepath.Join(t.TempDir(), "missing.hcl")
	}

	var stdout bytes.Buffer
	logger := log.New(io.Discard)
	err := run(context.Background(), cli, logger, &stdout, io.Discard)
	return stdout.String(), err
}

func TestRunRiver(t *testing.T) {
	out, err := runCLI(t, "4d4h", "AcKc", "-b", "7d7cJd2h7s")
	require.NoError(t, err)

	assert.Contains(t, out, "river")
	assert.Contains(t, out, "4♦ 4♥")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "1 runouts in")
}

func TestRunPossibilities(t *testing.T) {
	out, err := runCLI(t, "AdKd", "QsQc", "-b", "KsQdTdJd", "-p")
	require.NoError(t, err)

	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "Straight")
	assert.Contains(t, out, "44 runouts in")
}

func TestRunDuplicateCard(t *testing.T) {
	_, err := runCLI(t, "AsKs", "AsQd")
	assert.ErrorIs(t, err, game.ErrDuplicateCard)

	_, err = runCLI(t, "AsKs", "QdJd", "-b", "Ks7h2c")
	assert.ErrorIs(t, err, game.ErrDuplicateCard)
}

func TestRunInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no hands", nil},
		{"three cards", []string{"AcKhQd"}},
		{"bad card", []string{"AcXy"}},
		{"six board cards", []string{"AcKh", "-b", "2c3c4c5c6c7c"}},
		{"bad log level", []string{"AcKh", "-l", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestRunScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poker-odds.hcl")
	src := `
workers = 2

scenario "flush-draw" {
  hands = ["AhKh", "QsQc"]
  board = "Jh7h2c5d"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := runCLI(t, "-c", path, "-s", "flush-draw", "--shuffle", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "turn")
	assert.Contains(t, out, "44 runouts in")

	_, err = runCLI(t, "-c", path, "-s", "missing")
	assert.ErrorIs(t, err, config.ErrUnknownScenario)

	_, err = runCLI(t, "-c", path, "-s", "flush-draw", "AsAd")
	assert.Error(t, err)
}

func TestRunCancelled(t *testing.T) {
	cli := parseCLI(t, "AsAh", "KsKh")
	cli.Config = filepath.Join(t.TempDir(), "missing.hcl")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, cli, log.New(io.Discard), io.Discard, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := newProgressBar(&buf)

	bar.Done()
	assert.Empty(t, buf.String(), "nothing drawn, nothing to end")

	out, err := runCLI(t, "4d4h", "AcKc", "-b", "7d7cJd2h", "--progress")
	require.NoError(t, err)
	assert.Contains(t, out, "44 runouts in")
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "50.0%", percent(0.5))
	assert.Equal(t, "0.0%", percent(0))
	assert.Equal(t, "100.0%", percent(1))
}
