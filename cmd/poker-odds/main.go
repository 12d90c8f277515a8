package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerodds/internal/config"
	"github.com/lox/pokerodds/internal/equity"
	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
	"github.com/lox/pokerodds/internal/randutil"
)

type CLI struct {
	Hands         []string `arg:"" optional:"" help:"Player hands such as 'AcKd' 'QhJs'"`
	Board         string   `short:"b" help:"Community board cards (e.g., 'Td7s8h')"`
	Possibilities bool     `short:"p" help:"Show hand type frequencies and reachable hands"`
	Workers       int      `short:"w" help:"Enumeration workers (overrides config, 0 = one per CPU)"`
	Shuffle       bool     `help:"Explore runouts in a shuffled order (results are identical)"`
	Seed          int64    `help:"Seed for --shuffle (overrides config, 0 = time based)"`
	Config        string   `short:"c" default:"poker-odds.hcl" help:"Path to HCL configuration file"`
	Scenario      string   `short:"s" help:"Run a named scenario from the config file"`
	LogLevel      string   `short:"l" help:"Log level (overrides config)"`
	NoColor       bool     `help:"Disable colored output"`
	Progress      bool     `help:"Show a progress bar on stderr"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("poker-odds"),
		kong.Description("Exact Texas Hold'em equity by enumerating every runout."))

	logger := log.New(os.Stderr)
	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	if err := run(ctx, &cli, logger, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Cancelled")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		kctx.Exit(1)
	}
}

func run(ctx context.Context, cli *CLI, logger *log.Logger, stdout, stderr io.Writer) error {
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Apply command line overrides
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.Workers != 0 {
		cfg.Workers = cli.Workers
	}
	if cli.Seed != 0 {
		cfg.Seed = cli.Seed
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger.SetLevel(cfg.Level())

	g, err := buildGame(cli, cfg)
	if err != nil {
		return err
	}

	logger.Debug("Starting poker-odds",
		"hands", g.NumHands(),
		"board", g.Board(),
		"runouts", equity.RunoutCount(g),
		"workers", cfg.Workers,
		"seed", cfg.Seed)

	opts := []equity.Option{
		equity.WithLogger(logger),
		equity.WithWorkers(cfg.Workers),
	}
	if cli.Shuffle || cfg.Seed != 0 {
		seed := randutil.Seed(cfg.Seed, time.Now())
		logger.Debug("Shuffling exploration order", "seed", seed)
		opts = append(opts, equity.WithShuffleSeed(seed))
	}

	var bar *progressBar
	if cli.Progress {
		bar = newProgressBar(stderr)
		opts = append(opts, equity.WithProgress(cfg.Interval(), bar.Update))
	}

	result, err := equity.NewCalculator(opts...).Calculate(ctx, g)
	if bar != nil {
		bar.Done()
	}
	if err != nil {
		return err
	}

	var reach []evaluator.Possibilities
	if cli.Possibilities {
		checker := evaluator.NewPossibilityChecker(g)
		for _, h := range g.Hands() {
			reach = append(reach, checker.Reachable(h))
		}
	}

	displayResults(stdout, g, result, reach)
	return nil
}

// buildGame validates the hands and board from a scenario or the command line
func buildGame(cli *CLI, cfg *config.Config) (*game.Game, error) {
	if cli.Scenario != "" {
		if len(cli.Hands) > 0 {
			return nil, fmt.Errorf("cannot combine --scenario with hands on the command line")
		}
		s, err := cfg.Scenario(cli.Scenario)
		if err != nil {
			return nil, err
		}
		board := s.Board
		if cli.Board != "" {
			board = cli.Board
		}
		return game.ParseGame(s.Hands, board)
	}

	if len(cli.Hands) == 0 {
		return nil, fmt.Errorf("at least one hand is required")
	}
	return game.ParseGame(cli.Hands, cli.Board)
}
