// Package equity computes exact showdown frequencies by enumerating every
// completion of the board.
//
// Each distinct set of remaining board cards is visited once, so an empty
// board with two hands visits C(48,5) = 1,712,304 runouts. Every branch of
// the walk gets its own game.Board value; nothing is shared between
// siblings.
package equity

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
	"github.com/lox/pokerodds/internal/randutil"
)

// progressBatch is how many runouts a worker scores before publishing them
const progressBatch = 4096

// Progress reports how many runouts have been scored so far
type Progress struct {
	Done  uint64
	Total uint64
}

// Fraction returns Done/Total in [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 1
	}
	return float64(p.Done) / float64(p.Total)
}

// Option configures a Calculator
type Option func(*Calculator)

// WithWorkers sets how many goroutines share the enumeration
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(logger *log.Logger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// WithClock sets the clock used for timing and progress ticks
func WithClock(clock quartz.Clock) Option {
	return func(c *Calculator) {
		c.clock = clock
	}
}

// WithProgress calls fn every interval while a calculation runs, and once
// more when it completes.
func WithProgress(interval time.Duration, fn func(Progress)) Option {
	return func(c *Calculator) {
		c.progressInterval = interval
		c.onProgress = fn
	}
}

// WithShuffleSeed explores the deck in an order shuffled by seed. Counts
// are identical to the unshuffled walk.
func WithShuffleSeed(seed int64) Option {
	return func(c *Calculator) {
		c.shuffle = true
		c.seed = seed
	}
}

// Calculator enumerates runouts for a game. It is safe for concurrent use.
type Calculator struct {
	workers          int
	logger           *log.Logger
	clock            quartz.Clock
	progressInterval time.Duration
	onProgress       func(Progress)
	shuffle          bool
	seed             int64
}

// NewCalculator creates a calculator with the given options
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		workers:          min(runtime.NumCPU(), 8),
		logger:           log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
		clock:            quartz.NewReal(),
		progressInterval: 250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunoutCount returns how many runouts Calculate will visit for g
func RunoutCount(g *game.Game) uint64 {
	return binomial(g.Deck().Len(), g.Board().Open())
}

// Calculate enumerates every completion of the board and scores each hand.
// It returns ctx.Err() if the context is cancelled before it finishes.
func (c *Calculator) Calculate(ctx context.Context, g *game.Game) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := c.clock.Now()
	board := g.Board()
	hands := g.Hands()

	d := g.Deck()
	if c.shuffle {
		d.Shuffle(randutil.New(c.seed))
	}
	cards := d.Cards()
	total := binomial(len(cards), board.Open())

	// Each top-level branch fixes the first undealt board card. A full
	// board has one branch: itself.
	branches := len(cards) - board.Open() + 1
	if board.IsComplete() {
		branches = 1
	}
	workers := max(min(c.workers, branches), 1)

	c.logger.Debug("Starting enumeration",
		"hands", len(hands),
		"board", board,
		"street", board.Street(),
		"runouts", total,
		"workers", workers)

	var done atomic.Uint64
	stopProgress := c.startProgress(ctx, &done, total)

	var next atomic.Int64
	tallies := make([]*tally, workers)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := range tallies {
		t := newTally(hands, &done)
		tallies[w] = t
		eg.Go(func() error {
			if board.IsComplete() {
				if w == 0 {
					t.score(board)
				}
				t.flush()
				return nil
			}
			for {
				i := int(next.Add(1) - 1)
				if i >= branches {
					t.flush()
					return nil
				}
				b, err := board.Play(cards[i])
				if err != nil {
					return err
				}
				if err := t.enumerate(egCtx, b, cards[i+1:]); err != nil {
					return err
				}
			}
		})
	}

	err := eg.Wait()
	stopProgress()
	if err != nil {
		c.logger.Debug("Enumeration stopped", "error", err, "done", done.Load(), "total", total)
		return nil, err
	}

	result := merge(hands, tallies)
	result.BoardCards = board.Count()
	result.Elapsed = c.clock.Since(start)
	if result.Runouts != total {
		return nil, fmt.Errorf("enumerated %d runouts, expected %d", result.Runouts, total)
	}

	if c.onProgress != nil {
		c.onProgress(Progress{Done: total, Total: total})
	}

	c.logger.Debug("Enumeration complete",
		"runouts", result.Runouts,
		"ties", result.Ties,
		"elapsed", result.Elapsed)

	return result, nil
}

// startProgress runs the progress callback on a ticker until the returned
// stop func is called.
func (c *Calculator) startProgress(ctx context.Context, done *atomic.Uint64, total uint64) func() {
	if c.onProgress == nil || c.progressInterval <= 0 {
		return func() {}
	}

	tickCtx, cancel := context.WithCancel(ctx)
	w := c.clock.TickerFunc(tickCtx, c.progressInterval, func() error {
		p := Progress{Done: done.Load(), Total: total}
		c.logger.Debug("Enumeration progress", "done", p.Done, "total", p.Total)
		c.onProgress(p)
		return nil
	}, "equity", "progress")

	return func() {
		cancel()
		_ = w.Wait()
	}
}

// tally is one worker's private counters
type tally struct {
	hands   []game.PlayerHand
	done    *atomic.Uint64
	pending uint64

	runouts    uint64
	ties       uint64
	wins       []uint64
	handTies   []uint64
	splits     [][]uint64
	categories [][evaluator.NumHandRanks]uint64

	made    []evaluator.MadeHand
	winners []int
}

func newTally(hands []game.PlayerHand, done *atomic.Uint64) *tally {
	t := &tally{
		hands:      hands,
		done:       done,
		wins:       make([]uint64, len(hands)),
		handTies:   make([]uint64, len(hands)),
		splits:     make([][]uint64, len(hands)),
		categories: make([][evaluator.NumHandRanks]uint64, len(hands)),
		made:       make([]evaluator.MadeHand, len(hands)),
		winners:    make([]int, 0, len(hands)),
	}
	for i := range t.splits {
		t.splits[i] = make([]uint64, len(hands)+1)
	}
	return t
}

// enumerate places each remaining card into the next open slot. rest holds
// only cards after the last one placed, so every combination is visited
// exactly once.
func (t *tally) enumerate(ctx context.Context, b game.Board, rest []deck.Card) error {
	if b.IsComplete() {
		t.score(b)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	open := b.Open()
	for i := 0; i+open <= len(rest); i++ {
		next, err := b.Play(rest[i])
		if err != nil {
			return err
		}
		if err := t.enumerate(ctx, next, rest[i+1:]); err != nil {
			return err
		}
	}
	return nil
}

func (t *tally) score(b game.Board) {
	for i, h := range t.hands {
		t.made[i] = evaluator.EvaluateHand(h, b)
		t.categories[i][t.made[i].Rank]++
	}

	t.winners = evaluator.AppendWinners(t.winners[:0], t.made)
	shared := len(t.winners) > 1
	for _, w := range t.winners {
		t.wins[w]++
		t.splits[w][len(t.winners)]++
		if shared {
			t.handTies[w]++
		}
	}
	if shared {
		t.ties++
	}

	t.runouts++
	t.pending++
	if t.pending == progressBatch {
		t.flush()
	}
}

// flush publishes pending runouts to the shared progress counter
func (t *tally) flush() {
	t.done.Add(t.pending)
	t.pending = 0
}

func merge(hands []game.PlayerHand, tallies []*tally) *Result {
	r := &Result{Hands: make([]HandResult, len(hands))}
	for i, h := range hands {
		r.Hands[i] = HandResult{Hand: h, Splits: make([]uint64, len(hands)+1)}
	}

	for _, t := range tallies {
		r.Runouts += t.runouts
		r.Ties += t.ties
		for i := range r.Hands {
			hr := &r.Hands[i]
			hr.Wins += t.wins[i]
			hr.Ties += t.handTies[i]
			for k, n := range t.splits[i] {
				hr.Splits[k] += n
			}
			for cat, n := range t.categories[i] {
				hr.Categories[cat] += n
			}
		}
	}
	return r
}

// binomial returns n choose k
func binomial(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	result := uint64(1)
	for i := 1; i <= k; i++ {
		result = result * uint64(n-k+i) / uint64(i)
	}
	return result
}
