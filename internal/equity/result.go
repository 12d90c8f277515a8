package equity

import (
	"time"

	"github.com/lox/pokerodds/internal/evaluator"
	"github.com/lox/pokerodds/internal/game"
)

// Result holds the outcome of one exhaustive enumeration
type Result struct {
	// Hands are in the same order as the game's hands.
	Hands []HandResult
	// Runouts is the number of distinct board completions evaluated.
	Runouts uint64
	// Ties counts runouts won by more than one hand.
	Ties       uint64
	BoardCards int
	Elapsed    time.Duration
}

// HandResult is one hand's share of the runouts
type HandResult struct {
	Hand game.PlayerHand
	// Wins counts every runout where the hand was best or tied for best.
	Wins uint64
	// Ties counts the runouts among Wins that were shared.
	Ties uint64
	// Splits[k] counts runouts won as one of k co-winners; Splits[1] is
	// outright wins.
	Splits     []uint64
	Categories [evaluator.NumHandRanks]uint64
}

// WinRate returns the fraction of runouts the hand won or shared
func (h HandResult) WinRate(total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(h.Wins) / float64(total)
}

// TieRate returns the fraction of runouts the hand shared with others
func (h HandResult) TieRate(total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(h.Ties) / float64(total)
}

// Equity returns the hand's pot share, splitting tied runouts evenly
// among the co-winners. Equities across all hands sum to one.
func (h HandResult) Equity(total uint64) float64 {
	if total == 0 {
		return 0
	}
	var share float64
	for k := 1; k < len(h.Splits); k++ {
		share += float64(h.Splits[k]) / float64(k)
	}
	return share / float64(total)
}

// CategoryRate returns how often the hand finished with category r
func (h HandResult) CategoryRate(r evaluator.HandRank, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(h.Categories[r]) / float64(total)
}

// Favorite returns the index of the hand with the highest equity. Ties keep
// the first hand.
func (r *Result) Favorite() int {
	best := -1
	var bestEquity float64
	for i, h := range r.Hands {
		if e := h.Equity(r.Runouts); best < 0 || e > bestEquity {
			best, bestEquity = i, e
		}
	}
	return best
}
