package evaluator

import (
	"math/bits"

	"github.com/lox/pokerodds/internal/deck"
)

// Rank masks use bit (rank - Two): deuce is bit 0, ace is bit 12.
const (
	allRanksMask = 0x1FFF
	wheelMask    = 0x100F // A-2-3-4-5
)

func rankBit(r deck.Rank) uint16 {
	return 1 << (r - deck.Two)
}

// straightHigh returns the top card of the highest straight in mask
func straightHigh(mask uint16) (deck.Rank, bool) {
	mask &= allRanksMask

	// Bitwise cascade identifies consecutive sequences in one pass.
	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		low := bits.Len16(seq) - 1
		return deck.Rank(low+4) + deck.Two, true
	}

	if mask&wheelMask == wheelMask {
		return deck.Five, true
	}

	return deck.NoRank, false
}

// straightWindows lists the five ranks of every straight, wheel first and
// broadway last. The wheel plays the ace as its lowest card.
var straightWindows = func() [10][5]deck.Rank {
	var windows [10][5]deck.Rank
	windows[0] = [5]deck.Rank{deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five}
	for i := 1; i < len(windows); i++ {
		low := deck.Two + deck.Rank(i-1)
		for j := range windows[i] {
			windows[i][j] = low + deck.Rank(j)
		}
	}
	return windows
}()

// topRanks returns the n highest ranks present in mask, highest first
func topRanks(mask uint16, n int) []deck.Rank {
	out := make([]deck.Rank, 0, n)
	for mask != 0 && len(out) < n {
		top := bits.Len16(mask) - 1
		out = append(out, deck.Rank(top)+deck.Two)
		mask &^= 1 << top
	}
	return out
}

// highestRank returns the highest rank in mask
func highestRank(mask uint16) (deck.Rank, bool) {
	if mask == 0 {
		return deck.NoRank, false
	}
	return deck.Rank(bits.Len16(mask)-1) + deck.Two, true
}
