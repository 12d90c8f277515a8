package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/pokerodds/internal/deck"
)

// MadeHand is the best five-card hand found in a set of cards: its category
// plus up to five tie-break ranks in decreasing significance. Slots a
// category does not use hold deck.NoRank.
type MadeHand struct {
	Rank      HandRank
	TieBreaks [5]deck.Rank
}

// Lowest is the weakest five-card hand possible: seven high.
var Lowest = MadeHand{
	Rank:      HighCard,
	TieBreaks: [5]deck.Rank{deck.Seven, deck.Five, deck.Four, deck.Three, deck.Two},
}

func newMadeHand(rank HandRank, tieBreaks ...deck.Rank) MadeHand {
	m := MadeHand{Rank: rank}
	copy(m.TieBreaks[:], tieBreaks)
	return m
}

// String returns e.g. "Full House [7 4]"
func (m MadeHand) String() string {
	var parts []string
	for _, r := range m.TieBreaks {
		if r == deck.NoRank {
			break
		}
		parts = append(parts, r.String())
	}
	return fmt.Sprintf("%s [%s]", m.Rank, strings.Join(parts, " "))
}

// Compare compares two hands and returns:
// -1 if a is weaker than b
//
//	0 if a equals b
//	1 if a is stronger than b
//
// Categories decide first, then tie-breaks left to right. An absent
// tie-break is lower than any rank.
func Compare(a, b MadeHand) int {
	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return -1
		}
		return 1
	}

	for i := range a.TieBreaks {
		if a.TieBreaks[i] < b.TieBreaks[i] {
			return -1
		}
		if a.TieBreaks[i] > b.TieBreaks[i] {
			return 1
		}
	}

	return 0
}

// Beats returns true if this hand is strictly stronger than other
func (m MadeHand) Beats(other MadeHand) bool {
	return Compare(m, other) > 0
}

// Ties returns true if both hands are equal in strength
func (m MadeHand) Ties(other MadeHand) bool {
	return Compare(m, other) == 0
}

// Best returns the index and value of the strongest hand. On ties the
// first one seen is kept; use Winners to get every co-winner. Best returns
// -1 for an empty list.
func Best(hands []MadeHand) (int, MadeHand) {
	if len(hands) == 0 {
		return -1, MadeHand{}
	}

	best := 0
	for i := 1; i < len(hands); i++ {
		if hands[i].Beats(hands[best]) {
			best = i
		}
	}
	return best, hands[best]
}

// Winners returns the indexes of every hand equal to the best hand, in order
func Winners(hands []MadeHand) []int {
	return AppendWinners(nil, hands)
}

// AppendWinners is Winners appending into a caller-owned buffer
func AppendWinners(dst []int, hands []MadeHand) []int {
	_, best := Best(hands)
	for i, h := range hands {
		if h.Ties(best) {
			dst = append(dst, i)
		}
	}
	return dst
}
