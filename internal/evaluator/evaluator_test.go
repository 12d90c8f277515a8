package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/game"
)

func ranks(rs ...deck.Rank) [5]deck.Rank {
	var out [5]deck.Rank
	copy(out[:], rs)
	return out
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cards     string
		rank      HandRank
		tieBreaks [5]deck.Rank
	}{
		{"royal flush", "AsKsQsJsTs9h8h", RoyalFlush, ranks(deck.Ace)},
		{"straight flush", "9s8s7s6s5s4h3h", StraightFlush, ranks(deck.Nine)},
		{"steel wheel", "5h4h3h2hAhKdQc", StraightFlush, ranks(deck.Five)},
		{"quads take best kicker", "AsAhAdAcKs2h3h", FourOfAKind, ranks(deck.Ace, deck.King)},
		{"quads kicker from a pair", "9s9h9d9c2s2hKd", FourOfAKind, ranks(deck.Nine, deck.King)},
		{"full house", "AsAhAdKsKh2h3h", FullHouse, ranks(deck.Ace, deck.King)},
		{"two trips make a full house", "7s7h7d4s4h4cAs", FullHouse, ranks(deck.Seven, deck.Four)},
		{"trips with two pairs uses the higher pair", "7s7h7d4s4hKcKd", FullHouse, ranks(deck.Seven, deck.King)},
		{"flush", "AsKsQs8s6s4h3h", Flush, ranks(deck.Ace, deck.King, deck.Queen, deck.Eight, deck.Six)},
		{"six card flush plays the top five", "AsKsQs8s6s4s3h", Flush, ranks(deck.Ace, deck.King, deck.Queen, deck.Eight, deck.Six)},
		{"flush beats a straight", "9s8s7s6s2s5h", Flush, ranks(deck.Nine, deck.Eight, deck.Seven, deck.Six, deck.Two)},
		{"broadway", "AsKhQdJcTs9h8h", Straight, ranks(deck.Ace)},
		{"seven card straight", "9h8c7d6s5h4c3d", Straight, ranks(deck.Nine)},
		{"wheel", "Ah2c3d4s5h9cKd", Straight, ranks(deck.Five)},
		{"six high beats the wheel", "Ah2c3d4s5h6cKd", Straight, ranks(deck.Six)},
		{"straight beats trips", "5s5h5d6c7s8h9d", Straight, ranks(deck.Nine)},
		{"three of a kind", "AsAhAdKs9c7h5h", ThreeOfAKind, ranks(deck.Ace, deck.King, deck.Nine)},
		{"two pair", "AsAhKdKs9c7h5h", TwoPair, ranks(deck.Ace, deck.King, deck.Nine)},
		{"third pair plays as kicker", "AsAhKdKs9c9h5h", TwoPair, ranks(deck.Ace, deck.King, deck.Nine)},
		{"third pair below the kicker", "AsAhKdKs2c2h5h", TwoPair, ranks(deck.Ace, deck.King, deck.Five)},
		{"one pair", "AsAhKdQs9c7h5h", OnePair, ranks(deck.Ace, deck.King, deck.Queen, deck.Nine)},
		{"high card", "AsKhQd9s7c5h3h", HighCard, ranks(deck.Ace, deck.King, deck.Queen, deck.Nine, deck.Seven)},
		{"pocket pair preflop", "AsAh", OnePair, ranks(deck.Ace)},
		{"two cards preflop", "AsKh", HighCard, ranks(deck.Ace, deck.King)},
		{"flop pair", "QsQh7d", OnePair, ranks(deck.Queen, deck.Seven)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Evaluate(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.rank, got.Rank, "category for %s", tt.cards)
			assert.Equal(t, tt.tieBreaks, got.TieBreaks, "tie-breaks for %s", tt.cards)
		})
	}
}

func TestEvaluateLowest(t *testing.T) {
	t.Parallel()

	got := MustEvaluate(deck.MustParseCards("2s3s4s5s7h"))
	assert.Equal(t, Lowest, got)
}

func TestEvaluateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards []deck.Card
		want  error
	}{
		{"one card", deck.MustParseCards("As"), ErrCardCount},
		{"eight cards", deck.MustParseCards("AsKsQsJsTs9s8s7s"), ErrCardCount},
		{"no cards", nil, ErrCardCount},
		{"duplicate", deck.MustParseCards("AsKsAs"), ErrDuplicateCard},
		{"invalid card", []deck.Card{deck.MustParseCard("As"), {Suit: deck.Spades, Rank: deck.NoRank}}, deck.ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate(tt.cards)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluateHand(t *testing.T) {
	t.Parallel()

	t.Run("royal flush on the river", func(t *testing.T) {
		t.Parallel()
		h := game.MustParsePlayerHand("AdKd")
		b, err := game.ParseBoard("KsQdTdJd")
		require.NoError(t, err)
		b, err = b.Play(deck.MustParseCard("9d"))
		require.NoError(t, err)

		got := EvaluateHand(h, b)
		assert.Equal(t, RoyalFlush, got.Rank)
	})

	t.Run("full house sevens over fours", func(t *testing.T) {
		t.Parallel()
		h := game.MustParsePlayerHand("4d4h")
		b, err := game.ParseBoard("7d7cJd2h7s")
		require.NoError(t, err)

		got := EvaluateHand(h, b)
		assert.Equal(t, FullHouse, got.Rank)
		assert.Equal(t, ranks(deck.Seven, deck.Four), got.TieBreaks)
		assert.Equal(t, "Full House [7 4]", got.String())
	})

	t.Run("matches Evaluate", func(t *testing.T) {
		t.Parallel()
		h := game.MustParsePlayerHand("Th9h")
		b, err := game.ParseBoard("8h7c2d")
		require.NoError(t, err)

		want := MustEvaluate(game.CardsInPlay(h, b))
		assert.Equal(t, want, EvaluateHand(h, b))
	})
}

func TestStraightHigh(t *testing.T) {
	t.Parallel()

	mask := func(rs ...deck.Rank) uint16 {
		var m uint16
		for _, r := range rs {
			m |= rankBit(r)
		}
		return m
	}

	tests := []struct {
		name string
		mask uint16
		want deck.Rank
		ok   bool
	}{
		{"none", mask(deck.Two, deck.Four, deck.Six, deck.Eight, deck.Ten), deck.NoRank, false},
		{"wheel", mask(deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five), deck.Five, true},
		{"six high over wheel", mask(deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five, deck.Six), deck.Six, true},
		{"broadway", mask(deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace), deck.Ace, true},
		{"highest run wins", mask(deck.Four, deck.Five, deck.Six, deck.Seven, deck.Eight, deck.Nine, deck.Ten), deck.Ten, true},
		{"four in a row", mask(deck.Ten, deck.Jack, deck.Queen, deck.King), deck.NoRank, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := straightHigh(tt.mask)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStraightWindows(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [5]deck.Rank{deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five}, straightWindows[0])
	assert.Equal(t, [5]deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Six}, straightWindows[1])
	assert.Equal(t, [5]deck.Rank{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}, straightWindows[9])
}
