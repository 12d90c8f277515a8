package evaluator

import (
	"testing"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/game"
	"github.com/lox/pokerodds/internal/randutil"
)

var sink MadeHand

func BenchmarkEvaluate7(b *testing.B) {
	rng := randutil.New(1)
	deals := make([][]deck.Card, 1024)
	for i := range deals {
		deals[i] = randutil.Deal(rng, 7)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink, _ = Evaluate(deals[i%len(deals)])
	}
}

func BenchmarkEvaluateHand(b *testing.B) {
	h := game.MustParsePlayerHand("AdKd")
	board, err := game.ParseBoard("KsQdTdJd9d")
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = EvaluateHand(h, board)
	}
}
