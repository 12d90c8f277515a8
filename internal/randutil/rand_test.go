package randutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokerodds/internal/deck"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()

	a, b := New(1234), New(1234)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestSeed(t *testing.T) {
	t.Parallel()

	now := time.Unix(1700000000, 0)
	assert.Equal(t, int64(99), Seed(99, now))
	assert.Equal(t, Seed(0, now), Seed(0, now))
	assert.NotZero(t, Seed(0, now))
}

func TestDeal(t *testing.T) {
	t.Parallel()

	cards := Deal(New(5), 14)
	assert.Len(t, cards, 14)
	assert.Equal(t, 14, deck.NewCardSet(cards...).Len(), "cards must be distinct")
	assert.Equal(t, cards, Deal(New(5), 14))
}
