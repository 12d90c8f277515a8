// Package randutil derives reproducible rand/v2 generators from int64 seeds.
package randutil

import (
	rand "math/rand/v2"
	"time"

	"github.com/lox/pokerodds/internal/deck"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words come from splitmix64 so nearby seeds give unrelated streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns seed when it is non-zero, otherwise one derived from the
// current time. Zero means "pick one for me" in config and flags.
func Seed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	return int64(mix(uint64(now.UnixNano())))
}

// Deal returns n distinct cards drawn from a freshly shuffled deck
func Deal(rng *rand.Rand, n int) []deck.Card {
	d, _ := deck.NewDeck()
	d.Shuffle(rng)
	return d.Cards()[:n]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
