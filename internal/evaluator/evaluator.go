// Package evaluator ranks poker hands and answers which hand categories a
// player can still reach.
//
// Evaluate classifies any 2-7 distinct cards into the best five-card
// MadeHand. Category checks run from Royal Flush down to High Card and the
// first one that matches wins, so each check may assume every stronger
// category is already ruled out.
package evaluator

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/game"
)

var (
	// ErrCardCount is returned when Evaluate gets fewer than 2 or more than 7 cards
	ErrCardCount = errors.New("evaluate needs between 2 and 7 cards")
	// ErrDuplicateCard is returned when the same card is passed twice
	ErrDuplicateCard = errors.New("duplicate card")
)

// analysis holds the counts every category check reads
type analysis struct {
	rankCounts [deck.Ace + 1]int
	suitMasks  [4]uint16
	rankMask   uint16
	// Ranks held exactly twice, three and four times.
	pairs, trips, quads uint16
}

func (a *analysis) add(card deck.Card) {
	a.rankCounts[card.Rank]++
	a.suitMasks[card.Suit] |= rankBit(card.Rank)
	a.rankMask |= rankBit(card.Rank)
}

func (a *analysis) finish() {
	for _, r := range deck.Ranks {
		switch a.rankCounts[r] {
		case 2:
			a.pairs |= rankBit(r)
		case 3:
			a.trips |= rankBit(r)
		case 4:
			a.quads |= rankBit(r)
		}
	}
}

// categoryCheck reports the made hand for one category, or false when the
// cards do not form it.
type categoryCheck func(a *analysis) (MadeHand, bool)

// checks are ordered strongest first; the first match is the made hand.
var checks = [...]categoryCheck{
	royalFlush,
	straightFlush,
	fourOfAKind,
	fullHouse,
	flush,
	straight,
	threeOfAKind,
	twoPair,
	onePair,
	highCard,
}

// Evaluate returns the best made hand from 2 to 7 distinct cards
func Evaluate(cards []deck.Card) (MadeHand, error) {
	if len(cards) < 2 || len(cards) > 7 {
		return MadeHand{}, fmt.Errorf("%w: got %d", ErrCardCount, len(cards))
	}

	var seen deck.CardSet
	var a analysis
	for _, card := range cards {
		if !card.Valid() {
			return MadeHand{}, fmt.Errorf("%w: %v", deck.ErrInvalidCard, card)
		}
		if seen.Contains(card) {
			return MadeHand{}, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen.Add(card)
		a.add(card)
	}

	return a.best(), nil
}

// MustEvaluate evaluates cards and panics on error (for tests)
func MustEvaluate(cards []deck.Card) MadeHand {
	m, err := Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %v: %v", cards, err))
	}
	return m
}

// EvaluateHand returns the made hand of a player's hole cards plus the
// board. Hands and boards from a game.Game are already known to be
// distinct, so no validation is repeated.
func EvaluateHand(h game.PlayerHand, b game.Board) MadeHand {
	var a analysis
	a.add(h.Card1())
	a.add(h.Card2())
	for _, card := range b.Cards() {
		a.add(card)
	}
	return a.best()
}

func (a *analysis) best() MadeHand {
	a.finish()
	for _, check := range checks {
		if m, ok := check(a); ok {
			return m
		}
	}
	// highCard always matches
	panic("evaluator: no category matched")
}

func royalFlush(a *analysis) (MadeHand, bool) {
	for _, mask := range a.suitMasks {
		if high, ok := straightHigh(mask); ok && high == deck.Ace {
			return newMadeHand(RoyalFlush, deck.Ace), true
		}
	}
	return MadeHand{}, false
}

func straightFlush(a *analysis) (MadeHand, bool) {
	best := deck.NoRank
	for _, mask := range a.suitMasks {
		if high, ok := straightHigh(mask); ok && high > best {
			best = high
		}
	}
	if best == deck.NoRank {
		return MadeHand{}, false
	}
	return newMadeHand(StraightFlush, best), true
}

func fourOfAKind(a *analysis) (MadeHand, bool) {
	quad, ok := highestRank(a.quads)
	if !ok {
		return MadeHand{}, false
	}
	// On occasion two players share quads on the board; the kicker decides.
	kicker, _ := highestRank(a.rankMask &^ rankBit(quad))
	return newMadeHand(FourOfAKind, quad, kicker), true
}

func fullHouse(a *analysis) (MadeHand, bool) {
	trip, ok := highestRank(a.trips)
	if !ok {
		return MadeHand{}, false
	}
	// A second set of trips plays as the pair.
	pair, ok := highestRank((a.trips | a.pairs) &^ rankBit(trip))
	if !ok {
		return MadeHand{}, false
	}
	return newMadeHand(FullHouse, trip, pair), true
}

func flush(a *analysis) (MadeHand, bool) {
	for _, mask := range a.suitMasks {
		if bits.OnesCount16(mask) >= 5 {
			// Two flushes can differ only in the fifth card, so all five play.
			return newMadeHand(Flush, topRanks(mask, 5)...), true
		}
	}
	return MadeHand{}, false
}

func straight(a *analysis) (MadeHand, bool) {
	high, ok := straightHigh(a.rankMask)
	if !ok {
		return MadeHand{}, false
	}
	return newMadeHand(Straight, high), true
}

func threeOfAKind(a *analysis) (MadeHand, bool) {
	trip, ok := highestRank(a.trips)
	if !ok {
		return MadeHand{}, false
	}
	kickers := topRanks(a.rankMask&^rankBit(trip), 2)
	return newMadeHand(ThreeOfAKind, append([]deck.Rank{trip}, kickers...)...), true
}

func twoPair(a *analysis) (MadeHand, bool) {
	if bits.OnesCount16(a.pairs) < 2 {
		return MadeHand{}, false
	}
	pairs := topRanks(a.pairs, 2)
	// A third pair can still play as the kicker.
	kicker, _ := highestRank(a.rankMask &^ rankBit(pairs[0]) &^ rankBit(pairs[1]))
	return newMadeHand(TwoPair, pairs[0], pairs[1], kicker), true
}

func onePair(a *analysis) (MadeHand, bool) {
	pair, ok := highestRank(a.pairs)
	if !ok {
		return MadeHand{}, false
	}
	kickers := topRanks(a.rankMask&^rankBit(pair), 3)
	return newMadeHand(OnePair, append([]deck.Rank{pair}, kickers...)...), true
}

func highCard(a *analysis) (MadeHand, bool) {
	return newMadeHand(HighCard, topRanks(a.rankMask, 5)...), true
}
