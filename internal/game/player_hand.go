package game

import (
	"fmt"

	"github.com/lox/pokerodds/internal/deck"
)

// PlayerHand is a player's two hole cards. It cannot change once built.
type PlayerHand struct {
	card1 deck.Card
	card2 deck.Card
}

// NewPlayerHand builds a hand from two distinct cards
func NewPlayerHand(card1, card2 deck.Card) (PlayerHand, error) {
	if !card1.Valid() || !card2.Valid() {
		return PlayerHand{}, fmt.Errorf("%w: %v %v", ErrInvalidHand, card1, card2)
	}
	if card1 == card2 {
		return PlayerHand{}, fmt.Errorf("%w: %s twice", ErrInvalidHand, card1)
	}
	return PlayerHand{card1: card1, card2: card2}, nil
}

// ParsePlayerHand parses notation such as "AdKd"
func ParsePlayerHand(s string) (PlayerHand, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return PlayerHand{}, err
	}
	if len(cards) != 2 {
		return PlayerHand{}, fmt.Errorf("%w: must contain exactly 2 cards, got %d", ErrInvalidHand, len(cards))
	}
	return NewPlayerHand(cards[0], cards[1])
}

// MustParsePlayerHand parses a hand and panics on error (for tests)
func MustParsePlayerHand(s string) PlayerHand {
	h, err := ParsePlayerHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

func (h PlayerHand) Card1() deck.Card { return h.card1 }
func (h PlayerHand) Card2() deck.Card { return h.card2 }

// Cards returns both hole cards
func (h PlayerHand) Cards() [2]deck.Card {
	return [2]deck.Card{h.card1, h.card2}
}

func (h PlayerHand) String() string {
	return h.card1.String() + " " + h.card2.String()
}
