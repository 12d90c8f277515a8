package game

import (
	"fmt"

	"github.com/lox/pokerodds/internal/deck"
)

// Game is a validated set of live hands and a board. Every card appears at
// most once across all hands and the board.
type Game struct {
	hands  []PlayerHand
	board  Board
	inPlay deck.CardSet
}

// NewGame validates the hands and board. A card used twice returns an
// error wrapping ErrDuplicateCard.
func NewGame(hands []PlayerHand, board Board) (*Game, error) {
	if len(hands) == 0 {
		return nil, ErrNoHands
	}

	var inPlay deck.CardSet
	for _, card := range board.Cards() {
		if inPlay.Contains(card) {
			return nil, fmt.Errorf("%w: %s on the board", ErrDuplicateCard, card)
		}
		inPlay.Add(card)
	}

	for i, hand := range hands {
		if hand.card1 == hand.card2 || !hand.card1.Valid() {
			return nil, fmt.Errorf("hand %d: %w", i+1, ErrInvalidHand)
		}
		for _, card := range hand.Cards() {
			if inPlay.Contains(card) {
				return nil, fmt.Errorf("%w: %s in hand %d", ErrDuplicateCard, card, i+1)
			}
			inPlay.Add(card)
		}
	}

	if remaining := 52 - inPlay.Len(); remaining < board.Open() {
		return nil, fmt.Errorf("%w: %d cards for %d slots", ErrNotEnoughCards, remaining, board.Open())
	}

	hs := make([]PlayerHand, len(hands))
	copy(hs, hands)
	return &Game{hands: hs, board: board, inPlay: inPlay}, nil
}

// ParseGame builds a game from hand and board notation, e.g.
// ParseGame([]string{"AdKd", "QsQc"}, "KhQdTd")
func ParseGame(hands []string, board string) (*Game, error) {
	parsed := make([]PlayerHand, 0, len(hands))
	for i, s := range hands {
		h, err := ParsePlayerHand(s)
		if err != nil {
			return nil, fmt.Errorf("hand %d: %w", i+1, err)
		}
		parsed = append(parsed, h)
	}

	b, err := ParseBoard(board)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	return NewGame(parsed, b)
}

// Hands returns a copy of the live hands in input order
func (g *Game) Hands() []PlayerHand {
	out := make([]PlayerHand, len(g.hands))
	copy(out, g.hands)
	return out
}

// NumHands returns the number of live hands
func (g *Game) NumHands() int {
	return len(g.hands)
}

// Board returns the current board
func (g *Game) Board() Board {
	return g.board
}

// InPlay returns every card held by a hand or on the board
func (g *Game) InPlay() deck.CardSet {
	return g.inPlay
}

// Deck returns a fresh deck of every card not in play
func (g *Game) Deck() *deck.Deck {
	d, err := deck.NewDeck(g.inPlay.Cards()...)
	if err != nil {
		// inPlay is a set, so every card is removed exactly once.
		panic(fmt.Sprintf("game: deck rejected validated cards: %v", err))
	}
	return d
}

// CardsInPlay returns hand i's hole cards followed by the board cards
func (g *Game) CardsInPlay(i int) []deck.Card {
	return CardsInPlay(g.hands[i], g.board)
}

// CardsInPlay joins a hand's hole cards with the board cards
func CardsInPlay(h PlayerHand, b Board) []deck.Card {
	cards := make([]deck.Card, 0, 2+b.n)
	cards = append(cards, h.card1, h.card2)
	return append(cards, b.slots[:b.n]...)
}
