package game

import (
	"fmt"

	"github.com/lox/pokerodds/internal/deck"
)

// BoardSize is the number of community cards on a complete board
const BoardSize = 5

// Street names how far the board has been dealt
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river"}[s]
}

// Board holds the community cards. Slots fill strictly in order: the three
// flop cards, then the turn, then the river. Board is a value type, so a
// copy never observes cards played on another copy.
type Board struct {
	slots [BoardSize]deck.Card
	n     int
}

// NewBoard plays the cards in order onto an empty board
func NewBoard(cards ...deck.Card) (Board, error) {
	var b Board
	for _, card := range cards {
		next, err := b.Play(card)
		if err != nil {
			return Board{}, err
		}
		b = next
	}
	return b, nil
}

// ParseBoard parses card notation such as "KsQdTd" into a board
func ParseBoard(s string) (Board, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(cards...)
}

// Play returns a new board with the card in the next open slot.
// The receiver is left unchanged.
func (b Board) Play(card deck.Card) (Board, error) {
	if b.n == BoardSize {
		return b, fmt.Errorf("%w: cannot play %s", ErrBoardFull, card)
	}
	if !card.Valid() {
		return b, fmt.Errorf("%w: %v", deck.ErrInvalidCard, card)
	}
	for _, c := range b.slots[:b.n] {
		if c == card {
			return b, fmt.Errorf("%w: %s already on the board", ErrDuplicateCard, card)
		}
	}

	b.slots[b.n] = card
	b.n++
	return b, nil
}

// Cards returns the filled slots in deal order
func (b Board) Cards() []deck.Card {
	out := make([]deck.Card, b.n)
	copy(out, b.slots[:b.n])
	return out
}

// Count returns the number of cards played
func (b Board) Count() int {
	return b.n
}

// Open returns the number of empty slots
func (b Board) Open() int {
	return BoardSize - b.n
}

// IsComplete reports whether the river has been dealt
func (b Board) IsComplete() bool {
	return b.n == BoardSize
}

// Street reports the last complete street. A partially dealt flop is still preflop.
func (b Board) Street() Street {
	switch {
	case b.n == BoardSize:
		return River
	case b.n == 4:
		return Turn
	case b.n == 3:
		return Flop
	default:
		return Preflop
	}
}

// Flop returns the three flop cards once they are all dealt
func (b Board) Flop() ([3]deck.Card, bool) {
	var flop [3]deck.Card
	if b.n < 3 {
		return flop, false
	}
	copy(flop[:], b.slots[:3])
	return flop, true
}

// Turn returns the turn card if dealt
func (b Board) Turn() (deck.Card, bool) {
	if b.n < 4 {
		return deck.Card{}, false
	}
	return b.slots[3], true
}

// River returns the river card if dealt
func (b Board) River() (deck.Card, bool) {
	if b.n < 5 {
		return deck.Card{}, false
	}
	return b.slots[4], true
}

func (b Board) String() string {
	if b.n == 0 {
		return "(empty)"
	}
	return deck.FormatCards(b.slots[:b.n])
}
