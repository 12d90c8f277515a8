package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrCardNotInDeck is returned when removing a card that is already gone.
// During setup this means the card was used twice.
var ErrCardNotInDeck = errors.New("card not in deck")

// Deck is the pool of undealt cards for one computation: the 52-card
// universe minus every card in play. Cards are only ever removed.
type Deck struct {
	cards   []Card
	members CardSet
}

// NewDeck creates a deck in canonical order with the given cards removed
func NewDeck(inPlay ...Card) (*Deck, error) {
	d := &Deck{cards: make([]Card, 0, 52)}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			card := NewCard(suit, rank)
			d.cards = append(d.cards, card)
			d.members.Add(card)
		}
	}

	for _, card := range inPlay {
		if err := d.Remove(card); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Remove takes a card out of the deck
func (d *Deck) Remove(card Card) error {
	if !card.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidCard, card)
	}
	if !d.members.Contains(card) {
		return fmt.Errorf("%w: %s", ErrCardNotInDeck, card)
	}

	d.members.Remove(card)
	for i, c := range d.cards {
		if c == card {
			d.cards = append(d.cards[:i], d.cards[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether the card is still undealt
func (d *Deck) Contains(card Card) bool {
	return card.Valid() && d.members.Contains(card)
}

// ContainsAll reports whether every given card is still undealt
func (d *Deck) ContainsAll(cards ...Card) bool {
	for _, card := range cards {
		if !d.Contains(card) {
			return false
		}
	}
	return true
}

// Cards returns a copy of the remaining cards in exploration order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Set returns the remaining cards as a bitset
func (d *Deck) Set() CardSet {
	return d.members
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// CountRank returns how many cards of the rank remain
func (d *Deck) CountRank(rank Rank) int {
	n := 0
	for _, suit := range Suits {
		if d.members.Contains(NewCard(suit, rank)) {
			n++
		}
	}
	return n
}

// CountSuit returns how many cards of the suit remain
func (d *Deck) CountSuit(suit Suit) int {
	n := 0
	for _, rank := range Ranks {
		if d.members.Contains(NewCard(suit, rank)) {
			n++
		}
	}
	return n
}

// Shuffle randomizes the exploration order of the remaining cards.
// Membership is unchanged.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
