package evaluator

import (
	"strings"

	"github.com/lox/pokerodds/internal/deck"
	"github.com/lox/pokerodds/internal/game"
)

// PossibilityChecker answers whether a hand can still end the deal holding
// a given category, looking only at the cards that remain unseen.
//
// A category counts as possible when the hand's final seven cards can
// contain its pattern: three sixes are possible even when every runout that
// makes them also makes a full house. The checker never reports a reachable
// category as impossible.
type PossibilityChecker struct {
	board  game.Board
	hands  []game.PlayerHand
	inPlay deck.CardSet
}

// NewPossibilityChecker snapshots the game's board and live hands
func NewPossibilityChecker(g *game.Game) *PossibilityChecker {
	return &PossibilityChecker{
		board:  g.Board(),
		hands:  g.Hands(),
		inPlay: g.InPlay(),
	}
}

// Possibilities records which categories a hand can reach
type Possibilities [NumHandRanks]bool

// Has reports whether r is reachable
func (p Possibilities) Has(r HandRank) bool {
	return p[r]
}

// Ranks returns the reachable categories, strongest first
func (p Possibilities) Ranks() []HandRank {
	var out []HandRank
	for _, r := range HandRanks {
		if p[r] {
			out = append(out, r)
		}
	}
	return out
}

func (p Possibilities) String() string {
	ranks := p.Ranks()
	parts := make([]string, len(ranks))
	for i, r := range ranks {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

// IsPossible reports whether hand h can finish with category r
func (pc *PossibilityChecker) IsPossible(h game.PlayerHand, r HandRank) bool {
	o, ok := pc.outlook(h)
	if !ok {
		return false
	}
	return o.possible(r)
}

// Reachable reports every category hand h can still finish with
func (pc *PossibilityChecker) Reachable(h game.PlayerHand) Possibilities {
	var p Possibilities
	o, ok := pc.outlook(h)
	if !ok {
		return p
	}
	for _, r := range HandRanks {
		p[r] = o.possible(r)
	}
	return p
}

// outlook is what one hand holds and what the deck can still give it
type outlook struct {
	held deck.CardSet
	deck *deck.Deck
	open int

	heldRanks [deck.Ace + 1]int
	heldSuits [4]int
}

func (pc *PossibilityChecker) outlook(h game.PlayerHand) (*outlook, bool) {
	hole := h.Cards()
	boardSet := deck.NewCardSet(pc.board.Cards()...)
	if boardSet.Contains(hole[0]) || boardSet.Contains(hole[1]) {
		return nil, false
	}

	// A hand from outside the game still has to fit around the live hands.
	removed := pc.inPlay
	if !pc.isLive(h) {
		if removed.Contains(hole[0]) || removed.Contains(hole[1]) {
			return nil, false
		}
		removed.Add(hole[0])
		removed.Add(hole[1])
	}

	d, err := deck.NewDeck(removed.Cards()...)
	if err != nil {
		return nil, false
	}

	o := &outlook{
		held: boardSet.Union(deck.NewCardSet(hole[:]...)),
		deck: d,
		open: pc.board.Open(),
	}
	if d.Len() < o.open {
		return nil, false
	}
	for _, card := range o.held.Cards() {
		o.heldRanks[card.Rank]++
		o.heldSuits[card.Suit]++
	}
	return o, true
}

func (pc *PossibilityChecker) isLive(h game.PlayerHand) bool {
	for _, live := range pc.hands {
		if live == h {
			return true
		}
	}
	return false
}

func (o *outlook) possible(r HandRank) bool {
	switch r {
	case RoyalFlush:
		return o.straightFlushWithin(len(straightWindows) - 1)
	case StraightFlush:
		return o.straightFlushWithin(0)
	case FourOfAKind:
		return o.anyRank(4)
	case FullHouse:
		return o.twoRanks(3, 2)
	case Flush:
		return o.flush()
	case Straight:
		return o.straight()
	case ThreeOfAKind:
		return o.anyRank(3)
	case TwoPair:
		return o.twoRanks(2, 2)
	case OnePair:
		return o.anyRank(2)
	case HighCard:
		return true
	default:
		return false
	}
}

// needRank returns how many more cards of rank the hand needs to hold n of
// them, or false when the deck cannot supply them.
func (o *outlook) needRank(rank deck.Rank, n int) (int, bool) {
	need := max(n-o.heldRanks[rank], 0)
	return need, need <= o.deck.CountRank(rank)
}

func (o *outlook) anyRank(n int) bool {
	for _, rank := range deck.Ranks {
		if need, ok := o.needRank(rank, n); ok && need <= o.open {
			return true
		}
	}
	return false
}

func (o *outlook) twoRanks(first, second int) bool {
	for _, a := range deck.Ranks {
		needA, ok := o.needRank(a, first)
		if !ok || needA > o.open {
			continue
		}
		for _, b := range deck.Ranks {
			if b == a {
				continue
			}
			needB, ok := o.needRank(b, second)
			if ok && needA+needB <= o.open {
				return true
			}
		}
	}
	return false
}

func (o *outlook) flush() bool {
	for _, suit := range deck.Suits {
		need := max(5-o.heldSuits[suit], 0)
		if need <= o.open && need <= o.deck.CountSuit(suit) {
			return true
		}
	}
	return false
}

func (o *outlook) straight() bool {
	for _, window := range straightWindows {
		need := 0
		for _, rank := range window {
			if o.heldRanks[rank] > 0 {
				continue
			}
			if o.deck.CountRank(rank) == 0 {
				need = o.open + 1
				break
			}
			need++
		}
		if need <= o.open {
			return true
		}
	}
	return false
}

// straightFlushWithin checks the suited windows from index from upwards
func (o *outlook) straightFlushWithin(from int) bool {
	for _, window := range straightWindows[from:] {
		for _, suit := range deck.Suits {
			var missing []deck.Card
			for _, rank := range window {
				card := deck.NewCard(suit, rank)
				if !o.held.Contains(card) {
					missing = append(missing, card)
				}
			}
			if len(missing) <= o.open && o.deck.ContainsAll(missing...) {
				return true
			}
		}
	}
	return false
}
