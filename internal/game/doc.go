// Package game holds the shared model of an equity computation: the live
// player hands, the community board and their validation.
//
// # Basic Usage
//
// Build a validated game from card notation:
//
//	g, err := game.ParseGame([]string{"AdKd", "QsQc"}, "KsQdTd")
//	if errors.Is(err, game.ErrDuplicateCard) {
//	    // the same card was given twice
//	}
//
// Boards are values. Play returns a new board and leaves the receiver alone,
// so a board handed to several branches can be extended independently:
//
//	turn, err := g.Board().Play(deck.MustParseCard("Jd"))
//
// # Invariants
//
//   - A PlayerHand is two distinct cards.
//   - Board slots fill flop, turn, river; a full board rejects further cards.
//   - No card appears twice across the hands and the board of a Game.
package game
