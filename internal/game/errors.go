package game

import "errors"

var (
	// ErrDuplicateCard means the same card was assigned to more than one
	// place among the hands and the board.
	ErrDuplicateCard = errors.New("card used more than once")
	// ErrBoardFull is returned when playing a card onto a board with five cards
	ErrBoardFull = errors.New("board is full")
	// ErrInvalidHand is returned for a player hand that is not two distinct cards
	ErrInvalidHand = errors.New("invalid player hand")
	// ErrNoHands is returned when a game has no live hands
	ErrNoHands = errors.New("at least one hand is required")
	// ErrNotEnoughCards is returned when the deck cannot complete the board
	ErrNotEnoughCards = errors.New("not enough cards left to complete the board")
)
