package othello

import "errors"

var (
	// ErrInvalidMove is returned when a move is not legal for the side to move.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidBoardState is returned when serialized board data is malformed.
	ErrInvalidBoardState = errors.New("invalid board state")

	// ErrConfiguration is returned when a board or engine parameter is out of range.
	ErrConfiguration = errors.New("invalid configuration")
)
