package models

import (
	"reversi/internal/ai"
	"reversi/internal/othello"
)

// Session is one live game: a board reconstructed from its move log plus
// the engine depth chosen at creation. It is stored as a JSON blob in
// Redis, keyed by its ID.
type Session struct {
	ID      string        `json:"id"`
	AIDepth int           `json:"ai_depth"`
	Game    *othello.Game `json:"game"`
}

// NewSession creates a session with a fresh game of the given size.
func NewSession(id string, size, aiDepth int) (*Session, error) {
	game, err := othello.NewGame(size)
	if err != nil {
		return nil, err
	}

	return &Session{ID: id, AIDepth: aiDepth, Game: game}, nil
}

// NewSessionFromState creates a session resuming from a saved state.
func NewSessionFromState(id string, state othello.State, aiDepth int) (*Session, error) {
	game, err := othello.NewGameFromState(state)
	if err != nil {
		return nil, err
	}

	return &Session{ID: id, AIDepth: aiDepth, Game: game}, nil
}

// Board replays the session's game and returns the current board.
func (s *Session) Board() (*othello.Board, error) {
	return s.Game.Board()
}

// ApplyMove applies a move for the side to move.
func (s *Session) ApplyMove(row, col int) (*othello.Board, error) {
	return s.Game.PushMove(row, col)
}

// ApplyPass passes the turn for the side to move.
func (s *Session) ApplyPass() (*othello.Board, error) {
	return s.Game.PushPass()
}

// Undo reverts the last move.
func (s *Session) Undo() bool {
	return s.Game.PopMove()
}

// Redo re-applies the last undone move.
func (s *Session) Redo() bool {
	return s.Game.RedoMove()
}

// AIMove lets the engine pick and apply a move for the side to move. If
// the side to move has no legal move, a pass is applied instead.
func (s *Session) AIMove() (*othello.Board, AppliedMove, error) {
	board, err := s.Game.Board()
	if err != nil {
		return nil, AppliedMove{}, err
	}

	engine, err := ai.New(s.AIDepth)
	if err != nil {
		return nil, AppliedMove{}, err
	}

	color := board.ToMove()

	move := engine.Choose(board, color)
	if move == nil {
		board, err = s.Game.PushPass()
		if err != nil {
			return nil, AppliedMove{}, err
		}
		return board, AppliedMove{Color: color, Row: othello.PassRow, Col: othello.PassCol, Pass: true}, nil
	}

	board, err = s.Game.PushMove(move.Row, move.Col)
	if err != nil {
		return nil, AppliedMove{}, err
	}

	return board, AppliedMove{Color: color, Row: move.Row, Col: move.Col}, nil
}
