package othello

import "fmt"

// Game represents a game in progress that can be reconstructed from its
// start state and move log. It is the shape stored for live sessions:
// undo and redo are expressed by shrinking and regrowing the log.
type Game struct {
	// Start is the board before any move is played. This allows resuming
	// from a loaded save file instead of the standard opening.
	Start State `json:"start"`

	// Moves is the list of applied moves, passes included.
	Moves []LoggedMove `json:"moves"`

	// Redo holds undone moves, most recently undone last.
	Redo []LoggedMove `json:"redo,omitempty"`
}

// NewGame creates a game from the standard opening of the given size.
func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}

	return &Game{
		Start: board.Serialize(),
		Moves: make([]LoggedMove, 0),
	}, nil
}

// NewGameFromState creates a game resuming from a loaded state.
func NewGameFromState(state State) (*Game, error) {
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &Game{
		Start: state,
		Moves: make([]LoggedMove, 0),
	}, nil
}

// Board replays the move log and returns the resulting board, with its
// history populated so callers can inspect it.
func (g *Game) Board() (*Board, error) {
	board, err := Deserialize(g.Start)
	if err != nil {
		return nil, err
	}

	for i, logged := range g.Moves {
		if logged.IsPass() {
			board.PassTurn()
			continue
		}

		move := Move{Row: logged.Row, Col: logged.Col, Color: logged.Color}
		if err := board.MakeMove(move); err != nil {
			return nil, fmt.Errorf("replaying move %d: %w", i, err)
		}
	}

	return board, nil
}

// PushMove applies a move for the side to move and returns the updated
// board. Any pending redo moves are discarded.
func (g *Game) PushMove(row, col int) (*Board, error) {
	board, err := g.Board()
	if err != nil {
		return nil, err
	}

	move := Move{Row: row, Col: col, Color: board.ToMove()}
	if err := board.MakeMove(move); err != nil {
		return nil, err
	}

	g.Moves = append(g.Moves, LoggedMove{Color: move.Color, Row: row, Col: col})
	g.Redo = nil
	return board, nil
}

// PushPass passes the turn. It fails if the side to move still has a
// legal move.
func (g *Game) PushPass() (*Board, error) {
	board, err := g.Board()
	if err != nil {
		return nil, err
	}

	if board.HasMoves(board.ToMove()) {
		return nil, fmt.Errorf("%w: %s has legal moves and cannot pass", ErrInvalidMove, board.ToMove())
	}

	g.Moves = append(g.Moves, LoggedMove{Color: board.ToMove(), Row: PassRow, Col: PassCol})
	board.PassTurn()
	g.Redo = nil
	return board, nil
}

// PopMove undoes the last move. It returns false if there is nothing to
// undo.
func (g *Game) PopMove() bool {
	if len(g.Moves) == 0 {
		return false
	}

	last := g.Moves[len(g.Moves)-1]
	g.Moves = g.Moves[:len(g.Moves)-1]
	g.Redo = append(g.Redo, last)
	return true
}

// RedoMove re-applies the most recently undone move. It returns false if
// there is nothing to redo.
func (g *Game) RedoMove() bool {
	if len(g.Redo) == 0 {
		return false
	}

	next := g.Redo[len(g.Redo)-1]
	g.Redo = g.Redo[:len(g.Redo)-1]
	g.Moves = append(g.Moves, next)
	return true
}
