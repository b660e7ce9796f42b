package othello

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGame_PushMove(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	board, err := game.PushMove(2, 3)
	require.NoError(t, err)

	require.Equal(t, White, board.ToMove())
	require.Len(t, game.Moves, 1)
	require.Equal(t, LoggedMove{Color: Black, Row: 2, Col: 3}, game.Moves[0])
}

func TestGame_PushMove_Invalid(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	_, err = game.PushMove(0, 0)
	require.ErrorIs(t, err, ErrInvalidMove)
	require.Empty(t, game.Moves)
}

func TestGame_PushPass_WithMovesAvailable(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	_, err = game.PushPass()
	require.ErrorIs(t, err, ErrInvalidMove)
	require.Empty(t, game.Moves)
}

func TestGame_UndoRedo(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	_, err = game.PushMove(2, 3)
	require.NoError(t, err)
	afterMove, err := game.Board()
	require.NoError(t, err)

	require.True(t, game.PopMove())
	board, err := game.Board()
	require.NoError(t, err)
	require.Equal(t, Black, board.ToMove())
	require.Len(t, game.Redo, 1)

	require.True(t, game.RedoMove())
	board, err = game.Board()
	require.NoError(t, err)
	require.Equal(t, afterMove.Serialize(), board.Serialize())

	// Nothing left to redo
	require.False(t, game.RedoMove())
}

func TestGame_PushMove_ClearsRedo(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	_, err = game.PushMove(2, 3)
	require.NoError(t, err)
	require.True(t, game.PopMove())
	require.Len(t, game.Redo, 1)

	_, err = game.PushMove(3, 2)
	require.NoError(t, err)
	require.Empty(t, game.Redo)
}

func TestGame_PopMove_Empty(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	require.False(t, game.PopMove())
}

func TestGame_FromState(t *testing.T) {
	board, err := NewBoard(6)
	require.NoError(t, err)
	moves := board.LegalMoves(Black)
	require.NoError(t, board.MakeMove(moves[0]))

	game, err := NewGameFromState(board.Serialize())
	require.NoError(t, err)

	rebuilt, err := game.Board()
	require.NoError(t, err)
	require.Equal(t, board.Serialize(), rebuilt.Serialize())
	require.Equal(t, White, rebuilt.ToMove())
}

func TestGame_FromState_Invalid(t *testing.T) {
	state := State{Size: 5}
	_, err := NewGameFromState(state)
	require.ErrorIs(t, err, ErrInvalidBoardState)
}

func TestGame_ReplayPreservesHistory(t *testing.T) {
	game, err := NewGame(8)
	require.NoError(t, err)

	_, err = game.PushMove(2, 3)
	require.NoError(t, err)
	_, err = game.PushMove(2, 2)
	require.NoError(t, err)

	board, err := game.Board()
	require.NoError(t, err)

	// The replayed board carries its full history
	require.Equal(t, 2, board.HistoryLen())
	require.Len(t, board.MoveList(), 2)
	require.True(t, board.Undo())
}
