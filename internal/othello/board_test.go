package othello

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/internal/config"
)

func TestNewBoard(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	require.Equal(t, 8, board.Size())
	require.Equal(t, Black, board.ToMove())
	require.Equal(t, 0, board.HistoryLen())
	require.Equal(t, 0, board.RedoLen())
	require.Empty(t, board.MoveList())

	// Canonical center cross
	center := board.Size() / 2
	require.Equal(t, White, board.Cell(center-1, center-1))
	require.Equal(t, White, board.Cell(center, center))
	require.Equal(t, Black, board.Cell(center-1, center))
	require.Equal(t, Black, board.Cell(center, center-1))

	black, white := board.Score()
	require.Equal(t, 2, black)
	require.Equal(t, 2, white)
}

func TestNewBoard_Sizes(t *testing.T) {
	for _, size := range []int{4, 6, 8, 10, 12, 14, 16} {
		board, err := NewBoard(size)
		require.NoError(t, err)
		require.Equal(t, size, board.Size())
	}

	for _, size := range []int{-4, 0, 2, 3, 7, 9, 18, 100} {
		_, err := NewBoard(size)
		require.ErrorIs(t, err, ErrConfiguration, "size %d should be rejected", size)
	}
}

func TestBoard_LegalMoves_StartPosition(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	moves := board.LegalMoves(Black)
	require.Len(t, moves, 4)

	positions := make(map[Coord]bool)
	for _, move := range moves {
		positions[Coord{Row: move.Row, Col: move.Col}] = true

		// Each opening move flips exactly one disc
		require.Len(t, move.Flips, 1)
		require.Equal(t, Black, move.Color)
	}

	expected := map[Coord]bool{
		{Row: 2, Col: 3}: true,
		{Row: 3, Col: 2}: true,
		{Row: 4, Col: 5}: true,
		{Row: 5, Col: 4}: true,
	}
	require.Equal(t, expected, positions)
}

func TestBoard_LegalMoves_RowMajorOrder(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	moves := board.LegalMoves(Black)
	for i := 1; i < len(moves); i++ {
		prev, cur := moves[i-1], moves[i]
		require.True(t, prev.Row < cur.Row || (prev.Row == cur.Row && prev.Col < cur.Col))
	}
}

func TestBoard_LegalMoves_AllHaveFlips(t *testing.T) {
	board, err := NewBoard(6)
	require.NoError(t, err)

	// Play a handful of moves and check the generated moves along the way.
	for i := 0; i < 10 && !board.GameOver(); i++ {
		moves := board.LegalMoves(board.ToMove())
		if len(moves) == 0 {
			board.PassTurn()
			continue
		}

		for _, move := range moves {
			require.NotEmpty(t, move.Flips)
		}

		require.NoError(t, board.MakeMove(moves[0]))
	}
}

func TestBoard_MakeMove(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	moves := board.LegalMoves(Black)
	require.NotEmpty(t, moves)

	blackBefore, whiteBefore := board.Score()
	require.NoError(t, board.MakeMove(moves[0]))

	// Turn toggles and the move is logged
	require.Equal(t, White, board.ToMove())
	require.Equal(t, 1, board.HistoryLen())
	require.Len(t, board.MoveList(), 1)

	// Placing and flipping strictly favors the mover
	blackAfter, whiteAfter := board.Score()
	require.Greater(t, blackAfter, blackBefore)
	require.Less(t, whiteAfter, whiteBefore)
	require.Equal(t, 5, blackAfter+whiteAfter)
}

func TestBoard_MakeMove_Invalid(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	before := board.Serialize()

	// Wrong color
	err = board.MakeMove(Move{Row: 2, Col: 3, Color: White})
	require.ErrorIs(t, err, ErrInvalidMove)

	// No flips
	err = board.MakeMove(Move{Row: 0, Col: 0, Color: Black})
	require.ErrorIs(t, err, ErrInvalidMove)

	// Occupied square
	err = board.MakeMove(Move{Row: 3, Col: 3, Color: Black})
	require.ErrorIs(t, err, ErrInvalidMove)

	// No mutation on failure
	require.Equal(t, before, board.Serialize())
	require.Equal(t, 0, board.HistoryLen())
	require.Empty(t, board.MoveList())
}

func TestBoard_PassTurn(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	board.PassTurn()

	require.Equal(t, White, board.ToMove())
	require.Equal(t, 1, board.HistoryLen())

	moveList := board.MoveList()
	require.Len(t, moveList, 1)
	require.True(t, moveList[0].IsPass())
	require.Equal(t, Black, moveList[0].Color)
	require.Equal(t, PassRow, moveList[0].Row)
	require.Equal(t, PassCol, moveList[0].Col)
}

func TestBoard_UndoRedo(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	original := board.Serialize()

	moves := board.LegalMoves(Black)
	require.NoError(t, board.MakeMove(moves[0]))
	afterMove := board.Serialize()

	// Undo restores the exact prior state
	require.True(t, board.Undo())
	require.Equal(t, original, board.Serialize())
	require.Equal(t, Black, board.ToMove())
	require.Empty(t, board.MoveList())
	require.Equal(t, 1, board.RedoLen())

	// Redo restores the exact post-move state, move log included
	require.True(t, board.Redo())
	require.Equal(t, afterMove, board.Serialize())
	require.Equal(t, White, board.ToMove())
	require.Len(t, board.MoveList(), 1)
	require.Equal(t, 1, board.HistoryLen())
}

func TestBoard_Undo_EmptyHistory(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	before := board.Serialize()
	require.False(t, board.Undo())
	require.Equal(t, before, board.Serialize())
}

func TestBoard_Redo_EmptyStack(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	require.False(t, board.Redo())
}

func TestBoard_MakeMove_ClearsRedoStack(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	moves := board.LegalMoves(Black)
	require.NoError(t, board.MakeMove(moves[0]))
	require.True(t, board.Undo())
	require.Equal(t, 1, board.RedoLen())

	require.NoError(t, board.MakeMove(moves[1]))
	require.Equal(t, 0, board.RedoLen())
}

func TestBoard_GameOver(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)
	require.False(t, board.GameOver())

	// Full board
	full := State{Size: 4, ToMove: int(Black), Grid: [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}}
	fullBoard, err := Deserialize(full)
	require.NoError(t, err)
	require.True(t, fullBoard.GameOver())

	// Neither side can move
	stuck := State{Size: 4, ToMove: int(Black), Grid: [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{2, 2, 2, 2},
		{2, 2, 2, 2},
	}}
	stuckBoard, err := Deserialize(stuck)
	require.NoError(t, err)
	require.True(t, stuckBoard.GameOver())
}

func TestBoard_Score(t *testing.T) {
	state := State{Size: 4, ToMove: int(Black), Grid: [][]int{
		{1, 1, 0, 0},
		{2, 2, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}}
	board, err := Deserialize(state)
	require.NoError(t, err)

	black, white := board.Score()
	require.Equal(t, 2, black)
	require.Equal(t, 3, white)
}

func TestBoard_CountInvariant(t *testing.T) {
	board, err := NewBoard(6)
	require.NoError(t, err)

	for !board.GameOver() {
		black, white := board.Score()
		require.Equal(t, board.Size()*board.Size(), black+white+board.CountEmpty())

		moves := board.LegalMoves(board.ToMove())
		if len(moves) == 0 {
			board.PassTurn()
			continue
		}
		require.NoError(t, board.MakeMove(moves[0]))
	}

	black, white := board.Score()
	require.Equal(t, board.Size()*board.Size(), black+white+board.CountEmpty())
}

func TestBoard_HistoryTracksAppliedMoves(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	applied := 0
	for i := 0; i < 6; i++ {
		moves := board.LegalMoves(board.ToMove())
		require.NotEmpty(t, moves)
		require.NoError(t, board.MakeMove(moves[0]))
		applied++
		require.Equal(t, applied, board.HistoryLen())
		require.Len(t, board.MoveList(), applied)
	}
}

func TestBoard_Clone(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	moves := board.LegalMoves(Black)
	require.NoError(t, board.MakeMove(moves[0]))

	clone := board.Clone()
	before := board.Serialize()

	// Mutating the clone leaves the original untouched
	cloneMoves := clone.LegalMoves(clone.ToMove())
	require.NotEmpty(t, cloneMoves)
	require.NoError(t, clone.MakeMove(cloneMoves[0]))
	require.True(t, clone.Undo())
	require.True(t, clone.Undo())

	require.Equal(t, before, board.Serialize())
	require.Equal(t, 1, board.HistoryLen())
}

func TestBoard_Fingerprint(t *testing.T) {
	a, err := NewBoard(8)
	require.NoError(t, err)
	b, err := NewBoard(8)
	require.NoError(t, err)

	require.Equal(t, a.Fingerprint(), b.Fingerprint())

	// Side to move is part of the fingerprint
	b.PassTurn()
	require.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	// Same grid reached differently yields the same fingerprint
	require.True(t, b.Undo())
	require.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestOpponent(t *testing.T) {
	require.Equal(t, White, Opponent(Black))
	require.Equal(t, Black, Opponent(White))
}

func TestConfigBounds(t *testing.T) {
	require.True(t, config.ValidBoardSize(8))
	require.False(t, config.ValidBoardSize(7))
	require.False(t, config.ValidBoardSize(2))
	require.True(t, config.ValidAIDepth(1))
	require.True(t, config.ValidAIDepth(6))
	require.False(t, config.ValidAIDepth(0))
	require.False(t, config.ValidAIDepth(7))
}
