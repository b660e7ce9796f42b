package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/internal/othello"
)

func TestEvaluate_ZeroSum(t *testing.T) {
	board, err := othello.NewBoard(8)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		moves := board.LegalMoves(board.ToMove())
		require.NotEmpty(t, moves)
		require.NoError(t, board.MakeMove(moves[0]))

		black := Evaluate(board, othello.Black)
		white := Evaluate(board, othello.White)
		require.InDelta(t, -white, black, 1e-9)
	}
}

func TestEvaluate_StartPositionIsBalanced(t *testing.T) {
	board, err := othello.NewBoard(8)
	require.NoError(t, err)

	require.InDelta(t, 0, Evaluate(board, othello.Black), 1e-9)
	require.InDelta(t, 0, Evaluate(board, othello.White), 1e-9)
}

func TestEvaluate_CornerBeatsInteriorDisc(t *testing.T) {
	empty := func() [][]int {
		grid := make([][]int, 8)
		for i := range grid {
			grid[i] = make([]int, 8)
		}
		return grid
	}

	// One black disc in a corner plus one in the center...
	cornerGrid := empty()
	cornerGrid[0][0] = 1
	cornerGrid[4][4] = 1
	corner := boardFromGrid(t, cornerGrid, othello.Black)

	// ...versus two interior black discs.
	interiorGrid := empty()
	interiorGrid[3][3] = 1
	interiorGrid[4][4] = 1
	interior := boardFromGrid(t, interiorGrid, othello.Black)

	require.Greater(t, Evaluate(corner, othello.Black), Evaluate(interior, othello.Black))
}

func TestEvaluate_PieceDifferential(t *testing.T) {
	board := boardFromGrid(t, [][]int{
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 2, 0, 0},
	}, othello.Black)

	// No corners for white, a big piece and corner lead for black.
	require.Greater(t, Evaluate(board, othello.Black), 0.0)
	require.Less(t, Evaluate(board, othello.White), 0.0)
}

func TestTranspositionTable(t *testing.T) {
	table := NewTranspositionTable(2)

	_, ok := table.Lookup("a")
	require.False(t, ok)

	table.Store("a", Entry{Score: 1.5, Depth: 3})
	entry, ok := table.Lookup("a")
	require.True(t, ok)
	require.Equal(t, Entry{Score: 1.5, Depth: 3}, entry)

	// A shallower result never overwrites a deeper one
	table.Store("a", Entry{Score: -7, Depth: 1})
	entry, _ = table.Lookup("a")
	require.Equal(t, Entry{Score: 1.5, Depth: 3}, entry)

	// An equally deep or deeper result does
	table.Store("a", Entry{Score: -7, Depth: 3})
	entry, _ = table.Lookup("a")
	require.Equal(t, Entry{Score: -7, Depth: 3}, entry)

	table.Store("b", Entry{Depth: 1})
	require.False(t, table.OverCap())
	table.Store("c", Entry{Depth: 1})
	require.True(t, table.OverCap())

	table.Clear()
	require.Equal(t, 0, table.Len())
	require.Equal(t, 2, table.MaxSize())
}
