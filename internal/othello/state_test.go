package othello

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/internal/config"
)

func TestState_RoundTrip(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	// Mix in a few moves so the state is not the opening
	for i := 0; i < 3; i++ {
		moves := board.LegalMoves(board.ToMove())
		require.NotEmpty(t, moves)
		require.NoError(t, board.MakeMove(moves[0]))
	}

	state := board.Serialize()
	require.Equal(t, config.SaveFileVersion, state.Version)

	restored, err := Deserialize(state)
	require.NoError(t, err)

	require.Equal(t, board.Size(), restored.Size())
	require.Equal(t, board.ToMove(), restored.ToMove())
	require.Equal(t, state.Grid, restored.Serialize().Grid)
}

func TestState_RoundTripJSON(t *testing.T) {
	board, err := NewBoard(6)
	require.NoError(t, err)

	data, err := json.Marshal(board.Serialize())
	require.NoError(t, err)

	var state State
	require.NoError(t, json.Unmarshal(data, &state))

	restored, err := Deserialize(state)
	require.NoError(t, err)
	require.Equal(t, board.Serialize(), restored.Serialize())
}

func TestDeserialize_Invalid(t *testing.T) {
	valid := func() State {
		board, err := NewBoard(4)
		require.NoError(t, err)
		return board.Serialize()
	}

	tests := []struct {
		name   string
		mutate func(*State)
	}{
		{
			name:   "odd size",
			mutate: func(s *State) { s.Size = 5 },
		},
		{
			name:   "size too small",
			mutate: func(s *State) { s.Size = 2 },
		},
		{
			name:   "size too large",
			mutate: func(s *State) { s.Size = 18 },
		},
		{
			name:   "missing row",
			mutate: func(s *State) { s.Grid = s.Grid[:3] },
		},
		{
			name:   "short row",
			mutate: func(s *State) { s.Grid[1] = s.Grid[1][:3] },
		},
		{
			name:   "long row",
			mutate: func(s *State) { s.Grid[2] = append(s.Grid[2], 0) },
		},
		{
			name:   "bad cell value",
			mutate: func(s *State) { s.Grid[0][0] = 3 },
		},
		{
			name:   "negative cell value",
			mutate: func(s *State) { s.Grid[0][0] = -1 },
		},
		{
			name:   "bad to_move",
			mutate: func(s *State) { s.ToMove = 0 },
		},
		{
			name:   "size grid mismatch",
			mutate: func(s *State) { s.Size = 6 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := valid()
			tt.mutate(&state)

			board, err := Deserialize(state)
			require.ErrorIs(t, err, ErrInvalidBoardState)
			require.Nil(t, board)
		})
	}
}

func TestDeserialize_EmptyHistory(t *testing.T) {
	board, err := NewBoard(8)
	require.NoError(t, err)

	moves := board.LegalMoves(Black)
	require.NoError(t, board.MakeMove(moves[0]))

	restored, err := Deserialize(board.Serialize())
	require.NoError(t, err)

	// A deserialized board starts with fresh history
	require.Equal(t, 0, restored.HistoryLen())
	require.False(t, restored.Undo())
}
