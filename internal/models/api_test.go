package models

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/internal/config"
	"reversi/internal/othello"
)

func TestCreateGameRequest_ApplyDefaults(t *testing.T) {
	req := CreateGameRequest{}
	req.ApplyDefaults()
	require.Equal(t, config.DefaultBoardSize, req.Size)
	require.Equal(t, config.DefaultAIDepth, req.AIDepth)

	// Explicit values are kept
	req = CreateGameRequest{Size: 6, AIDepth: 2}
	req.ApplyDefaults()
	require.Equal(t, 6, req.Size)
	require.Equal(t, 2, req.AIDepth)
}

func TestCreateGameRequest_Validate(t *testing.T) {
	valid := CreateGameRequest{Size: 8, AIDepth: 4}
	require.NoError(t, valid.Validate())

	for _, req := range []CreateGameRequest{
		{Size: 7, AIDepth: 4},
		{Size: 2, AIDepth: 4},
		{Size: 18, AIDepth: 4},
		{Size: 8, AIDepth: 0},
		{Size: 8, AIDepth: 7},
	} {
		require.Error(t, req.Validate(), "request %+v should be rejected", req)
	}
}

func TestSaveGameRequest_Validate(t *testing.T) {
	require.Error(t, (&SaveGameRequest{}).Validate())
	require.NoError(t, (&SaveGameRequest{Name: "weekend game"}).Validate())
}

func TestNewGameResponse(t *testing.T) {
	session, err := NewSession("abc", 8, 4)
	require.NoError(t, err)

	board, err := session.ApplyMove(2, 3)
	require.NoError(t, err)

	resp := NewGameResponse(session, board)

	require.Equal(t, "abc", resp.ID)
	require.Equal(t, 4, resp.AIDepth)
	require.Equal(t, board.Serialize(), resp.State)
	require.Equal(t, 4, resp.BlackScore)
	require.Equal(t, 1, resp.WhiteScore)
	require.NotEmpty(t, resp.LegalMoves)
	require.Len(t, resp.MoveList, 1)
	require.False(t, resp.GameOver)
	require.Nil(t, resp.Winner)
	require.True(t, resp.CanUndo)
	require.False(t, resp.CanRedo)
}

func TestNewGameResponse_Finished(t *testing.T) {
	state := othello.State{Size: 4, ToMove: int(othello.Black), Grid: [][]int{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 2, 2},
		{2, 2, 2, 2},
	}}

	session, err := NewSessionFromState("done", state, 1)
	require.NoError(t, err)
	board, err := session.Board()
	require.NoError(t, err)

	resp := NewGameResponse(session, board)

	require.True(t, resp.GameOver)
	require.Empty(t, resp.LegalMoves)
	require.NotNil(t, resp.Winner)
	require.Equal(t, othello.Black, *resp.Winner)
	require.False(t, resp.CanUndo)
}
