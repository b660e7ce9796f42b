package models

import (
	"errors"
	"fmt"
	"time"

	"reversi/internal/config"
	"reversi/internal/othello"
)

// CreateGameRequest represents the payload for creating a game session.
type CreateGameRequest struct {
	Size    int `json:"size"`
	AIDepth int `json:"ai_depth"`
}

// ApplyDefaults fills in zero-valued fields.
func (r *CreateGameRequest) ApplyDefaults() {
	if r.Size == 0 {
		r.Size = config.DefaultBoardSize
	}
	if r.AIDepth == 0 {
		r.AIDepth = config.DefaultAIDepth
	}
}

// Validate checks the request against the configured engine bounds.
func (r *CreateGameRequest) Validate() error {
	if !config.ValidBoardSize(r.Size) {
		return fmt.Errorf("board size %d must be even and within [%d,%d]",
			r.Size, config.MinBoardSize, config.MaxBoardSize)
	}
	if !config.ValidAIDepth(r.AIDepth) {
		return fmt.Errorf("ai depth %d must be within [%d,%d]",
			r.AIDepth, config.MinAIDepth, config.MaxAIDepth)
	}
	return nil
}

// MoveRequest represents the payload for applying a move.
type MoveRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SaveGameRequest represents the payload for saving a session's board.
type SaveGameRequest struct {
	Name string `json:"name"`
}

// Validate checks the request.
func (r *SaveGameRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

// LoadGameRequest represents the payload for resuming a saved game.
type LoadGameRequest struct {
	ID      string `json:"id"`
	AIDepth int    `json:"ai_depth"`
}

// SavedGame is a persisted board state.
type SavedGame struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	State      othello.State `json:"state"`
	BlackScore int           `json:"black_score"`
	WhiteScore int           `json:"white_score"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// SavedGameSummary is the listing shape for saved games.
type SavedGameSummary struct {
	ID         string    `json:"id"         db:"id"`
	Name       string    `json:"name"       db:"name"`
	Size       int       `json:"size"       db:"size"`
	BlackScore int       `json:"black_score" db:"black_score"`
	WhiteScore int       `json:"white_score" db:"white_score"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// AppliedMove describes a move the server applied on behalf of a player
// or the engine. A pass has row and col set to -1.
type AppliedMove struct {
	Color othello.Cell `json:"color"`
	Row   int          `json:"row"`
	Col   int          `json:"col"`
	Pass  bool         `json:"pass"`
}

// GameResponse is the full session view returned by the API.
type GameResponse struct {
	ID         string               `json:"id"`
	AIDepth    int                  `json:"ai_depth"`
	State      othello.State        `json:"state"`
	LegalMoves []othello.Move       `json:"legal_moves"`
	MoveList   []othello.LoggedMove `json:"move_list"`
	BlackScore int                  `json:"black_score"`
	WhiteScore int                  `json:"white_score"`
	GameOver   bool                 `json:"game_over"`
	Winner     *othello.Cell        `json:"winner,omitempty"`
	CanUndo    bool                 `json:"can_undo"`
	CanRedo    bool                 `json:"can_redo"`
}

// NewGameResponse builds the session view for a board.
func NewGameResponse(session *Session, board *othello.Board) GameResponse {
	black, white := board.Score()

	resp := GameResponse{
		ID:         session.ID,
		AIDepth:    session.AIDepth,
		State:      board.Serialize(),
		LegalMoves: board.LegalMoves(board.ToMove()),
		MoveList:   board.MoveList(),
		BlackScore: black,
		WhiteScore: white,
		GameOver:   board.GameOver(),
		CanUndo:    len(session.Game.Moves) > 0,
		CanRedo:    len(session.Game.Redo) > 0,
	}

	if resp.GameOver && black != white {
		winner := othello.Black
		if white > black {
			winner = othello.White
		}
		resp.Winner = &winner
	}

	return resp
}
