package ws

import (
	"encoding/json"

	"reversi/internal/models"
)

// Incoming is the envelope of messages received from the client.
type Incoming struct {
	Event string          `json:"event"`
	ID    string          `json:"id"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing is the envelope of messages sent to the client.
type Outgoing struct {
	ID   string      `json:"id"`
	Data interface{} `json:"data"`
}

// GameStateRequest asks for the current view of a session.
type GameStateRequest struct {
	SessionID string `json:"session_id"`
}

// MoveRequest applies a human move to a session.
type MoveRequest struct {
	SessionID string `json:"session_id"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
}

// AIMoveRequest asks the engine to move in a session.
type AIMoveRequest struct {
	SessionID string `json:"session_id"`
}

// GameStateResponse carries the updated session view, plus the move the
// engine applied when responding to an AI move request.
type GameStateResponse struct {
	Game models.GameResponse `json:"game"`
	Move *models.AppliedMove `json:"move,omitempty"`
}
