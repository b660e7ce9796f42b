package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"reversi/internal/models"
	"reversi/internal/repository"
	"reversi/internal/services"
)

const requestTimeout = 10 * time.Second

// Handler serves one live-play websocket connection.
type Handler struct {
	services *services.Services
	ws       *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, services *services.Services) *Handler {
	return &Handler{services: services, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", msg)

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	switch req.Event {
	case "game_state_request":
		return h.handleGameState(ctx, req)
	case "move_request":
		return h.handleMove(ctx, req)
	case "ai_move_request":
		return h.handleAIMove(ctx, req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) sessionRepo() *repository.SessionRepository {
	return repository.NewSessionRepositoryFromServices(h.services)
}

func (h *Handler) respond(ctx context.Context, id string, session *models.Session, move *models.AppliedMove) (*Outgoing, error) {
	if err := h.sessionRepo().Put(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	board, err := session.Board()
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild board: %w", err)
	}

	return &Outgoing{
		ID: id,
		Data: GameStateResponse{
			Game: models.NewGameResponse(session, board),
			Move: move,
		},
	}, nil
}

func (h *Handler) handleGameState(ctx context.Context, req *Incoming) (*Outgoing, error) {
	var reqData GameStateRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws game state request unmarshal error: %w", err)
	}

	session, err := h.sessionRepo().Get(ctx, reqData.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return h.respond(ctx, req.ID, session, nil)
}

func (h *Handler) handleMove(ctx context.Context, req *Incoming) (*Outgoing, error) {
	var reqData MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws move request unmarshal error: %w", err)
	}

	session, err := h.sessionRepo().Get(ctx, reqData.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if _, err := session.ApplyMove(reqData.Row, reqData.Col); err != nil {
		return nil, fmt.Errorf("failed to apply move: %w", err)
	}

	return h.respond(ctx, req.ID, session, nil)
}

func (h *Handler) handleAIMove(ctx context.Context, req *Incoming) (*Outgoing, error) {
	var reqData AIMoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("ws ai move request unmarshal error: %w", err)
	}

	session, err := h.sessionRepo().Get(ctx, reqData.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	_, applied, err := session.AIMove()
	if err != nil {
		return nil, fmt.Errorf("failed to apply AI move: %w", err)
	}

	return h.respond(ctx, req.ID, session, &applied)
}
