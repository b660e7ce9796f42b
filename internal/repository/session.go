package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"reversi/internal/models"
	"reversi/internal/othello"
	"reversi/internal/services"
)

const (
	sessionKeyPrefix = "session:"
	sessionTTL       = 24 * time.Hour
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository stores live game sessions in Redis.
type SessionRepository struct {
	services *services.Services
}

// NewSessionRepository creates a repository from a request context.
func NewSessionRepository(c *fiber.Ctx) *SessionRepository {
	return &SessionRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

// NewSessionRepositoryFromServices creates a repository from services directly.
func NewSessionRepositoryFromServices(services *services.Services) *SessionRepository {
	return &SessionRepository{
		services: services,
	}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

// Create stores a new session for a fresh game and returns it.
func (repo *SessionRepository) Create(ctx context.Context, size, aiDepth int) (*models.Session, error) {
	session, err := models.NewSession(uuid.New().String(), size, aiDepth)
	if err != nil {
		return nil, err
	}

	if err := repo.Put(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// CreateFromState stores a new session resuming from a saved board state.
func (repo *SessionRepository) CreateFromState(ctx context.Context, state othello.State, aiDepth int) (*models.Session, error) {
	session, err := models.NewSessionFromState(uuid.New().String(), state, aiDepth)
	if err != nil {
		return nil, err
	}

	if err := repo.Put(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Get loads a session by id.
func (repo *SessionRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := repo.services.Redis.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("error unmarshaling session: %w", err)
	}

	return &session, nil
}

// Put stores a session and refreshes its TTL.
func (repo *SessionRepository) Put(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}

	if err := repo.services.Redis.Set(ctx, sessionKey(session.ID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("error storing session: %w", err)
	}

	return nil
}

// Delete removes a session.
func (repo *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := repo.services.Redis.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}
