package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"reversi/internal/models"
	"reversi/internal/othello"
	"reversi/internal/services"
)

// ErrSavedGameNotFound is returned when a saved game id is unknown.
var ErrSavedGameNotFound = errors.New("saved game not found")

// SavedGameRepository persists board states in Postgres.
type SavedGameRepository struct {
	services *services.Services
}

// NewSavedGameRepository creates a repository from a request context.
func NewSavedGameRepository(c *fiber.Ctx) *SavedGameRepository {
	return &SavedGameRepository{
		services: c.Locals("services").(*services.Services), //nolint: errcheck
	}
}

// NewSavedGameRepositoryFromServices creates a repository from services directly.
func NewSavedGameRepositoryFromServices(services *services.Services) *SavedGameRepository {
	return &SavedGameRepository{
		services: services,
	}
}

// savedGameRow is the database shape of a saved game.
type savedGameRow struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Size       int       `db:"size"`
	State      []byte    `db:"state"`
	BlackScore int       `db:"black_score"`
	WhiteScore int       `db:"white_score"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row savedGameRow) toModel() (models.SavedGame, error) {
	var state othello.State
	if err := json.Unmarshal(row.State, &state); err != nil {
		return models.SavedGame{}, fmt.Errorf("error unmarshaling saved state: %w", err)
	}

	return models.SavedGame{
		ID:         row.ID,
		Name:       row.Name,
		State:      state,
		BlackScore: row.BlackScore,
		WhiteScore: row.WhiteScore,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// Save upserts a board state under the given name. Saving the same name
// again overwrites the previous state.
func (repo *SavedGameRepository) Save(ctx context.Context, name string, state othello.State) (models.SavedGame, error) {
	board, err := othello.Deserialize(state)
	if err != nil {
		return models.SavedGame{}, err
	}
	black, white := board.Score()

	stateJSON, err := json.Marshal(state)
	if err != nil {
		return models.SavedGame{}, fmt.Errorf("error marshaling state: %w", err)
	}

	query := `
		INSERT INTO saved_games (id, name, size, state, black_score, white_score, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (name)
		DO UPDATE SET
			size = EXCLUDED.size,
			state = EXCLUDED.state,
			black_score = EXCLUDED.black_score,
			white_score = EXCLUDED.white_score,
			updated_at = NOW()
		RETURNING id, name, size, state, black_score, white_score, updated_at;
	`

	var row savedGameRow
	err = repo.services.Postgres.GetContext(ctx, &row, query,
		uuid.New().String(), name, state.Size, stateJSON, black, white)
	if err != nil {
		return models.SavedGame{}, fmt.Errorf("error saving game: %w", err)
	}

	return row.toModel()
}

// Get loads a saved game by id.
func (repo *SavedGameRepository) Get(ctx context.Context, id string) (models.SavedGame, error) {
	query := `
		SELECT id, name, size, state, black_score, white_score, updated_at
		FROM saved_games
		WHERE id = $1;
	`

	var row savedGameRow
	err := repo.services.Postgres.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SavedGame{}, ErrSavedGameNotFound
	}
	if err != nil {
		return models.SavedGame{}, fmt.Errorf("error loading saved game: %w", err)
	}

	return row.toModel()
}

// List returns summaries of all saved games, most recent first.
func (repo *SavedGameRepository) List(ctx context.Context) ([]models.SavedGameSummary, error) {
	query := `
		SELECT id, name, size, black_score, white_score, updated_at
		FROM saved_games
		ORDER BY updated_at DESC;
	`

	summaries := make([]models.SavedGameSummary, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("error listing saved games: %w", err)
	}

	return summaries, nil
}

// Delete removes a saved game by id.
func (repo *SavedGameRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.services.Postgres.ExecContext(ctx, `DELETE FROM saved_games WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("error deleting saved game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting saved game: %w", err)
	}
	if affected == 0 {
		return ErrSavedGameNotFound
	}

	return nil
}
