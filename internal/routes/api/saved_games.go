package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"reversi/internal/config"
	"reversi/internal/models"
	"reversi/internal/repository"
)

// SaveGame persists the current board of a session.
func SaveGame(c *fiber.Ctx) error {
	var req models.SaveGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sessionRepo := repository.NewSessionRepository(c)
	session, err := sessionRepo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	board, err := session.Board()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	savedRepo := repository.NewSavedGameRepository(c)
	saved, err := savedRepo.Save(c.Context(), req.Name, board.Serialize())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(saved)
}

// LoadGame starts a new session from a saved game.
func LoadGame(c *fiber.Ctx) error {
	var req models.LoadGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.AIDepth == 0 {
		req.AIDepth = config.DefaultAIDepth
	}
	if !config.ValidAIDepth(req.AIDepth) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ai depth outside valid range",
		})
	}

	savedRepo := repository.NewSavedGameRepository(c)
	saved, err := savedRepo.Get(c.Context(), req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSavedGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Saved game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	sessionRepo := repository.NewSessionRepository(c)
	session, err := sessionRepo.CreateFromState(c.Context(), saved.State, req.AIDepth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithSession(c, sessionRepo, session)
}

// ListSavedGames returns summaries of all saved games.
func ListSavedGames(c *fiber.Ctx) error {
	repo := repository.NewSavedGameRepository(c)
	summaries, err := repo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}

// DeleteSavedGame removes a saved game.
func DeleteSavedGame(c *fiber.Ctx) error {
	repo := repository.NewSavedGameRepository(c)
	if err := repo.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, repository.ErrSavedGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Saved game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}
