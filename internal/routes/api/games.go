package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"reversi/internal/models"
	"reversi/internal/othello"
	"reversi/internal/repository"
)

// CreateGame creates a new game session.
func CreateGame(c *fiber.Ctx) error {
	var req models.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	repo := repository.NewSessionRepository(c)
	session, err := repo.Create(c.Context(), req.Size, req.AIDepth)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithSession(c, repo, session)
}

// GetGame returns the full view of a session.
func GetGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	board, err := session.Board()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(session, board))
}

// ApplyMove applies a human move to a session.
func ApplyMove(c *fiber.Ctx) error {
	var req models.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	if _, err := session.ApplyMove(req.Row, req.Col); err != nil {
		if errors.Is(err, othello.ErrInvalidMove) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithSession(c, repo, session)
}

// PassTurn passes the turn for the side to move.
func PassTurn(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	if _, err := session.ApplyPass(); err != nil {
		if errors.Is(err, othello.ErrInvalidMove) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return respondWithSession(c, repo, session)
}

// UndoMove reverts the last move of a session.
func UndoMove(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	if !session.Undo() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "nothing to undo",
		})
	}

	return respondWithSession(c, repo, session)
}

// RedoMove re-applies the last undone move of a session.
func RedoMove(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	if !session.Redo() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "nothing to redo",
		})
	}

	return respondWithSession(c, repo, session)
}

// AIMove lets the engine pick and apply a move for the side to move.
func AIMove(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	session, err := repo.Get(c.Context(), c.Params("id"))
	if err != nil {
		return sessionError(c, err)
	}

	board, applied, err := session.AIMove()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := repo.Put(c.Context(), session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"move": applied,
		"game": models.NewGameResponse(session, board),
	})
}

// DeleteGame removes a session.
func DeleteGame(c *fiber.Ctx) error {
	repo := repository.NewSessionRepository(c)
	if err := repo.Delete(c.Context(), c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusOK)
}

// respondWithSession persists the session and returns its full view.
func respondWithSession(c *fiber.Ctx, repo *repository.SessionRepository, session *models.Session) error {
	if err := repo.Put(c.Context(), session); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	board, err := session.Board()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(models.NewGameResponse(session, board))
}

func sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrSessionNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
