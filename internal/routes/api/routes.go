package api

import (
	"github.com/gofiber/fiber/v2"

	"reversi/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Game session routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/moves", ApplyMove)
	apiGroup.Post("/games/:id/pass", PassTurn)
	apiGroup.Post("/games/:id/undo", UndoMove)
	apiGroup.Post("/games/:id/redo", RedoMove)
	apiGroup.Post("/games/:id/ai-move", AIMove)
	apiGroup.Delete("/games/:id", DeleteGame)

	// Saved game routes
	apiGroup.Post("/games/:id/save", SaveGame)
	apiGroup.Post("/games/load", LoadGame)
	apiGroup.Get("/saved-games", ListSavedGames)
	apiGroup.Delete("/saved-games/:id", DeleteSavedGame)
}
