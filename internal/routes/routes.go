package routes

import (
	"github.com/gofiber/fiber/v2"

	"reversi/internal/routes/api"
	"reversi/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name": "reversi",
	})
}

func SetupRoutes(app *fiber.App) {
	// Serve API routes
	api.SetupRoutes(app)

	// Serve websocket for live play
	ws.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
