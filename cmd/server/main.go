package main

import (
	"log"

	"github.com/joho/godotenv"

	"reversi/internal"
	"reversi/internal/config"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
