package config

import (
	"log/slog"
	"os"
)

// Engine bounds. Collaborating layers validate against these before
// anything reaches the board or the search engine.
const (
	DefaultBoardSize = 8
	MinBoardSize     = 4
	MaxBoardSize     = 16

	DefaultAIDepth = 4
	MinAIDepth     = 1
	MaxAIDepth     = 6

	// MaxTranspositionSize caps the AI transposition table. When a search
	// leaves the table above this cap, the next search clears it wholesale.
	MaxTranspositionSize = 10000

	SaveFileVersion   = "2.0"
	SaveGameExtension = ".rsv"
)

// ValidBoardSize checks that size is one of the supported board sizes.
func ValidBoardSize(size int) bool {
	return size >= MinBoardSize && size <= MaxBoardSize && size%2 == 0
}

// ValidAIDepth checks that depth is within the supported search range.
func ValidAIDepth(depth int) bool {
	return depth >= MinAIDepth && depth <= MaxAIDepth
}

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("REVERSI_SERVER_HOST"),
		ServerPort:        getEnvMust("REVERSI_SERVER_PORT"),
		RedisURL:          getEnvMust("REVERSI_REDIS_URL"),
		PostgresURL:       getEnvMust("REVERSI_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("REVERSI_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("REVERSI_BASIC_AUTH_PASS"),
		Token:             getEnvMust("REVERSI_SERVER_TOKEN"),
		Prefork:           getEnvMustBool("REVERSI_SERVER_PREFORK"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}
