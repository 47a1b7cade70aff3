package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Settings holds everything the server reads from the environment.
// There is no database: domain data is seeded in memory at startup and a
// restart resets it, so the only durable artifact is the signed JWT each
// client keeps.
// The JWT secret is read by the auth middleware straight from JWT_SECRET.
type Settings struct {
	ListenAddr string
	LogFile    string
	GinMode    string
}

// Load reads .env (if present) and the environment into Settings.
func Load() Settings {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Settings{
		ListenAddr: getEnv("LISTEN_ADDR", "0.0.0.0:8080"),
		LogFile:    getEnv("LOG_FILE", "./logs/app.log"),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
