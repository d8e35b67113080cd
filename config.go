// config.go loads service configuration from the environment, with an
// optional .env file for local development.
package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the service.
type Config struct {
	Host         string
	Port         int
	DatabasePath string
	Workers      int
	QueueSize    int
	OllamaModel  string
}

// loadConfig reads settings from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func loadConfig() Config {
	_ = godotenv.Load()

	return Config{
		Host:         getenv("APP_HOST", "0.0.0.0"),
		Port:         getenvInt("APP_PORT", 8000),
		DatabasePath: getenv("DATABASE_PATH", "boomerang.db"),
		Workers:      getenvInt("WORKERS", 4),
		QueueSize:    getenvInt("QUEUE_SIZE", 64),
		OllamaModel:  getenv("OLLAMA_MODEL", "llama3.2"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
