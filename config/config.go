package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GraphPath     string
	SearchTimeout time.Duration
}

// Load reads configuration from the environment, with a .env file as an
// optional source for local development.
func Load() Config {
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	graphPath := strings.TrimSpace(os.Getenv("GRAPH_PATH"))
	if graphPath == "" {
		graphPath = "data/graph.json"
	}

	timeout := 10 * time.Second
	if v := strings.TrimSpace(os.Getenv("SEARCH_TIMEOUT_MS")); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		Port:          port,
		GraphPath:     graphPath,
		SearchTimeout: timeout,
	}
}
