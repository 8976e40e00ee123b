package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DatabaseURL   string
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	WorkerCount   int
	BatchSize     int
	LogLevel      string
	HTTPAddr      string
	// WatchIntervalMs is the polling interval of the watch command.
	WatchIntervalMs int
	StoreEnabled    bool
	GraphEnabled    bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		DatabaseURL:     getEnv("DATABASE_URL", "postgres://localhost:5432/tosec?sslmode=disable"),
		Neo4jURI:        getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:       getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:   getEnv("NEO4J_PASSWORD", "password"),
		WorkerCount:     getEnvInt("WORKER_COUNT", 8),
		BatchSize:       getEnvInt("BATCH_SIZE", 500),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		WatchIntervalMs: getEnvInt("WATCH_INTERVAL_MS", 1000),
		StoreEnabled:    getEnvBool("STORE_ENABLED", false),
		GraphEnabled:    getEnvBool("GRAPH_ENABLED", false),
	}
}

// Level parses LogLevel, falling back to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
