package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultPort = "3001"

type Config struct {
	Port            string
	FootballAPIKey  string
	FootballBaseURL string
	GuardianAPIKey  string
	GuardianBaseURL string
	FrontendURL     string
	LogLevel        slog.Level
	AllowedOrigins  []string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	// A missing .env is normal outside local development.
	godotenv.Load()

	cfg := Config{
		Port:            os.Getenv("PORT"),
		FootballAPIKey:  os.Getenv("FOOTBALL_DATA_API_KEY"),
		FootballBaseURL: os.Getenv("FOOTBALL_DATA_BASE_URL"),
		GuardianAPIKey:  os.Getenv("GUARDIAN_API_KEY"),
		GuardianBaseURL: os.Getenv("GUARDIAN_BASE_URL"),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		LogLevel:        parseLevel(os.Getenv("LOG_LEVEL")),
		AllowedOrigins:  []string{"http://localhost:3000"},
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.FrontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, cfg.FrontendURL)
	}

	return cfg
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
