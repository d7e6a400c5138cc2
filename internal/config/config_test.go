package config

import (
	"log/slog"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FRONTEND_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("FOOTBALL_DATA_API_KEY", "")
	t.Setenv("GUARDIAN_API_KEY", "")

	cfg := Load()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "", cfg.FootballAPIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("FRONTEND_URL", "https://pitchside.example.com")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("FOOTBALL_DATA_API_KEY", "football-key")
	t.Setenv("GUARDIAN_API_KEY", "guardian-key")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, []string{"http://localhost:3000", "https://pitchside.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "football-key", cfg.FootballAPIKey)
	assert.Equal(t, "guardian-key", cfg.GuardianAPIKey)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
