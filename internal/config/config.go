// Package config reads the server settings from the environment.
// main loads a .env file (godotenv) before calling Load.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MuraliDhar-731/Hangman/internal/game"
)

// Config is the resolved server configuration.
type Config struct {
	Port          string        // PORT
	LogLevel      string        // LOG_LEVEL (zerolog level name)
	LogFormat     string        // LOG_FORMAT: json | console
	WordsFile     string        // WORDS_FILE: CSV word table
	WordsDB       string        // WORDS_DB: SQLite file with a words table
	MaxLives      int           // MAX_LIVES
	DailySalt     string        // DAILY_SALT
	SessionSecret string        // SESSION_SECRET: HS256 key for the session cookie
	SessionCookie string        // SESSION_COOKIE
	SessionTTL    time.Duration // SESSION_TTL: idle time before a session is swept
	ClientOrigin  string        // CLIENT_ORIGIN for CORS
	Production    bool          // APP_ENV=production
}

// Load reads Config from the environment, applying defaults.
func Load() (Config, error) {
	c := Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     strings.ToLower(getEnv("LOG_FORMAT", "json")),
		WordsFile:     os.Getenv("WORDS_FILE"),
		WordsDB:       os.Getenv("WORDS_DB"),
		MaxLives:      game.DefaultMaxLives,
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
		SessionSecret: getEnv("SESSION_SECRET", "dev_secret_change_me"),
		SessionCookie: getEnv("SESSION_COOKIE", "hangman_session"),
		SessionTTL:    24 * time.Hour,
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		Production:    strings.EqualFold(os.Getenv("APP_ENV"), "production"),
	}

	if v := os.Getenv("MAX_LIVES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("MAX_LIVES: want a positive integer, got %q", v)
		}
		c.MaxLives = n
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL: want a positive duration, got %q", v)
		}
		c.SessionTTL = d
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return Config{}, fmt.Errorf("LOG_FORMAT: want json or console, got %q", c.LogFormat)
	}
	if c.Production && c.SessionSecret == "dev_secret_change_me" {
		return Config{}, fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return c, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
