package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "WORDS_FILE", "WORDS_DB", "MAX_LIVES",
	"DAILY_SALT", "SESSION_SECRET", "SESSION_COOKIE", "SESSION_TTL",
	"CLIENT_ORIGIN", "APP_ENV",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "5175", c.Port)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, 6, c.MaxLives)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, "hangman_session", c.SessionCookie)
	assert.Empty(t, c.WordsFile)
	assert.False(t, c.Production)
}

func TestOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_FORMAT", "Console")
	t.Setenv("MAX_LIVES", "8")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("WORDS_FILE", "data/dummy_dataset.csv")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "s3cret")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", c.Port)
	assert.Equal(t, "console", c.LogFormat)
	assert.Equal(t, 8, c.MaxLives)
	assert.Equal(t, 90*time.Minute, c.SessionTTL)
	assert.Equal(t, "data/dummy_dataset.csv", c.WordsFile)
	assert.True(t, c.Production)
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"MAX_LIVES":   "0",
		"SESSION_TTL": "soon",
		"LOG_FORMAT":  "xml",
	}
	for k, v := range cases {
		clearEnv(t)
		t.Setenv(k, v)
		_, err := Load()
		assert.Error(t, err, k)
	}

	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	_, err := Load()
	assert.Error(t, err, "default secret in production")
}
