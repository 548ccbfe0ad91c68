package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("GAMESTORE_CONNECTION_STRING", "postgres://localhost:5432/gamestore")
	unsetenv(t, "PORT", "LOG_LEVEL", "LOG_FORMAT")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/gamestore", cfg.ConnectionString)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("GAMESTORE_CONNECTION_STRING", "postgres://db/gamestore")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParseMissingConnectionString(t *testing.T) {
	t.Setenv("GAMESTORE_CONNECTION_STRING", "")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParseRejectsUnknownLogFormat(t *testing.T) {
	t.Setenv("GAMESTORE_CONNECTION_STRING", "postgres://db/gamestore")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Parse()
	assert.ErrorContains(t, err, "LOG_FORMAT")
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		// Setenv registers the restore before the variable is removed.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
