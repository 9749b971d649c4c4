package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.DBPath)
	assert.Zero(t, cfg.Seed)
}

func TestFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SMARTY_DB", "/tmp/kids.db")
	t.Setenv("SMARTY_WORDS", "words.json")
	t.Setenv("SMARTY_LOG_LEVEL", "debug")
	t.Setenv("SMARTY_LOG_FORMAT", "json")
	t.Setenv("SMARTY_HTTP_ADDR", ":9000")
	t.Setenv("SMARTY_SEED", "42")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kids.db", cfg.DBPath)
	assert.Equal(t, "words.json", cfg.WordsPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"seed", "SMARTY_SEED", "abc"},
		{"level", "SMARTY_LOG_LEVEL", "loud"},
		{"format", "SMARTY_LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
