// Package config resolves runtime settings from defaults, an optional
// .env file and SMARTY_* environment variables. Command-line flags are
// applied on top by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default
	// location under the user's data directory.
	DBPath string

	// WordsPath is a word database JSON file. Empty means the
	// embedded default database.
	WordsPath string

	Log  LogConfig
	HTTP HTTPConfig

	// Seed fixes the random source. 0 means a random seed.
	Seed uint64
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level  string // trace, debug, info, warn, error. Default: "info"
	Format string // "console" or "json". Default: "console"
}

// HTTPConfig configures the JSON adapter started by `smarty serve`.
type HTTPConfig struct {
	Addr    string        // Default: "127.0.0.1:8080"
	Timeout time.Duration // per-request handler timeout. Default: 10s
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		HTTP: HTTPConfig{
			Addr:    "127.0.0.1:8080",
			Timeout: 10 * time.Second,
		},
	}
}

// FromEnv loads a .env file from the working directory when present and
// builds a Config from environment variables, falling back to defaults
// for unset values.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if p := os.Getenv("SMARTY_DB"); p != "" {
		cfg.DBPath = p
	}
	if p := os.Getenv("SMARTY_WORDS"); p != "" {
		cfg.WordsPath = p
	}
	if l := os.Getenv("SMARTY_LOG_LEVEL"); l != "" {
		cfg.Log.Level = l
	}
	if f := os.Getenv("SMARTY_LOG_FORMAT"); f != "" {
		cfg.Log.Format = f
	}
	if a := os.Getenv("SMARTY_HTTP_ADDR"); a != "" {
		cfg.HTTP.Addr = a
	}
	if s := os.Getenv("SMARTY_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("SMARTY_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

// Validate checks the values that cannot be corrected later.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unknown log level: %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http timeout must be positive, got %s", c.HTTP.Timeout)
	}
	return nil
}
