package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/config"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "smarty",
	Short: "Learning games for kids",
	Long:  "Smarty: syllables, letters, math and Sudoku for primary school kids, in the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides SMARTY_DB env var)")
	flags.String("words", "", "Path to a word database JSON file (overrides SMARTY_WORDS env var)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn or error")
	flags.Uint64("seed", 0, "Fix the random source (0 = random)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the persistent flags on
// top of it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if p, _ := flags.GetString("words"); p != "" {
		cfg.WordsPath = p
	}
	if l, _ := flags.GetString("log-level"); l != "" {
		cfg.Log.Level = l
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	return cfg, cfg.Validate()
}

// resolveDBPath returns the configured database path, or the default
// XDG location.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func openStore(cfg config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// loadWords returns the word pool. A broken word file is not fatal: the
// word games are disabled and everything else keeps working.
func loadWords(cfg config.Config, log zerolog.Logger) []words.Entry {
	db, err := words.Load(cfg.WordsPath)
	if err != nil {
		log.Warn().Err(err).Msg("word games disabled")
		return nil
	}
	log.Debug().Int("words", len(db.Words)).Str("version", db.Version).Msg("word database loaded")
	return db.Words
}

// newEnv wires the store and word pool into a session environment.
func newEnv(cfg config.Config, st *store.Store, log zerolog.Logger) *session.Env {
	return session.NewEnv(loadWords(cfg, log), st.ProgressRepo(), st.EventRepo(), log, cfg.Seed)
}
