package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/app"
	"github.com/abhisek/smarty/internal/config"
	"github.com/abhisek/smarty/internal/logging"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, splash bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	log, closer := tuiLogger(cfg)
	if closer != nil {
		defer closer.Close()
	}
	log.Info().Str("version", version).Msg("starting terminal ui")

	return app.Run(app.Options{
		Ctx:    cmd.Context(),
		Env:    newEnv(cfg, st, log),
		Splash: splash,
	})
}

// tuiLogger logs next to the database, since the terminal belongs to
// the UI. Without a writable location logging is off.
func tuiLogger(cfg config.Config) (zerolog.Logger, io.Closer) {
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return zerolog.Nop(), nil
	}
	path := filepath.Join(filepath.Dir(dbPath), "smarty.log")
	log, closer, err := logging.ToFile(cfg.Log, path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
		return zerolog.Nop(), nil
	}
	return log, closer
}
