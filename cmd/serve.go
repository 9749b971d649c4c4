package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/httpapi"
	"github.com/abhisek/smarty/internal/logging"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the games as a JSON API",
	Long: `Start an HTTP server exposing every game as JSON endpoints.

Sessions live in memory and are finished after a period of inactivity.
Levels, crowns and history are shared with the terminal UI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.HTTP.Addr = addr
		}

		log := logging.New(cfg.Log)

		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := httpapi.New(newEnv(cfg, st, log), cfg.HTTP.Timeout)
		return srv.Start(ctx, cfg.HTTP.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SMARTY_HTTP_ADDR env var)")
}
