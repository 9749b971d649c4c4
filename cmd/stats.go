package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show crowns, levels and per-game totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		progress := st.ProgressRepo()
		totals, err := progress.Crowns(ctx)
		if err != nil {
			return fmt.Errorf("query crowns: %w", err)
		}
		levels, err := progress.Levels(ctx)
		if err != nil {
			return fmt.Errorf("query levels: %w", err)
		}
		records, err := st.EventRepo().RecentSessions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}

		printStats(cmd.OutOrStdout(), totals, levels, records)
		return nil
	},
}

type gameStats struct {
	sessions, completed, correct, incorrect, crowns int
}

func printStats(w io.Writer, totals, levels map[string]int, records []store.SessionRecord) {
	fmt.Fprintln(w, "Crowns")
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, l := range crowns.AllLedgers() {
		fmt.Fprintf(w, "%-20s  %6d\n", l.DisplayName(), totals[string(l)])
	}

	per := make(map[string]*gameStats)
	for _, r := range records {
		g := per[r.App]
		if g == nil {
			g = &gameStats{}
			per[r.App] = g
		}
		g.sessions++
		if r.Completed {
			g.completed++
		}
		g.correct += r.Correct
		g.incorrect += r.Incorrect
		g.crowns += r.Crowns
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-14s  %5s  %8s  %9s  %8s  %6s\n",
		"Game", "Level", "Sessions", "Completed", "Accuracy", "Crowns")
	fmt.Fprintln(w, strings.Repeat("─", 62))
	for _, app := range crowns.AllApps() {
		level, ok := levels[string(app)]
		if !ok {
			level = session.DefaultLevel(app)
		}
		g := per[string(app)]
		if g == nil {
			g = &gameStats{}
		}
		fmt.Fprintf(w, "%-14s  %5d  %8d  %9d  %8s  %6d\n",
			app.DisplayName(), level, g.sessions, g.completed, accuracy(g.correct, g.incorrect), g.crowns)
	}
}

func accuracy(correct, incorrect int) string {
	total := correct + incorrect
	if total == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", correct*100/total)
}
