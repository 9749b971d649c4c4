package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		app, _ := cmd.Flags().GetString("app")
		if app != "" {
			if _, err := parseApp(app); err != nil {
				return err
			}
		}

		records, err := querySessions(cmd, store.QueryOpts{Limit: limit, App: app})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sessions found.")
			return nil
		}
		printSessionList(cmd.OutOrStdout(), records)
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "Show one recorded session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seq int64
		if _, err := fmt.Sscanf(args[0], "%d", &seq); err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		records, err := querySessions(cmd, store.QueryOpts{})
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.Sequence == seq {
				printSession(cmd.OutOrStdout(), r)
				return nil
			}
		}
		return fmt.Errorf("session %d not found", seq)
	},
}

func querySessions(cmd *cobra.Command, opts store.QueryOpts) ([]store.SessionRecord, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	records, err := st.EventRepo().RecentSessions(cmd.Context(), opts)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return records, nil
}

func printSessionList(w io.Writer, records []store.SessionRecord) {
	fmt.Fprintf(w, "%-5s  %-19s  %-10s  %-8s  %5s  %6s  %6s  %6s  %s\n",
		"Seq", "Timestamp", "Game", "Mode", "Level", "Solved", "Wrong", "Crowns", "Done")
	fmt.Fprintln(w, strings.Repeat("─", 90))
	for _, r := range records {
		done := "✓"
		if !r.Completed {
			done = "✗"
		}
		fmt.Fprintf(w, "%-5d  %-19s  %-10s  %-8s  %5d  %6d  %6d  %6d  %s\n",
			r.Sequence,
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.App, r.Mode, r.Level, r.TasksSolved, r.Incorrect, r.Crowns, done)
	}
}

func printSession(w io.Writer, r store.SessionRecord) {
	fmt.Fprintf(w, "Seq:       %d\n", r.Sequence)
	fmt.Fprintf(w, "Time:      %s\n", r.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Session:   %s\n", r.SessionID)
	fmt.Fprintf(w, "Game:      %s (%s)\n", r.App, r.Mode)
	fmt.Fprintf(w, "Level:     %d\n", r.Level)
	fmt.Fprintf(w, "Solved:    %d\n", r.TasksSolved)
	fmt.Fprintf(w, "Answers:   %d correct / %d wrong\n", r.Correct, r.Incorrect)
	if r.HintsUsed > 0 {
		fmt.Fprintf(w, "Hints:     %d\n", r.HintsUsed)
	}
	fmt.Fprintf(w, "Crowns:    %d\n", r.Crowns)
	fmt.Fprintf(w, "Completed: %v\n", r.Completed)
	fmt.Fprintf(w, "Duration:  %s\n", time.Duration(r.DurationSecs)*time.Second)
}

// parseApp maps a game name to its app.
func parseApp(name string) (crowns.App, error) {
	for _, app := range crowns.AllApps() {
		if string(app) == strings.ToLower(name) {
			return app, nil
		}
	}
	return "", fmt.Errorf("unknown game %q: must be syllables, math, letters or sudoku", name)
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")
	historyListCmd.Flags().StringP("app", "a", "", "Filter by game (syllables, math, letters, sudoku)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}
