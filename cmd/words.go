package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/words"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect the word database",
}

var wordsCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a word database file (default: the embedded one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		db, err := words.Load(path)
		if err != nil {
			return err
		}
		printWordSummary(cmd.OutOrStdout(), db)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List words (optionally filtered by difficulty or category)",
	RunE: func(cmd *cobra.Command, args []string) error {
		difficulty, _ := cmd.Flags().GetString("difficulty")
		category, _ := cmd.Flags().GetString("category")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		db, err := words.Load(cfg.WordsPath)
		if err != nil {
			return err
		}

		if difficulty != "" && words.Difficulty(difficulty).Rank() == 0 {
			return fmt.Errorf("unknown difficulty %q: must be easy, medium or hard", difficulty)
		}
		list := words.Filter(db.Words, func(e words.Entry) bool {
			if difficulty != "" && e.Difficulty != words.Difficulty(difficulty) {
				return false
			}
			return category == "" || strings.EqualFold(e.Category, category)
		})

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-3s  %-16s  %-8s  %-8s  %s\n", "", "Word", "Syllable", "Level", "Category")
		fmt.Fprintln(w, strings.Repeat("─", 56))
		for _, e := range list {
			fmt.Fprintf(w, "%-3s  %-16s  %-8s  %-8s  %s\n", e.Emoji, e.Word, e.Syllable, e.Difficulty, e.Category)
		}
		fmt.Fprintf(w, "\n%d words\n", len(list))
		return nil
	},
}

func printWordSummary(w io.Writer, db *words.Database) {
	fmt.Fprintf(w, "Version:    %s\n", db.Version)
	fmt.Fprintf(w, "Words:      %d\n", len(db.Words))
	counts := db.Counts()
	for _, d := range words.Difficulties {
		fmt.Fprintf(w, "  %-8s  %d\n", d, counts[d])
	}
	fmt.Fprintf(w, "Syllables:  %d\n", len(words.Syllables(db.Words)))
	if cats := db.Categories(); len(cats) > 0 {
		fmt.Fprintf(w, "Categories: %s\n", strings.Join(cats, ", "))
	}
}

func init() {
	wordsListCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, hard)")
	wordsListCmd.Flags().String("category", "", "Filter by category")

	wordsCmd.AddCommand(wordsCheckCmd)
	wordsCmd.AddCommand(wordsListCmd)
}
