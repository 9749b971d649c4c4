package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/store"
	"github.com/abhisek/smarty/internal/words"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Play a syllable or math round on the command line (no database)",
	Long: `Generate and interactively answer tasks for one game and level.

This is a stateless developer tool: nothing is saved, no crowns are kept.
Useful for checking the generated tasks of a level.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("game", "math", "Game: syllables or math")
	previewCmd.Flags().Int("level", 5, "Level 1-10")
	previewCmd.Flags().Int("count", 5, "Number of math tasks")
	previewCmd.Flags().String("op", "+", "Math operator: + or -")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	game, _ := cmd.Flags().GetString("game")
	level, _ := cmd.Flags().GetInt("level")
	count, _ := cmd.Flags().GetInt("count")
	opVal, _ := cmd.Flags().GetString("op")

	app, err := parseApp(game)
	if err != nil {
		return err
	}
	op, ok := problemgen.ParseOperator(opVal)
	if !ok {
		return fmt.Errorf("invalid operator %q: must be + or -", opVal)
	}

	var pool []words.Entry
	if app == crowns.AppSyllables {
		db, err := words.Load(cfg.WordsPath)
		if err != nil {
			return err
		}
		pool = db.Words
	}

	mem := store.NewMemory()
	env := session.NewEnv(pool, mem, mem, zerolog.Nop(), cfg.Seed)
	planner := session.NewPlanner(mem, zerolog.Nop())
	plan, err := planner.Build(cmd.Context(), session.Plan{App: app, Level: level, Count: count, Operator: op})
	if err != nil {
		return err
	}
	sess, err := session.New(cmd.Context(), env, plan)
	if err != nil {
		return err
	}

	p := &previewer{in: bufio.NewScanner(cmd.InOrStdin()), out: cmd.OutOrStdout()}
	switch s := sess.(type) {
	case *session.SyllableSession:
		err = p.syllables(cmd.Context(), s)
	case *session.MathSession:
		err = p.math(cmd.Context(), s)
	default:
		return fmt.Errorf("preview supports syllables and math, not %s", app)
	}
	if err != nil {
		return err
	}

	sum := sess.Finish(cmd.Context())
	fmt.Fprintf(p.out, "── Summary: %d solved, %d correct of %d attempts ──\n",
		sum.Solved, sum.Stats.Correct, sum.Stats.Attempts)
	return nil
}

type previewer struct {
	in  *bufio.Scanner
	out io.Writer
}

// ask prints the prompt and reads one trimmed line. ok is false once
// input is closed.
func (p *previewer) ask(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		fmt.Fprintln(p.out, "\n(input closed)")
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

func (p *previewer) report(out session.Outcome) {
	switch {
	case out.Correct:
		fmt.Fprintln(p.out, "\033[32m✓ Richtig!\033[0m")
	case out.Answer != "":
		fmt.Fprintf(p.out, "\033[31m✗ Falsch.\033[0m Lösung: %s\n", out.Answer)
	default:
		fmt.Fprintln(p.out, "\033[31m✗ Falsch.\033[0m")
	}
	if out.Award != nil {
		fmt.Fprintf(p.out, "♛ +%d\n", out.Award.Count)
	}
	fmt.Fprintln(p.out)
}

func (p *previewer) syllables(ctx context.Context, s *session.SyllableSession) error {
	for n := 1; ; n++ {
		tasks := s.Tasks()
		if len(tasks) == 0 {
			return nil
		}
		t := tasks[0]

		fmt.Fprintf(p.out, "── Aufgabe %d ──\n%s %s\n", n, t.Emoji, t.Prompt)
		for i, o := range t.Options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
		}
		answer, ok := p.ask("\nAntwort: ")
		if !ok {
			return nil
		}
		if i, err := strconv.Atoi(answer); err == nil && i >= 1 && i <= len(t.Options) {
			answer = t.Options[i-1]
		}

		out, err := s.Answer(ctx, t.ID, answer)
		if err != nil {
			return err
		}
		p.report(out)
		if out.Completed {
			return nil
		}
	}
}

func (p *previewer) math(ctx context.Context, s *session.MathSession) error {
	for {
		var t *problemgen.Task
		for _, task := range s.Tasks() {
			if !s.IsComplete(task.ID) {
				t = task
				break
			}
		}
		if t == nil {
			return nil
		}

		answer, ok := p.ask(t.Prompt + "  ")
		if !ok {
			return nil
		}
		if answer == "" {
			fmt.Fprintln(p.out, "(übersprungen)")
			continue
		}

		out, err := s.Answer(ctx, t.ID, answer)
		if err != nil {
			fmt.Fprintln(p.out, err)
			continue
		}
		p.report(out)
		if out.Completed {
			return nil
		}
	}
}
