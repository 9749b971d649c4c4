package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/problemgen"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/screen"
	"github.com/abhisek/smarty/internal/screens/history"
	"github.com/abhisek/smarty/internal/screens/letters"
	"github.com/abhisek/smarty/internal/screens/mathgame"
	"github.com/abhisek/smarty/internal/screens/sudokugame"
	"github.com/abhisek/smarty/internal/screens/syllables"
	"github.com/abhisek/smarty/internal/session"
	"github.com/abhisek/smarty/internal/sudoku"
	"github.com/abhisek/smarty/internal/ui/components"
	"github.com/abhisek/smarty/internal/ui/layout"
	"github.com/abhisek/smarty/internal/validate"
	"github.com/abhisek/smarty/internal/words"
)

// game is one playable menu entry.
type game struct {
	label    string
	app      crowns.App
	adaptive bool
}

var games = []game{
	{label: "SILBEN", app: crowns.AppSyllables},
	{label: "SILBEN ADAPTIV", app: crowns.AppSyllables, adaptive: true},
	{label: "BUCHSTABEN", app: crowns.AppLetters},
	{label: "MATHE BLATT", app: crowns.AppMath},
	{label: "MATHE ADAPTIV", app: crowns.AppMath, adaptive: true},
	{label: "SUDOKU", app: crowns.AppSudoku},
}

// HomeScreen is the main menu. Left and right change the level of the
// selected game; o switches the math operator.
type HomeScreen struct {
	ctx     context.Context
	env     *session.Env
	planner *session.Planner

	menu   components.Menu
	levels map[crowns.App]int
	op     problemgen.Operator
	totals map[crowns.Ledger]int
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(ctx context.Context, env *session.Env) *HomeScreen {
	h := &HomeScreen{
		ctx:     ctx,
		env:     env,
		planner: session.NewPlanner(env.Progress, env.Log),
		levels:  make(map[crowns.App]int),
		op:      problemgen.OpAdd,
	}
	h.refresh()
	return h
}

// Init reloads levels and crowns, e.g. when returning from a game.
func (h *HomeScreen) Init() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) refresh() {
	for _, app := range crowns.AllApps() {
		h.levels[app] = h.planner.SavedLevel(h.ctx, app)
	}
	h.totals = crowns.NewService(h.env.Progress, h.env.Log).Totals(h.ctx)
	h.rebuild()
}

func (h *HomeScreen) hasWords() bool {
	return len(h.env.Words) > 0
}

// rebuild recreates the menu so details reflect the current levels.
func (h *HomeScreen) rebuild() {
	selected := h.menu.Selected
	var items []components.MenuItem
	for _, g := range games {
		items = append(items, components.MenuItem{
			Label:    g.label,
			Detail:   h.detail(g),
			Disabled: g.app != crowns.AppMath && g.app != crowns.AppSudoku && !h.hasWords(),
			Action:   func() tea.Cmd { return h.start(g) },
		})
	}
	items = append(items,
		components.MenuItem{Label: "VERLAUF", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.ctx, h.env.Events, h.env.Progress)}
			}
		}},
		components.MenuItem{Label: "BEENDEN", Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) && !items[selected].Disabled {
		h.menu.Selected = selected
	}
}

func (h *HomeScreen) detail(g game) string {
	level := h.levels[g.app]
	switch g.app {
	case crowns.AppSudoku:
		return sudoku.Difficulty(level).String()
	case crowns.AppMath:
		return fmt.Sprintf("%s  Level %d", h.op, level)
	}
	return fmt.Sprintf("Level %d · %s", level, words.DifficultyForLevel(level).Label())
}

// start builds the session for g and pushes its screen.
func (h *HomeScreen) start(g game) tea.Cmd {
	plan, err := h.planner.Build(h.ctx, session.Plan{
		App:      g.app,
		Adaptive: g.adaptive,
		Level:    h.levels[g.app],
		Operator: h.op,
	})
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	sess, err := session.New(h.ctx, h.env, plan)
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	scr := gameScreen(h.ctx, sess)
	return func() tea.Msg { return router.PushScreenMsg{Screen: scr} }
}

func gameScreen(ctx context.Context, sess session.Session) screen.Screen {
	switch s := sess.(type) {
	case *session.SyllableSession:
		return syllables.New(ctx, s)
	case *session.MathSession:
		return mathgame.New(ctx, s)
	case *session.LetterSession:
		return letters.New(ctx, s)
	case *session.SudokuSession:
		return sudokugame.New(ctx, s)
	}
	panic(fmt.Sprintf("home: no screen for %T", sess))
}

func (h *HomeScreen) selectedGame() (game, bool) {
	if h.menu.Selected < len(games) {
		return games[h.menu.Selected], true
	}
	return game{}, false
}

// step changes the level of the selected game within its bounds.
func (h *HomeScreen) step(delta int) {
	g, ok := h.selectedGame()
	if !ok {
		return
	}
	hi := validate.MaxLevel
	if g.app == crowns.AppSudoku {
		hi = int(sudoku.Level3)
	}
	h.levels[g.app] = min(max(h.levels[g.app]+delta, 1), hi)
	h.rebuild()
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h", "-":
			h.step(-1)
			return h, nil
		case "right", "l", "+":
			h.step(1)
			return h, nil
		case "o":
			if g, ok := h.selectedGame(); ok && g.app == crowns.AppMath {
				if h.op == problemgen.OpAdd {
					h.op = problemgen.OpSub
				} else {
					h.op = problemgen.OpAdd
				}
				h.rebuild()
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot(), cw))
	}
	sections = append(sections, renderStatsBar(h.totals, cw, compact))
	if !h.hasWords() {
		sections = append(sections, renderNoWordsBanner(cw))
	}
	sections = append(sections, renderArcadeMenu(h.menu, cw, compact))
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) mascot() MascotVariant {
	switch {
	case !h.hasWords():
		return MascotAlert
	case h.totals[crowns.LedgerGerman]+h.totals[crowns.LedgerShared] > 0:
		return MascotCelebrating
	}
	return MascotIdle
}

func (h *HomeScreen) Title() string {
	return "Start"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Auswahl"},
		{Key: "←→", Description: "Level"},
	}
	if g, ok := h.selectedGame(); ok && g.app == crowns.AppMath {
		hints = append(hints, layout.KeyHint{Key: "O", Description: "Plus/Minus"})
	}
	return append(hints,
		layout.KeyHint{Key: "Enter", Description: "Spielen"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Ende"},
	)
}
