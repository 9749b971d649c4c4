package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/router"
	"github.com/abhisek/smarty/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		SessionID: "s-1",
		App:       crowns.AppSyllables,
		Mode:      "fixed",
		Level:     4,
		Duration:  7 * time.Minute,
		Stats: session.Stats{
			TasksCompleted: 20,
			Correct:        20,
			Attempts:       23,
			LongestStreak:  11,
		},
		Solved:    20,
		Crowns:    1,
		Completed: true,
		Warnings:  []string{"could not save crowns"},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Zusammenfassung" {
		t.Errorf("Title = %q, want %q", s.Title(), "Zusammenfassung")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	for _, want := range []string{"Geschafft!", "Gelöst: 20", "+1 Kronen", "could not save crowns"} {
		if !containsText(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testSummary())
		_, cmd := s.Update(tea.KeyPressMsg{Code: key})
		if cmd == nil {
			t.Fatalf("expected a command on key %v", key)
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("key %v: expected PopToRootMsg", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

// containsText reports whether the rendered view contains want once
// styling is stripped.
func containsText(view, want string) bool {
	return strings.Contains(ansi.Strip(view), want)
}
