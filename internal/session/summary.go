package session

import (
	"time"

	"github.com/abhisek/smarty/internal/crowns"
	"github.com/abhisek/smarty/internal/store"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID string        `json:"sessionId"`
	App       crowns.App    `json:"app"`
	Mode      string        `json:"mode"`
	Level     int           `json:"level"`
	Duration  time.Duration `json:"duration"`
	Stats     Stats         `json:"stats"`
	Solved    int           `json:"solved"`
	HintsUsed int           `json:"hintsUsed,omitempty"`
	Crowns    int           `json:"crowns"`
	Completed bool          `json:"completed"`
	Warnings  []string      `json:"warnings,omitempty"`
}

// BuildSummary creates a Summary from the session bookkeeping.
func BuildSummary(b *base) *Summary {
	return &Summary{
		SessionID: b.id,
		App:       b.plan.App,
		Mode:      string(b.plan.Mode()),
		Level:     b.plan.Level,
		Duration:  time.Since(b.start),
		Stats:     b.stats,
		Solved:    b.solved,
		HintsUsed: b.hints,
		Crowns:    b.crowns.SessionTotal(),
		Completed: b.done,
		Warnings:  append([]string(nil), b.warnings...),
	}
}

// EventData converts the summary into a history event.
func (s *Summary) EventData() store.SessionEventData {
	return store.SessionEventData{
		SessionID:    s.SessionID,
		App:          string(s.App),
		Mode:         s.Mode,
		Level:        s.Level,
		TasksSolved:  s.Solved,
		Correct:      s.Stats.Correct,
		Incorrect:    s.Stats.Incorrect(),
		HintsUsed:    s.HintsUsed,
		Crowns:       s.Crowns,
		Completed:    s.Completed,
		DurationSecs: int(s.Duration.Seconds()),
	}
}
