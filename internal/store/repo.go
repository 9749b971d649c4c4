package store

import (
	"context"
	"fmt"
	"time"
)

// PersistenceError wraps a storage failure. Callers treat it as
// non-fatal: they fall back to defaults and surface a warning.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// ProgressRepo stores levels per app and crown counts per ledger.
type ProgressRepo interface {
	// Level returns the saved level of app, or 0 if none was saved.
	Level(ctx context.Context, app string) (int, error)

	// SetLevel saves the level of app. Last write wins.
	SetLevel(ctx context.Context, app string, level int) error

	// CrownCount returns the crowns collected in ledger.
	CrownCount(ctx context.Context, ledger string) (int, error)

	// AddCrowns adds n crowns to ledger and returns the new total.
	AddCrowns(ctx context.Context, ledger string, n int) (int, error)

	// Levels returns every saved level keyed by app.
	Levels(ctx context.Context) (map[string]int, error)

	// Crowns returns every ledger total keyed by ledger.
	Crowns(ctx context.Context) (map[string]int, error)

	// Reset deletes all levels, crowns and session history.
	Reset(ctx context.Context) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	App   string // only events of this app ("" = all)
}

// SessionEventData captures one finished or abandoned session.
type SessionEventData struct {
	SessionID    string `json:"sessionId"`
	App          string `json:"app"`
	Mode         string `json:"mode"`
	Level        int    `json:"level"`
	TasksSolved  int    `json:"tasksSolved"`
	Correct      int    `json:"correct"`
	Incorrect    int    `json:"incorrect"`
	HintsUsed    int    `json:"hintsUsed"`
	Crowns       int    `json:"crowns"`
	Completed    bool   `json:"completed"`
	DurationSecs int    `json:"durationSecs"`
}

// SessionRecord is a stored session event.
type SessionRecord struct {
	SessionEventData
	Sequence  int64     `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
}

// EventRepo provides append and query access to session history.
type EventRepo interface {
	// AppendSessionEvent records a session summary.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns session events, newest first.
	RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)
}
