package crowns

import "time"

// Award represents crowns earned in one go.
type Award struct {
	App       App
	Ledger    Ledger
	Count     int
	Total     int // ledger total after the award, 0 if it could not be read
	SessionID string
	Reason    string // human-readable reason, e.g. "Sudoku gelöst"
	AwardedAt time.Time
}
