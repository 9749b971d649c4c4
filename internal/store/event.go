package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

// sequenceCounter hands out monotonic sequence numbers for session
// events so their order survives clock changes. It continues after the
// highest stored sequence; the mutex serializes writers in the process.
type sequenceCounter struct {
	mu   sync.Mutex
	db   *sql.DB
	last int64
	init bool
}

func newSequenceCounter(db *sql.DB) *sequenceCounter {
	return &sequenceCounter{db: db}
}

// Next returns the next sequence number. The first call reads the
// current maximum from the session_events table.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.init {
		query, args := sqlite().
			Select(entsql.Max("sequence")).
			From(entsql.Table(SessionEventsTable.Name)).
			Query()
		var last sql.NullInt64
		if err := sc.db.QueryRowContext(ctx, query, args...).Scan(&last); err != nil {
			return 0, fmt.Errorf("read last sequence: %w", err)
		}
		sc.last = last.Int64
		sc.init = true
	}
	sc.last++
	return sc.last, nil
}
