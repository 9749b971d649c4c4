package store

import (
	"context"
	"database/sql"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on SQLite.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

var sessionEventFields = []string{
	"sequence", "timestamp", "session_id", "app", "mode", "level",
	"tasks_solved", "correct_answers", "incorrect_answers",
	"hints_used", "crowns", "completed", "duration_secs",
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return &PersistenceError{Op: "append session event", Err: err}
	}

	query, args := sqlite().
		Insert(SessionEventsTable.Name).
		Columns(sessionEventFields...).
		Values(
			seqNum, time.Now().UnixMilli(), data.SessionID, data.App, data.Mode, data.Level,
			data.TasksSolved, data.Correct, data.Incorrect,
			data.HintsUsed, data.Crowns, data.Completed, data.DurationSecs,
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return &PersistenceError{Op: "append session event", Err: err}
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	sel := sqlite().
		Select(sessionEventFields...).
		From(entsql.Table(SessionEventsTable.Name)).
		OrderBy(entsql.Desc("sequence"))
	if opts.App != "" {
		sel = sel.Where(entsql.EQ("app", opts.App))
	}
	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &PersistenceError{Op: "query session events", Err: err}
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var ts int64
		err := rows.Scan(
			&rec.Sequence, &ts, &rec.SessionID, &rec.App, &rec.Mode, &rec.Level,
			&rec.TasksSolved, &rec.Correct, &rec.Incorrect,
			&rec.HintsUsed, &rec.Crowns, &rec.Completed, &rec.DurationSecs,
		)
		if err != nil {
			return nil, &PersistenceError{Op: "scan session event", Err: err}
		}
		rec.Timestamp = time.UnixMilli(ts)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &PersistenceError{Op: "query session events", Err: err}
	}
	return out, nil
}
