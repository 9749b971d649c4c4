package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProgressColumns holds the columns for the "progress" table.
	ProgressColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "app", Type: field.TypeString, Unique: true},
		{Name: "level", Type: field.TypeInt},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// ProgressTable holds the schema information for the "progress" table.
	ProgressTable = &schema.Table{
		Name:       "progress",
		Columns:    ProgressColumns,
		PrimaryKey: []*schema.Column{ProgressColumns[0]},
	}

	// CrownLedgersColumns holds the columns for the "crown_ledgers" table.
	CrownLedgersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "ledger", Type: field.TypeString, Unique: true},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeInt64},
	}
	// CrownLedgersTable holds the schema information for the "crown_ledgers" table.
	CrownLedgersTable = &schema.Table{
		Name:       "crown_ledgers",
		Columns:    CrownLedgersColumns,
		PrimaryKey: []*schema.Column{CrownLedgersColumns[0]},
	}

	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
		{Name: "session_id", Type: field.TypeString},
		{Name: "app", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "tasks_solved", Type: field.TypeInt},
		{Name: "correct_answers", Type: field.TypeInt},
		{Name: "incorrect_answers", Type: field.TypeInt},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "crowns", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "duration_secs", Type: field.TypeInt},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_app_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[2]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProgressTable,
		CrownLedgersTable,
		SessionEventsTable,
	}
)
