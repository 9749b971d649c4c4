// Package validate checks learner-facing settings against their allowed
// bounds.
package validate

import "fmt"

// Bounds used across the games.
const (
	MinTaskCount = 1
	MaxTaskCount = 100

	MinLevel = 1
	MaxLevel = 10
)

// InvalidConfigurationError reports a setting outside its allowed range.
type InvalidConfigurationError struct {
	Field string
	Value int
	Min   int
	Max   int
	// Reason is set instead of Min/Max for non-numeric problems.
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %d: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// Range returns an error unless min <= value <= max.
func Range(field string, value, min, max int) error {
	if value < min || value > max {
		return &InvalidConfigurationError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

// TaskCount validates the number of tasks in a fixed session.
func TaskCount(n int) error {
	return Range("task count", n, MinTaskCount, MaxTaskCount)
}

// Level validates a 1..10 difficulty level.
func Level(n int) error {
	return Range("difficulty level", n, MinLevel, MaxLevel)
}

// Invalid builds an error for a non-numeric setting.
func Invalid(field, reason string) error {
	return &InvalidConfigurationError{Field: field, Reason: reason}
}

// Label returns the learner-facing name of a 1..10 level.
func Label(level int) string {
	switch {
	case level <= 3:
		return "Einfach"
	case level <= 6:
		return "Mittel"
	default:
		return "Schwer"
	}
}

// Emoji returns the badge shown next to Label.
func Emoji(level int) string {
	switch {
	case level <= 3:
		return "🟢"
	case level <= 6:
		return "🟡"
	default:
		return "🔴"
	}
}
