package problemgen

import "fmt"

// InsufficientPoolError is returned when no valid task could be built
// from the candidate pool within the attempt limit.
type InsufficientPoolError struct {
	Kind     Kind
	Mode     Mode
	PoolSize int
	Attempts int
	Err      error
}

func (e *InsufficientPoolError) Error() string {
	msg := fmt.Sprintf("cannot build %s task (mode %s) from pool of %d", e.Kind, e.Mode, e.PoolSize)
	if e.Attempts > 0 {
		msg += fmt.Sprintf(" after %d attempts", e.Attempts)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InsufficientPoolError) Unwrap() error { return e.Err }
