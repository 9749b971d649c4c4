package problemgen

// Config controls task generation.
type Config struct {
	// Validators run on every generated task in order; a failure counts
	// as a rejected attempt.
	Validators []Validator

	// MaxAttempts bounds retries for syllable and letter tasks.
	MaxAttempts int

	// MathMaxAttempts bounds retries for a single math task.
	MathMaxAttempts int

	// ZeroRejectChance is the probability of rejecting a zero second
	// operand in adaptive mode.
	ZeroRejectChance float64

	// FixedZeroRejectChance is the probability of rejecting a zero
	// operand (addition) or zero result (subtraction) in fixed mode.
	FixedZeroRejectChance float64

	// RecentZeroWindow is how many recent tasks are checked for a zero
	// operand; a hit rejects further zero operands outright.
	RecentZeroWindow int

	// FocusChance is the share of adaptive tasks aimed at the ceiling
	// number after the first unlock.
	FocusChance float64

	// RampTasks is the number of correct answers over which the adaptive
	// effective maximum grows from half to the full result range.
	RampTasks int

	// LetterGroupSize is how many words with and without the letter a
	// letter task shows.
	LetterGroupSize int
}

// DefaultConfig returns the standard validators and limits.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&MathCheckValidator{},
		},
		MaxAttempts:           50,
		MathMaxAttempts:       100,
		ZeroRejectChance:      0.98,
		FixedZeroRejectChance: 0.9,
		RecentZeroWindow:      3,
		FocusChance:           0.4,
		RampTasks:             50,
		LetterGroupSize:       3,
	}
}
