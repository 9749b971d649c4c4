package problemgen

import "fmt"

// OptionCount is the number of choices per task.
const OptionCount = 3

// StructuralValidator checks that a task has a prompt, an answer and
// exactly OptionCount distinct options of which one is the answer.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(t *Task) *ValidationError {
	if t.Prompt == "" {
		return &ValidationError{Validator: v.Name(), Message: "prompt is empty"}
	}
	if t.Answer == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}
	if len(t.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d options, got %d", OptionCount, len(t.Options)),
		}
	}

	seen := make(map[string]struct{}, len(t.Options))
	matches := 0
	for _, o := range t.Options {
		if _, dup := seen[o]; dup {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate option %q", o)}
		}
		seen[o] = struct{}{}
		if o == t.Answer {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{Validator: v.Name(), Message: "answer must appear exactly once in options"}
	}
	return nil
}
