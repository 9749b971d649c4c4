package problemgen

import (
	"fmt"
	"strconv"
)

// MathCheckValidator recomputes a math task's result from its operands.
// Non-math tasks pass through.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(t *Task) *ValidationError {
	if t.Kind != KindMath {
		return nil
	}
	if t.Operator != OpAdd && t.Operator != OpSub {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("unknown operator %q", t.Operator)}
	}
	if t.Operand1 < 0 || t.Operand2 < 0 {
		return &ValidationError{Validator: v.Name(), Message: "negative operand"}
	}

	computed := t.Operator.Apply(t.Operand1, t.Operand2)
	if computed < 0 {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("negative result %d", computed)}
	}
	if computed != t.Result || strconv.Itoa(computed) != t.Answer {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %d but task claims %q", computed, t.Answer),
		}
	}
	return nil
}
