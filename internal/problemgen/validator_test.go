package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTask() *Task {
	return &Task{
		Kind:     KindMath,
		Prompt:   "3 + 4 = ?",
		Answer:   "7",
		Options:  []string{"6", "7", "9"},
		Operand1: 3,
		Operand2: 4,
		Operator: OpAdd,
		Result:   7,
	}
}

func TestStructural(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{"valid", func(*Task) {}, false},
		{"empty prompt", func(t *Task) { t.Prompt = "" }, true},
		{"empty answer", func(t *Task) { t.Answer = "" }, true},
		{"two options", func(t *Task) { t.Options = []string{"7", "8"} }, true},
		{"duplicate option", func(t *Task) { t.Options = []string{"7", "8", "8"} }, true},
		{"answer missing", func(t *Task) { t.Options = []string{"5", "6", "8"} }, true},
	}
	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(task)
			err := v.Validate(task)
			if !tt.wantErr {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, "structural", err.Validator)
		})
	}
}

func TestMathCheck(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{"valid", func(*Task) {}, false},
		{"wrong result", func(t *Task) { t.Result = 8; t.Answer = "8" }, true},
		{"answer text mismatch", func(t *Task) { t.Answer = "07" }, true},
		{"negative result", func(t *Task) {
			t.Operator = OpSub
			t.Result = -1
			t.Answer = "-1"
		}, true},
		{"unknown operator", func(t *Task) { t.Operator = "*" }, true},
		{"syllable task ignored", func(t *Task) { t.Kind = KindSyllable; t.Result = 99 }, false},
	}
	v := &MathCheckValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := validTask()
			tt.mutate(task)
			err := v.Validate(task)
			if tt.wantErr {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), "math-check")
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
