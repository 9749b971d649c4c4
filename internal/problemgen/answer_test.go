package problemgen

import "testing"

func TestCheckAnswer_Math(t *testing.T) {
	task := validTask()

	tests := []struct {
		input string
		want  bool
	}{
		{"7", true},
		{" 7 ", true},
		{"007", true},
		{"8", false},
		{"", false},
		{"seven", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, task)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 3+4) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Syllable(t *testing.T) {
	task := &Task{
		Kind:    KindSyllable,
		Prompt:  "Hase",
		Answer:  "Ha",
		Options: []string{"Ho", "Ha", "Hi"},
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"Ha", true},
		{"ha", true},
		{" Ha ", true},
		{"2", true},
		{"1", false},
		{"4", false},
		{"Ho", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, task)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, Ha) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestOperator(t *testing.T) {
	for in, want := range map[string]Operator{"+": OpAdd, "plus": OpAdd, "-": OpSub, "minus": OpSub} {
		got, ok := ParseOperator(in)
		if !ok || got != want {
			t.Errorf("ParseOperator(%q) = %q, %v", in, got, ok)
		}
	}
	if _, ok := ParseOperator("*"); ok {
		t.Error("ParseOperator(*) should fail")
	}
	if OpSub.Apply(9, 4) != 5 || OpAdd.Apply(9, 4) != 13 {
		t.Error("Apply mismatch")
	}
}
