package problemgen

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
)

func TestMaxResultForLevel(t *testing.T) {
	tests := []struct{ level, want int }{
		{1, 10}, {3, 10}, {4, 20}, {6, 20}, {7, 50}, {10, 50},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxResultForLevel(tt.level), "level %d", tt.level)
	}
}

func TestMath_Fixed(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub} {
		for _, level := range []int{1, 5, 9} {
			g := newTestGenerator(uint64(level))
			maxResult := MaxResultForLevel(level)
			for range 200 {
				task, err := g.Math(MathRequest{Mode: ModeFixed, Operator: op, Level: level})
				require.NoError(t, err)
				assertTaskShape(t, task)

				assert.Equal(t, KindMath, task.Kind)
				assert.Equal(t, op.Apply(task.Operand1, task.Operand2), task.Result)
				assert.Equal(t, strconv.Itoa(task.Result), task.Answer)
				assert.GreaterOrEqual(t, task.Result, 0)
				assert.LessOrEqual(t, task.Result, maxResult)
				assert.LessOrEqual(t, task.Operand1, maxResult)
				for _, o := range task.Options {
					n, err := strconv.Atoi(o)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, n, 0)
					assert.LessOrEqual(t, n, maxResult)
				}
			}
		}
	}
}

func TestMath_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  MathRequest
	}{
		{"operator", MathRequest{Mode: ModeFixed, Operator: "*", Level: 1}},
		{"level low", MathRequest{Mode: ModeFixed, Operator: OpAdd, Level: 0}},
		{"level high", MathRequest{Mode: ModeFixed, Operator: OpAdd, Level: 11}},
		{"mode", MathRequest{Mode: ModeEasy, Operator: OpAdd, Level: 1}},
		{"adaptive without state", MathRequest{Mode: ModeAdaptive, Operator: OpAdd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestGenerator(1).Math(tt.req)
			var cfgErr *validate.InvalidConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "got %v", err)
		})
	}
}

func TestWorksheet(t *testing.T) {
	g := newTestGenerator(4)
	tasks, err := g.Worksheet(30, 2, OpAdd)
	require.NoError(t, err)
	require.Len(t, tasks, 30)
	for i := 1; i < len(tasks); i++ {
		assert.NotEqual(t, tasks[i-1].Key(), tasks[i].Key(), "task %d repeats previous", i)
		assert.Greater(t, tasks[i].ID, tasks[i-1].ID)
	}

	_, err = g.Worksheet(0, 2, OpAdd)
	assert.Error(t, err)
	_, err = g.Worksheet(101, 2, OpAdd)
	assert.Error(t, err)
	_, err = g.Worksheet(5, 2, "x")
	assert.Error(t, err)
}

func adaptiveRequest(op Operator, maxResult int) (MathRequest, *adaptive.State) {
	p := adaptive.MathPolicy(maxResult)
	s := p.Initial(adaptive.MathStartLevel(maxResult))
	return MathRequest{Mode: ModeAdaptive, Operator: op, State: &s, Policy: p}, &s
}

func TestMath_AdaptiveStaysWithinUnlocked(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub} {
		req, _ := adaptiveRequest(op, 20)
		g := newTestGenerator(8)
		for range 300 {
			task, err := g.Math(req)
			require.NoError(t, err)
			assertTaskShape(t, task)
			assert.GreaterOrEqual(t, task.Result, 1)
			assert.LessOrEqual(t, task.Result, EffectiveMax(*req.State, req.Policy, DefaultConfig().RampTasks))
			assert.LessOrEqual(t, task.Operand1, 10, "minuend/addend within the unlocked range")
		}
	}
}

func TestMath_AdaptiveFocusesCeiling(t *testing.T) {
	req, s := adaptiveRequest(OpAdd, 50)
	s.MaxUnlockedNumber = 14
	s.NumberUsageCount = map[int]int{14: 2}
	s.Level = 30

	g := newTestGenerator(21)
	const n = 2000
	hits := 0
	for range n {
		task, err := g.Math(req)
		require.NoError(t, err)
		assert.LessOrEqual(t, task.Result, 14)
		if task.Result == 14 {
			hits++
		}
	}
	// 40% focus plus the uniform share of the ceiling (1/14 of 60%).
	want := 0.4 + 0.6/14
	assert.InDelta(t, want, float64(hits)/n, 0.05)
}

func TestMath_AdaptiveNoFocusWhenPractised(t *testing.T) {
	req, s := adaptiveRequest(OpAdd, 50)
	s.MaxUnlockedNumber = 14
	s.NumberUsageCount = map[int]int{14: 10}

	g := newTestGenerator(22)
	const n = 2000
	hits := 0
	for range n {
		task, err := g.Math(req)
		require.NoError(t, err)
		if task.Result == 14 {
			hits++
		}
	}
	assert.InDelta(t, 1.0/14, float64(hits)/n, 0.03)
}

func TestMath_AdaptiveSubtractionAtCeiling(t *testing.T) {
	req, s := adaptiveRequest(OpSub, 50)
	s.MaxUnlockedNumber = 12
	s.NumberUsageCount = map[int]int{12: 0}
	req.Recent = []*Task{{Kind: KindMath, Operand1: 4, Operand2: 0, Operator: OpSub, Result: 4}}

	g := newTestGenerator(9)
	for range 300 {
		task, err := g.Math(req)
		require.NoError(t, err)
		if task.Result == 12 {
			assert.NotZero(t, task.Operand2)
		}
		assert.Equal(t, task.Operand1-task.Operand2, task.Result)
	}
}

func TestMath_ZeroSuppression(t *testing.T) {
	req, _ := adaptiveRequest(OpAdd, 10)
	g := newTestGenerator(13)

	zeros := 0
	const n = 3000
	for range n {
		task, err := g.Math(req)
		require.NoError(t, err)
		if task.HasZeroOperand() {
			zeros++
		}
	}
	assert.Less(t, float64(zeros)/n, 0.02)

	req.Recent = []*Task{
		{Kind: KindMath, Operand1: 3, Operand2: 0, Operator: OpAdd, Result: 3},
		{Kind: KindMath, Operand1: 1, Operand2: 2, Operator: OpAdd, Result: 3},
	}
	for range 500 {
		task, err := g.Math(req)
		require.NoError(t, err)
		assert.False(t, task.HasZeroOperand(), "zero blocked after a recent zero")
	}
}

func TestMath_AvoidsTasksOnScreen(t *testing.T) {
	req, s := adaptiveRequest(OpAdd, 10)
	s.Level = 5
	g := newTestGenerator(17)

	var onScreen []string
	for range 5 {
		req.Avoid = onScreen
		task, err := g.Math(req)
		require.NoError(t, err)
		assert.NotContains(t, onScreen, task.Key())
		onScreen = append(onScreen, task.Key())
	}
}

func TestMath_AdaptiveExhausted(t *testing.T) {
	req, s := adaptiveRequest(OpAdd, 10)
	s.Level = 5
	s.TasksShown = 0

	// Block every key with result 1..5.
	var avoid []string
	for target := 1; target <= 5; target++ {
		for a := 0; a <= target; a++ {
			avoid = append(avoid, strconv.Itoa(a)+"+"+strconv.Itoa(target-a))
		}
	}
	req.Avoid = avoid

	_, err := New(pick.NewSource(1), DefaultConfig()).Math(req)
	var poolErr *InsufficientPoolError
	require.True(t, errors.As(err, &poolErr))
	assert.Equal(t, 100, poolErr.Attempts)
}

func TestEffectiveMax(t *testing.T) {
	p := adaptive.MathPolicy(50)
	tests := []struct {
		name  string
		state adaptive.State
		want  int
	}{
		{"start clamps to unlocked", adaptive.State{Level: 25, MaxUnlockedNumber: 10}, 10},
		{"level below ramp", adaptive.State{Level: 6, MaxUnlockedNumber: 40}, 6},
		{"ramp start is half", adaptive.State{Level: 50, MaxUnlockedNumber: 100}, 25},
		{"ramp midway", adaptive.State{Level: 50, TasksShown: 25, MaxUnlockedNumber: 100}, 37},
		{"ramp complete", adaptive.State{Level: 50, TasksShown: 500, MaxUnlockedNumber: 100}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveMax(tt.state, p, 50))
		})
	}
}
