package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/smarty/internal/adaptive"
	"github.com/abhisek/smarty/internal/distractor"
	"github.com/abhisek/smarty/internal/pick"
	"github.com/abhisek/smarty/internal/validate"
)

// MaxResultForLevel returns the largest result of a 1..10 level:
// 10 up to level 3, 20 up to level 6, 50 above.
func MaxResultForLevel(level int) int {
	switch {
	case level <= 3:
		return 10
	case level <= 6:
		return 20
	default:
		return 50
	}
}

// MathRequest describes the next math task.
type MathRequest struct {
	Mode     Mode
	Operator Operator

	// Level is the 1..10 level of a fixed-mode task.
	Level int

	// State and Policy drive adaptive-mode tasks.
	State  *adaptive.State
	Policy adaptive.Policy

	// Avoid holds keys of tasks already on screen.
	Avoid []string

	// Recent holds the latest tasks, oldest first, for zero-operand
	// suppression.
	Recent []*Task
}

// Math builds an addition or subtraction task.
func (g *Generator) Math(req MathRequest) (*Task, error) {
	if req.Operator != OpAdd && req.Operator != OpSub {
		return nil, validate.Invalid("operator", fmt.Sprintf("unknown %q", req.Operator))
	}
	switch req.Mode {
	case ModeFixed:
		if err := validate.Level(req.Level); err != nil {
			return nil, err
		}
		return g.fixedMath(req)
	case ModeAdaptive:
		if req.State == nil || req.Policy.Unlock == nil {
			return nil, validate.Invalid("adaptive state", "missing state or unlock policy")
		}
		return g.adaptiveMath(req)
	}
	return nil, validate.Invalid("math mode", fmt.Sprintf("unknown %q", req.Mode))
}

// Worksheet builds count fixed-mode tasks where no two consecutive tasks
// are the same.
func (g *Generator) Worksheet(count, level int, op Operator) ([]*Task, error) {
	if err := validate.TaskCount(count); err != nil {
		return nil, err
	}
	tasks := make([]*Task, 0, count)
	var avoid []string
	for range count {
		t, err := g.Math(MathRequest{Mode: ModeFixed, Operator: op, Level: level, Avoid: avoid})
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
		avoid = []string{t.Key()}
	}
	return tasks, nil
}

func (g *Generator) fixedMath(req MathRequest) (*Task, error) {
	maxResult := MaxResultForLevel(req.Level)
	avoid := keySet(req.Avoid)

	attempts := max(g.cfg.MathMaxAttempts, 1)
	var lastErr error
	for range attempts {
		var a, b int
		if req.Operator == OpAdd {
			a = pick.Between(g.src, 0, maxResult)
			b = pick.Between(g.src, 0, maxResult-a)
			if (a == 0 || b == 0) && pick.Chance(g.src, g.cfg.FixedZeroRejectChance) {
				continue
			}
		} else {
			a = pick.Between(g.src, 0, maxResult)
			b = pick.Between(g.src, 0, a)
			if a == b && pick.Chance(g.src, g.cfg.FixedZeroRejectChance) {
				continue
			}
		}

		t, err := g.mathTask(a, b, req.Operator, maxResult, distractor.ModeNearMiss)
		if err != nil {
			lastErr = err
			continue
		}
		if _, dup := avoid[t.Key()]; dup {
			continue
		}
		t.ID = g.newID()
		return t, nil
	}

	return nil, &InsufficientPoolError{
		Kind:     KindMath,
		Mode:     ModeFixed,
		PoolSize: maxResult + 1,
		Attempts: attempts,
		Err:      lastErr,
	}
}

// EffectiveMax is the largest result an adaptive task may use before the
// first unlock. It ramps from half of the range to the full range over
// rampTasks correct answers, and never exceeds the level or the unlocked
// ceiling.
func EffectiveMax(s adaptive.State, p adaptive.Policy, rampTasks int) int {
	maxResult := p.MaxLevel
	half := maxResult / 2
	ramp := maxResult
	if rampTasks > 0 {
		ramp = half + (maxResult-half)*min(s.TasksShown, rampTasks)/rampTasks
	}
	eff := min(s.Level, ramp)
	if p.Unlock != nil {
		eff = min(eff, s.MaxUnlockedNumber)
	}
	return max(eff, 1)
}

func (g *Generator) adaptiveMath(req MathRequest) (*Task, error) {
	s := *req.State
	u := *req.Policy.Unlock
	ceiling := s.MaxUnlockedNumber

	// After the first unlock, tasks spread over everything unlocked and
	// sometimes focus on the newest number.
	weighted := u.Weighted(s)
	focus := weighted && u.NeedsPractice(s) && pick.Chance(g.src, g.cfg.FocusChance)
	top := EffectiveMax(s, req.Policy, g.cfg.RampTasks)
	if weighted {
		top = ceiling
	}

	avoid := keySet(req.Avoid)
	zeroBlocked := recentZero(req.Recent, g.cfg.RecentZeroWindow)

	attempts := max(g.cfg.MathMaxAttempts, 1)
	var lastErr error
	for range attempts {
		target := ceiling
		if !focus {
			target = pick.Between(g.src, 1, top)
		}

		a, b := g.adaptiveOperands(req.Operator, target, ceiling, focus)
		if b == 0 && (zeroBlocked || pick.Chance(g.src, g.cfg.ZeroRejectChance)) {
			continue
		}

		t, err := g.mathTask(a, b, req.Operator, max(ceiling, target), distractor.ModeAny)
		if err != nil {
			lastErr = err
			continue
		}
		if _, dup := avoid[t.Key()]; dup {
			continue
		}
		t.ID = g.newID()
		return t, nil
	}

	return nil, &InsufficientPoolError{
		Kind:     KindMath,
		Mode:     ModeAdaptive,
		PoolSize: ceiling,
		Attempts: attempts,
		Err:      lastErr,
	}
}

// adaptiveOperands returns operands whose result is target. Subtraction
// keeps the minuend within ceiling, except for focus tasks on the ceiling
// itself where the minuend may exceed it by up to 10.
func (g *Generator) adaptiveOperands(op Operator, target, ceiling int, focus bool) (int, int) {
	if op == OpAdd {
		a := pick.Between(g.src, 0, target)
		return a, target - a
	}
	room := ceiling - target
	if focus && room < 1 {
		b := pick.Between(g.src, 1, min(max(target, 1), 10))
		return target + b, b
	}
	b := pick.Between(g.src, 0, max(room, 0))
	return target + b, b
}

// mathTask assembles and validates a task. The ID is left unset.
func (g *Generator) mathTask(a, b int, op Operator, hi int, dmode distractor.Mode) (*Task, error) {
	result := op.Apply(a, b)
	answer := strconv.Itoa(result)

	wrong, err := distractor.NumberStrings(g.src, result, 0, hi, dmode)
	if err != nil {
		return nil, err
	}

	t := &Task{
		Kind:     KindMath,
		Prompt:   fmt.Sprintf("%d %s %d = ?", a, op, b),
		Answer:   answer,
		Options:  g.withOptions(answer, wrong),
		Operand1: a,
		Operand2: b,
		Operator: op,
		Result:   result,
	}
	if verr := g.validate(t); verr != nil {
		return nil, verr
	}
	return t, nil
}
