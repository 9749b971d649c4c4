package adaptive

// Step applies one answer to s under p and returns the next state with
// the transitions that fired. s is not modified.
func Step(p Policy, s State, a Answer) (State, []Transition) {
	next := s.Clone()
	var fired []Transition

	if a.Correct {
		next.CorrectStreak++
		next.IncorrectCount = 0
		next.TasksShown++

		if next.CorrectStreak >= p.LevelUpStreak {
			next.CorrectStreak = 0
			if next.Level < p.MaxLevel {
				from := next.Level
				next.Level = min(next.Level+p.LevelUpStep, p.MaxLevel)
				fired = append(fired, Transition{Signal: SignalLevelUp, From: from, To: next.Level})
			}
		}

		if p.Unlock != nil {
			if t, ok := p.Unlock.record(&next, a.Result); ok {
				fired = append(fired, t)
			}
		}
		return next, fired
	}

	next.IncorrectCount++
	next.CorrectStreak = 0
	if next.IncorrectCount >= p.LevelDownCount {
		next.IncorrectCount = 0
		if next.Level > p.MinLevel {
			from := next.Level
			next.Level = max(next.Level-p.LevelDownStep, p.MinLevel)
			fired = append(fired, Transition{Signal: SignalLevelDown, From: from, To: next.Level})
		}
	}
	return next, fired
}

// Controller owns the adaptive state of one session.
type Controller struct {
	policy Policy
	state  State
}

// NewController starts a controller at level.
func NewController(p Policy, level int) *Controller {
	return &Controller{policy: p, state: p.Initial(level)}
}

// Record applies an answer and returns the fired transitions.
func (c *Controller) Record(a Answer) []Transition {
	var fired []Transition
	c.state, fired = Step(c.policy, c.state, a)
	return fired
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.Clone()
}

// Policy returns the controller's policy.
func (c *Controller) Policy() Policy {
	return c.policy
}

// Reset discards all progress and restarts at level.
func (c *Controller) Reset(level int) {
	c.state = c.policy.Initial(level)
}
