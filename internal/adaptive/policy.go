package adaptive

// Syllable levels.
const (
	LevelEasy   = 1
	LevelMedium = 2
	LevelHard   = 3
)

// Math level floor and unlock defaults.
const (
	MinMathLevel          = 5
	DefaultStartCeiling   = 10
	DefaultTasksPerUnlock = 10
	DefaultUnlockLimit    = 100
)

// UnlockPolicy configures progressive number unlocking.
type UnlockPolicy struct {
	// StartCeiling is the initial MaxUnlockedNumber.
	StartCeiling int
	// TasksPerNumber correct answers on the ceiling unlock the next number.
	TasksPerNumber int
	// Limit is the highest number that can be unlocked.
	Limit int
}

// Policy holds the thresholds and bounds of one trainer.
type Policy struct {
	MinLevel int
	MaxLevel int

	LevelUpStreak  int
	LevelDownCount int
	LevelUpStep    int
	LevelDownStep  int

	// Unlock is nil for trainers without number unlocking.
	Unlock *UnlockPolicy
}

// SyllablePolicy moves between easy, medium and hard one step at a time.
func SyllablePolicy() Policy {
	return Policy{
		MinLevel:       LevelEasy,
		MaxLevel:       LevelHard,
		LevelUpStreak:  3,
		LevelDownCount: 2,
		LevelUpStep:    1,
		LevelDownStep:  1,
	}
}

// MathPolicy bounds the level to [5, maxResult] and drops two levels on
// repeated mistakes.
func MathPolicy(maxResult int) Policy {
	return Policy{
		MinLevel:       MinMathLevel,
		MaxLevel:       max(maxResult, MinMathLevel),
		LevelUpStreak:  3,
		LevelDownCount: 2,
		LevelUpStep:    1,
		LevelDownStep:  2,
		Unlock: &UnlockPolicy{
			StartCeiling:   DefaultStartCeiling,
			TasksPerNumber: DefaultTasksPerUnlock,
			Limit:          DefaultUnlockLimit,
		},
	}
}

// MathStartLevel is the adaptive starting level for a result range.
func MathStartLevel(maxResult int) int {
	return max(maxResult/2, MinMathLevel)
}

// Initial returns a fresh state at level, clamped to the policy bounds.
func (p Policy) Initial(level int) State {
	s := State{Level: p.clamp(level)}
	if p.Unlock != nil {
		s.MaxUnlockedNumber = p.Unlock.StartCeiling
		s.NumberUsageCount = map[int]int{}
	}
	return s
}

func (p Policy) clamp(level int) int {
	return min(max(level, p.MinLevel), p.MaxLevel)
}

// Weighted reports whether the first unlock has happened, after which
// generation favours the ceiling number.
func (u UnlockPolicy) Weighted(s State) bool {
	return s.MaxUnlockedNumber > u.StartCeiling
}

// NeedsPractice reports whether the current ceiling still needs correct
// answers before the next unlock.
func (u UnlockPolicy) NeedsPractice(s State) bool {
	return s.Usage(s.MaxUnlockedNumber) < u.TasksPerNumber
}

// Progress returns the correct answers counted toward the next unlock and
// how many are needed.
func (u UnlockPolicy) Progress(s State) (count, needed int) {
	return min(s.Usage(s.MaxUnlockedNumber), u.TasksPerNumber), u.TasksPerNumber
}

// record counts a correct answer and unlocks the next number when the
// ceiling has been practised enough.
func (u UnlockPolicy) record(s *State, result int) (Transition, bool) {
	if s.NumberUsageCount == nil {
		s.NumberUsageCount = map[int]int{}
	}
	if s.MaxUnlockedNumber <= u.StartCeiling {
		s.NumberUsageCount[s.MaxUnlockedNumber]++
	} else {
		s.NumberUsageCount[result]++
	}

	if s.MaxUnlockedNumber >= u.Limit || s.Usage(s.MaxUnlockedNumber) < u.TasksPerNumber {
		return Transition{}, false
	}
	from := s.MaxUnlockedNumber
	s.MaxUnlockedNumber++
	s.NumberUsageCount[s.MaxUnlockedNumber] = 0
	return Transition{Signal: SignalUnlock, From: from, To: s.MaxUnlockedNumber}, true
}
