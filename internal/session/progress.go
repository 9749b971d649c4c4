package session

// Stats tracks per-session counters.
type Stats struct {
	TasksCompleted int     `json:"tasksCompleted"`
	Correct        int     `json:"correct"`
	Attempts       int     `json:"attempts"`
	CurrentStreak  int     `json:"currentStreak"`
	LongestStreak  int     `json:"longestStreak"`
	Accuracy       float64 `json:"accuracy"` // Correct / Attempts (computed)
}

// Record adds a graded attempt.
func (s *Stats) Record(correct bool) {
	s.Attempts++
	if correct {
		s.Correct++
		s.CurrentStreak++
		s.LongestStreak = max(s.LongestStreak, s.CurrentStreak)
	} else {
		s.CurrentStreak = 0
	}
	if s.Attempts > 0 {
		s.Accuracy = float64(s.Correct) / float64(s.Attempts)
	}
}

// Incorrect returns the number of wrong attempts.
func (s Stats) Incorrect() int {
	return s.Attempts - s.Correct
}

// AccuracyPercent returns the accuracy rounded to a whole percent.
func (s Stats) AccuracyPercent() int {
	return int(s.Accuracy*100 + 0.5)
}
