package crowns

// MilestoneEvery is how many solved tasks an unbounded session needs
// between two milestones.
const MilestoneEvery = 10

// CompletionCrowns is awarded when a fixed-length syllable or math
// session is finished. Adaptive sessions never complete.
const CompletionCrowns = 1

// ForLetters returns the crowns for finishing a letter session of the
// given difficulty (1..10).
func ForLetters(difficulty int) int {
	switch {
	case difficulty <= 3:
		return 1
	case difficulty <= 6:
		return 2
	case difficulty <= 9:
		return 3
	default:
		return 5
	}
}

// ForSudoku returns the crowns for solving a puzzle of the given
// difficulty (1..3).
func ForSudoku(difficulty int) int {
	if difficulty < 1 {
		return 1
	}
	return difficulty
}

// IsMilestone reports whether solved lands exactly on a milestone.
func IsMilestone(solved int) bool {
	return solved > 0 && solved%MilestoneEvery == 0
}

// NextMilestone returns the next milestone above solved.
func NextMilestone(solved int) int {
	return (solved/MilestoneEvery + 1) * MilestoneEvery
}
