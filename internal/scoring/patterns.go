package scoring

import (
	"github.com/KirkDiggler/yahtzee/internal/models"
)

// smallStraightRuns are the face runs that satisfy a small straight
var smallStraightRuns = [][]int{
	{1, 2, 3, 4},
	{2, 3, 4, 5},
	{3, 4, 5, 6},
}

// largeStraightRuns are the only two face sets that satisfy a large straight
var largeStraightRuns = [][]int{
	{1, 2, 3, 4, 5},
	{2, 3, 4, 5, 6},
}

// hasNOfAKind reports whether any face value appears at least n times
func hasNOfAKind(roll models.Roll, n int) bool {
	counts := roll.Counts()
	for face := models.MinFace; face <= models.MaxFace; face++ {
		if counts[face] >= n {
			return true
		}
	}
	return false
}

// isFullHouse reports whether the roll is exactly a triple plus a pair.
// Strict rules: a five-of-a-kind is not a full house unless
// allowFiveOfAKind relaxes the check, a documented house-rule variant.
func isFullHouse(roll models.Roll, allowFiveOfAKind bool) bool {
	if allowFiveOfAKind && roll.AllSame() {
		return true
	}

	counts := roll.Counts()
	hasTriple := false
	hasPair := false
	for face := models.MinFace; face <= models.MaxFace; face++ {
		switch counts[face] {
		case 3:
			hasTriple = true
		case 2:
			hasPair = true
		}
	}
	return hasTriple && hasPair
}

// isSmallStraight reports whether the face set contains a four-length run
func isSmallStraight(roll models.Roll) bool {
	counts := roll.Counts()
	for _, run := range smallStraightRuns {
		if containsRun(counts, run) {
			return true
		}
	}
	return false
}

// isLargeStraight reports whether the face set is exactly a five-length run
func isLargeStraight(roll models.Roll) bool {
	counts := roll.Counts()
	for _, run := range largeStraightRuns {
		if containsRun(counts, run) {
			return true
		}
	}
	return false
}

// containsRun reports whether every face in the run is present.
// For the five-face large straight runs presence of all five values in
// five dice also means no face repeats, so equality falls out.
func containsRun(counts [models.MaxFace + 1]int, run []int) bool {
	for _, face := range run {
		if counts[face] == 0 {
			return false
		}
	}
	return true
}
