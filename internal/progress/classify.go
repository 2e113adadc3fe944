package progress

import "math"

// accuracyOf rounds correct/total to a whole percentage, 0 when nothing has
// been attempted.
func accuracyOf(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// classify applies the status ladder. The ladder is strict and ordered:
// untested only before the first attempt, then strong at 80+, medium at 55+,
// weak below that (including a 0% accuracy with attempts on record).
func classify(accuracy, totalAttempts int) Status {
	switch {
	case totalAttempts == 0:
		return StatusUntested
	case accuracy >= 80:
		return StatusStrong
	case accuracy >= 55:
		return StatusMedium
	default:
		return StatusWeak
	}
}
