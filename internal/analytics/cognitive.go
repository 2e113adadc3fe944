package analytics

import "math"

// Cognitive learner types. A student always maps to exactly one.
const (
	TypeUntested      = "Untested Learner"
	TypeFastAccurate  = "Fast & Accurate Learner"
	TypeSlowAccurate  = "Slow but Accurate Learner"
	TypeTrialAndError = "Trial-and-Error Learner"
	TypeConceptGap    = "Concept Gap Learner"
	TypeHighCogLoad   = "High Cognitive Load Learner"
	TypeInconsistent  = "Inconsistent Performer"
)

// classifyCognitiveType walks an ordered decision list; the first matching
// rule wins and the order is part of the contract.
func classifyCognitiveType(hasData bool, overallAccuracy int, retryRatio float64, conceptGapScore int, consistencyIndex float64, attemptedCount int) string {
	if !hasData {
		return TypeUntested
	}
	switch {
	case overallAccuracy >= 80 && retryRatio < 0.2:
		return TypeFastAccurate
	case overallAccuracy >= 80:
		return TypeSlowAccurate
	case overallAccuracy < 60 && retryRatio >= 0.4:
		return TypeTrialAndError
	case conceptGapScore >= 40:
		return TypeConceptGap
	case overallAccuracy >= 60 && retryRatio >= 0.3:
		return TypeHighCogLoad
	case attemptedCount >= 3 && consistencyIndex < 0.5:
		return TypeInconsistent
	default:
		return TypeSlowAccurate
	}
}

// typeDescriptions gives each label a short profile line for display.
var typeDescriptions = map[string]string{
	TypeUntested:      "No quiz data yet",
	TypeFastAccurate:  "Efficient and precise",
	TypeSlowAccurate:  "Deliberate and precise",
	TypeTrialAndError: "Learns through iteration",
	TypeConceptGap:    "Missing foundational concepts",
	TypeHighCogLoad:   "Overloaded processing",
	TypeInconsistent:  "Variable performance",
}

// DescribeCognitiveType returns the display description for a learner type,
// or an empty string for labels it does not know.
func DescribeCognitiveType(cognitiveType string) string {
	return typeDescriptions[cognitiveType]
}

// Rounding helpers. Percentages round to whole numbers, ratios to two
// decimals, velocity and improvement figures to one.

func roundPct(num, den int) int {
	return int(math.Round(float64(num) / float64(den) * 100))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
