package classroom

import (
	"math"

	"github.com/cognilearn/backend/internal/analytics"
)

// RiskLevel flags students who need attention based on overall accuracy.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// StudentResult pairs a student with their computed analytics snapshot.
type StudentResult struct {
	Student  Student
	Snapshot analytics.Snapshot
}

// RiskAlert is one row of the class risk view.
type RiskAlert struct {
	Student         string
	Level           RiskLevel
	OverallAccuracy int
	WeakTopics      []string
}

// ClassReport aggregates a full class for the teacher-side views.
type ClassReport struct {
	Students        int
	Attempted       int // students with at least one recorded answer
	AverageAccuracy int // mean overall accuracy over attempted students
	CognitiveTypes  map[string]int
	Alerts          []RiskAlert // attempted students only, roster order
}

// BuildClassReport derives the class-level aggregates from per-student
// snapshots. Like the per-student snapshot it is a pure recomputation.
func BuildClassReport(results []StudentResult) ClassReport {
	report := ClassReport{
		Students:       len(results),
		CognitiveTypes: make(map[string]int),
	}

	accuracySum := 0
	for _, r := range results {
		report.CognitiveTypes[r.Snapshot.CognitiveType]++
		if !r.Snapshot.HasData {
			continue
		}
		report.Attempted++
		accuracySum += r.Snapshot.OverallAccuracy
		report.Alerts = append(report.Alerts, RiskAlert{
			Student:         r.Student.Name,
			Level:           riskOf(r.Snapshot.OverallAccuracy),
			OverallAccuracy: r.Snapshot.OverallAccuracy,
			WeakTopics:      r.Snapshot.WeakTopics,
		})
	}
	if report.Attempted > 0 {
		report.AverageAccuracy = int(math.Round(float64(accuracySum) / float64(report.Attempted)))
	}
	return report
}

func riskOf(overallAccuracy int) RiskLevel {
	switch {
	case overallAccuracy < 50:
		return RiskHigh
	case overallAccuracy < 70:
		return RiskMedium
	default:
		return RiskLow
	}
}
