package analytics

import (
	"fmt"

	"github.com/cognilearn/backend/internal/progress"
)

// buildTimeline emits one point per topic in canonical order. Untested topics
// read as zero accuracy with the idle response-time proxy.
func buildTimeline(all []progress.TopicStats) []TimelinePoint {
	points := make([]TimelinePoint, 0, len(all))
	for _, t := range all {
		p := TimelinePoint{
			Label:             shortLabel(t.Topic.String()),
			ResponseTimeProxy: 30,
		}
		if t.TotalAttempts > 0 {
			p.Accuracy = t.Accuracy
			p.ResponseTimeProxy = max(8, 30-float64(t.Accuracy)*0.25)
		}
		points = append(points, p)
	}
	return points
}

// buildSessionSeries treats each attempted topic as one pseudo-session in
// store order. Improvement is the accuracy delta against the previous entry,
// zero for the first.
func buildSessionSeries(attempted []progress.TopicStats) []SessionPoint {
	series := make([]SessionPoint, 0, len(attempted))
	for i, t := range attempted {
		improvement := 0
		if i > 0 {
			improvement = t.Accuracy - attempted[i-1].Accuracy
		}
		series = append(series, SessionPoint{
			Label:         fmt.Sprintf("S%d", i+1),
			Retries:       t.Retries,
			Errors:        t.TotalAttempts - t.CorrectAnswers,
			DurationProxy: 20 + 2*t.TotalAttempts,
			Improvement:   improvement,
		})
	}
	return series
}

// buildReports lists attempted topics most-recently-attempted first, which
// with a timestamp-free store means reversed iteration order. Each row's
// improvement compares against the prior attempted topic in store order.
func buildReports(attempted []progress.TopicStats, cognitiveType string) []Report {
	n := len(attempted)
	reports := make([]Report, 0, n)
	for i := n - 1; i >= 0; i-- {
		t := attempted[i]
		improvement := 0
		if i > 0 {
			improvement = t.Accuracy - attempted[i-1].Accuracy
		}
		reports = append(reports, Report{
			Label:         t.Topic.String(),
			Accuracy:      t.Accuracy,
			Sessions:      t.TotalAttempts,
			Improvement:   improvement,
			CognitiveType: cognitiveType,
			Trend:         trendOf(t.Status),
		})
	}
	return reports
}

func trendOf(status progress.Status) ReportTrend {
	switch status {
	case progress.StatusStrong:
		return TrendImproving
	case progress.StatusWeak:
		return TrendDeclined
	default:
		return TrendStable
	}
}

// shortLabel abbreviates a topic name to its first four letters for chart
// axes.
func shortLabel(name string) string {
	if len(name) > 4 {
		return name[:4]
	}
	return name
}
