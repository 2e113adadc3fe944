package analytics

import (
	"github.com/cognilearn/backend/internal/progress"
	"github.com/cognilearn/backend/internal/quizbank"
)

// Snapshot is the full derived analytics picture for one student. It is a
// plain value recomputed from scratch on every Compute call; nothing here is
// cached or incrementally updated.
type Snapshot struct {
	// Overview figures.
	OverallAccuracy        int     // % correct of all attempts
	TotalAttempts          int
	TotalRetries           int
	RetryRatio             float64 // retries / attempts, 0..1
	HesitationIndex        float64 // weak-topic share of attempted topics
	LearningVelocity       float64 // strong count + half the medium count
	ConsistencyIndex       float64 // attempted topics / all topics
	ConceptGapScore        int     // weak-topic count * 10
	SessionImprovementRate float64 // % above the 60% baseline

	// Cognitive profile.
	CognitiveType string

	// Per-topic records, canonical order.
	TopicStats []progress.TopicStats

	// Chart projections. Their "time" axes are synthetic orderings over
	// topics, not measured chronology, hence the proxy naming.
	AccuracyTimeline []TimelinePoint
	SessionSeries    []SessionPoint
	Reports          []Report

	WeakTopics   []string
	StrongTopics []string
	HasData      bool
}

// TimelinePoint is one accuracy sample per topic in canonical order. The
// response time is a proxy derived from accuracy, not a measurement.
type TimelinePoint struct {
	Label             string // first four letters of the topic name
	Accuracy          int
	ResponseTimeProxy float64
}

// SessionPoint treats each attempted topic as one pseudo-session.
type SessionPoint struct {
	Label         string // "S1", "S2", ...
	Retries       int
	Errors        int
	DurationProxy int
	Improvement   int // accuracy delta vs the previous attempted topic
}

// ReportTrend summarizes a report row's direction.
type ReportTrend string

const (
	TrendImproving ReportTrend = "improving"
	TrendDeclined  ReportTrend = "declined"
	TrendStable    ReportTrend = "stable"
)

// Report is one per-topic report row, most recently attempted topic first
// (store iteration order reversed; the store keeps no timestamps).
type Report struct {
	Label         string // topic name
	Accuracy      int
	Sessions      int // attempts recorded for the topic
	Improvement   int
	CognitiveType string
	Trend         ReportTrend
}

// hesitationDefault is reported before any topic has been attempted. It is a
// fixed presentational default, not a derived value.
const hesitationDefault = 0.34

// Compute derives a full Snapshot from the given per-topic records, which
// must be in canonical topic order (as returned by Store.AllTopicStats).
// It never fails: every division guards its zero denominator.
func Compute(all []progress.TopicStats) Snapshot {
	attempted := make([]progress.TopicStats, 0, len(all))
	for _, t := range all {
		if t.TotalAttempts > 0 {
			attempted = append(attempted, t)
		}
	}
	hasData := len(attempted) > 0

	var totalAttempts, totalCorrect, totalRetries int
	for _, t := range all {
		totalAttempts += t.TotalAttempts
		totalCorrect += t.CorrectAnswers
		totalRetries += t.Retries
	}

	overallAccuracy := 0
	retryRatio := 0.0
	if totalAttempts > 0 {
		overallAccuracy = roundPct(totalCorrect, totalAttempts)
		retryRatio = round2(float64(totalRetries) / float64(totalAttempts))
	}

	var weakTopics, strongTopics, mediumTopics []string
	for _, t := range all {
		switch t.Status {
		case progress.StatusWeak:
			weakTopics = append(weakTopics, t.Topic.String())
		case progress.StatusStrong:
			strongTopics = append(strongTopics, t.Topic.String())
		case progress.StatusMedium:
			mediumTopics = append(mediumTopics, t.Topic.String())
		}
	}

	hesitationIndex := hesitationDefault
	if hasData {
		hesitationIndex = round2(float64(len(weakTopics)) / float64(max(len(attempted), 1)))
	}
	learningVelocity := round1(float64(len(strongTopics)) + 0.5*float64(len(mediumTopics)))
	consistencyIndex := round2(float64(len(attempted)) / float64(quizbank.TopicCount))
	conceptGapScore := len(weakTopics) * 10
	sessionImprovementRate := 0.0
	if hasData {
		sessionImprovementRate = round1(max(0, float64(overallAccuracy-60)))
	}

	cognitiveType := classifyCognitiveType(hasData, overallAccuracy, retryRatio,
		conceptGapScore, consistencyIndex, len(attempted))

	return Snapshot{
		OverallAccuracy:        overallAccuracy,
		TotalAttempts:          totalAttempts,
		TotalRetries:           totalRetries,
		RetryRatio:             retryRatio,
		HesitationIndex:        hesitationIndex,
		LearningVelocity:       learningVelocity,
		ConsistencyIndex:       consistencyIndex,
		ConceptGapScore:        conceptGapScore,
		SessionImprovementRate: sessionImprovementRate,
		CognitiveType:          cognitiveType,
		TopicStats:             all,
		AccuracyTimeline:       buildTimeline(all),
		SessionSeries:          buildSessionSeries(attempted),
		Reports:                buildReports(attempted, cognitiveType),
		WeakTopics:             weakTopics,
		StrongTopics:           strongTopics,
		HasData:                hasData,
	}
}
