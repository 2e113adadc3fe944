package analytics_test

import (
	"reflect"
	"testing"

	"github.com/cognilearn/backend/internal/analytics"
	"github.com/cognilearn/backend/internal/progress"
	"github.com/cognilearn/backend/internal/quizbank"
)

func TestCompute_NoData(t *testing.T) {
	store := progress.NewStore()

	snap := analytics.Compute(store.AllTopicStats())

	if snap.HasData {
		t.Error("expected HasData false")
	}
	if snap.CognitiveType != analytics.TypeUntested {
		t.Errorf("expected %q, got %q", analytics.TypeUntested, snap.CognitiveType)
	}
	if snap.OverallAccuracy != 0 || snap.RetryRatio != 0 {
		t.Errorf("expected zero accuracy and retry ratio, got %d / %v", snap.OverallAccuracy, snap.RetryRatio)
	}
	if snap.HesitationIndex != 0.34 {
		t.Errorf("expected hesitation default 0.34, got %v", snap.HesitationIndex)
	}
	if snap.SessionImprovementRate != 0 {
		t.Errorf("expected improvement rate 0, got %v", snap.SessionImprovementRate)
	}

	if len(snap.AccuracyTimeline) != quizbank.TopicCount {
		t.Fatalf("expected %d timeline points, got %d", quizbank.TopicCount, len(snap.AccuracyTimeline))
	}
	for _, p := range snap.AccuracyTimeline {
		if p.Accuracy != 0 || p.ResponseTimeProxy != 30 {
			t.Errorf("untested point %q: expected 0/30, got %d/%v", p.Label, p.Accuracy, p.ResponseTimeProxy)
		}
	}
	if len(snap.SessionSeries) != 0 || len(snap.Reports) != 0 {
		t.Error("expected empty session series and reports without data")
	}
}

func TestCompute_FastAndAccurateLearner(t *testing.T) {
	store := progress.NewStore()
	// 20 attempts, 17 correct, 2 retries: 85% accuracy, 0.1 retry ratio.
	for i := 0; i < 17; i++ {
		store.RecordAnswer(quizbank.TopicAlgebra, "alg-1", true, i < 2)
	}
	for i := 0; i < 3; i++ {
		store.RecordAnswer(quizbank.TopicAlgebra, "alg-2", false, false)
	}

	snap := analytics.Compute(store.AllTopicStats())

	if snap.OverallAccuracy != 85 {
		t.Errorf("expected overall accuracy 85, got %d", snap.OverallAccuracy)
	}
	if snap.RetryRatio != 0.1 {
		t.Errorf("expected retry ratio 0.1, got %v", snap.RetryRatio)
	}
	if snap.CognitiveType != analytics.TypeFastAccurate {
		t.Errorf("expected %q, got %q", analytics.TypeFastAccurate, snap.CognitiveType)
	}
}

func TestCompute_CognitiveTypeDecisionList(t *testing.T) {
	cases := []struct {
		name  string
		build func(store *progress.Store)
		want  string
	}{
		{
			// 80%+ but heavy retries loses the "fast" label.
			name: "accurate with many retries",
			build: func(store *progress.Store) {
				for i := 0; i < 9; i++ {
					store.RecordAnswer(quizbank.TopicAlgebra, "alg-1", true, i < 3)
				}
				store.RecordAnswer(quizbank.TopicAlgebra, "alg-2", false, false)
			},
			want: analytics.TypeSlowAccurate,
		},
		{
			name: "low accuracy with heavy retries",
			build: func(store *progress.Store) {
				for i := 0; i < 4; i++ {
					store.RecordAnswer(quizbank.TopicAlgebra, "alg-1", true, true)
				}
				for i := 0; i < 6; i++ {
					store.RecordAnswer(quizbank.TopicAlgebra, "alg-2", false, false)
				}
			},
			want: analytics.TypeTrialAndError,
		},
		{
			// Four weak topics push the gap score to 40.
			name: "concept gaps across topics",
			build: func(store *progress.Store) {
				weak := []quizbank.Topic{quizbank.TopicAlgebra, quizbank.TopicGeometry, quizbank.TopicCalculus, quizbank.TopicStatistics}
				for _, topic := range weak {
					store.RecordAnswer(topic, "q", true, false)
					store.RecordAnswer(topic, "q", false, false)
				}
				// Lift overall accuracy above the trial-and-error band.
				for i := 0; i < 8; i++ {
					store.RecordAnswer(quizbank.TopicProbability, "pro-1", true, false)
				}
			},
			want: analytics.TypeConceptGap,
		},
		{
			name: "default falls back to slow but accurate",
			build: func(store *progress.Store) {
				topics := quizbank.Topics()
				for _, topic := range topics[:5] {
					for i := 0; i < 3; i++ {
						store.RecordAnswer(topic, "q", true, false)
					}
					store.RecordAnswer(topic, "q", false, false)
				}
			},
			want: analytics.TypeSlowAccurate,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := progress.NewStore()
			tc.build(store)

			snap := analytics.Compute(store.AllTopicStats())
			if snap.CognitiveType != tc.want {
				t.Errorf("expected %q, got %q (accuracy %d, retry ratio %v, gap %d)",
					tc.want, snap.CognitiveType, snap.OverallAccuracy, snap.RetryRatio, snap.ConceptGapScore)
			}
		})
	}
}

func TestCompute_DerivedIndexes(t *testing.T) {
	store := progress.NewStore()
	// Algebra strong: 5/5. Geometry weak: 1/4. Calculus medium: 3/5 -> 60.
	for i := 0; i < 5; i++ {
		store.RecordAnswer(quizbank.TopicAlgebra, "alg-1", true, false)
	}
	store.RecordAnswer(quizbank.TopicGeometry, "geo-1", true, false)
	for i := 0; i < 3; i++ {
		store.RecordAnswer(quizbank.TopicGeometry, "geo-2", false, true)
	}
	for i := 0; i < 3; i++ {
		store.RecordAnswer(quizbank.TopicCalculus, "cal-1", true, false)
	}
	store.RecordAnswer(quizbank.TopicCalculus, "cal-2", false, false)
	store.RecordAnswer(quizbank.TopicCalculus, "cal-3", false, false)

	snap := analytics.Compute(store.AllTopicStats())

	if snap.TotalAttempts != 14 || snap.TotalRetries != 3 {
		t.Errorf("expected 14 attempts, 3 retries; got %d, %d", snap.TotalAttempts, snap.TotalRetries)
	}
	// 9/14 = 64.3 -> 64
	if snap.OverallAccuracy != 64 {
		t.Errorf("expected overall accuracy 64, got %d", snap.OverallAccuracy)
	}
	// 3/14 = 0.214 -> 0.21
	if snap.RetryRatio != 0.21 {
		t.Errorf("expected retry ratio 0.21, got %v", snap.RetryRatio)
	}
	// 1 weak topic of 3 attempted -> 0.33
	if snap.HesitationIndex != 0.33 {
		t.Errorf("expected hesitation 0.33, got %v", snap.HesitationIndex)
	}
	// 1 strong + 0.5 * 1 medium
	if snap.LearningVelocity != 1.5 {
		t.Errorf("expected velocity 1.5, got %v", snap.LearningVelocity)
	}
	// 3/8 attempted
	if snap.ConsistencyIndex != 0.38 {
		t.Errorf("expected consistency 0.38, got %v", snap.ConsistencyIndex)
	}
	if snap.ConceptGapScore != 10 {
		t.Errorf("expected gap score 10, got %d", snap.ConceptGapScore)
	}
	// max(0, 64-60)
	if snap.SessionImprovementRate != 4 {
		t.Errorf("expected improvement rate 4, got %v", snap.SessionImprovementRate)
	}
	if !reflect.DeepEqual(snap.WeakTopics, []string{"Geometry"}) {
		t.Errorf("expected weak topics [Geometry], got %v", snap.WeakTopics)
	}
	if !reflect.DeepEqual(snap.StrongTopics, []string{"Algebra"}) {
		t.Errorf("expected strong topics [Algebra], got %v", snap.StrongTopics)
	}
}

func TestCompute_Projections(t *testing.T) {
	store := progress.NewStore()
	// Algebra: 4/5 correct -> 80. Calculus: 1/2 -> 50.
	for i := 0; i < 4; i++ {
		store.RecordAnswer(quizbank.TopicAlgebra, "alg-1", true, false)
	}
	store.RecordAnswer(quizbank.TopicAlgebra, "alg-2", false, true)
	store.RecordAnswer(quizbank.TopicCalculus, "cal-1", true, false)
	store.RecordAnswer(quizbank.TopicCalculus, "cal-2", false, false)

	snap := analytics.Compute(store.AllTopicStats())

	// Timeline: first point is Algebra, abbreviated, with the derived proxy.
	first := snap.AccuracyTimeline[0]
	if first.Label != "Alge" {
		t.Errorf("expected label Alge, got %q", first.Label)
	}
	if first.Accuracy != 80 {
		t.Errorf("expected accuracy 80, got %d", first.Accuracy)
	}
	// max(8, 30 - 80*0.25) = 10
	if first.ResponseTimeProxy != 10 {
		t.Errorf("expected response proxy 10, got %v", first.ResponseTimeProxy)
	}
	// Geometry was never attempted: idle proxy.
	second := snap.AccuracyTimeline[1]
	if second.Accuracy != 0 || second.ResponseTimeProxy != 30 {
		t.Errorf("untested topic: expected 0/30, got %d/%v", second.Accuracy, second.ResponseTimeProxy)
	}

	// Session series: two attempted topics in store order.
	if len(snap.SessionSeries) != 2 {
		t.Fatalf("expected 2 session points, got %d", len(snap.SessionSeries))
	}
	s1, s2 := snap.SessionSeries[0], snap.SessionSeries[1]
	if s1.Label != "S1" || s2.Label != "S2" {
		t.Errorf("expected labels S1, S2; got %q, %q", s1.Label, s2.Label)
	}
	if s1.Improvement != 0 {
		t.Errorf("first session improvement must be 0, got %d", s1.Improvement)
	}
	if s2.Improvement != -30 {
		t.Errorf("expected improvement -30, got %d", s2.Improvement)
	}
	if s1.Errors != 1 || s1.Retries != 1 {
		t.Errorf("expected 1 error and 1 retry for S1, got %d/%d", s1.Errors, s1.Retries)
	}
	if s1.DurationProxy != 30 { // 20 + 2*5
		t.Errorf("expected duration proxy 30, got %d", s1.DurationProxy)
	}

	// Reports: reversed order, most recently attempted topic first.
	if len(snap.Reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(snap.Reports))
	}
	if snap.Reports[0].Label != "Calculus" || snap.Reports[1].Label != "Algebra" {
		t.Errorf("expected [Calculus Algebra], got [%s %s]", snap.Reports[0].Label, snap.Reports[1].Label)
	}
	if snap.Reports[0].Trend != analytics.TrendDeclined {
		t.Errorf("weak topic report should be declined, got %q", snap.Reports[0].Trend)
	}
	if snap.Reports[1].Trend != analytics.TrendImproving {
		t.Errorf("strong topic report should be improving, got %q", snap.Reports[1].Trend)
	}
	if snap.Reports[0].Improvement != -30 {
		t.Errorf("expected report improvement -30, got %d", snap.Reports[0].Improvement)
	}
	if snap.Reports[1].Improvement != 0 {
		t.Errorf("first attempted topic's report improvement must be 0, got %d", snap.Reports[1].Improvement)
	}
	if snap.Reports[0].Sessions != 2 {
		t.Errorf("expected 2 sessions for Calculus, got %d", snap.Reports[0].Sessions)
	}
}

func TestCompute_IsPure(t *testing.T) {
	store := progress.NewStore()
	store.RecordAnswer(quizbank.TopicAlgebra, "alg-1", true, false)
	store.RecordAnswer(quizbank.TopicGeometry, "geo-1", false, true)

	all := store.AllTopicStats()
	first := analytics.Compute(all)
	second := analytics.Compute(all)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical snapshots for identical input")
	}
}

func TestDescribeCognitiveType(t *testing.T) {
	if got := analytics.DescribeCognitiveType(analytics.TypeFastAccurate); got != "Efficient and precise" {
		t.Errorf("unexpected description %q", got)
	}
	if got := analytics.DescribeCognitiveType("Mystery Learner"); got != "" {
		t.Errorf("expected empty description for unknown type, got %q", got)
	}
}
