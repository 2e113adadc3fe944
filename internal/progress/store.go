package progress

import (
	"sync"

	"github.com/cognilearn/backend/internal/quizbank"
)

// Status classifies a topic from its cumulative accuracy.
type Status string

const (
	StatusUntested Status = "untested"
	StatusWeak     Status = "weak"
	StatusMedium   Status = "medium"
	StatusStrong   Status = "strong"
)

// TopicStats holds cumulative quiz performance for one topic. Accuracy and
// Status are derived from the counters and recomputed on every write.
type TopicStats struct {
	Topic           quizbank.Topic
	TotalAttempts   int
	CorrectAnswers  int
	Retries         int
	UsedQuestionIDs []string
	Accuracy        int // 0..100, rounded
	Status          Status
}

// Store is the single source of truth for cumulative quiz performance within
// a running process. One Store per student; construct with NewStore and pass
// it to whoever records or reads. All methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	topics map[quizbank.Topic]*TopicStats
}

// NewStore creates a store with every known topic at its zero, untested state.
func NewStore() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.topics = make(map[quizbank.Topic]*TopicStats, quizbank.TopicCount)
	for _, t := range quizbank.Topics() {
		s.topics[t] = zeroStats(t)
	}
}

func zeroStats(topic quizbank.Topic) *TopicStats {
	return &TopicStats{
		Topic:           topic,
		UsedQuestionIDs: []string{},
		Status:          StatusUntested,
	}
}

// TopicStats returns the stats for one topic. Unknown topics yield a fresh
// zero record rather than an error.
func (s *Store) TopicStats(topic quizbank.Topic) TopicStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.topics[topic]
	if !ok {
		return *zeroStats(topic)
	}
	return snapshot(st)
}

// AllTopicStats returns stats for every tracked topic in canonical order.
func (s *Store) AllTopicStats() []TopicStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TopicStats, 0, len(s.topics))
	for _, t := range quizbank.Topics() {
		out = append(out, snapshot(s.topics[t]))
	}
	return out
}

// RecordAnswer records one answer event against a topic. Every call counts as
// an attempt; wasCorrect and wasRetry bump their counters independently. The
// question ID joins the used set at most once. Writes against unknown topics
// are dropped.
func (s *Store) RecordAnswer(topic quizbank.Topic, questionID string, wasCorrect, wasRetry bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.topics[topic]
	if !ok {
		return
	}

	st.TotalAttempts++
	if wasCorrect {
		st.CorrectAnswers++
	}
	if wasRetry {
		st.Retries++
	}
	if !containsID(st.UsedQuestionIDs, questionID) {
		st.UsedQuestionIDs = append(st.UsedQuestionIDs, questionID)
	}

	st.Accuracy = accuracyOf(st.CorrectAnswers, st.TotalAttempts)
	st.Status = classify(st.Accuracy, st.TotalAttempts)
}

// Reset replaces every topic with a fresh zero record. There is no partial
// reset.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// snapshot copies a record so callers never alias store-internal state.
func snapshot(st *TopicStats) TopicStats {
	out := *st
	out.UsedQuestionIDs = make([]string, len(st.UsedQuestionIDs))
	copy(out.UsedQuestionIDs, st.UsedQuestionIDs)
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
