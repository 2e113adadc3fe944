package quizsession

import (
	"errors"
	"math"

	"github.com/cognilearn/backend/internal/id"
	"github.com/cognilearn/backend/internal/progress"
	"github.com/cognilearn/backend/internal/quizbank"
)

// AnswerState tracks where the current question stands.
type AnswerState string

const (
	AnswerIdle    AnswerState = "idle"
	AnswerCorrect AnswerState = "correct"
	AnswerWrong   AnswerState = "wrong"
)

var (
	// ErrNoQuestions means the topic has no questions at all, even after
	// dropping the used-ID exclusions. With the fixed bank this only happens
	// for topics outside the bank.
	ErrNoQuestions = errors.New("no questions available for topic")

	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotWrong        = errors.New("retry is only allowed after a wrong answer")
	ErrNotAnswered     = errors.New("current question has not been answered")
	ErrFinished        = errors.New("session is finished")
)

// Session walks a student through one quiz attempt: it pulls questions from
// the bank, records every answer event into the progress store, and keeps the
// per-session counters shown on the completion screen. A Session is owned by
// a single goroutine and is discarded, never persisted.
type Session struct {
	ID    string
	Topic quizbank.Topic

	store     *progress.Store
	questions []quizbank.Question

	current       int
	selected      int // -1 while unanswered
	answerState   AnswerState
	correctCount  int
	wrongAttempts int
	retrying      bool
	done          bool

	// OnComplete, if set, runs once when the last question is advanced past.
	OnComplete func()
}

// New starts a quiz for a topic against the given store. Question selection
// excludes the topic's used IDs; when the whole pool has been used it recycles
// by reloading with no exclusions.
func New(store *progress.Store, topic quizbank.Topic) (*Session, error) {
	s := &Session{
		ID:    id.Generate(),
		Topic: topic,
		store: store,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) load() error {
	used := s.store.TopicStats(s.Topic).UsedQuestionIDs
	qs := quizbank.QuizForTopic(s.Topic, used)
	if len(qs) == 0 {
		// Pool exhausted: recycle the topic's questions.
		qs = quizbank.QuizForTopic(s.Topic, nil)
	}
	if len(qs) == 0 {
		return ErrNoQuestions
	}
	s.questions = qs
	s.current = 0
	s.selected = -1
	s.answerState = AnswerIdle
	s.correctCount = 0
	s.wrongAttempts = 0
	s.retrying = false
	s.done = false
	return nil
}

// Current returns the question in play. ok is false once the session is done.
func (s *Session) Current() (quizbank.Question, bool) {
	if s.done || s.current >= len(s.questions) {
		return quizbank.Question{}, false
	}
	return s.questions[s.current], true
}

// Select answers the current question with the given option index. Exactly
// one Select is legal per question per attempt; the answer event is recorded
// in the store whether right or wrong.
func (s *Session) Select(optionIndex int) (correct bool, err error) {
	if s.done {
		return false, ErrFinished
	}
	if s.answerState != AnswerIdle {
		return false, ErrAlreadyAnswered
	}

	q := s.questions[s.current]
	correct = q.IsCorrect(optionIndex)
	s.selected = optionIndex
	if correct {
		s.answerState = AnswerCorrect
		s.correctCount++
	} else {
		s.answerState = AnswerWrong
		s.wrongAttempts++
	}
	s.store.RecordAnswer(s.Topic, q.ID, correct, s.retrying)
	return correct, nil
}

// Retry re-opens the current question after a wrong answer. Pressing retry
// itself records another wrong attempt immediately, before the student
// answers again; the eventual retry outcome is recorded separately by the
// next Select.
func (s *Session) Retry() error {
	if s.done {
		return ErrFinished
	}
	if s.answerState != AnswerWrong {
		return ErrNotWrong
	}

	s.selected = -1
	s.answerState = AnswerIdle
	s.retrying = true
	s.store.RecordAnswer(s.Topic, s.questions[s.current].ID, false, true)
	s.wrongAttempts++
	return nil
}

// Next advances to the following question, or finishes the session when the
// current question was the last. Only legal once the current question has
// been answered.
func (s *Session) Next() (finished bool, err error) {
	if s.done {
		return false, ErrFinished
	}
	if s.answerState == AnswerIdle {
		return false, ErrNotAnswered
	}

	if s.current+1 >= len(s.questions) {
		s.done = true
		if s.OnComplete != nil {
			s.OnComplete()
		}
		return true, nil
	}
	s.current++
	s.selected = -1
	s.answerState = AnswerIdle
	s.retrying = false
	return false, nil
}

// Restart begins a fresh quiz on the same topic from the completion screen,
// re-reading the store's used IDs so recycling is picked up.
func (s *Session) Restart() error {
	return s.load()
}

// Accuracy is the live session accuracy: correct answers over questions
// answered so far, as a rounded percentage, 0 before the first answer.
func (s *Session) Accuracy() int {
	answered := s.current
	if s.answerState != AnswerIdle || s.done {
		answered++
	}
	if answered == 0 {
		return 0
	}
	return int(math.Round(float64(s.correctCount) / float64(answered) * 100))
}

// Done reports whether the completion screen is showing.
func (s *Session) Done() bool { return s.done }

// QuestionCount returns how many questions this quiz holds.
func (s *Session) QuestionCount() int { return len(s.questions) }

// QuestionNumber returns the 1-based position of the current question.
func (s *Session) QuestionNumber() int { return s.current + 1 }

// State exposes the current answer state.
func (s *Session) State() AnswerState { return s.answerState }

// Selected returns the chosen option index, or -1 while unanswered.
func (s *Session) Selected() int { return s.selected }

// Retrying reports whether the current question is a retry attempt.
func (s *Session) Retrying() bool { return s.retrying }
