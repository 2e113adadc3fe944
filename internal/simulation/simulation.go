package simulation

import (
	"fmt"
	"math/rand"

	"github.com/cognilearn/backend/internal/analytics"
	"github.com/cognilearn/backend/internal/classroom"
	"github.com/cognilearn/backend/internal/progress"
	"github.com/cognilearn/backend/internal/quizbank"
	"github.com/cognilearn/backend/internal/quizsession"
	"github.com/cognilearn/backend/internal/worker"
)

// Options tune a classroom simulation run.
type Options struct {
	QuizzesPerStudent int
	RetryProbability  float64 // chance a wrong answer is retried
	Workers           int
}

// DefaultOptions returns the knobs used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		QuizzesPerStudent: 4,
		RetryProbability:  0.5,
		Workers:           3,
	}
}

// Outcome is one student's simulated run: their analytics snapshot plus the
// completion summary of every quiz they took.
type Outcome struct {
	Result    classroom.StudentResult
	Summaries []quizsession.Summary
	Err       error
}

// Run puts every rostered student through opts.QuizzesPerStudent quizzes,
// one pool job per student, and returns outcomes in roster order. Each
// student answers from an independent progress store; a topic's chance of a
// correct answer is the student's skill for it.
func Run(students []classroom.Student, opts Options) []Outcome {
	if opts.Workers <= 0 {
		opts.Workers = DefaultOptions().Workers
	}

	pool := worker.NewPool[Outcome](opts.Workers, len(students))
	for _, st := range students {
		pool.Submit(st.ID.String(), func() Outcome {
			return simulateStudent(st, opts)
		})
	}
	pool.Close()

	byID := make(map[string]Outcome, len(students))
	for result := range pool.Results() {
		byID[result.JobID] = result.Output
	}

	outcomes := make([]Outcome, 0, len(students))
	for _, st := range students {
		outcomes = append(outcomes, byID[st.ID.String()])
	}
	return outcomes
}

func simulateStudent(st classroom.Student, opts Options) Outcome {
	store := progress.NewStore()
	topics := quizbank.Topics()

	var summaries []quizsession.Summary
	for i := 0; i < opts.QuizzesPerStudent; i++ {
		topic := topics[i%len(topics)]
		summary, err := runQuiz(store, st, topic, opts)
		if err != nil {
			return Outcome{Err: fmt.Errorf("student %s, quiz %d on %s: %w", st.Name, i+1, topic, err)}
		}
		summaries = append(summaries, summary)
	}

	return Outcome{
		Result: classroom.StudentResult{
			Student:  st,
			Snapshot: analytics.Compute(store.AllTopicStats()),
		},
		Summaries: summaries,
	}
}

// runQuiz plays one full quiz the way a student would: answer, maybe retry a
// miss once, then move on.
func runQuiz(store *progress.Store, st classroom.Student, topic quizbank.Topic, opts Options) (quizsession.Summary, error) {
	session, err := quizsession.New(store, topic)
	if err != nil {
		return quizsession.Summary{}, err
	}

	skill := st.Skill(topic)
	for {
		q, ok := session.Current()
		if !ok {
			break
		}

		correct, err := session.Select(pickOption(q, skill))
		if err != nil {
			return quizsession.Summary{}, err
		}
		if !correct && rand.Float64() < opts.RetryProbability {
			if err := session.Retry(); err != nil {
				return quizsession.Summary{}, err
			}
			if _, err := session.Select(pickOption(q, skill)); err != nil {
				return quizsession.Summary{}, err
			}
		}

		if _, err := session.Next(); err != nil {
			return quizsession.Summary{}, err
		}
	}

	return session.Summary(), nil
}

// pickOption answers correctly with probability skill, otherwise picks one of
// the three wrong options at random.
func pickOption(q quizbank.Question, skill float64) int {
	if rand.Float64() < skill {
		return q.CorrectOption
	}
	return (q.CorrectOption + 1 + rand.Intn(3)) % 4
}
