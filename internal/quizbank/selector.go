package quizbank

import "math/rand"

// QuestionsPerQuiz is the fixed length of a quiz. Shorter quizzes happen only
// when a topic's unused pool is smaller than this.
const QuestionsPerQuiz = 5

// All returns the full question bank in declaration order. The slice is a copy.
func All() []Question {
	out := make([]Question, len(bank))
	copy(out, bank)
	return out
}

// ForTopic returns every question of a topic in declaration order.
func ForTopic(topic Topic) []Question {
	var out []Question
	for _, q := range bank {
		if q.Topic == topic {
			out = append(out, q)
		}
	}
	return out
}

// QuizForTopic builds a randomized quiz for a topic, excluding questions whose
// IDs appear in usedIDs. It returns up to QuestionsPerQuiz questions, and an
// empty slice when the whole pool has been used. Recycling (retrying with no
// exclusions) is the caller's call, never done here.
func QuizForTopic(topic Topic, usedIDs []string) []Question {
	used := make(map[string]bool, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = true
	}

	var pool []Question
	for _, q := range bank {
		if q.Topic == topic && !used[q.ID] {
			pool = append(pool, q)
		}
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) > QuestionsPerQuiz {
		pool = pool[:QuestionsPerQuiz]
	}
	return pool
}
