package quizbank_test

import (
	"testing"

	"github.com/cognilearn/backend/internal/quizbank"
)

func TestQuizForTopic_ReturnsFiveDistinctTopicQuestions(t *testing.T) {
	quiz := quizbank.QuizForTopic(quizbank.TopicAlgebra, nil)

	if len(quiz) != quizbank.QuestionsPerQuiz {
		t.Fatalf("expected %d questions, got %d", quizbank.QuestionsPerQuiz, len(quiz))
	}

	seen := make(map[string]bool)
	for _, q := range quiz {
		if q.Topic != quizbank.TopicAlgebra {
			t.Errorf("expected topic %q, got %q", quizbank.TopicAlgebra, q.Topic)
		}
		if seen[q.ID] {
			t.Errorf("question %s appears twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestQuizForTopic_ExcludesUsedIDs(t *testing.T) {
	used := []string{"alg-1", "alg-2", "alg-3", "alg-4"}

	quiz := quizbank.QuizForTopic(quizbank.TopicAlgebra, used)

	// 4 of 8 excluded leaves a pool of 4
	if len(quiz) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(quiz))
	}
	excluded := make(map[string]bool)
	for _, id := range used {
		excluded[id] = true
	}
	for _, q := range quiz {
		if excluded[q.ID] {
			t.Errorf("used question %s was selected", q.ID)
		}
	}
}

func TestQuizForTopic_ExhaustedPoolReturnsEmpty(t *testing.T) {
	var used []string
	for _, q := range quizbank.ForTopic(quizbank.TopicAlgebra) {
		used = append(used, q.ID)
	}

	quiz := quizbank.QuizForTopic(quizbank.TopicAlgebra, used)

	if len(quiz) != 0 {
		t.Fatalf("expected empty quiz when pool is exhausted, got %d questions", len(quiz))
	}
}

func TestQuizForTopic_RandomizesSelection(t *testing.T) {
	// With 8 questions cut to 5, repeated draws almost surely differ in
	// membership or order at least once.
	first := quizbank.QuizForTopic(quizbank.TopicGeometry, nil)

	foundDifferent := false
	for i := 0; i < 20; i++ {
		quiz := quizbank.QuizForTopic(quizbank.TopicGeometry, nil)
		if !sameOrder(first, quiz) {
			foundDifferent = true
			break
		}
	}

	if !foundDifferent {
		t.Error("expected quiz selection to vary across draws")
	}
}

func TestBank_HasEightQuestionsPerTopic(t *testing.T) {
	counts := make(map[quizbank.Topic]int)
	ids := make(map[string]bool)
	for _, q := range quizbank.All() {
		counts[q.Topic]++
		if ids[q.ID] {
			t.Errorf("duplicate question id %s", q.ID)
		}
		ids[q.ID] = true
	}

	if len(counts) != quizbank.TopicCount {
		t.Fatalf("expected %d topics, got %d", quizbank.TopicCount, len(counts))
	}
	for topic, n := range counts {
		if n != 8 {
			t.Errorf("topic %s has %d questions, expected 8", topic, n)
		}
	}
}

func TestParseTopic(t *testing.T) {
	topic, err := quizbank.ParseTopic("Linear Algebra")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic != quizbank.TopicLinearAlgebra {
		t.Errorf("expected %q, got %q", quizbank.TopicLinearAlgebra, topic)
	}

	if _, err := quizbank.ParseTopic("Alchemy"); err == nil {
		t.Error("expected error for unknown topic")
	}
}

func sameOrder(a, b []quizbank.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
