package quizbank

// Difficulty rates how hard a question is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is one multiple-choice question from the fixed bank. Questions are
// immutable: the bank is defined at compile time and never mutated.
type Question struct {
	ID            string
	Topic         Topic
	Prompt        string
	Options       [4]string
	CorrectOption int // index into Options, 0..3
	Difficulty    Difficulty
}

// IsCorrect reports whether the given option index answers the question.
func (q Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.CorrectOption
}
