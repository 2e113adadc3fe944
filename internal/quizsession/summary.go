package quizsession

// Summary carries the three completion-screen figures for a finished (or
// in-flight) quiz.
type Summary struct {
	Correct       int
	Total         int
	WrongAttempts int
	Accuracy      int // session accuracy, rounded percentage
}

// Summary reports the session's score so far.
func (s *Session) Summary() Summary {
	return Summary{
		Correct:       s.correctCount,
		Total:         len(s.questions),
		WrongAttempts: s.wrongAttempts,
		Accuracy:      s.Accuracy(),
	}
}
