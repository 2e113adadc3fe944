package quizbank

import "fmt"

// Topic identifies one of the fixed subject areas. Topics form a closed set:
// use ParseTopic to validate external input instead of casting strings.
type Topic string

const (
	TopicAlgebra       Topic = "Algebra"
	TopicGeometry      Topic = "Geometry"
	TopicCalculus      Topic = "Calculus"
	TopicStatistics    Topic = "Statistics"
	TopicTrigonometry  Topic = "Trigonometry"
	TopicLinearAlgebra Topic = "Linear Algebra"
	TopicProbability   Topic = "Probability"
	TopicNumberTheory  Topic = "Number Theory"
)

// topicOrder is the canonical declaration order used by the store and all
// chart projections.
var topicOrder = []Topic{
	TopicAlgebra,
	TopicGeometry,
	TopicCalculus,
	TopicStatistics,
	TopicTrigonometry,
	TopicLinearAlgebra,
	TopicProbability,
	TopicNumberTheory,
}

// Topics returns all topics in canonical order. The slice is a copy.
func Topics() []Topic {
	out := make([]Topic, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// TopicCount is the number of subject areas in the bank.
const TopicCount = 8

// IsValid reports whether t is one of the known topics.
func (t Topic) IsValid() bool {
	for _, known := range topicOrder {
		if t == known {
			return true
		}
	}
	return false
}

func (t Topic) String() string { return string(t) }

// ParseTopic converts a raw string into a Topic, rejecting unknown names.
func ParseTopic(s string) (Topic, error) {
	t := Topic(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown topic %q", s)
	}
	return t, nil
}
