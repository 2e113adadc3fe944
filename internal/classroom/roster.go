package classroom

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cognilearn/backend/internal/quizbank"
)

// ErrEmptyRoster means the roster file parsed fine but listed no students.
var ErrEmptyRoster = errors.New("roster has no students")

// Student is one class member. Skills hold the per-topic answer skill in
// [0,1] used when simulating their quiz sessions; topics absent from the map
// default to defaultSkill.
type Student struct {
	ID     uuid.UUID
	Name   string
	Grade  string
	Skills map[quizbank.Topic]float64
}

const defaultSkill = 0.5

// Skill returns the student's answer skill for a topic.
func (s Student) Skill(topic quizbank.Topic) float64 {
	if v, ok := s.Skills[topic]; ok {
		return v
	}
	return defaultSkill
}

type rosterFile struct {
	Students []studentEntry `yaml:"students"`
}

type studentEntry struct {
	Name   string             `yaml:"name"`
	Grade  string             `yaml:"grade"`
	Skills map[string]float64 `yaml:"skills"`
}

// LoadRoster reads, parses, and validates a class roster file. Student IDs
// are minted fresh on every load; the roster is input data, not a database.
func LoadRoster(path string) ([]Student, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	return ParseRoster(data)
}

// ParseRoster parses roster YAML. Skill keys must be known topics and skill
// values must lie in [0,1].
func ParseRoster(data []byte) ([]Student, error) {
	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if len(file.Students) == 0 {
		return nil, ErrEmptyRoster
	}

	students := make([]Student, 0, len(file.Students))
	for i, entry := range file.Students {
		if entry.Name == "" {
			return nil, fmt.Errorf("roster student %d: name is required", i+1)
		}
		skills := make(map[quizbank.Topic]float64, len(entry.Skills))
		for name, v := range entry.Skills {
			topic, err := quizbank.ParseTopic(name)
			if err != nil {
				return nil, fmt.Errorf("roster student %q: %w", entry.Name, err)
			}
			if v < 0 || v > 1 {
				return nil, fmt.Errorf("roster student %q: skill for %s must be in [0,1], got %v", entry.Name, topic, v)
			}
			skills[topic] = v
		}
		students = append(students, Student{
			ID:     uuid.New(),
			Name:   entry.Name,
			Grade:  entry.Grade,
			Skills: skills,
		})
	}
	return students, nil
}
