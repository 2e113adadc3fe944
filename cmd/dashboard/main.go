package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/cognilearn/backend/internal/analytics"
	"github.com/cognilearn/backend/internal/classroom"
	"github.com/cognilearn/backend/internal/infrastructure/config"
	"github.com/cognilearn/backend/internal/simulation"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	students, err := classroom.LoadRoster(cfg.RosterPath)
	if err != nil {
		if errors.Is(err, classroom.ErrEmptyRoster) {
			logger.Error("roster is empty, nothing to simulate", "path", cfg.RosterPath)
		} else {
			logger.Error("failed to load roster", "path", cfg.RosterPath, "error", err)
		}
		os.Exit(1)
	}
	logger.Info("roster loaded", "path", cfg.RosterPath, "students", len(students))

	outcomes := simulation.Run(students, simulation.Options{
		QuizzesPerStudent: cfg.QuizzesPerStudent,
		RetryProbability:  cfg.RetryProbability,
		Workers:           cfg.Workers,
	})

	results := make([]classroom.StudentResult, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			logger.Error("simulation failed for student", "error", o.Err)
			continue
		}
		results = append(results, o.Result)

		snap := o.Result.Snapshot
		logger.Info("student analytics",
			"student", o.Result.Student.Name,
			"cognitive_type", snap.CognitiveType,
			"profile", analytics.DescribeCognitiveType(snap.CognitiveType),
			"overall_accuracy", snap.OverallAccuracy,
			"attempts", snap.TotalAttempts,
			"retries", snap.TotalRetries,
			"retry_ratio", snap.RetryRatio,
			"learning_velocity", snap.LearningVelocity,
			"consistency_index", snap.ConsistencyIndex,
			"concept_gap_score", snap.ConceptGapScore,
			"weak_topics", snap.WeakTopics,
			"strong_topics", snap.StrongTopics,
		)
		for _, s := range o.Summaries {
			logger.Debug("quiz summary",
				"student", o.Result.Student.Name,
				"correct", s.Correct,
				"total", s.Total,
				"wrong_attempts", s.WrongAttempts,
				"session_accuracy", s.Accuracy,
			)
		}
	}

	class := classroom.BuildClassReport(results)
	logger.Info("class report",
		"students", class.Students,
		"attempted", class.Attempted,
		"average_accuracy", class.AverageAccuracy,
		"cognitive_types", class.CognitiveTypes,
	)
	for _, alert := range class.Alerts {
		if alert.Level == classroom.RiskLow {
			continue
		}
		logger.Warn("at-risk student",
			"student", alert.Student,
			"risk", string(alert.Level),
			"overall_accuracy", alert.OverallAccuracy,
			"weak_topics", alert.WeakTopics,
		)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
