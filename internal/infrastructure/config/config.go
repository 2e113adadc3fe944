package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	RosterPath string
	LogLevel   string // debug, info, warn, error

	// Simulation knobs
	QuizzesPerStudent int
	RetryProbability  float64
	Workers           int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		RosterPath:        getenvDefault("ROSTER_PATH", "roster.yaml"),
		LogLevel:          getenvDefault("LOG_LEVEL", "info"),
		QuizzesPerStudent: getenvInt("SIM_QUIZZES_PER_STUDENT", 4),
		RetryProbability:  getenvFloat("SIM_RETRY_PROBABILITY", 0.5),
		Workers:           getenvInt("SIM_WORKERS", 3),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}

func getenvFloat(k string, fallback float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid number: %v", k, v, err)
	}
	return f
}
