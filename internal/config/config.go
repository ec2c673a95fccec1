package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Stores struct {
		Users     string `yaml:"users"`
		Questions string `yaml:"questions"`
	} `yaml:"stores"`
	Quiz struct {
		QuestionsPerQuiz int    `yaml:"questions_per_quiz"`
		LeaderboardSize  int    `yaml:"leaderboard_size"`
		BankCacheTTL     string `yaml:"bank_cache_ttl"`
	} `yaml:"quiz"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	cfg := Config{}
	cfg.Stores.Users = "users.json"
	cfg.Stores.Questions = "questions.json"
	cfg.Quiz.QuestionsPerQuiz = 20
	cfg.Quiz.LeaderboardSize = 20
	cfg.Quiz.BankCacheTTL = "1m"
	return cfg
}

// Load reads YAML config from path on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Quiz.QuestionsPerQuiz <= 0 {
		cfg.Quiz.QuestionsPerQuiz = 20
	}
	if cfg.Quiz.LeaderboardSize <= 0 {
		cfg.Quiz.LeaderboardSize = 20
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty or invalid.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
