package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/natefinch/atomic"
)

// Config holds every setting of the name generator front end. Values come from
// the JSON config file and may be overridden by NAMEGEN_* environment
// variables (a .env file in the working directory is honored).
type Config struct {
	LogLevel       string `json:"log_level" env:"NAMEGEN_LOG_LEVEL"`
	DatabasePath   string `json:"database_path" env:"NAMEGEN_DATABASE_PATH"`
	FirstNamesPath string `json:"first_names_path" env:"NAMEGEN_FIRST_NAMES_PATH"`
	LastNamesPath  string `json:"last_names_path" env:"NAMEGEN_LAST_NAMES_PATH"`
	FirstCorpus    string `json:"first_corpus" env:"NAMEGEN_FIRST_CORPUS"`
	LastCorpus     string `json:"last_corpus" env:"NAMEGEN_LAST_CORPUS"`
	ExtraSymbols   string `json:"extra_symbols" env:"NAMEGEN_EXTRA_SYMBOLS"`
	MinNameLength  int    `json:"min_name_length" env:"NAMEGEN_MIN_NAME_LENGTH"`
	MaxNameLength  int    `json:"max_name_length" env:"NAMEGEN_MAX_NAME_LENGTH"`
	AttemptBudget  int    `json:"attempt_budget" env:"NAMEGEN_ATTEMPT_BUDGET"`
	UniqueAttempts int    `json:"unique_attempts" env:"NAMEGEN_UNIQUE_ATTEMPTS"`
	PruneBelow     int    `json:"prune_below" env:"NAMEGEN_PRUNE_BELOW"`
	Seed           uint64 `json:"seed" env:"NAMEGEN_SEED"`
}

// DefaultConfig creates a configuration with default values. Name lists are
// read from the corpus store unless a file path is set.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		DatabasePath:   "./data/namegen.db?_journal_mode=WAL&_busy_timeout=5000",
		FirstCorpus:    "first",
		LastCorpus:     "last",
		MinNameLength:  3,
		MaxNameLength:  10,
		AttemptBudget:  10000,
		UniqueAttempts: 1000,
	}
}

// LoadConfig reads the configuration from a JSON file at the given path and
// then applies environment overrides. If the file doesn't exist, it creates
// one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		var data []byte
		data, err = json.MarshalIndent(config, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal default config: %w", err)
		}
		if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
			// Defaults are still usable without the file.
			fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err = json.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// The .env file is optional.
	_ = godotenv.Load()
	if err = env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if config.MinNameLength > config.MaxNameLength {
		return nil, fmt.Errorf("min_name_length %d exceeds max_name_length %d", config.MinNameLength, config.MaxNameLength)
	}
	return config, nil
}

// Level maps the configured log level onto slog, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
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
