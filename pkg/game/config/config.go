// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Hint display bounds
const (
	MinHintDuration = 8 * time.Second
	MaxHintDuration = 10 * time.Second
)

// ErrHintDuration is returned when the hint display time is outside MinHintDuration..MaxHintDuration
var ErrHintDuration = errors.New("hint duration out of range")

// Config holds the settings read at startup
type Config struct {
	Variant      string        `env:"WITCHLAIR_VARIANT" envDefault:"classic"`
	HintDuration time.Duration `env:"WITCHLAIR_HINT_DURATION" envDefault:"8s"`
	LogLevel     slog.Level    `env:"WITCHLAIR_LOG_LEVEL" envDefault:"INFO"`
	LogFile      string        `env:"WITCHLAIR_LOG_FILE"`
}

// Load reads dotenvFile if it exists and then parses the process environment.
// Variables already set in the environment win over the file.
func Load(dotenvFile string) (Config, error) {
	if dotenvFile != "" {
		if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvFile, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromMap parses settings from the given variables instead of the process environment
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that have fixed bounds
func (c Config) Validate() error {
	if c.HintDuration < MinHintDuration || c.HintDuration > MaxHintDuration {
		return fmt.Errorf("%w: %v (want %v to %v)", ErrHintDuration, c.HintDuration, MinHintDuration, MaxHintDuration)
	}
	return nil
}

// Logger builds the structured logger. Without a log file all records are discarded
// so they never tear the terminal display.
func (c Config) Logger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.LogLevel})), f, nil
}
