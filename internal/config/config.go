package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	SlackBotToken      string `env:"SLACK_BOT_TOKEN,required"`
	SlackSigningSecret string `env:"SLACK_SIGNING_SECRET,required"`
	DatabasePath       string `env:"DATABASE_PATH" envDefault:"./staff.db"`
	Port               string `env:"PORT" envDefault:"3000"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`

	// CheckInterval is the reconciliation cadence
	CheckInterval     time.Duration `env:"CHECK_INTERVAL" envDefault:"30s"`
	SideEffectTimeout time.Duration `env:"SIDE_EFFECT_TIMEOUT" envDefault:"10s"`
	SweepConcurrency  int           `env:"SWEEP_CONCURRENCY" envDefault:"4"`
}

// Load reads an optional .env file and then parses the environment
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if cfg.CheckInterval <= 0 {
		return nil, fmt.Errorf("CHECK_INTERVAL must be positive, got %s", cfg.CheckInterval)
	}
	if cfg.SweepConcurrency < 1 {
		cfg.SweepConcurrency = 1
	}

	return cfg, nil
}
