package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all tunables for the game and the CLI.
type Config struct {
	// Seed for the random source; 0 picks a time-based seed.
	Seed          int64         `env:"CREATURE_SEED"           envDefault:"0"`
	Lang          string        `env:"CREATURE_LANG"           envDefault:"en"    validate:"oneof=en ja"`
	EncounterRate float64       `env:"CREATURE_ENCOUNTER_RATE" envDefault:"0.028" validate:"gte=0,lte=1"`
	StepTicks     int           `env:"CREATURE_STEP_TICKS"     envDefault:"7"     validate:"gte=0"`
	TurnDelay     time.Duration `env:"CREATURE_TURN_DELAY"     envDefault:"350ms" validate:"gte=0"`
	WindowScale   int           `env:"CREATURE_WINDOW_SCALE"   envDefault:"1"     validate:"gte=1,lte=4"`
	LogFormat     string        `env:"LOG_FORMAT"              envDefault:"text"  validate:"oneof=text json"`
	LogLevel      string        `env:"LOG_LEVEL"               envDefault:"info"  validate:"oneof=debug info warn error"`
}

var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New()

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse builds a config from an explicit environment instead of the
// process one.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// TurnDelayTicks converts TurnDelay into game ticks at the given rate,
// rounding up so a non-zero delay always lasts at least one tick.
func (c Config) TurnDelayTicks(tps int) int {
	if c.TurnDelay <= 0 || tps <= 0 {
		return 0
	}
	n := c.TurnDelay.Nanoseconds() * int64(tps)
	return int((n + int64(time.Second) - 1) / int64(time.Second))
}
