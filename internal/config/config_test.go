package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Zero(t, cfg.Seed)
	assert.Equal(t, "en", cfg.Lang)
	assert.Equal(t, 0.028, cfg.EncounterRate)
	assert.Equal(t, 7, cfg.StepTicks)
	assert.Equal(t, 350*time.Millisecond, cfg.TurnDelay)
	assert.Equal(t, 1, cfg.WindowScale)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"CREATURE_SEED":           "42",
		"CREATURE_LANG":           "ja",
		"CREATURE_ENCOUNTER_RATE": "0.5",
		"CREATURE_TURN_DELAY":     "1s",
		"LOG_FORMAT":              "json",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "ja", cfg.Lang)
	assert.Equal(t, 0.5, cfg.EncounterRate)
	assert.Equal(t, time.Second, cfg.TurnDelay)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"rate above one":  {"CREATURE_ENCOUNTER_RATE": "1.5"},
		"unknown lang":    {"CREATURE_LANG": "fr"},
		"zero scale":      {"CREATURE_WINDOW_SCALE": "0"},
		"bad log format":  {"LOG_FORMAT": "xml"},
		"negative ticks":  {"CREATURE_STEP_TICKS": "-1"},
		"malformed delay": {"CREATURE_TURN_DELAY": "soon"},
	}
	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(environ)
			assert.Error(t, err)
		})
	}
}

func TestValidate_WrapsSentinel(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	cfg.Lang = "de"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestTurnDelayTicks(t *testing.T) {
	cfg := Config{TurnDelay: 350 * time.Millisecond}
	assert.Equal(t, 21, cfg.TurnDelayTicks(60))

	cfg.TurnDelay = 10 * time.Millisecond
	assert.Equal(t, 1, cfg.TurnDelayTicks(60))

	cfg.TurnDelay = 0
	assert.Zero(t, cfg.TurnDelayTicks(60))
}
