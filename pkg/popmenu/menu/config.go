package menu

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const ConfigPathEnvVar = "POPMENU_CONFIG"

const (
	DefaultColumnCount       = 3
	DefaultDuration          = 300 * time.Millisecond
	DefaultTension           = 40
	DefaultFriction          = 5
	DefaultHorizontalPadding = 40
	DefaultVerticalPadding   = 15
	DefaultDismissInset      = 25
	DefaultDismissSize       = 48
)

// Config holds the menu geometry and animation settings. Paddings, inset and
// size are density-independent units. Tension and friction are Origami
// coefficients, see SpringConfigFromOrigami.
type Config struct {
	ColumnCount       int           `toml:"column_count"`
	Duration          time.Duration `toml:"duration"` // hide transition only
	Tension           float64       `toml:"tension"`
	Friction          float64       `toml:"friction"`
	HorizontalPadding int           `toml:"horizontal_padding"`
	VerticalPadding   int           `toml:"vertical_padding"`
	DismissInset      int           `toml:"dismiss_inset"`
	DismissSize       int           `toml:"dismiss_size"`
}

func DefaultConfig() Config {
	return Config{
		ColumnCount:       DefaultColumnCount,
		Duration:          DefaultDuration,
		Tension:           DefaultTension,
		Friction:          DefaultFriction,
		HorizontalPadding: DefaultHorizontalPadding,
		VerticalPadding:   DefaultVerticalPadding,
		DismissInset:      DefaultDismissInset,
		DismissSize:       DefaultDismissSize,
	}
}

func (c Config) Validate() error {
	if c.ColumnCount < 1 {
		return &ConfigurationError{Field: "column_count", Value: c.ColumnCount, Reason: "must be at least 1"}
	}
	if c.Duration < 0 {
		return &ConfigurationError{Field: "duration", Value: c.Duration, Reason: "must not be negative"}
	}
	if c.HorizontalPadding < 0 {
		return &ConfigurationError{Field: "horizontal_padding", Value: c.HorizontalPadding, Reason: "must not be negative"}
	}
	if c.VerticalPadding < 0 {
		return &ConfigurationError{Field: "vertical_padding", Value: c.VerticalPadding, Reason: "must not be negative"}
	}
	if c.DismissInset < 0 {
		return &ConfigurationError{Field: "dismiss_inset", Value: c.DismissInset, Reason: "must not be negative"}
	}
	if c.DismissSize <= 0 {
		return &ConfigurationError{Field: "dismiss_size", Value: c.DismissSize, Reason: "must be positive"}
	}

	spring := SpringConfigFromOrigami(c.Tension, c.Friction)
	if spring.Tension <= 0 {
		return &ConfigurationError{Field: "tension", Value: c.Tension, Reason: "does not produce a positive spring stiffness"}
	}
	if spring.Friction <= 0 {
		return &ConfigurationError{Field: "friction", Value: c.Friction, Reason: "does not produce positive damping"}
	}

	return nil
}

// DecodeConfig parses TOML over the defaults. Keys missing from data keep
// their default value.
func DecodeConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode menu config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read menu config: %w", err)
	}
	return DecodeConfig(data)
}

// ConfigFromEnv loads the file named by POPMENU_CONFIG, or the defaults when
// the variable is unset.
func ConfigFromEnv() (Config, error) {
	path := os.Getenv(ConfigPathEnvVar)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
