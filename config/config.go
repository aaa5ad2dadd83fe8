// Package config loads the solver configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/schematic/schematic"
)

var (
	// ErrInvalidPart indicates a part other than 1 or 2.
	ErrInvalidPart = errors.New("config: part must be 1 or 2")
	// ErrInvalidMarker indicates a gear marker that is not a single symbol.
	ErrInvalidMarker = errors.New("config: gear marker must be a single symbol character")
	// ErrInvalidGroupSize indicates a gear group size below 1.
	ErrInvalidGroupSize = errors.New("config: gear group size must be >= 1")
	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("config: workers must be >= 1")
	// ErrInvalidLogLevel indicates a logging level zap does not recognize.
	ErrInvalidLogLevel = errors.New("config: invalid logging level")
)

// Config holds all solver settings.
type Config struct {
	// Part selects the answer: 1 sums part numbers, 2 sums gear ratios.
	Part int `yaml:"part"`

	// Workers is the number of rows scanned concurrently.
	Workers int `yaml:"workers"`

	Gear GearConfig `yaml:"gear"`

	Logging LoggingConfig `yaml:"logging"`
}

// GearConfig configures gear selection for part 2.
type GearConfig struct {
	Marker    string `yaml:"marker"`     // single symbol character, default "*"
	GroupSize int    `yaml:"group_size"` // exact adjacent token count, default 2
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Part:    1,
		Workers: schematic.DefaultWorkers,
		Gear: GearConfig{
			Marker:    string(schematic.DefaultGearMarker),
			GroupSize: schematic.DefaultGearSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file on top of the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Part != 1 && c.Part != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidPart, c.Part)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if _, err := c.Gear.MarkerRune(); err != nil {
		return err
	}
	if c.Gear.GroupSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGroupSize, c.Gear.GroupSize)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}

// MarkerRune returns the gear marker as a rune.
func (g GearConfig) MarkerRune() (rune, error) {
	if utf8.RuneCountInString(g.Marker) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidMarker, g.Marker)
	}
	r, _ := utf8.DecodeRuneInString(g.Marker)
	if !schematic.IsSymbol(r) {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidMarker, g.Marker)
	}

	return r, nil
}

// GearOptions converts the gear settings into schematic options.
// The config must have passed Validate.
func (c *Config) GearOptions() []schematic.GearOption {
	r, _ := c.Gear.MarkerRune()
	return []schematic.GearOption{
		schematic.WithMarker(r),
		schematic.WithGroupSize(c.Gear.GroupSize),
	}
}
