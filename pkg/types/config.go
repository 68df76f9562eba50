package types

import (
	"errors"
	"fmt"
)

// Plan names accepted by director.Lookup.
const (
	PlanBasic  = "basic"
	PlanFamily = "family"
)

// Log levels accepted in Config.LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrInvalidRange    = errors.New("invalid range")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownPlans = map[string]bool{
	PlanBasic:  true,
	PlanFamily: true,
}

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// Range is an inclusive integer interval used to bound manual input.
type Range struct {
	Min int `json:"min" yaml:"min" mapstructure:"min"`
	Max int `json:"max" yaml:"max" mapstructure:"max"`
}

// Validate checks that the range is non-negative and not inverted.
func (r Range) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("%w: min %d is negative", ErrInvalidRange, r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Limits bounds the counts a user may enter when building by hand.
type Limits struct {
	Walls   Range `json:"walls" yaml:"walls" mapstructure:"walls"`
	Doors   Range `json:"doors" yaml:"doors" mapstructure:"doors"`
	Windows Range `json:"windows" yaml:"windows" mapstructure:"windows"`
}

// DefaultLimits returns the bounds used when config.yaml sets none.
func DefaultLimits() Limits {
	return Limits{
		Walls:   Range{Min: 1, Max: 10},
		Doors:   Range{Min: 1, Max: 5},
		Windows: Range{Min: 1, Max: 20},
	}
}

// Config holds user preferences loaded from config.yaml.
type Config struct {
	DefaultBuilder string `json:"default_builder" yaml:"default_builder" mapstructure:"default_builder"`
	DefaultPlan    string `json:"default_plan" yaml:"default_plan" mapstructure:"default_plan"`
	Limits         Limits `json:"limits" yaml:"limits" mapstructure:"limits"`
	Color          bool   `json:"color" yaml:"color" mapstructure:"color"`
	LogLevel       string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		DefaultBuilder: BuilderSimple,
		DefaultPlan:    PlanBasic,
		Limits:         DefaultLimits(),
		Color:          true,
		LogLevel:       LogLevelWarn,
	}
}

// Validate checks that the Config is well-formed. It returns a wrapped
// sentinel from this package on failure.
func (c Config) Validate() error {
	if !IsValidBuilder(c.DefaultBuilder) {
		return fmt.Errorf("%w %q", ErrBuilderUnknown, c.DefaultBuilder)
	}
	if !knownPlans[c.DefaultPlan] {
		return fmt.Errorf("%w %q", ErrPlanUnknown, c.DefaultPlan)
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w %q", ErrLogLevelUnknown, c.LogLevel)
	}
	ranges := []struct {
		name string
		r    Range
	}{
		{"walls", c.Limits.Walls},
		{"doors", c.Limits.Doors},
		{"windows", c.Limits.Windows},
	}
	for _, lr := range ranges {
		if err := lr.r.Validate(); err != nil {
			return fmt.Errorf("limits.%s: %w", lr.name, err)
		}
	}
	return nil
}
