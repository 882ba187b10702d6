// Package config holds runtime configuration: defaults, environment
// overrides, CLI flag parsing, and validation.
//
// Precedence is defaults < environment (UGEN_* variables, optionally from a
// .env file) < CLI flags.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then mutated by [Config.LoadEnv] and [ParseFlags] before being passed
// (by pointer) to packages that need it.
type Config struct {
	// Paths. OutputPath comes from -o/--output, InputFiles from the
	// positional args.
	OutputPath string   `env:"UGEN_OUTPUT"`
	InputFiles []string `env:"-"`

	// Optional run report (YAML). Empty disables it.
	ReportPath string `env:"UGEN_REPORT"`

	// Behavior flags.
	DryRun bool `env:"-"`

	// Display and logging.
	Verbose   bool      `env:"UGEN_VERBOSE"`
	ColorMode ColorMode `env:"UGEN_COLOR"`
	LogFile   string    `env:"UGEN_LOG_FILE"` // Optional log file path.
	CheckOnly bool      `env:"-"`             // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Config.LoadEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		ColorMode: ColorAuto,
	}
}

// LoadEnv applies UGEN_* environment overrides to c. A .env file in the
// working directory is loaded first when present; a missing file is not an
// error.
func (c *Config) LoadEnv() error {
	_ = godotenv.Load()
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	return nil
}

// Validate checks that the color mode is valid and that an output path and
// at least one input file were given. --check uses the same arguments, so
// the path requirements apply there too.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.OutputPath == "" {
		return errors.New("output file required (use -o <file>)")
	}
	if len(c.InputFiles) == 0 {
		return errors.New("need at least one input file")
	}
	return nil
}
