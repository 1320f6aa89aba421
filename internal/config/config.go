// Package config holds runtime configuration: defaults, optional YAML file
// overlay, and validation. The engine itself takes no configuration beyond
// the output delimiter; everything else here tunes the CLI and UI shell
// around it.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColorMode controls ANSI color output in the CLI.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// LogLevel selects the minimum logging level.
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info" // Default.
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds all runtime settings. It is populated by [Default], then
// optionally overlaid from a YAML file by [Load], then mutated by CLI flags
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Output.
	Delimiter string `yaml:"delimiter"` // Column delimiter in output lines. Default: tab.

	// Display and logging.
	ColorMode ColorMode `yaml:"color"`    // Default: "auto".
	LogLevel  LogLevel  `yaml:"level"`    // Default: "info".
	LogFile   string    `yaml:"log_file"` // Optional log file path; empty means stderr only.

	// Behavior flags (CLI only, not read from YAML).
	Explain bool `yaml:"-"` // Print the winning strategy name to stderr.
}

// Default returns the configuration with all defaults applied.
func Default() Config {
	return Config{
		Delimiter: "\t",
		ColorMode: ColorAuto,
		LogLevel:  LevelInfo,
	}
}

// Load overlays cfg with values from the YAML file at path. Unset fields in
// the file keep their current values. A missing file is not an error; a
// malformed one is.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks enum fields and the delimiter. Called once after flags
// are applied.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (auto|always|never)", c.ColorMode)
	}
	switch c.LogLevel {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
	default:
		return fmt.Errorf("invalid log level %q (debug|info|warn|error)", c.LogLevel)
	}
	if c.Delimiter == "" {
		return errors.New("delimiter must not be empty")
	}
	return nil
}
