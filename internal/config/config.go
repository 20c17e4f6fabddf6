// Package config loads stubgen's run configuration from a YAML file: a
// typed struct, defaults applied where the file is silent, validation
// before the value is handed back to the caller.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is stubgen's run configuration.
type Settings struct {
	// LocalCrate names the crate being compiled, matching
	// universe.NewUniverse's localCrate argument.
	LocalCrate string `yaml:"local_crate"`

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// FailOnWarning is loaded from fail_on_warning and defaults to false.
	// No code in this module reads it: GEN001/GEN003 stay warnings
	// whatever its value.
	FailOnWarning bool `yaml:"fail_on_warning"`

	// LegacyFile is loaded from legacy_file. No code in this module reads
	// it; the named file is not opened or merged into any mapping.
	LegacyFile string `yaml:"legacy_file,omitempty"`
}

// Default returns the settings stubgen runs with when no config file is
// given.
func Default() Settings {
	return Settings{
		LocalCrate: "main",
		LogLevel:   "info",
	}
}

// Load reads and validates settings from a YAML file at path. Missing
// fields fall back to Default's values.
func Load(path string) (Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads and validates settings from r, the way Load does for a
// file on disk.
func Parse(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return Settings{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports whether s is well-formed.
func (s Settings) Validate() error {
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: invalid log_level %q", s.LogLevel)
	}
	if s.LocalCrate == "" {
		return fmt.Errorf("config: local_crate must not be empty")
	}
	return nil
}
