package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle holds simulator configuration loadable from a YAML file via
// --config. Empty string fields mean "not set in YAML"; explicit CLI
// flags always take precedence over a loaded Bundle.
type Bundle struct {
	Algorithm string `yaml:"algorithm"`
	Quantum   int    `yaml:"quantum"`
	LogLevel  string `yaml:"log_level"`
	Trace     string `yaml:"trace"`
}

// LoadBundle reads and parses a YAML configuration file.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config bundle: %w", err)
	}
	var b Bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing config bundle: %w", err)
	}
	return &b, nil
}

// Validate checks that any set fields hold recognized values.
func (b *Bundle) Validate() error {
	if b.Algorithm != "" && !IsValidAlgorithm(b.Algorithm) {
		return fmt.Errorf("unknown algorithm %q", b.Algorithm)
	}
	if b.Quantum < 0 {
		return fmt.Errorf("quantum must be non-negative, got %d", b.Quantum)
	}
	if b.LogLevel != "" {
		if _, err := parseLogLevelName(b.LogLevel); err != nil {
			return fmt.Errorf("unknown log level %q", b.LogLevel)
		}
	}
	return nil
}
