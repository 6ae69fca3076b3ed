package main

import (
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/ndarray/ndio"
)

// Config holds the settings read from an optional YAML file.
// Command line flags override every field.
type Config struct {
	Delimiter string  `yaml:"delimiter"`
	Precision int     `yaml:"precision"`
	LogLevel  string  `yaml:"log_level"`
	Table     bool    `yaml:"table"`
	Tolerance float64 `yaml:"tolerance"`
}

// DefaultConfig returns space-delimited, shortest-form settings.
func DefaultConfig() Config {
	return Config{
		Delimiter: " ",
		Precision: -1,
		LogLevel:  "info",
		Tolerance: 1e-9,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "could not read config")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks the delimiter, log level and tolerance.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return errors.Errorf("delimiter %q must be a single character", c.Delimiter)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	if c.Tolerance < 0 {
		return errors.Errorf("tolerance %v must not be negative", c.Tolerance)
	}
	return nil
}

// TextOptions converts the settings for ndio.
func (c Config) TextOptions(mode ndio.WriteMode) ndio.TextOptions {
	delimiter, _ := utf8.DecodeRuneInString(c.Delimiter)
	return ndio.TextOptions{
		Delimiter: delimiter,
		Mode:      mode,
		Precision: c.Precision,
	}
}
