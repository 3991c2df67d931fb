// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variables read by ApplyEnv. A .env file in the working directory
// is loaded into the environment before they are read.
const (
	EnvSeed      = "HUMANIZE_SEED"
	EnvSegmenter = "HUMANIZE_SEGMENTER"
)

// DefaultSegmenter is used when no source names one.
const DefaultSegmenter = "unicode"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; explicit CLI flags always win.
type Config struct {
	Seed      *int64 `json:"seed,omitempty"`                                               // Fixed random seed for reproducible output
	Segmenter string `json:"segmenter,omitempty" validate:"omitempty,oneof=unicode regex"` // Sentence segmenter name
	HTML      bool   `json:"html,omitempty"`                                               // Treat input as HTML and extract its text
	Verbose   bool   `json:"verbose,omitempty"`                                            // Debug logging on stderr
	Report    bool   `json:"report,omitempty"`                                             // Boxed sentence statistics on stderr
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &Error{Message: "config path is empty"}
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("failed to read config file %s", path), Cause: err}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Message: "failed to parse config JSON", Cause: err}
	}

	return &cfg, nil
}

// ApplyEnv overlays environment values onto the config. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if raw, ok := lookup(EnvSeed); ok && strings.TrimSpace(raw) != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return &Error{Field: "seed", Message: fmt.Sprintf("%s must be an integer", EnvSeed), Cause: err}
		}
		c.Seed = &seed
	}

	if raw, ok := lookup(EnvSegmenter); ok && strings.TrimSpace(raw) != "" {
		c.Segmenter = strings.TrimSpace(raw)
	}

	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &Error{
			Field:   strings.ToLower(fe.Field()),
			Message: fmt.Sprintf("%q fails %s=%s", fmt.Sprint(fe.Value()), fe.Tag(), fe.Param()),
			Cause:   err,
		}
	}
	return &Error{Message: "invalid configuration", Cause: err}
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// Bool fields cannot distinguish unset from false, so they are not merged.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Seed == nil {
		result.Seed = defaults.Seed
	}
	if result.Segmenter == "" {
		result.Segmenter = defaults.Segmenter
	}
	if result.Segmenter == "" {
		result.Segmenter = DefaultSegmenter
	}

	return result
}
