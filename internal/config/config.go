// Package config loads optional per-run report settings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/feasched/mdreport/internal/fileutil"
	"github.com/feasched/mdreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigParse  = errors.New("failed to parse report config")
	ErrFieldTooLong = errors.New("field exceeds maximum length")
	ErrOutputPath   = errors.New("output must be a bare file name")
)

// FileName is the optional config looked up inside the source directory.
const FileName = "report.yaml"

// Field length limits.
const (
	MaxTitleLength  = 100
	MaxMarkerLength = 50
	MaxOutputLength = 100
	MaxDateLength   = 30
)

// Config holds document-level overrides. Empty fields fall back to the
// built-in defaults, so an absent or empty file changes nothing.
type Config struct {
	Title     string `yaml:"title"`     // running header title
	Marker    string `yaml:"marker"`    // confidentiality marker, e.g. "CONFIDENTIAL"
	Output    string `yaml:"output"`    // artifact file name inside the source dir
	Generated string `yaml:"generated"` // notice date line; "auto" = today
}

// Validate checks field lengths and that the output name stays inside the
// source directory.
func (c *Config) Validate() error {
	if err := validateFieldLength("title", c.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("marker", c.Marker, MaxMarkerLength); err != nil {
		return err
	}
	if err := validateFieldLength("output", c.Output, MaxOutputLength); err != nil {
		return err
	}
	if err := validateFieldLength("generated", c.Generated, MaxDateLength); err != nil {
		return err
	}
	if !fileutil.IsBareName(c.Output) {
		return fmt.Errorf("%w: %q", ErrOutputPath, c.Output)
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Load reads the config at path. A missing file is not an error: it returns
// an empty Config, meaning the built-in defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is sourceDir + fixed FileName
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
