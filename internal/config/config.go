// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. Missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Inputs
	ProfilePath string `json:"profile,omitempty" validate:"omitempty,filepath"`
	JobPath     string `json:"job,omitempty" validate:"omitempty,filepath"`

	// Layout
	PageCount     int    `json:"page_count,omitempty" validate:"omitempty,oneof=1 2"`
	SummaryTier   string `json:"summary_tier,omitempty" validate:"omitempty,oneof=short medium long"`
	MaxBullets    int    `json:"max_bullets,omitempty" validate:"omitempty,min=1,max=10"`
	MaxProjects   int    `json:"max_projects,omitempty" validate:"omitempty,min=0,max=10"`
	SkipSummary   bool   `json:"skip_summary,omitempty"`
	SkipSkills    bool   `json:"skip_skills,omitempty"`
	SkipEducation bool   `json:"skip_education,omitempty"`
	SkipCerts     bool   `json:"skip_certifications,omitempty"`

	// Behavior
	APIKey      string `json:"api_key,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
}

// Defaults for values left unset by file and flags.
const (
	DefaultPageCount   = 1
	DefaultSummaryTier = "medium"
	DefaultMaxBullets  = 4
	DefaultMaxProjects = 3
)

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyDefaults fills zero values with the documented defaults.
func (c *Config) ApplyDefaults() {
	if c.PageCount == 0 {
		c.PageCount = DefaultPageCount
	}
	if c.SummaryTier == "" {
		c.SummaryTier = DefaultSummaryTier
	}
	if c.MaxBullets == 0 {
		c.MaxBullets = DefaultMaxBullets
	}
	if c.MaxProjects == 0 {
		c.MaxProjects = DefaultMaxProjects
	}
}

// Validate checks the configuration using struct validation tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
