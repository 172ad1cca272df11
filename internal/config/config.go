// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config is the application configuration. All fields are optional;
// missing values use defaults or CLI flags. Environment variables
// override file values.
type Config struct {
	// Reference data
	TrendsPath   string `json:"trends,omitempty"`   // Path to a trend snapshot JSON file
	ProjectsPath string `json:"projects,omitempty"` // Path to a project catalog JSON file
	DatabaseURL  string `json:"database_url,omitempty" validate:"omitempty,url"`

	// Analysis
	TargetRole string `json:"target_role,omitempty"`

	// Server
	Port int `json:"port,omitempty" validate:"omitempty,gte=1,lte=65535"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

var validate = validator.New()

// Load reads configuration from a JSON file (when path is non-empty),
// applies environment overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("TRENDS_PATH"); v != "" {
		c.TrendsPath = v
	}
	if v := os.Getenv("PROJECTS_PATH"); v != "" {
		c.ProjectsPath = v
	}
	if v := os.Getenv("TARGET_ROLE"); v != "" {
		c.TargetRole = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return fmt.Errorf("config error: field %s failed %s validation", first.Field(), first.Tag())
	}
	return fmt.Errorf("config validation failed: %w", err)
}
