// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the matcher configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults, environment
// variables, or must be provided via CLI flags.
type Config struct {
	// Paths
	JD      string   `json:"jd,omitempty"`      // Path to job description JSON file
	Resume  string   `json:"resume,omitempty"`  // Path to resume JSON file
	Resumes []string `json:"resumes,omitempty"` // Paths to resume JSON files for ranking

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the semantic oracle
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP server port
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Used when no config
// file is given; godotenv loads .env into the environment before this runs.
func FromEnv() Config {
	cfg := Config{
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Required-field checks happen later, after CLI flag merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if c.JD != "" {
		if _, err := os.Stat(c.JD); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JD)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Used to layer config file values under CLI flags and env values
// under the config file.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JD == "" {
		result.JD = defaults.JD
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if len(result.Resumes) == 0 {
		result.Resumes = defaults.Resumes
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		if defaults.Port != 0 {
			result.Port = defaults.Port
		} else {
			result.Port = 8080
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
