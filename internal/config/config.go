// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunable analysis options shared by the defaults block
// and profiles.
type Settings struct {
	Format              string  `yaml:"format"`
	Language            string  `yaml:"language"`
	Entities            string  `yaml:"entities"`
	ScoreThreshold      float64 `yaml:"score_threshold"`
	Verbose             bool    `yaml:"verbose"`
	Debug               bool    `yaml:"debug"`
	NoColor             bool    `yaml:"no_color"`
	ShowMatch           bool    `yaml:"show_match"`
	EnablePreprocessors bool    `yaml:"enable_preprocessors"`
	PatternBudgetMs     int     `yaml:"pattern_budget_ms"`
}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Server settings for web mode
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"server"`

	// Preprocessor configurations
	Preprocessors struct {
		TextExtraction struct {
			Enabled bool     `yaml:"enabled"`
			Types   []string `yaml:"types"`
		} `yaml:"text_extraction"`
	} `yaml:"preprocessors"`

	// Profiles for different analysis scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile represents an analysis profile with specific settings
type Profile struct {
	Settings    `yaml:",inline"`
	Description string `yaml:"description"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{
		Profiles: make(map[string]Profile),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Defaults.Language = "en"
	config.Defaults.Entities = "all"
	config.Defaults.ScoreThreshold = 0
	config.Defaults.EnablePreprocessors = true
	config.Defaults.PatternBudgetMs = 2000

	config.Server.Host = "localhost"
	config.Server.Port = 8080

	config.Preprocessors.TextExtraction.Enabled = true
	config.Preprocessors.TextExtraction.Types = []string{"pdf"}

	// Default CI profile: machine output, only high-signal results
	config.Profiles["ci"] = Profile{
		Settings: Settings{
			Format:              "json",
			Language:            "en",
			Entities:            "all",
			ScoreThreshold:      0.5,
			NoColor:             true,
			EnablePreprocessors: true,
			PatternBudgetMs:     2000,
		},
		Description: "Optimized for CI pipelines with JSON output and a medium score floor",
	}

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	// Read config file
	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Store default values before unmarshaling
	defaultEnablePreprocessors := config.Defaults.EnablePreprocessors
	defaultTextExtractionEnabled := config.Preprocessors.TextExtraction.Enabled

	// Parse YAML
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Restore defaults if not explicitly set in config file
	// This handles the case where YAML unmarshaling sets bool fields to false
	// when they're not present in the config file
	if !containsField(data, "defaults", "enable_preprocessors") {
		config.Defaults.EnablePreprocessors = defaultEnablePreprocessors
	}
	if !containsField(data, "preprocessors", "text_extraction", "enabled") {
		config.Preprocessors.TextExtraction.Enabled = defaultTextExtractionEnabled
	}

	// Validate the configuration
	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first - prioritize config.yaml
	if fileExists("config.yaml") {
		return "config.yaml"
	}
	if fileExists("idscan.yaml") {
		return "idscan.yaml"
	}
	if fileExists("idscan.yml") {
		return "idscan.yml"
	}

	// Project-specific config
	if fileExists(".idscan.yaml") {
		return ".idscan.yaml"
	}
	if fileExists(".idscan.yml") {
		return ".idscan.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Legacy location in home directory
	homeConfig := filepath.Join(home, ".idscan.yaml")
	if fileExists(homeConfig) {
		return homeConfig
	}

	// XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "idscan", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "idscan", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the names of all configured profiles
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// containsField checks if a nested field exists in the YAML data
func containsField(data []byte, path ...string) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(data, &yamlData)
	if err != nil {
		return false
	}

	current := yamlData
	for i, key := range path {
		if i == len(path)-1 {
			// Last key - check if it exists
			_, exists := current[key]
			return exists
		}
		// Intermediate key - navigate deeper
		if next, ok := current[key].(map[string]interface{}); ok {
			current = next
		} else {
			return false
		}
	}
	return false
}

// ValidateConfig checks configured values against their allowed ranges
func ValidateConfig(config *Config) error {
	if err := validateSettings("defaults", config.Defaults); err != nil {
		return err
	}
	for name, profile := range config.Profiles {
		if err := validateSettings("profile "+name, profile.Settings); err != nil {
			return err
		}
	}
	if config.Server.Port < 0 || config.Server.Port > 65535 {
		return fmt.Errorf("server port %d is out of range", config.Server.Port)
	}
	return nil
}

func validateSettings(section string, s Settings) error {
	if s.ScoreThreshold < 0 || s.ScoreThreshold > 1 {
		return fmt.Errorf("%s: score_threshold %v must be between 0.0 and 1.0", section, s.ScoreThreshold)
	}
	if s.PatternBudgetMs < 0 {
		return fmt.Errorf("%s: pattern_budget_ms must not be negative", section)
	}
	return nil
}

// LoadConfigOrDefault loads configuration from configFile (or searches standard locations
// when configFile is empty). If loading fails, it returns a default configuration.
// This is the shared helper used by both the CLI and the web server.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		// Fall back to defaults — callers should not crash on a missing/bad config file.
		cfg, _ = LoadConfig("")
	}
	return cfg
}
