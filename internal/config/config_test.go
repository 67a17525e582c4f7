// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigOrDefault_NoFile(t *testing.T) {
	// With no config file, should return defaults without error
	cfg := LoadConfigOrDefault("")
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format == "" {
		t.Error("expected default format to be set")
	}
}

func TestLoadConfigOrDefault_NonexistentFile(t *testing.T) {
	// A path that doesn't exist should fall back to defaults
	cfg := LoadConfigOrDefault("/nonexistent/path/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults)")
	}
}

func TestLoadConfigOrDefault_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: json
  language: nl
  entities: NETHERLANDS_NATIONAL_ID,EU_IBAN
  score_threshold: 0.6
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("expected format=json, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.Language != "nl" {
		t.Errorf("expected language=nl, got %q", cfg.Defaults.Language)
	}
	if cfg.Defaults.ScoreThreshold != 0.6 {
		t.Errorf("expected score_threshold=0.6, got %v", cfg.Defaults.ScoreThreshold)
	}
	// untouched fields keep their defaults
	if !cfg.Defaults.EnablePreprocessors {
		t.Error("expected enable_preprocessors to stay true when not configured")
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Should fall back to defaults, not panic
	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if cfg.Defaults.Language != "en" {
		t.Errorf("expected default language=en, got %q", cfg.Defaults.Language)
	}
	if cfg.Defaults.PatternBudgetMs != 2000 {
		t.Errorf("expected default pattern_budget_ms=2000, got %d", cfg.Defaults.PatternBudgetMs)
	}
	if !cfg.Defaults.EnablePreprocessors {
		t.Error("expected enable_preprocessors=true by default")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port=8080, got %d", cfg.Server.Port)
	}
}

func TestLoadConfig_ProfilesInitialized(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Profiles == nil {
		t.Error("expected profiles map to be initialized")
	}
	// Default ci profile should exist
	if _, ok := cfg.Profiles["ci"]; !ok {
		t.Error("expected 'ci' profile to exist in defaults")
	}
}

func TestLoadConfig_ValidationRejectsBadThreshold(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  score_threshold: 1.5
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected validation error for score_threshold > 1")
	}
}
