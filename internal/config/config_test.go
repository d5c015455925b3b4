// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") returned error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("default format = %q, want text", cfg.Defaults.Format)
	}
	if cfg.Detection.ContextWindow != 30 {
		t.Errorf("default context window = %d, want 30", cfg.Detection.ContextWindow)
	}
	if cfg.Models.TimeoutMS != 2000 {
		t.Errorf("default model timeout = %d, want 2000", cfg.Models.TimeoutMS)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyredact.yaml")
	content := `
defaults:
  format: json
  no_color: true
detection:
  context_window: 50
redaction:
  tags:
    PERSON: "[REDACTED NAME]"
  keep:
    - ORGANIZATION
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Defaults.Format)
	}
	if !cfg.Defaults.NoColor {
		t.Error("no_color should be true")
	}
	if cfg.Detection.ContextWindow != 50 {
		t.Errorf("context window = %d, want 50", cfg.Detection.ContextWindow)
	}
	if got := cfg.Redaction.Tags["PERSON"]; got != "[REDACTED NAME]" {
		t.Errorf("PERSON tag = %q", got)
	}
	if len(cfg.Redaction.Keep) != 1 || cfg.Redaction.Keep[0] != "ORGANIZATION" {
		t.Errorf("keep = %v", cfg.Redaction.Keep)
	}
	// File did not set these, defaults must survive
	if cfg.Detection.MinScore != 0.4 {
		t.Errorf("min score = %v, want default 0.4", cfg.Detection.MinScore)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfigOrDefaultFallsBack(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if cfg == nil {
		t.Fatal("expected defaults, got nil")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("format = %q, want text", cfg.Defaults.Format)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad format", func(c *Config) { c.Defaults.Format = "xml" }, true},
		{"negative window", func(c *Config) { c.Detection.ContextWindow = -1 }, true},
		{"score out of range", func(c *Config) { c.Detection.MinScore = 1.5 }, true},
		{"model without tokenizer", func(c *Config) { c.Models.General.ModelPath = "m.onnx" }, true},
		{"model complete", func(c *Config) {
			c.Models.General.ModelPath = "m.onnx"
			c.Models.General.TokenizerPath = "t.json"
			c.Models.General.Labels = []string{"O", "B-PER", "I-PER"}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := LoadConfig("")
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
