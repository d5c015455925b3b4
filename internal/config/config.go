// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the YAML configuration controlling detection,
// redaction tags and the optional model backends.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ModelConfig describes one ONNX model slot.
type ModelConfig struct {
	ModelPath     string   `yaml:"model_path"`
	TokenizerPath string   `yaml:"tokenizer_path"`
	Labels        []string `yaml:"labels"`
	MaxSeqLen     int      `yaml:"max_seq_len"`
	Score         float64  `yaml:"score"`
}

// Config is the top-level configuration file structure
type Config struct {
	// Defaults controls output behavior shared by CLI and server
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Detection tunes the recognizers and validators
	Detection struct {
		ContextWindow   int      `yaml:"context_window"`
		MinScore        float64  `yaml:"min_score"`
		ExtraPNRWords   []string `yaml:"extra_pnr_blacklist"`
		ExtraPNRContext []string `yaml:"extra_pnr_context"`
	} `yaml:"detection"`

	// Redaction overrides the replacement tag per entity kind and lists
	// kinds that should be kept verbatim.
	Redaction struct {
		Tags map[string]string `yaml:"tags"`
		Keep []string          `yaml:"keep"`
	} `yaml:"redaction"`

	// Models configures the statistical detectors. Both slots are optional;
	// missing model files downgrade to pattern-only detection.
	Models struct {
		OrtLibraryPath string      `yaml:"ort_library_path"`
		TimeoutMS      int         `yaml:"timeout_ms"`
		General        ModelConfig `yaml:"general"`
		Chinese        ModelConfig `yaml:"chinese"`
	} `yaml:"models"`

	// Server configures the HTTP mode
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
}

// LoadConfig loads a configuration file, applying defaults for anything the
// file leaves out. An empty path returns pure defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Default values
	config.Defaults.Format = "text"
	config.Detection.ContextWindow = 30
	config.Detection.MinScore = 0.4
	config.Models.TimeoutMS = 2000
	config.Server.Addr = ":8080"

	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// FindConfigFile returns the first configuration file found in the standard
// locations, or empty when none exists.
func FindConfigFile() string {
	// Current directory first
	if fileExists("skyredact.yaml") {
		return "skyredact.yaml"
	}
	if fileExists("skyredact.yml") {
		return "skyredact.yml"
	}

	// Environment override
	if env := os.Getenv("SKYREDACT_CONFIG"); env != "" && fileExists(env) {
		return env
	}

	// User config directory
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".config", "skyredact", "config.yaml")
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadConfigOrDefault loads the given file, falling back to the discovered
// file and finally to defaults. Callers should not crash on a missing or
// bad config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ValidateConfig rejects values the engine cannot work with.
func ValidateConfig(config *Config) error {
	switch config.Defaults.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown output format %q", config.Defaults.Format)
	}
	if config.Detection.ContextWindow < 0 {
		return fmt.Errorf("detection.context_window must not be negative")
	}
	if config.Detection.MinScore < 0 || config.Detection.MinScore > 1 {
		return fmt.Errorf("detection.min_score must be between 0 and 1")
	}
	if config.Models.TimeoutMS < 0 {
		return fmt.Errorf("models.timeout_ms must not be negative")
	}
	for name, m := range map[string]ModelConfig{"general": config.Models.General, "chinese": config.Models.Chinese} {
		if m.ModelPath != "" && m.TokenizerPath == "" {
			return fmt.Errorf("models.%s: model_path set without tokenizer_path", name)
		}
		if m.ModelPath != "" && len(m.Labels) == 0 {
			return fmt.Errorf("models.%s: model_path set without labels", name)
		}
	}
	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
