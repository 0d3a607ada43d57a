// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Model          string `yaml:"model"`
		URL            string `yaml:"url"`
		Prompt         string `yaml:"prompt"`
		Stream         bool   `yaml:"stream"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Verbose        bool   `yaml:"verbose"`
		Debug          bool   `yaml:"debug"`
		NoColor        bool   `yaml:"no_color"`
	} `yaml:"defaults"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	// Set default values
	config.Defaults.Model = "llama3"
	config.Defaults.URL = "http://localhost:11434"
	config.Defaults.Stream = true
	config.Defaults.TimeoutSeconds = 120

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Stream defaults to true; remember whether the file actually set it,
	// since unmarshaling zeroes absent bool fields.
	defaultStream := config.Defaults.Stream

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if !containsField(data, "defaults", "stream") {
		config.Defaults.Stream = defaultStream
	}

	if config.Defaults.TimeoutSeconds < 0 {
		return nil, fmt.Errorf("configuration validation failed: timeout_seconds must not be negative")
	}

	return config, nil
}

// LoadConfigOrDefault loads the configuration file, falling back to defaults
// on any error
func LoadConfigOrDefault(configPath string) *Config {
	if configPath == "" {
		configPath = FindConfigFile()
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		config, _ = LoadConfig("")
	}
	return config
}

// ApplyEnvironment overrides file-level settings with environment variables.
// OLLAMA_HOST follows the convention of the Ollama tooling: a bare host:port
// is promoted to an http URL.
func ApplyEnvironment(config *Config) {
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
			host = "http://" + host
		}
		config.Defaults.URL = host
	}
	if model := os.Getenv("DOCPROMPT_MODEL"); model != "" {
		config.Defaults.Model = model
	}
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	candidates := []string{
		"docprompt.yaml",
		"docprompt.yml",
		".docprompt.yaml",
		".docprompt.yml",
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}

	// Check the user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(configDir, "docprompt", "config.yaml")
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// containsField reports whether the raw YAML document actually contains the
// given nested field
func containsField(data []byte, path ...string) bool {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}

	current := doc
	for i, key := range path {
		value, ok := current[key]
		if !ok {
			return false
		}
		if i == len(path)-1 {
			return true
		}
		current, ok = value.(map[string]interface{})
		if !ok {
			return false
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
