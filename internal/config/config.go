package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Input  InputConfig  `json:"input"`
	Output OutputConfig `json:"output"`
	Sizing SizingConfig `json:"sizing"`
}

// InputConfig holds configuration for input file discovery
type InputConfig struct {
	Dir       string `json:"dir"`
	Recursive bool   `json:"recursive"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	// Dir is the output directory. When empty, outputs go to a "cropped"
	// subdirectory of the input directory.
	Dir string `json:"dir"`
}

// SizingConfig holds configuration for output size resolution
type SizingConfig struct {
	Uniform bool `json:"uniform"`
	Exact   bool `json:"exact"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Input: InputConfig{
			Dir:       ".",
			Recursive: false,
		},
		Output: OutputConfig{
			Dir: "",
		},
		Sizing: SizingConfig{
			Uniform: false,
			Exact:   false,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Input.Dir == "" {
		return fmt.Errorf("input.dir cannot be empty")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "pow2crop", "config.json")
}
