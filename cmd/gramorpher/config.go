package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a YAML config file.
type Config struct {
	Trace            string `yaml:"trace"`
	MaxDepth         int    `yaml:"max-depth"`
	MaxIterations    int    `yaml:"max-iterations"`
	Corpus           string `yaml:"corpus"`
	PanicOnExhausted bool   `yaml:"panic-on-exhausted"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// --- Config as global configuration ----------------------------------------

// A Config serves as the global configuration (package gconf), mapping its
// fields to the property keys the library packages read.
var _ schuko.Configuration = &Config{}

func (c *Config) property(key string) (interface{}, bool) {
	switch key {
	case "tracing.adapter":
		return "go", true
	case "generator-max-depth":
		return c.MaxDepth, c.MaxDepth > 0
	case "generator-max-iterations":
		return c.MaxIterations, c.MaxIterations > 0
	case "panic-on-generation-exhausted":
		return c.PanicOnExhausted, c.PanicOnExhausted
	}
	return nil, false
}

// InitDefaults is part of interface schuko.Configuration.
func (c *Config) InitDefaults() {}

// IsSet is part of interface schuko.Configuration.
func (c *Config) IsSet(key string) bool {
	_, ok := c.property(key)
	return ok
}

// GetString is part of interface schuko.Configuration.
func (c *Config) GetString(key string) string {
	if v, ok := c.property(key); ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

// GetInt is part of interface schuko.Configuration.
func (c *Config) GetInt(key string) int {
	if v, ok := c.property(key); ok {
		if n, isint := v.(int); isint {
			return n
		}
	}
	return 0
}

// GetBool is part of interface schuko.Configuration.
func (c *Config) GetBool(key string) bool {
	if v, ok := c.property(key); ok {
		if b, isbool := v.(bool); isbool {
			return b
		}
	}
	return false
}

// IsInteractive is part of interface schuko.Configuration.
func (c *Config) IsInteractive() bool { return false }
