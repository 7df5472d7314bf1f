package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the demo app settings. All fields are optional; missing
// values fall back to defaults.
type Config struct {
	Addr      string `yaml:"addr"`
	LogLevel  string `yaml:"log_level"`
	BlockSize int    `yaml:"block_size"`
}

func defaultConfig() *Config {
	return &Config{
		Addr:      ":8080",
		LogLevel:  "debug",
		BlockSize: 1024,
	}
}

func (c *Config) applyDefaults() {
	def := defaultConfig()
	if c.Addr == "" {
		c.Addr = def.Addr
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.BlockSize <= 0 {
		c.BlockSize = def.BlockSize
	}
}

// loadConfig reads $EDGEGRAPH_CONFIG or ./edgegraph.yaml, returning
// defaults when neither exists.
func loadConfig() (*Config, error) {
	path := os.Getenv("EDGEGRAPH_CONFIG")
	if path == "" {
		path = "edgegraph.yaml"
	}
	return loadConfigFromPath(path)
}

func loadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}
