// Package config loads application settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Player  PlayerConfig  `yaml:"player"`
	Sim     SimConfig     `yaml:"sim"`
	Display DisplayConfig `yaml:"display"`
}

// PlayerConfig holds the shopper's identity and starting funds.
type PlayerConfig struct {
	Name            string  `yaml:"name"`
	Age             int     `yaml:"age"`
	StartingBalance float64 `yaml:"starting_balance"`
	BankBalance     float64 `yaml:"bank_balance"`
}

// SimConfig holds simulation settings.
type SimConfig struct {
	Seed int64 `yaml:"seed"`
}

// DisplayConfig holds window settings.
type DisplayConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Player.Name == "" {
		c.Player.Name = "Shopper"
	}
	if c.Player.Age == 0 {
		c.Player.Age = 18
	}
	if c.Player.StartingBalance == 0 {
		c.Player.StartingBalance = 1000
	}
	if c.Player.BankBalance == 0 {
		c.Player.BankBalance = 50000
	}
	if c.Display.Width == 0 {
		c.Display.Width = 1280
	}
	if c.Display.Height == 0 {
		c.Display.Height = 800
	}
	if c.Display.FPS == 0 {
		c.Display.FPS = 60
	}
}
