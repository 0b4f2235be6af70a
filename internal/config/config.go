package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application's configuration.
type Config struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	JWT struct {
		Secret          string `yaml:"secret"`
		Issuer          string `yaml:"issuer"`
		Audience        string `yaml:"audience"`
		LifetimeMinutes int    `yaml:"token_lifetime_minutes"`
	} `yaml:"jwt"`
}

// LoadConfig reads configuration from the specified YAML file.
// A missing JWT secret or database URL is a startup error, not something
// handlers get to discover later.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("jwt signing secret is not configured")
	}
	if c.Database.URL == "" {
		return errors.New("database url is not configured")
	}
	if c.JWT.LifetimeMinutes == 0 {
		c.JWT.LifetimeMinutes = 30
	}
	return nil
}

// TokenLifetime returns the configured token validity window.
func (c *Config) TokenLifetime() time.Duration {
	return time.Duration(c.JWT.LifetimeMinutes) * time.Minute
}
