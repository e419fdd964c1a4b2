// Package config provides YAML-based configuration loading for LaunchCheck.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level LaunchCheck configuration, loaded from launchcheck.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Notify   NotifyConfig   `yaml:"notify"`
	Reminder ReminderConfig `yaml:"reminder"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// DatabaseConfig holds connection settings for the backing store.
// Driver is either "sqlite" (Path) or "mysql" (Host/Port/Name/User/Password).
type DatabaseConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// NotifyConfig holds delivery settings for launch notifications.
type NotifyConfig struct {
	Slack   SlackConfig   `yaml:"slack"`
	Discord DiscordConfig `yaml:"discord"`
	Command string        `yaml:"command"`
}

// SlackConfig holds Slack bot credentials and the target channel.
type SlackConfig struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`
}

// DiscordConfig holds Discord bot credentials and the target channel.
type DiscordConfig struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`
}

// ReminderConfig controls the launch-date reminder sweep.
type ReminderConfig struct {
	Cron       string `yaml:"cron"`
	WindowDays int    `yaml:"window_days"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a config with all defaults applied, suitable for running
// without a config file (sqlite in the working directory).
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "launchcheck.db"
	}
	if c.Database.Driver == "mysql" {
		if c.Database.Host == "" {
			c.Database.Host = "127.0.0.1"
		}
		if c.Database.Port == 0 {
			c.Database.Port = 3306
		}
	}
	if c.Reminder.Cron == "" {
		c.Reminder.Cron = "0 9 * * *"
	}
	if c.Reminder.WindowDays == 0 {
		c.Reminder.WindowDays = 7
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			errs = append(errs, "database.path is required for sqlite")
		}
	case "mysql":
		if c.Database.Name == "" {
			errs = append(errs, "database.name is required for mysql")
		}
	default:
		errs = append(errs, fmt.Sprintf("database.driver must be sqlite or mysql, got %q", c.Database.Driver))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if c.Reminder.WindowDays < 0 {
		errs = append(errs, "reminder.window_days must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
