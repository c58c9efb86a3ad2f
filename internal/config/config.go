// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultLookupURL is the reference page about waiting between meat and milk.
const DefaultLookupURL = "https://halachipedia.com/index.php?title=Waiting_between_Meat_and_Milk"

type Config struct {
	Database      DatabaseConfig      `yaml:"database"`
	Log           LogConfig           `yaml:"log"`
	Notifications NotificationsConfig `yaml:"notifications"`
	UI            UIConfig            `yaml:"ui"`
	Locale        string              `yaml:"locale"` // empty means LC_ALL / LC_MESSAGES / LANG
	LookupURL     string              `yaml:"lookup_url"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"` // debug, info, warn, error
}

type NotificationsConfig struct {
	Desktop   bool            `yaml:"desktop"`
	Icon      string          `yaml:"icon"`
	Vibration []time.Duration `yaml:"vibration"`
	BannerTTL time.Duration   `yaml:"banner_ttl"`
}

type UIConfig struct {
	ReduceMotion bool `yaml:"reduce_motion"` // no headline animation on the interactive screen
}

// Dir returns ~/.meatdairy
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".meatdairy"), nil
}

// DefaultPath returns ~/.meatdairy/config.yaml
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in settings rooted at dir
func Default(dir string) *Config {
	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(dir, "meatdairy.db"),
		},
		Log: LogConfig{
			Path:  filepath.Join(dir, "meatdairy.log"),
			Level: "info",
		},
		Notifications: NotificationsConfig{
			Desktop:   true,
			Vibration: []time.Duration{0, 3 * time.Second},
			BannerTTL: 30 * time.Second,
		},
		LookupURL: DefaultLookupURL,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	dir := filepath.Dir(path)
	if path == "" {
		var err error
		if dir, err = Dir(); err != nil {
			return nil, fmt.Errorf("failed to find config directory: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}

	cfg := Default(dir)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config to path, creating the directory if needed
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks values yaml cannot check for us
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return errors.New("database.path must not be empty")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	for _, d := range c.Notifications.Vibration {
		if d < 0 {
			return errors.New("notifications.vibration must not contain negative durations")
		}
	}
	if c.LookupURL == "" {
		c.LookupURL = DefaultLookupURL
	}
	return nil
}

// ParseLevel maps a level name onto slog
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}
