package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Default settings applied when the config file and environment are silent.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultWatchInterval  = 30 * time.Second
	DefaultMetricsAddr    = ":9191"

	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28

	configFileName = ".strategy-console.yaml"
)

// Config is the console's client-side configuration. Precedence, lowest to
// highest: built-in defaults, the YAML file, environment variables, flags.
type Config struct {
	// APIBaseURL overrides the backend address. Empty means resolve from
	// the environment (STRATEGY_API_URL, legacy NEXT_PUBLIC_API_URL) with
	// the documented localhost default.
	APIBaseURL     string        `yaml:"api_base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	Output OutputConfig `yaml:"output"`
	Watch  WatchConfig  `yaml:"watch"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig tunes console rendering.
type OutputConfig struct {
	NoEmojis bool `yaml:"no_emojis"`
	NoColors bool `yaml:"no_colors"`
}

// WatchConfig tunes the watch daemon.
type WatchConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MetricsAddr string        `yaml:"metrics_addr"`
}

// LogConfig tunes structured logging. File empty means stderr only.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		RequestTimeout: DefaultRequestTimeout,
		Watch: WatchConfig{
			Interval:    DefaultWatchInterval,
			MetricsAddr: DefaultMetricsAddr,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return configFileName
	}
	return filepath.Join(home, configFileName)
}

// Load reads the YAML file at path (a missing file is not an error) and then
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("STRATEGY_API_URL"); v != "" {
		c.APIBaseURL = v
	} else if v := os.Getenv("NEXT_PUBLIC_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("STRATEGY_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("STRATEGY_METRICS_ADDR"); v != "" {
		c.Watch.MetricsAddr = v
	}
}
