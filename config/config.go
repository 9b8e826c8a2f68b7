package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	Port          string   `toml:"port" yaml:"port"`
	LogLevel      string   `toml:"log_level" yaml:"log_level"`
	LogFormat     string   `toml:"log_format" yaml:"log_format"`
	RedisAddr     string   `toml:"redis_addr" yaml:"redis_addr"`
	CacheTTL      Duration `toml:"cache_ttl" yaml:"cache_ttl"`
	RateLimit     int      `toml:"rate_limit" yaml:"rate_limit"`
	RateWindow    Duration `toml:"rate_window" yaml:"rate_window"`
	HistoryLimit  int      `toml:"history_limit" yaml:"history_limit"`
	Model         string   `toml:"calc_model" yaml:"calc_model"`
	StoRclTimeout Duration `toml:"sto_rcl_timeout" yaml:"sto_rcl_timeout"`
	PollInterval  Duration `toml:"poll_interval" yaml:"poll_interval"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	return Load("")
}

// Load reads the TOML or YAML file at path, if any, then lets environment
// variables override it and fills in defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := decodeFile(os.ExpandEnv(path), &cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format: %s", path)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.Model = getEnv("CALC_MODEL", c.Model)

	var err error
	if c.RateLimit, err = getEnvInt("RATE_LIMIT", c.RateLimit); err != nil {
		return err
	}
	if c.HistoryLimit, err = getEnvInt("HISTORY_LIMIT", c.HistoryLimit); err != nil {
		return err
	}
	for key, d := range map[string]*Duration{
		"CACHE_TTL":       &c.CacheTTL,
		"RATE_WINDOW":     &c.RateWindow,
		"STO_RCL_TIMEOUT": &c.StoRclTimeout,
		"POLL_INTERVAL":   &c.PollInterval,
	} {
		if err := getEnvDuration(key, d); err != nil {
			return err
		}
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
	if c.CacheTTL.Duration == 0 {
		c.CacheTTL.Duration = 10 * time.Minute
	}
	if c.RateLimit == 0 {
		c.RateLimit = 60
	}
	if c.RateWindow.Duration == 0 {
		c.RateWindow.Duration = time.Minute
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = 1000
	}
	if c.Model == "" {
		c.Model = "STD"
	}
	if c.StoRclTimeout.Duration == 0 {
		c.StoRclTimeout.Duration = 4 * time.Second
	}
	if c.PollInterval.Duration == 0 {
		c.PollInterval.Duration = 100 * time.Millisecond
	}
}

func (c *Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.RateLimit < 0 || c.HistoryLimit < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	if _, err := c.Professional(); err != nil {
		return err
	}
	if c.PollInterval.Duration <= 0 || c.PollInterval.Duration > c.StoRclTimeout.Duration {
		return fmt.Errorf("POLL_INTERVAL must be positive and below STO_RCL_TIMEOUT")
	}
	return nil
}

// Professional reports whether CALC_MODEL selects the professional model.
func (c *Config) Professional() (bool, error) {
	switch strings.ToUpper(c.Model) {
	case "STD", "STANDARD":
		return false, nil
	case "PRO", "PROFESSIONAL":
		return true, nil
	}
	return false, fmt.Errorf("CALC_MODEL must be STD or PRO, got %q", c.Model)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, d *Duration) error {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	if err := d.UnmarshalText([]byte(value)); err != nil {
		return fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return nil
}
