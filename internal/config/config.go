package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type AppConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogFile   string `yaml:"log_file"`

	// MaxGames caps how many games the registry holds at once.
	MaxGames int `yaml:"max_games"`

	Prompt string `yaml:"prompt"`
}

func Default() *AppConfig {
	return &AppConfig{
		LogLevel:  "info",
		LogFormat: "console",
		MaxGames:  64,
		Prompt:    "> ",
	}
}

// Load applies, in order: defaults, the YAML file at path (if non-empty), FALCONCHESS_* env vars.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("FALCONCHESS_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("FALCONCHESS_LOG_FORMAT")); v != "" {
		cfg.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv("FALCONCHESS_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("FALCONCHESS_MAX_GAMES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: FALCONCHESS_MAX_GAMES=%q", ErrInvalidConfig, v)
		}
		cfg.MaxGames = n
	}
	if v, ok := os.LookupEnv("FALCONCHESS_PROMPT"); ok {
		cfg.Prompt = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *AppConfig) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
	}
	if c.MaxGames <= 0 {
		return fmt.Errorf("%w: max games must be positive, got %d", ErrInvalidConfig, c.MaxGames)
	}
	return nil
}
