package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string        `toml:"environment" validate:"omitempty,oneof=development production"`
	Server      ServerConfig  `toml:"server"`
	Storage     StorageConfig `toml:"storage"`
	Logging     LoggingConfig `toml:"logging"`
	Scraper     ScraperConfig `toml:"scraper"`
	LLM         LLMConfig     `toml:"llm"`
	Usage       UsageConfig   `toml:"usage"`
}

type ServerConfig struct {
	Port int    `toml:"port" validate:"min=0,max=65535"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
	GCInterval     string `toml:"gc_interval"`      // Value-log GC interval, e.g. "5m"
}

type LoggingConfig struct {
	Level  string   `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	Output []string `toml:"output"` // "stdout", "file"
}

// ScraperConfig carries every budget and knob for the discovery pipeline.
// All limits are explicit so tests can override them per instance.
type ScraperConfig struct {
	UserAgent       string        `toml:"user_agent"`
	RequestTimeout  time.Duration `toml:"request_timeout"`
	RequestDelay    time.Duration `toml:"request_delay"` // Minimum delay between requests to the same domain
	MaxPages        int           `toml:"max_pages" validate:"min=1"`
	MaxDepth        int           `toml:"max_depth" validate:"min=0"`
	MaxPerPage      int           `toml:"max_per_page" validate:"min=1"`
	DefaultResults  int           `toml:"default_results" validate:"min=1"`
	QueueMultiplier int           `toml:"queue_multiplier" validate:"min=1"` // Frontier cap = MaxPages * QueueMultiplier
}

// LLMConfig selects and configures the personalization provider
type LLMConfig struct {
	Provider string       `toml:"provider" validate:"omitempty,oneof=gemini claude"`
	Gemini   GeminiConfig `toml:"gemini"`
	Claude   ClaudeConfig `toml:"claude"`
}

type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Timeout     string  `toml:"timeout"`
	Temperature float32 `toml:"temperature"`
}

type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Timeout     string  `toml:"timeout"`
	Temperature float32 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
}

// UsageConfig bounds daily AI calls
type UsageConfig struct {
	DailyLimit    int    `toml:"daily_limit" validate:"min=0"`
	ResetSchedule string `toml:"reset_schedule"` // Cron schedule, default midnight
}

// NewDefaultConfig returns a configuration with sensible defaults applied
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8085,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path:       "./data/peto",
				GCInterval: "5m",
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout", "file"},
		},
		Scraper: ScraperConfig{
			UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36",
			RequestTimeout:  10 * time.Second,
			RequestDelay:    500 * time.Millisecond,
			MaxPages:        4,
			MaxDepth:        2,
			MaxPerPage:      8,
			DefaultResults:  5,
			QueueMultiplier: 3,
		},
		LLM: LLMConfig{
			Provider: "gemini",
			Gemini: GeminiConfig{
				Model:       "gemini-2.0-flash",
				Timeout:     "60s",
				Temperature: 0.7,
			},
			Claude: ClaudeConfig{
				Model:       "claude-sonnet-4-20250514",
				Timeout:     "60s",
				Temperature: 0.7,
				MaxTokens:   4096,
			},
		},
		Usage: UsageConfig{
			DailyLimit:    5,
			ResetSchedule: "0 0 * * *",
		},
	}
}

// LoadFromFile loads configuration from a TOML file over the defaults, then
// applies environment variable overrides and validates the result. A missing
// file is not an error; defaults plus env apply.
func LoadFromFile(path string) (*Config, error) {
	config := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(config)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// applyEnvOverrides applies PETO_* environment variables on top of the config
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("PETO_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
		}
	}
	if v := os.Getenv("PETO_SERVER_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("PETO_LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("PETO_BADGER_PATH"); v != "" {
		config.Storage.Badger.Path = v
	}
	if v := os.Getenv("PETO_LLM_PROVIDER"); v != "" {
		config.LLM.Provider = strings.ToLower(v)
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.LLM.Gemini.APIKey = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		config.LLM.Claude.APIKey = v
	}
	if v := os.Getenv("PETO_USAGE_DAILY_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			config.Usage.DailyLimit = limit
		}
	}
}

// ApplyFlagOverrides applies command-line flag values (highest priority)
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port != 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// IsProduction returns true when running with the production environment
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
