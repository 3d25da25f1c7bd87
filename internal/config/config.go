// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "LINEMARK"

// LogFormat selects the log encoding.
type LogFormat string

// Log formats.
const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// EnvConfig holds all environment-based configuration.
// Field names map to environment variables with the LINEMARK_ prefix.
type EnvConfig struct {
	// Clipboard selects the clipboard backend: auto, system, osc52 or none.
	// Env: LINEMARK_CLIPBOARD (default: auto)
	Clipboard string `envconfig:"CLIPBOARD" default:"auto"`

	// LogFile receives logs. The TUI owns the terminal, so logs are
	// discarded when empty.
	// Env: LINEMARK_LOG_FILE
	LogFile string `envconfig:"LOG_FILE"`

	// LogLevel is the log verbosity level.
	// Env: LINEMARK_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (text or json).
	// Env: LINEMARK_LOG_FORMAT (default: text)
	LogFormat LogFormat `envconfig:"LOG_FORMAT" default:"text"`

	// SessionDir stores one session file per annotated source.
	// Env: LINEMARK_SESSION_DIR
	SessionDir string `envconfig:"SESSION_DIR"`

	// Theme is the chroma style used for syntax highlighting.
	// Env: LINEMARK_THEME (default: monokai)
	Theme string `envconfig:"THEME" default:"monokai"`
}

// Default returns the configuration used when nothing is set.
func Default() EnvConfig {
	return EnvConfig{
		Clipboard: "auto",
		LogLevel:  "INFO",
		LogFormat: LogFormatText,
		Theme:     "monokai",
	}
}

// LoadFromEnv reads the configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("read environment: %w", err)
	}

	return cfg, cfg.Validate()
}

// LoadDotEnv loads environment variables from a .env file.
// If the file does not exist, it silently returns nil.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// Load reads an optional .env file, then the environment. Variables already
// set in the environment win over the file.
func Load(envPath string) (EnvConfig, error) {
	if err := LoadDotEnv(envPath); err != nil {
		return EnvConfig{}, fmt.Errorf("load %s: %w", envPath, err)
	}

	return LoadFromEnv()
}

// Validate checks enumerated settings.
func (c EnvConfig) Validate() error {
	switch LogFormat(strings.ToLower(string(c.LogFormat))) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid %s_LOG_FORMAT %q", EnvPrefix, c.LogFormat)
	}

	switch strings.ToLower(c.Clipboard) {
	case "auto", "system", "osc52", "none":
	default:
		return fmt.Errorf("invalid %s_CLIPBOARD %q", EnvPrefix, c.Clipboard)
	}

	return nil
}
