package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration values
type Config struct {
	Port        string
	GinMode     string
	LogLevel    string
	Language    string
	MessagesDir string

	// APIEndpoint is the GraphQL endpoint of the customer API.
	APIEndpoint string
	APITimeout  time.Duration

	// ResetDelay is how long a success banner stays up before the form is
	// cleared and the entry screen shown.
	ResetDelay time.Duration
	SessionTTL time.Duration
}

// fileConfig mirrors Config in the optional TOML file. Durations are
// strings such as "10s".
type fileConfig struct {
	Port        string `toml:"port"`
	GinMode     string `toml:"gin_mode"`
	LogLevel    string `toml:"log_level"`
	Language    string `toml:"language"`
	MessagesDir string `toml:"messages_dir"`
	APIEndpoint string `toml:"api_endpoint"`
	APITimeout  string `toml:"api_timeout"`
	ResetDelay  string `toml:"reset_delay"`
	SessionTTL  string `toml:"session_ttl"`
}

func defaults() fileConfig {
	return fileConfig{
		Port:        "8080",
		GinMode:     "debug",
		LogLevel:    "info",
		Language:    "en",
		APIEndpoint: "http://localhost:8080/graphql",
		APITimeout:  "10s",
		ResetDelay:  "3s",
		SessionTTL:  "30m",
	}
}

// LoadConfig reads configuration from the TOML file named by CONFIG_FILE, if
// any, then from environment variables, which take precedence.
func LoadConfig() (*Config, error) {
	fc := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	override(&fc.Port, "PORT")
	override(&fc.GinMode, "GIN_MODE")
	override(&fc.LogLevel, "LOG_LEVEL")
	override(&fc.Language, "LANGUAGE")
	override(&fc.MessagesDir, "MESSAGES_DIR")
	override(&fc.APIEndpoint, "API_ENDPOINT")
	override(&fc.APITimeout, "API_TIMEOUT")
	override(&fc.ResetDelay, "RESET_DELAY")
	override(&fc.SessionTTL, "SESSION_TTL")

	cfg := &Config{
		Port:        fc.Port,
		GinMode:     fc.GinMode,
		LogLevel:    fc.LogLevel,
		Language:    fc.Language,
		MessagesDir: fc.MessagesDir,
		APIEndpoint: fc.APIEndpoint,
	}

	var err error
	if cfg.APITimeout, err = parseDuration("API_TIMEOUT", fc.APITimeout); err != nil {
		return nil, err
	}
	if cfg.ResetDelay, err = parseDuration("RESET_DELAY", fc.ResetDelay); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", fc.SessionTTL); err != nil {
		return nil, err
	}

	if cfg.APIEndpoint == "" {
		return nil, fmt.Errorf("API_ENDPOINT is required")
	}
	return cfg, nil
}

func override(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func parseDuration(key, raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, raw)
	}
	return d, nil
}
