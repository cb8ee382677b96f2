package suggest

import (
	"os"
	"strconv"
)

// Config holds configuration for the text-generation collaborator.
// Suggestions are disabled entirely when no API key is configured.
type Config struct {
	APIKey     string
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults and no credentials.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "https://generativelanguage.googleapis.com",
		Model:      "gemini-3-flash-preview",
		TimeoutMs:  15000,
		MaxRetries: 1,
	}
}

// LoadConfig reads suggestion configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("SITEBOARD_SUGGEST_API_KEY")
	if v := os.Getenv("SITEBOARD_SUGGEST_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SITEBOARD_SUGGEST_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SITEBOARD_SUGGEST_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("SITEBOARD_SUGGEST_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("SITEBOARD_SUGGEST_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Enabled reports whether credentials are configured.
func (c Config) Enabled() bool { return c.APIKey != "" }
