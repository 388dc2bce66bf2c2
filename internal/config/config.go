// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	Server ServerConfig

	// AI completion service configuration
	AI AIConfig

	// Fetch holds URL extraction settings.
	Fetch FetchConfig

	// Upload holds file upload settings.
	Upload UploadConfig

	// RateLimit gates total inbound request volume.
	RateLimit RateLimitConfig

	// Log holds logging settings.
	Log LogConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Port is the HTTP port to listen on.
	Port string

	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration

	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
}

// AIConfig contains completion service settings. The gateway is the only
// consumer; values are immutable after startup.
type AIConfig struct {
	// APIKey is the authentication key for the AI provider.
	APIKey string

	// BaseURL is the base URL of the OpenAI-compatible API.
	BaseURL string

	// Model is the model id sent with every completion.
	Model string

	// Timeout is the maximum time to wait for one completion call.
	Timeout time.Duration

	// MaxTokens is the default token ceiling for completions.
	MaxTokens int

	// Temperature is the default sampling temperature.
	Temperature float64

	// MaxRetries is the number of retries on transient failures.
	MaxRetries int

	// MockMode enables canned responses for local work without API calls.
	MockMode bool
}

// FetchConfig contains URL extraction settings.
type FetchConfig struct {
	// Timeout is the hard deadline for fetching a page.
	Timeout time.Duration
}

// UploadConfig contains file upload settings.
type UploadConfig struct {
	// MaxSize is the maximum accepted upload size in bytes.
	MaxSize int64
}

// RateLimitConfig contains inbound rate limiting settings.
type RateLimitConfig struct {
	// Window is the measurement window.
	Window time.Duration

	// MaxRequests is the number of requests allowed per window.
	MaxRequests int
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level overrides the mode-default log level when set ("debug",
	// "info", "warn", "error").
	Level string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 120*time.Second),
		},
		AI: AIConfig{
			APIKey:      os.Getenv("AI_API_KEY"),
			BaseURL:     getEnvOrDefault("AI_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:       getEnvOrDefault("AI_MODEL", "openai/gpt-3.5-turbo"),
			Timeout:     getDurationOrDefault("AI_TIMEOUT", 60*time.Second),
			MaxTokens:   getIntOrDefault("AI_MAX_TOKENS", 2000),
			Temperature: getFloatOrDefault("AI_TEMPERATURE", 0.3),
			MaxRetries:  getIntOrDefault("AI_MAX_RETRIES", 2),
			MockMode:    getBoolOrDefault("AI_MOCK_MODE", false),
		},
		Fetch: FetchConfig{
			Timeout: getDurationOrDefault("FETCH_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			MaxSize: int64(getIntOrDefault("MAX_UPLOAD_SIZE", 10<<20)),
		},
		RateLimit: RateLimitConfig{
			Window:      getDurationOrDefault("RATE_LIMIT_WINDOW", 15*time.Minute),
			MaxRequests: getIntOrDefault("RATE_LIMIT_MAX_REQUESTS", 100),
		},
		Log: LogConfig{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid. A missing API key fails
// startup unless mock mode is enabled; a warning at boot followed by 401s
// on every request helps nobody.
func (c *Config) Validate() error {
	if !c.AI.MockMode && c.AI.APIKey == "" {
		return fmt.Errorf("%w: AI_API_KEY is required when not in mock mode", domain.ErrInvalidConfig)
	}

	if c.AI.Timeout < time.Second {
		return fmt.Errorf("%w: AI_TIMEOUT must be at least 1 second", domain.ErrInvalidConfig)
	}

	if c.AI.MaxTokens < 100 {
		return fmt.Errorf("%w: AI_MAX_TOKENS must be at least 100", domain.ErrInvalidConfig)
	}

	if c.AI.Temperature < 0 || c.AI.Temperature > 2 {
		return fmt.Errorf("%w: AI_TEMPERATURE must be between 0 and 2", domain.ErrInvalidConfig)
	}

	if c.Fetch.Timeout < time.Second {
		return fmt.Errorf("%w: FETCH_TIMEOUT must be at least 1 second", domain.ErrInvalidConfig)
	}

	if c.RateLimit.MaxRequests < 1 {
		return fmt.Errorf("%w: RATE_LIMIT_MAX_REQUESTS must be at least 1", domain.ErrInvalidConfig)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getBoolOrDefault(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func getFloatOrDefault(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getDurationOrDefault(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		// Try parsing as seconds first (e.g., "15")
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
		// Try parsing as duration string (e.g., "15s", "1m")
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
