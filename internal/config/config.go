// ABOUTME: Centralized configuration for the news scraper
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the scraper and analysis engine
type Config struct {
	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// OpenAI settings
	OpenAIKey   string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
	MaxRetries  int
	RetryDelay  time.Duration

	// Analysis settings
	ChunkMargin   int
	MaxConcurrent int

	// Scraping settings
	UserAgent      string
	RequestTimeout time.Duration
	RateLimitDelay time.Duration
	MaxBodySize    int64

	// Logging settings
	LogLevel  string
	LogFormat string
}

// defaultUserAgent mirrors a desktop browser; some news sites reject bare clients
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CharmHost:      getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:    getEnv("CHARM_DB", "news-scraper"),
		AutoSync:       getEnvBool("CHARM_AUTO_SYNC", true),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:          getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		Temperature:    float32(getEnvFloat("OPENAI_TEMPERATURE", 0.1)),
		MaxTokens:      getEnvInt("OPENAI_MAX_TOKENS", 2000),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 1*time.Second),
		ChunkMargin:    getEnvInt("CHUNK_MARGIN", 1000),
		MaxConcurrent:  getEnvInt("MAX_CONCURRENT_REQUESTS", 5),
		UserAgent:      getEnv("USER_AGENT", defaultUserAgent),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		RateLimitDelay: getEnvDuration("RATE_LIMIT_DELAY", 1*time.Second),
		MaxBodySize:    int64(getEnvInt("MAX_BODY_SIZE", 10*1024*1024)),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("OPENAI_TEMPERATURE must be 0-2, got %f", c.Temperature)
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("OPENAI_MAX_TOKENS must be positive, got %d", c.MaxTokens)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.ChunkMargin <= 0 {
		return fmt.Errorf("CHUNK_MARGIN must be positive, got %d", c.ChunkMargin)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("MAX_CONCURRENT_REQUESTS must be positive, got %d", c.MaxConcurrent)
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE must be positive, got %d", c.MaxBodySize)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
