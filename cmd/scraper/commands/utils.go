// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates config, storage and engine wiring used across commands
package commands

import (
	"fmt"
	"time"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/genai"
	"github.com/alex-peresunko/news-scraper/internal/llm"
	"github.com/alex-peresunko/news-scraper/internal/logging"
	"github.com/alex-peresunko/news-scraper/internal/scraper"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

// setupLogging configures slog from config, with the global verbosity
// flags overriding the configured level.
func setupLogging(cfg *config.Config) {
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	} else if quiet {
		level = "error"
	}
	logging.Setup(level, cfg.LogFormat)
}

// storageConfig maps app config onto storage settings
func storageConfig(cfg *config.Config) *storage.Config {
	return &storage.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	}
}

// scraperOptions maps app config onto scraper settings
func scraperOptions(cfg *config.Config) scraper.Options {
	return scraper.Options{
		UserAgent:      cfg.UserAgent,
		Timeout:        cfg.RequestTimeout,
		MaxBodySize:    cfg.MaxBodySize,
		MaxConcurrent:  cfg.MaxConcurrent,
		RateLimitDelay: cfg.RateLimitDelay,
	}
}

// newAnalysisEngine wires an OpenAI client into a chunked analysis engine
func newAnalysisEngine(cfg *config.Config) (*genai.Engine, error) {
	client, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:      cfg.OpenAIKey,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		MaxRetries:  cfg.MaxRetries,
		RetryDelay:  cfg.RetryDelay,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	return genai.NewEngine(genai.NewCostModel(), client, client, genai.EngineConfig{
		Model:         client.Model(),
		Margin:        cfg.ChunkMargin,
		MaxConcurrent: cfg.MaxConcurrent,
	}), nil
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}
