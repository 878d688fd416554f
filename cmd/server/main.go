// ABOUTME: Main entry point for the news scraper MCP server with stdio transport
// ABOUTME: Initializes storage, scraper, analysis engine and MCP server with all tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/genai"
	"github.com/alex-peresunko/news-scraper/internal/llm"
	"github.com/alex-peresunko/news-scraper/internal/logging"
	"github.com/alex-peresunko/news-scraper/internal/mcp"
	"github.com/alex-peresunko/news-scraper/internal/scraper"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - articles will be stored without analysis")
	}

	store, err := storage.Open(&storage.Config{
		Host:     cfg.CharmHost,
		DBName:   cfg.CharmDBName,
		AutoSync: cfg.AutoSync,
	})
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	news := scraper.New(scraper.Options{
		UserAgent:      cfg.UserAgent,
		Timeout:        cfg.RequestTimeout,
		MaxBodySize:    cfg.MaxBodySize,
		MaxConcurrent:  cfg.MaxConcurrent,
		RateLimitDelay: cfg.RateLimitDelay,
	})

	// Analysis is optional - only wired when an API key is set
	var engine *genai.Engine
	if cfg.OpenAIKey != "" {
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
			log.Printf("Warning: could not initialize OpenAI client: %v", err)
		} else {
			engine = genai.NewEngine(genai.NewCostModel(), client, client, genai.EngineConfig{
				Model:         client.Model(),
				Margin:        cfg.ChunkMargin,
				MaxConcurrent: cfg.MaxConcurrent,
			})
		}
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"News Scraper",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, store, news, engine)

	// Start server with stdio transport
	log.Println("News scraper MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
