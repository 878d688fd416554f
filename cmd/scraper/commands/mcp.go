// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to scrape and query articles via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/genai"
	"github.com/alex-peresunko/news-scraper/internal/mcp"
	"github.com/alex-peresunko/news-scraper/internal/scraper"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the news scraper as an MCP (Model Context Protocol) server,
enabling LLM agents like Claude to scrape, analyze and query stored
articles via stdio.

Configure in Claude Desktop's config file to enable the tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  scraper mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "news-scraper": {
  #       "command": "scraper",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg)

	if cfg.OpenAIKey == "" {
		log.Println("Warning: OPENAI_API_KEY not set - articles will be stored without analysis")
	}

	store, err := storage.Open(storageConfig(cfg))
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	news := scraper.New(scraperOptions(cfg))

	// Analysis is optional - only wired when an API key is set
	var engine *genai.Engine
	if cfg.OpenAIKey != "" {
		engine, err = newAnalysisEngine(cfg)
		if err != nil {
			log.Printf("Warning: could not initialize analysis engine: %v", err)
			engine = nil
		} else if verbose {
			log.Println("OpenAI analysis engine initialized")
		}
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"News Scraper",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, store, news, engine)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("News scraper MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, gracefully shutting down...")
		}

		// Close storage (flushes pending writes, closes DB)
		if err := store.Close(); err != nil {
			log.Printf("Warning: Error closing storage: %v", err)
		}

		if !quiet {
			log.Println("Shutdown complete")
		}

	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
