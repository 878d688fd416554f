// ABOUTME: MCP tool definitions and registration for the news scraper server
// ABOUTME: Defines JSON schemas for the article scraping and analysis tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alex-peresunko/news-scraper/internal/genai"
	"github.com/alex-peresunko/news-scraper/internal/scraper"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

// RegisterTools registers all MCP tools with the server. The engine may be
// nil when no OpenAI key is configured; scraping still works without it.
func RegisterTools(server *mcpserver.MCPServer, store *storage.Store, news *scraper.Scraper, engine *genai.Engine) *Handlers {
	handlers := &Handlers{
		store:   store,
		scraper: news,
	}
	if engine != nil {
		handlers.engine = engine
	}

	// 1. scrape_article - Fetch, analyze, and store a news article
	server.AddTool(mcp.Tool{
		Name:        "scrape_article",
		Description: "Scrape a news article from a URL, generate a summary with topics, and store it.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"url": map[string]interface{}{
					"type":        "string",
					"description": "Article URL to scrape",
				},
				"analyze": map[string]interface{}{
					"type":        "boolean",
					"description": "Run summary and topic analysis after scraping (default: true)",
					"default":     true,
				},
			},
			Required: []string{"url"},
		},
	}, handlers.ScrapeArticle)

	// 2. analyze_text - Summarize arbitrary text
	server.AddTool(mcp.Tool{
		Name:        "analyze_text",
		Description: "Summarize a block of text and extract its topics. Long text is split into chunks and the partial summaries are combined.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Text to analyze",
				},
				"doc_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional document ID used in logs",
				},
			},
			Required: []string{"text"},
		},
	}, handlers.AnalyzeText)

	// 3. get_article - Retrieve a stored article
	server.AddTool(mcp.Tool{
		Name:        "get_article",
		Description: "Get a stored article by its ID, including content, summary, and topics.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"article_id": map[string]interface{}{
					"type":        "string",
					"description": "Article ID to retrieve",
				},
			},
			Required: []string{"article_id"},
		},
	}, handlers.GetArticle)

	// 4. list_articles - List stored articles
	server.AddTool(mcp.Tool{
		Name:        "list_articles",
		Description: "List stored articles with their titles, URLs, and topics, newest first.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of articles to return (default: all)",
				},
			},
		},
	}, handlers.ListArticles)

	// 5. delete_article - Remove a stored article
	server.AddTool(mcp.Tool{
		Name:        "delete_article",
		Description: "Delete a stored article by its ID.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"article_id": map[string]interface{}{
					"type":        "string",
					"description": "Article ID to delete",
				},
			},
			Required: []string{"article_id"},
		},
	}, handlers.DeleteArticle)

	return handlers
}
