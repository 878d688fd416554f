// ABOUTME: MCP tool handler implementations for the news scraper server
// ABOUTME: Handlers report failures as tool errors rather than protocol errors
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alex-peresunko/news-scraper/internal/models"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

// articleStore is the storage surface the handlers depend on
type articleStore interface {
	SaveArticle(article *models.Article) error
	GetArticle(articleID string) (*models.Article, error)
	ListArticles() ([]*models.Article, error)
	DeleteArticle(articleID string) error
}

// articleScraper fetches and extracts a single article
type articleScraper interface {
	ScrapeURL(ctx context.Context, rawURL string) (*models.Article, error)
}

// documentAnalyzer produces a summary and topics for a document
type documentAnalyzer interface {
	AnalyzeDocument(ctx context.Context, docID, text string) (models.Analysis, error)
}

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	store   articleStore
	scraper articleScraper
	engine  documentAnalyzer
}

// ScrapeArticle handles the scrape_article tool
func (h *Handlers) ScrapeArticle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawURL, err := request.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError("url argument is required and must be a string"), nil
	}

	analyze := request.GetBool("analyze", true)

	article, err := h.scraper.ScrapeURL(ctx, rawURL)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scrape failed: %v", err)), nil
	}

	if analyze && h.engine != nil {
		analysis, err := h.engine.AnalyzeDocument(ctx, article.ArticleID, article.Document())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		article.SetAnalysis(analysis)
	}

	if err := h.store.SaveArticle(article); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to store article: %v", err)), nil
	}

	response := map[string]interface{}{
		"article_id": article.ArticleID,
		"url":        article.URL,
		"title":      article.Title,
		"word_count": article.WordCount,
		"summary":    article.Summary,
		"topics":     article.Topics,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// AnalyzeText handles the analyze_text tool
func (h *Handlers) AnalyzeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	if h.engine == nil {
		return mcp.NewToolResultError("analysis is not available: OPENAI_API_KEY is not configured"), nil
	}

	docID := request.GetString("doc_id", "")

	analysis, err := h.engine.AnalyzeDocument(ctx, docID, text)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"summary": analysis.Summary,
		"topics":  analysis.Topics,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetArticle handles the get_article tool
func (h *Handlers) GetArticle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	articleID, err := request.RequireString("article_id")
	if err != nil {
		return mcp.NewToolResultError("article_id argument is required and must be a string"), nil
	}

	article, err := h.store.GetArticle(articleID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get article: %v", err)), nil
	}

	responseJSON, err := json.Marshal(article)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ListArticles handles the list_articles tool
func (h *Handlers) ListArticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)

	articles, err := h.store.ListArticles()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list articles: %v", err)), nil
	}

	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	entries := make([]map[string]interface{}, 0, len(articles))
	for _, article := range articles {
		entries = append(entries, map[string]interface{}{
			"article_id": article.ArticleID,
			"url":        article.URL,
			"title":      article.Title,
			"word_count": article.WordCount,
			"topics":     article.Topics,
			"scraped_at": article.ScrapedAt.Format(time.RFC3339),
		})
	}

	response := map[string]interface{}{
		"count":    len(entries),
		"articles": entries,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}

// DeleteArticle handles the delete_article tool
func (h *Handlers) DeleteArticle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	articleID, err := request.RequireString("article_id")
	if err != nil {
		return mcp.NewToolResultError("article_id argument is required and must be a string"), nil
	}

	if err := h.store.DeleteArticle(articleID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("article not found: %s", articleID)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to delete article: %v", err)), nil
	}

	response := map[string]interface{}{
		"success":    true,
		"article_id": articleID,
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}

	return mcp.NewToolResultText(string(responseJSON)), nil
}
