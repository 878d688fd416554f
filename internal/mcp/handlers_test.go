// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Uses in-memory fakes for the store, scraper, and analysis engine
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alex-peresunko/news-scraper/internal/models"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

type fakeStore struct {
	articles map[string]*models.Article
	order    []string
	saveErr  error
}

func (f *fakeStore) SaveArticle(article *models.Article) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.articles == nil {
		f.articles = make(map[string]*models.Article)
	}
	if _, exists := f.articles[article.ArticleID]; !exists {
		f.order = append(f.order, article.ArticleID)
	}
	f.articles[article.ArticleID] = article
	return nil
}

func (f *fakeStore) GetArticle(articleID string) (*models.Article, error) {
	article, ok := f.articles[articleID]
	if !ok {
		return nil, fmt.Errorf("article %s: %w", articleID, storage.ErrNotFound)
	}
	return article, nil
}

func (f *fakeStore) ListArticles() ([]*models.Article, error) {
	articles := make([]*models.Article, 0, len(f.order))
	for _, id := range f.order {
		articles = append(articles, f.articles[id])
	}
	return articles, nil
}

func (f *fakeStore) DeleteArticle(articleID string) error {
	if _, ok := f.articles[articleID]; !ok {
		return fmt.Errorf("article %s: %w", articleID, storage.ErrNotFound)
	}
	delete(f.articles, articleID)
	for i, id := range f.order {
		if id == articleID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeScraper struct {
	article *models.Article
	err     error
	calls   int
}

func (f *fakeScraper) ScrapeURL(ctx context.Context, rawURL string) (*models.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.article, nil
}

type fakeAnalyzer struct {
	analysis models.Analysis
	err      error
	calls    int
	gotDocID string
	gotText  string
}

func (f *fakeAnalyzer) AnalyzeDocument(ctx context.Context, docID, text string) (models.Analysis, error) {
	f.calls++
	f.gotDocID = docID
	f.gotText = text
	if f.err != nil {
		return models.Analysis{}, f.err
	}
	return f.analysis, nil
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want mcp.TextContent", result.Content[0])
	}
	return text.Text
}

func testArticle(t *testing.T, title string) *models.Article {
	t.Helper()
	article, err := models.NewArticle(
		"https://example.com/news/"+strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		title,
		strings.Repeat("Reporting on local developments continued through the afternoon. ", 5),
	)
	if err != nil {
		t.Fatalf("NewArticle() error = %v", err)
	}
	return article
}

func TestScrapeArticle_RequiresURL(t *testing.T) {
	h := &Handlers{store: &fakeStore{}, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.ScrapeArticle(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for missing url")
	}
}

func TestScrapeArticle_ScrapesAnalyzesAndStores(t *testing.T) {
	article := testArticle(t, "Port Expansion Approved")
	store := &fakeStore{}
	analyzer := &fakeAnalyzer{analysis: models.Analysis{
		Summary: "The port expansion was approved.",
		Topics:  []string{"Infrastructure"},
	}}
	h := &Handlers{store: store, scraper: &fakeScraper{article: article}, engine: analyzer}

	result, err := h.ScrapeArticle(context.Background(), callRequest(map[string]any{"url": article.URL}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	if analyzer.calls != 1 {
		t.Errorf("analyzer calls = %d, want 1", analyzer.calls)
	}
	if analyzer.gotText != article.Document() {
		t.Error("analyzer should receive the full document text")
	}

	stored, err := store.GetArticle(article.ArticleID)
	if err != nil {
		t.Fatalf("article was not stored: %v", err)
	}
	if stored.Summary != "The port expansion was approved." {
		t.Errorf("stored Summary = %q, want analysis applied", stored.Summary)
	}

	var response struct {
		ArticleID string   `json:"article_id"`
		Title     string   `json:"title"`
		Summary   string   `json:"summary"`
		Topics    []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.ArticleID != article.ArticleID || response.Title != article.Title {
		t.Errorf("response = %+v, want article identity echoed", response)
	}
}

func TestScrapeArticle_AnalyzeDisabled(t *testing.T) {
	article := testArticle(t, "Quiet News Day")
	store := &fakeStore{}
	analyzer := &fakeAnalyzer{}
	h := &Handlers{store: store, scraper: &fakeScraper{article: article}, engine: analyzer}

	result, err := h.ScrapeArticle(context.Background(), callRequest(map[string]any{
		"url":     article.URL,
		"analyze": false,
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if analyzer.calls != 0 {
		t.Errorf("analyzer calls = %d, want 0", analyzer.calls)
	}
}

func TestScrapeArticle_ScrapeFailure(t *testing.T) {
	h := &Handlers{
		store:   &fakeStore{},
		scraper: &fakeScraper{err: errors.New("HTTP 404: Not Found")},
		engine:  &fakeAnalyzer{},
	}

	result, err := h.ScrapeArticle(context.Background(), callRequest(map[string]any{"url": "https://example.com/news/gone"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for failed scrape")
	}
	if !strings.Contains(resultText(t, result), "scrape failed") {
		t.Errorf("error text = %q, want scrape failure mentioned", resultText(t, result))
	}
}

func TestAnalyzeText(t *testing.T) {
	analyzer := &fakeAnalyzer{analysis: models.Analysis{
		Summary: "Short version.",
		Topics:  []string{"Economy"},
	}}
	h := &Handlers{store: &fakeStore{}, scraper: &fakeScraper{}, engine: analyzer}

	result, err := h.AnalyzeText(context.Background(), callRequest(map[string]any{
		"text":   "A long stretch of reporting.",
		"doc_id": "doc-42",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if analyzer.gotDocID != "doc-42" {
		t.Errorf("doc ID = %q, want %q", analyzer.gotDocID, "doc-42")
	}

	var response struct {
		Summary string   `json:"summary"`
		Topics  []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.Summary != "Short version." || len(response.Topics) != 1 {
		t.Errorf("response = %+v, want analysis echoed", response)
	}
}

func TestAnalyzeText_RequiresText(t *testing.T) {
	h := &Handlers{store: &fakeStore{}, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.AnalyzeText(context.Background(), callRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for missing text")
	}
}

func TestAnalyzeText_EngineFailure(t *testing.T) {
	h := &Handlers{
		store:   &fakeStore{},
		scraper: &fakeScraper{},
		engine:  &fakeAnalyzer{err: errors.New("document text cannot be empty")},
	}

	result, err := h.AnalyzeText(context.Background(), callRequest(map[string]any{"text": "   "}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error when analysis fails")
	}
	if !strings.Contains(resultText(t, result), "analysis failed") {
		t.Errorf("error text = %q, want analysis failure mentioned", resultText(t, result))
	}
}

func TestAnalyzeText_NoEngine(t *testing.T) {
	h := &Handlers{store: &fakeStore{}, scraper: &fakeScraper{}}

	result, err := h.AnalyzeText(context.Background(), callRequest(map[string]any{"text": "Some article text."}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error when no engine is configured")
	}
	if !strings.Contains(resultText(t, result), "not available") {
		t.Errorf("error text = %q, want unavailability mentioned", resultText(t, result))
	}
}

func TestScrapeArticle_NoEngineStoresUnanalyzed(t *testing.T) {
	store := &fakeStore{}
	news := &fakeScraper{article: testArticle(t, "Council Approves Budget")}
	h := &Handlers{store: store, scraper: news}

	result, err := h.ScrapeArticle(context.Background(), callRequest(map[string]any{
		"url": "https://example.com/news/council-approves-budget",
	}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if len(store.order) != 1 {
		t.Fatalf("stored %d articles, want 1", len(store.order))
	}
	if stored := store.articles[store.order[0]]; stored.Summary != "" {
		t.Errorf("Summary = %q, want empty without an engine", stored.Summary)
	}
}

func TestGetArticle(t *testing.T) {
	article := testArticle(t, "Transit Strike Ends")
	store := &fakeStore{}
	if err := store.SaveArticle(article); err != nil {
		t.Fatalf("SaveArticle() error = %v", err)
	}
	h := &Handlers{store: store, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.GetArticle(context.Background(), callRequest(map[string]any{"article_id": article.ArticleID}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var got models.Article
	if err := json.Unmarshal([]byte(resultText(t, result)), &got); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if got.Title != "Transit Strike Ends" {
		t.Errorf("Title = %q, want %q", got.Title, "Transit Strike Ends")
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	h := &Handlers{store: &fakeStore{}, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.GetArticle(context.Background(), callRequest(map[string]any{"article_id": "missing"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unknown article")
	}
	if !strings.Contains(resultText(t, result), "not found") {
		t.Errorf("error text = %q, want not found mentioned", resultText(t, result))
	}
}

func TestListArticles_Limit(t *testing.T) {
	store := &fakeStore{}
	for _, title := range []string{"One", "Two", "Three"} {
		if err := store.SaveArticle(testArticle(t, title)); err != nil {
			t.Fatalf("SaveArticle() error = %v", err)
		}
	}
	h := &Handlers{store: store, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.ListArticles(context.Background(), callRequest(map[string]any{"limit": 2}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var response struct {
		Count    int              `json:"count"`
		Articles []map[string]any `json:"articles"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if response.Count != 2 || len(response.Articles) != 2 {
		t.Errorf("count = %d with %d entries, want 2 of each", response.Count, len(response.Articles))
	}
}

func TestDeleteArticle(t *testing.T) {
	article := testArticle(t, "Recalled Product")
	store := &fakeStore{}
	if err := store.SaveArticle(article); err != nil {
		t.Fatalf("SaveArticle() error = %v", err)
	}
	h := &Handlers{store: store, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.DeleteArticle(context.Background(), callRequest(map[string]any{"article_id": article.ArticleID}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if _, err := store.GetArticle(article.ArticleID); err == nil {
		t.Error("article should be gone after delete")
	}
}

func TestDeleteArticle_NotFound(t *testing.T) {
	h := &Handlers{store: &fakeStore{}, scraper: &fakeScraper{}, engine: &fakeAnalyzer{}}

	result, err := h.DeleteArticle(context.Background(), callRequest(map[string]any{"article_id": "missing"}))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected tool error for unknown article")
	}
	if !strings.Contains(resultText(t, result), "article not found") {
		t.Errorf("error text = %q, want not found mentioned", resultText(t, result))
	}
}
