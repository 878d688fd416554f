// ABOUTME: Article represents a scraped news article and its analysis outcome
// ABOUTME: Core data structure persisted by the storage layer
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alex-peresunko/news-scraper/internal/util"
)

// Article represents a single scraped news article
type Article struct {
	ArticleID       string     `json:"article_id"`
	URL             string     `json:"url"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Authors         []string   `json:"authors,omitempty"`
	PublishDate     *time.Time `json:"publish_date,omitempty"`
	ScrapedAt       time.Time  `json:"scraped_at"`
	TopImage        string     `json:"top_image,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	MetaKeywords    []string   `json:"meta_keywords,omitempty"`
	SourceDomain    string     `json:"source_domain"`
	WordCount       int        `json:"word_count"`
	Summary         string     `json:"summary,omitempty"`
	Topics          []string   `json:"topics,omitempty"`
}

// NewArticle creates a new Article with validation
func NewArticle(rawURL, title, content string) (*Article, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("article content cannot be empty")
	}
	if !util.IsValidURL(rawURL) {
		return nil, fmt.Errorf("invalid article URL: %q", rawURL)
	}
	return &Article{
		ArticleID:    generateArticleID(),
		URL:          rawURL,
		Title:        strings.TrimSpace(title),
		Content:      strings.TrimSpace(content),
		ScrapedAt:    time.Now().UTC(),
		SourceDomain: util.ExtractDomain(rawURL),
		WordCount:    len(strings.Fields(content)),
	}, nil
}

// Document returns the text handed to analysis: title and body separated by a blank line
func (a *Article) Document() string {
	if a.Title == "" {
		return a.Content
	}
	return a.Title + "\n\n" + a.Content
}

// SetAnalysis records the analysis outcome on the article
func (a *Article) SetAnalysis(result Analysis) {
	a.Summary = result.Summary
	a.Topics = result.Topics
}

// generateArticleID generates a unique article identifier
func generateArticleID() string {
	return fmt.Sprintf("article_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
}
