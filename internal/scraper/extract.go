// ABOUTME: Readability-based article extraction from fetched HTML
// ABOUTME: Maps extracted fields onto the Article model and rejects empty pages
package scraper

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/alex-peresunko/news-scraper/internal/models"
	"github.com/alex-peresunko/news-scraper/internal/util"
)

// Extract parses the main article out of an HTML page.
// Pages without a usable title and body are rejected.
func Extract(body []byte, rawURL string) (*models.Article, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	parsed, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract article content: %w", err)
	}

	title := strings.TrimSpace(parsed.Title)
	content := util.CleanText(parsed.TextContent)
	if title == "" || content == "" {
		return nil, fmt.Errorf("no title or text found")
	}

	article, err := models.NewArticle(rawURL, title, content)
	if err != nil {
		return nil, err
	}

	article.Authors = parseByline(parsed.Byline)
	article.PublishDate = parsed.PublishedTime
	article.TopImage = parsed.Image
	article.MetaDescription = strings.TrimSpace(parsed.Excerpt)

	return article, nil
}

// parseByline splits a byline like "By Jane Doe, John Roe and Ann Lee"
// into individual author names
func parseByline(byline string) []string {
	byline = strings.TrimSpace(byline)
	if byline == "" {
		return nil
	}

	lower := strings.ToLower(byline)
	if strings.HasPrefix(lower, "by ") {
		byline = strings.TrimSpace(byline[3:])
	}

	byline = strings.ReplaceAll(byline, " and ", ", ")
	parts := strings.Split(byline, ",")

	var authors []string
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			authors = append(authors, name)
		}
	}
	return authors
}
