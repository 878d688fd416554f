// ABOUTME: HTTP fetcher for news pages with size and redirect limits
// ABOUTME: Sends browser-like headers and rejects non-HTML responses
package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alex-peresunko/news-scraper/internal/util"
)

const maxRedirects = 5

// Fetcher retrieves page content over HTTP
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// NewFetcher creates a fetcher with the given timeout, user agent, and body cap
func NewFetcher(timeout time.Duration, userAgent string, maxBodySize int64) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("too many redirects (max %d)", maxRedirects)
				}
				return nil
			},
		},
		userAgent:   userAgent,
		maxBodySize: maxBodySize,
	}
}

// Fetch retrieves the page at the given URL
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if !util.IsValidURL(rawURL) {
		return nil, fmt.Errorf("invalid URL: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" && !isHTMLContentType(ct) {
		return nil, fmt.Errorf("unsupported content type %q", ct)
	}

	limitReader := io.LimitReader(resp.Body, f.maxBodySize+1)
	body, err := io.ReadAll(limitReader)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if int64(len(body)) > f.maxBodySize {
		return nil, fmt.Errorf("content too large (exceeds %d bytes)", f.maxBodySize)
	}

	return body, nil
}

func isHTMLContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "text/html") ||
		strings.Contains(ct, "application/xhtml+xml") ||
		strings.Contains(ct, "text/plain")
}
