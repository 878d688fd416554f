// ABOUTME: News scraper combining fetch, extraction, and link discovery
// ABOUTME: Batch scraping runs with bounded concurrency and per-URL rate limiting
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alex-peresunko/news-scraper/internal/logging"
	"github.com/alex-peresunko/news-scraper/internal/models"
)

// Options configures the scraper
type Options struct {
	UserAgent      string
	Timeout        time.Duration
	MaxBodySize    int64
	MaxConcurrent  int
	RateLimitDelay time.Duration
}

// Scraper fetches news pages and turns them into articles
type Scraper struct {
	fetcher        *Fetcher
	logger         *slog.Logger
	maxConcurrent  int
	rateLimitDelay time.Duration
}

// New creates a scraper for the given options
func New(opts Options) *Scraper {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = 1
	}
	return &Scraper{
		fetcher:        NewFetcher(opts.Timeout, opts.UserAgent, opts.MaxBodySize),
		logger:         slog.Default(),
		maxConcurrent:  opts.MaxConcurrent,
		rateLimitDelay: opts.RateLimitDelay,
	}
}

// ScrapeURL fetches and extracts a single article
func (s *Scraper) ScrapeURL(ctx context.Context, rawURL string) (*models.Article, error) {
	s.logger.Info("scraping url", "url", rawURL)

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	article, err := Extract(body, rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", rawURL, err)
	}

	logging.Success("successfully scraped", "url", rawURL, "words", article.WordCount)
	return article, nil
}

// ScrapeAll scrapes many URLs concurrently. Failed URLs are logged and
// skipped; successful articles come back in input order. The error is
// non-nil only when the context is cancelled.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string) ([]*models.Article, error) {
	s.logger.Info("starting batch scrape", "urls", len(urls))

	results := make([]*models.Article, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, rawURL := range urls {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			article, err := s.ScrapeURL(gctx, rawURL)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.logger.Error("error scraping url", "url", rawURL, "error", err)
				return nil
			}
			results[i] = article

			if s.rateLimitDelay > 0 {
				select {
				case <-gctx.Done():
				case <-time.After(s.rateLimitDelay):
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	articles := make([]*models.Article, 0, len(urls))
	for _, article := range results {
		if article != nil {
			articles = append(articles, article)
		}
	}

	s.logger.Info("batch scrape complete", "scraped", len(articles), "total", len(urls))
	return articles, nil
}

// DiscoverLinks fetches a page and returns likely article links found on it
func (s *Scraper) DiscoverLinks(ctx context.Context, pageURL string, sameDomainOnly bool) ([]string, error) {
	body, err := s.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	links, err := ExtractLinks(body, pageURL, sameDomainOnly)
	if err != nil {
		return nil, fmt.Errorf("extract links from %s: %w", pageURL, err)
	}

	s.logger.Info("extracted potential article links", "count", len(links), "page", pageURL)
	return links, nil
}
