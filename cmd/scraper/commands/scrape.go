// ABOUTME: CLI command to scrape, analyze and store news articles
// ABOUTME: Accepts URLs as arguments or from a file, one per line
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/genai"
	"github.com/alex-peresunko/news-scraper/internal/models"
	"github.com/alex-peresunko/news-scraper/internal/scraper"
	"github.com/alex-peresunko/news-scraper/internal/storage"
	"github.com/alex-peresunko/news-scraper/internal/util"
)

var (
	scrapeURLsFile  string
	scrapeNoAnalyze bool
)

// NewScrapeCmd creates the scrape command
func NewScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape [url...]",
		Short: "Scrape news articles and store them",
		Long: `Scrape one or more article URLs.

Each page is fetched, reduced to readable article text and stored.
When an OpenAI API key is configured the article is also summarized
and tagged with topics before it is saved. Batches are scraped
concurrently with a per-request rate limit.

Examples:
  scraper scrape https://example.com/news/some-story
  scraper scrape --urls-file urls.txt
  scraper scrape --no-analyze https://example.com/news/some-story`,
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&scrapeURLsFile, "urls-file", "", "Read URLs from file (one per line)")
	cmd.Flags().BoolVar(&scrapeNoAnalyze, "no-analyze", false, "Store articles without LLM analysis")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg)

	urls := append([]string{}, args...)
	if scrapeURLsFile != "" {
		fromFile, err := readURLsFile(scrapeURLsFile)
		if err != nil {
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs provided")
	}

	store, err := storage.Open(storageConfig(cfg))
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	news := scraper.New(scraperOptions(cfg))

	var engine *genai.Engine
	if !scrapeNoAnalyze {
		engine, err = newAnalysisEngine(cfg)
		if err != nil {
			engine = nil
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: analysis disabled: %v\n", err)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	articles, err := news.ScrapeAll(ctx, urls)
	if err != nil {
		return fmt.Errorf("scraping: %w", err)
	}

	if len(articles) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No articles scraped from %d URL(s)\n", len(urls))
		}
		return nil
	}

	stored := make([]*models.Article, 0, len(articles))
	for _, article := range articles {
		if engine != nil {
			analysis, err := engine.AnalyzeDocument(ctx, article.ArticleID, article.Document())
			if err != nil {
				if verbose {
					fmt.Fprintf(os.Stderr, "Warning: could not analyze %s: %v\n", article.URL, err)
				}
			} else {
				article.SetAnalysis(analysis)
			}
		}

		if err := store.SaveArticle(article); err != nil {
			if verbose {
				fmt.Fprintf(os.Stderr, "Warning: could not store %s: %v\n", article.URL, err)
			}
			continue
		}
		stored = append(stored, article)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(stored, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TITLE\tWORDS\tTOPICS\tARTICLE ID\n")
	fmt.Fprintf(w, "-----\t-----\t------\t----------\n")
	for _, article := range stored {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			truncate(article.Title, 40),
			article.WordCount,
			truncate(strings.Join(article.Topics, ", "), 30),
			article.ArticleID)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n✓ Stored %d of %d article(s)\n", len(stored), len(urls))
	}
	return nil
}

// readURLsFile reads one URL per line, skipping blanks, comments and
// anything that does not parse as an absolute HTTP(S) URL.
func readURLsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading URLs file: %w", err)
	}

	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !util.IsValidURL(line) {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
