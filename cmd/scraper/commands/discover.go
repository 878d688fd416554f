// ABOUTME: CLI command to discover article links on an index page
// ABOUTME: Prints likely article URLs found in the page's anchors
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/scraper"
)

var (
	discoverAllDomains bool
)

// NewDiscoverCmd creates the discover command
func NewDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover <url>",
		Short: "Find article links on an index page",
		Long: `Fetch a page and print the links that look like news articles.

Links are resolved against the page URL, deduplicated in document
order and filtered by URL shape (date segments, /story/, /article/,
/news/). By default only links on the page's own domain are kept.

Examples:
  scraper discover https://example.com
  scraper discover --all-domains https://example.com
  scraper discover https://example.com | xargs scraper scrape`,
		Args: cobra.ExactArgs(1),
		RunE: runDiscover,
	}

	cmd.Flags().BoolVar(&discoverAllDomains, "all-domains", false, "Keep links pointing at other domains")

	return cmd
}

func runDiscover(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg)

	news := scraper.New(scraperOptions(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	links, err := news.DiscoverLinks(ctx, args[0], !discoverAllDomains)
	if err != nil {
		return fmt.Errorf("discovering links: %w", err)
	}

	if len(links) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No article links found\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(links, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	for _, link := range links {
		fmt.Fprintln(cmd.OutOrStdout(), link)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d link(s)\n", len(links))
	}
	return nil
}
