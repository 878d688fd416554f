// ABOUTME: CLI command to list stored articles
// ABOUTME: Shows articles newest first as a table or JSON
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

var (
	listLimit int
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored articles",
		Long: `List stored articles, newest first.

Examples:
  scraper list
  scraper list --limit 10
  scraper list --format json`,
		RunE: runList,
	}

	cmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of articles to show (0 = all)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg)

	store, err := storage.Open(storageConfig(cfg))
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	articles, err := store.ListArticles()
	if err != nil {
		return fmt.Errorf("listing articles: %w", err)
	}

	if listLimit > 0 && len(articles) > listLimit {
		articles = articles[:listLimit]
	}

	if len(articles) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No articles found\n")
		}
		return nil
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(articles, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	// Table format
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TITLE\tDOMAIN\tWORDS\tSCRAPED\tARTICLE ID\n")
	fmt.Fprintf(w, "-----\t------\t-----\t-------\t----------\n")

	for _, article := range articles {
		title := article.Title
		if title == "" {
			title = "(no title)"
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			truncate(title, 40),
			article.SourceDomain,
			article.WordCount,
			formatTime(article.ScrapedAt),
			article.ArticleID)
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d article(s)\n", len(articles))
	}

	return nil
}
