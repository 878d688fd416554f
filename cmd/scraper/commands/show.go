// ABOUTME: CLI command to show a single stored article
// ABOUTME: Looks up by article ID or by the original URL
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/models"
	"github.com/alex-peresunko/news-scraper/internal/storage"
	"github.com/alex-peresunko/news-scraper/internal/util"
)

var (
	showContent bool
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <article-id|url>",
		Short: "Show a stored article",
		Long: `Show a stored article by ID or by the URL it was scraped from.

Examples:
  scraper show article_20260824_150405_1a2b3c4d
  scraper show https://example.com/news/some-story
  scraper show --content article_20260824_150405_1a2b3c4d
  scraper show --format json article_20260824_150405_1a2b3c4d`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().BoolVar(&showContent, "content", false, "Include the full article text")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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

	var article *models.Article
	if util.IsValidURL(args[0]) {
		article, err = store.GetArticleByURL(args[0])
	} else {
		article, err = store.GetArticle(args[0])
	}
	if err != nil {
		return fmt.Errorf("loading article: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(article, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Title:   %s\n", article.Title)
	fmt.Fprintf(out, "URL:     %s\n", article.URL)
	fmt.Fprintf(out, "Domain:  %s\n", article.SourceDomain)
	if len(article.Authors) > 0 {
		fmt.Fprintf(out, "Authors: %s\n", strings.Join(article.Authors, ", "))
	}
	if article.PublishDate != nil {
		fmt.Fprintf(out, "Published: %s\n", article.PublishDate.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "Scraped: %s\n", formatTime(article.ScrapedAt))
	fmt.Fprintf(out, "Words:   %d\n", article.WordCount)

	if article.Summary != "" {
		fmt.Fprintf(out, "\nSummary:\n%s\n", article.Summary)
	}
	if len(article.Topics) > 0 {
		fmt.Fprintf(out, "\nTopics: %s\n", strings.Join(article.Topics, ", "))
	}
	if showContent {
		fmt.Fprintf(out, "\n%s\n", article.Content)
	} else if article.Content != "" {
		fmt.Fprintf(out, "\nContent: %s\n", util.Truncate(article.Content, 200))
	}
	return nil
}
