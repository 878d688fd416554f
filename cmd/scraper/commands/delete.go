// ABOUTME: CLI command to delete a stored article
// ABOUTME: Removes the article and its URL index entry
package commands

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
	"github.com/alex-peresunko/news-scraper/internal/storage"
)

// NewDeleteCmd creates the delete command
func NewDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <article-id>",
		Short: "Delete a stored article",
		Long: `Delete a stored article by ID.

Examples:
  scraper delete article_20260824_150405_1a2b3c4d`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := store.DeleteArticle(args[0]); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("article %s not found", args[0])
		}
		return fmt.Errorf("deleting article: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted article %s\n", args[0])
	}
	return nil
}
