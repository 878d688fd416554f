// ABOUTME: CLI command to analyze raw text without scraping
// ABOUTME: Handles text input from argument, file, or stdin
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/alex-peresunko/news-scraper/internal/config"
)

var (
	analyzeFile string
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Summarize text without scraping",
		Long: `Run summary and topic analysis over raw text.

Reads text from an argument, a file or stdin. Documents that exceed
the model's context window are split into token-budgeted chunks and
the partial results are merged into a single summary.

Examples:
  scraper analyze "Full article text..."
  scraper analyze --file article.txt
  cat article.txt | scraper analyze
  scraper analyze --format json --file article.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeFile, "file", "", "Read text from file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	setupLogging(cfg)

	var text string
	if analyzeFile != "" {
		data, err := os.ReadFile(analyzeFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = args[0]
	} else {
		// Read from stdin
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no text provided")
	}

	engine, err := newAnalysisEngine(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	docID := fmt.Sprintf("doc_%s_%s", time.Now().Format("20060102_150405"), uuid.New().String()[:8])
	analysis, err := engine.AnalyzeDocument(ctx, docID, text)
	if err != nil {
		return fmt.Errorf("analyzing text: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Summary:\n%s\n", analysis.Summary)
	if len(analysis.Topics) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\nTopics: %s\n", strings.Join(analysis.Topics, ", "))
	}
	return nil
}
