// ABOUTME: ChunkAnalyzer runs the injected analysis capability over one chunk
// ABOUTME: Failures degrade to a placeholder result instead of aborting the batch
package genai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alex-peresunko/news-scraper/internal/models"
)

// AnalyzeRequest carries chunk text plus positional framing for the capability
type AnalyzeRequest struct {
	Text    string
	Context string
}

// Analyzer is the injected text-analysis capability: text in, summary and
// topics out. Implementations own their timeouts and may fail.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (models.Analysis, error)
}

// Synthesizer is the injected capability that merges numbered section
// summaries into one coherent narrative.
type Synthesizer interface {
	Synthesize(ctx context.Context, combined string) (string, error)
}

// ChunkAnalyzer analyzes individual chunks with positional framing
type ChunkAnalyzer struct {
	analyzer Analyzer
	logger   *slog.Logger
}

// NewChunkAnalyzer creates a ChunkAnalyzer over the given capability
func NewChunkAnalyzer(analyzer Analyzer) *ChunkAnalyzer {
	return &ChunkAnalyzer{
		analyzer: analyzer,
		logger:   slog.Default(),
	}
}

// Analyze produces the partial result for one chunk. A capability failure or
// empty payload is absorbed: the result carries a placeholder summary naming
// the failed part and no topics, so sibling chunks are unaffected.
func (ca *ChunkAnalyzer) Analyze(ctx context.Context, docID string, chunk models.Chunk) models.Analysis {
	req := AnalyzeRequest{Text: chunk.Text}
	if chunk.Total > 1 {
		req.Context = fmt.Sprintf(
			"This is part %d of %d of a larger document. Summarize only this excerpt.",
			chunk.Index+1, chunk.Total)
	}

	result, err := ca.analyzer.Analyze(ctx, req)
	if err == nil && strings.TrimSpace(result.Summary) == "" {
		err = errors.New("empty analysis payload")
	}
	if err != nil {
		ca.logger.Error("chunk analysis failed",
			"doc_id", docID, "chunk", chunk.Index, "total", chunk.Total, "error", err)
		return models.Analysis{
			Summary: fmt.Sprintf("Could not generate summary for part %d.", chunk.Index+1),
		}
	}

	return result
}
