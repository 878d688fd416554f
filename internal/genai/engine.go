// ABOUTME: Engine orchestrates document analysis, single-pass or chunked
// ABOUTME: Chunk analyses fan out concurrently and results re-order by index
package genai

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/alex-peresunko/news-scraper/internal/logging"
	"github.com/alex-peresunko/news-scraper/internal/models"
)

// ErrEmptyDocument is returned when the engine is invoked on blank text
var ErrEmptyDocument = errors.New("document text cannot be empty")

// DefaultMaxConcurrent bounds simultaneous chunk analyses per document
const DefaultMaxConcurrent = 5

// DefaultModel is used when the caller does not name one
const DefaultModel = "gpt-3.5-turbo"

// EngineConfig configures an analysis Engine
type EngineConfig struct {
	Model         string // model identifier for budgeting and capability calls
	Margin        int    // tokens reserved for instructions and response
	MaxConcurrent int    // simultaneous chunk analyses per document
}

// Engine drives Chunker, ChunkAnalyzer, and Aggregator over whole documents
type Engine struct {
	cost          Coster
	chunker       *Chunker
	analyzer      *ChunkAnalyzer
	aggregator    *Aggregator
	model         string
	margin        int
	maxConcurrent int
	logger        *slog.Logger
}

// NewEngine wires the engine components over the injected capabilities
func NewEngine(cost Coster, analyzer Analyzer, synth Synthesizer, cfg EngineConfig) *Engine {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Margin <= 0 {
		cfg.Margin = DefaultMargin
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = DefaultMaxConcurrent
	}
	return &Engine{
		cost:          cost,
		chunker:       NewChunker(cost, cfg.Margin),
		analyzer:      NewChunkAnalyzer(analyzer),
		aggregator:    NewAggregator(synth),
		model:         cfg.Model,
		margin:        cfg.Margin,
		maxConcurrent: cfg.MaxConcurrent,
		logger:        slog.Default(),
	}
}

// Model returns the model identifier the engine budgets against
func (e *Engine) Model() string {
	return e.model
}

// AnalyzeDocument analyzes text under the configured model's context budget.
// A document that fits is analyzed in one pass; a larger one is chunked,
// analyzed concurrently, and merged. Content-processing failures degrade to
// placeholder output; only invalid input or cancellation returns an error.
func (e *Engine) AnalyzeDocument(ctx context.Context, docID, text string) (models.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return models.Analysis{}, ErrEmptyDocument
	}
	if err := ctx.Err(); err != nil {
		return models.Analysis{}, err
	}
	if docID == "" {
		// Correlation id for diagnostics when the caller has none
		docID = uuid.New().String()
	}

	limit := e.cost.ContextLimit(e.model)
	tokens := e.cost.TokenCount(text, e.model)

	var final models.Analysis
	var chunkCount int

	if tokens <= limit-e.margin {
		e.logger.Debug("document fits in a single pass",
			"doc_id", docID, "tokens", tokens, "limit", limit, "model", e.model)
		chunkCount = 1
		partial := e.analyzer.Analyze(ctx, docID, models.Chunk{Index: 0, Text: text, Total: 1})
		final = e.aggregator.Merge(ctx, docID, []models.Analysis{partial})
	} else {
		pieces := e.chunker.Split(text, limit, e.model)
		chunkCount = len(pieces)
		e.logger.Info("document exceeds context budget, chunking",
			"doc_id", docID, "tokens", tokens, "limit", limit, "chunks", chunkCount, "model", e.model)

		partials, err := e.analyzeChunks(ctx, docID, pieces)
		if err != nil {
			return models.Analysis{}, err
		}
		final = e.aggregator.Merge(ctx, docID, partials)
	}

	logging.Success("document analysis complete",
		"doc_id", docID, "chunks", chunkCount, "topics", len(final.Topics))
	return final, nil
}

// analyzeChunks runs chunk analyses concurrently under the configured ceiling
// and returns partials ordered by chunk index. The only task error is
// cancellation, which discards all partials.
func (e *Engine) analyzeChunks(ctx context.Context, docID string, pieces []string) ([]models.Analysis, error) {
	partials := make([]models.Analysis, len(pieces))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrent)
	for i, piece := range pieces {
		chunk := models.Chunk{Index: i, Text: piece, Total: len(pieces)}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Results land at the chunk's own index regardless of completion order
			partials[chunk.Index] = e.analyzer.Analyze(gctx, docID, chunk)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return partials, nil
}
