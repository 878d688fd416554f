// ABOUTME: Aggregator merges per-chunk partial results into one final result
// ABOUTME: Synthesis failures fall back to joining the raw summaries
package genai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alex-peresunko/news-scraper/internal/models"
)

// EmptySummary is the fixed summary returned when there is nothing to merge
const EmptySummary = "Nothing to summarize."

// Aggregator merges an ordered sequence of partial results
type Aggregator struct {
	synth  Synthesizer
	logger *slog.Logger
}

// NewAggregator creates an Aggregator over the given synthesis capability
func NewAggregator(synth Synthesizer) *Aggregator {
	return &Aggregator{
		synth:  synth,
		logger: slog.Default(),
	}
}

// Merge combines partials into the final result. Zero partials yield the
// fixed empty-state result and one partial is returned unchanged; neither
// touches the synthesis capability. With more, the numbered section summaries
// are synthesized into one narrative, and on synthesis failure the raw
// summaries are joined with single spaces instead. Topic labels always merge
// case-insensitively, keeping first-seen casing and order.
func (ag *Aggregator) Merge(ctx context.Context, docID string, partials []models.Analysis) models.Analysis {
	switch len(partials) {
	case 0:
		return models.Analysis{Summary: EmptySummary}
	case 1:
		return partials[0]
	}

	sections := make([]string, 0, len(partials))
	for i, p := range partials {
		sections = append(sections, fmt.Sprintf("Section %d: %s", i+1, p.Summary))
	}
	combined := strings.Join(sections, "\n\n")

	summary, err := ag.synth.Synthesize(ctx, combined)
	if err == nil && strings.TrimSpace(summary) == "" {
		err = fmt.Errorf("empty synthesis payload")
	}
	if err != nil {
		ag.logger.Error("synthesis failed, joining partial summaries",
			"doc_id", docID, "sections", len(partials), "error", err)
		summary = joinSummaries(partials)
	}

	return models.Analysis{
		Summary: summary,
		Topics:  mergeTopics(partials),
	}
}

// joinSummaries joins the raw partial summaries with single spaces
func joinSummaries(partials []models.Analysis) string {
	parts := make([]string, 0, len(partials))
	for _, p := range partials {
		if p.Summary != "" {
			parts = append(parts, p.Summary)
		}
	}
	return strings.Join(parts, " ")
}

// mergeTopics deduplicates topics case-insensitively across partials,
// keeping the first-seen spelling and the order of first appearance
func mergeTopics(partials []models.Analysis) []string {
	seen := make(map[string]bool)
	var merged []string
	for _, p := range partials {
		for _, topic := range p.Topics {
			topic = strings.TrimSpace(topic)
			key := strings.ToLower(topic)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, topic)
		}
	}
	return merged
}
