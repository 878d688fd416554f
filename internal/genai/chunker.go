// ABOUTME: Chunker splits document text into token-bounded chunks
// ABOUTME: Prefers paragraph boundaries, then sentences, and never drops content
package genai

import (
	"log/slog"
	"strings"
)

// DefaultMargin reserves room for instructions and the model's response
const DefaultMargin = 1000

// Chunker splits text into pieces that fit a model's context budget
type Chunker struct {
	cost   Coster
	margin int
	logger *slog.Logger
}

// NewChunker creates a Chunker reserving margin tokens out of every budget.
// A margin of zero or less falls back to DefaultMargin.
func NewChunker(cost Coster, margin int) *Chunker {
	if margin <= 0 {
		margin = DefaultMargin
	}
	return &Chunker{
		cost:   cost,
		margin: margin,
		logger: slog.Default(),
	}
}

// Split breaks text into ordered chunks whose token counts stay within
// maxTokens minus the reserved margin. Paragraphs are packed greedily; a
// paragraph that alone exceeds the budget is repacked at sentence
// granularity. A single sentence over budget is kept whole rather than cut
// mid-sentence, so such a chunk can exceed the budget.
func (c *Chunker) Split(text string, maxTokens int, model string) []string {
	budget := maxTokens - c.margin
	if budget < 1 {
		budget = 1
	}
	return c.pack(splitParagraphs(text), "\n\n", budget, model, true)
}

// pack folds units into chunks within budget, joining buffered units with sep
// on flush. When recurse is set an oversized unit is repacked at sentence
// granularity; otherwise it becomes an oversized chunk of its own.
func (c *Chunker) pack(units []string, sep string, budget int, model string, recurse bool) []string {
	var chunks []string
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			chunks = append(chunks, strings.Join(buf, sep))
			buf = nil
		}
	}

	for _, unit := range units {
		if strings.TrimSpace(unit) == "" {
			continue
		}

		if c.cost.TokenCount(unit, model) > budget {
			flush()
			if recurse {
				chunks = append(chunks, c.pack(splitSentences(unit), " ", budget, model, false)...)
			} else {
				// Pathological single sentence: accepted oversized, not cut.
				c.logger.Warn("sentence exceeds chunk budget, keeping oversized",
					"tokens", c.cost.TokenCount(unit, model), "budget", budget, "model", model)
				chunks = append(chunks, unit)
			}
			continue
		}

		if len(buf) > 0 {
			merged := strings.Join(buf, sep) + sep + unit
			if c.cost.TokenCount(merged, model) > budget {
				flush()
			}
		}
		buf = append(buf, unit)
	}
	flush()

	return chunks
}

// splitParagraphs splits text on blank-line boundaries
func splitParagraphs(text string) []string {
	paragraphs := strings.Split(text, "\n\n")

	// Handle \r\n\r\n blank lines as well
	var result []string
	for _, para := range paragraphs {
		if strings.Contains(para, "\r\n\r\n") {
			result = append(result, strings.Split(para, "\r\n\r\n")...)
		} else {
			result = append(result, para)
		}
	}

	return result
}

// splitSentences splits text on ". " boundaries, keeping each terminator
func splitSentences(text string) []string {
	sentences := strings.Split(text, ". ")

	var result []string
	for i, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}

		// Restore the period consumed by the split (the last piece keeps its own)
		if i < len(sentences)-1 && !strings.HasSuffix(sent, ".") {
			sent = sent + "."
		}

		result = append(result, sent)
	}

	return result
}
