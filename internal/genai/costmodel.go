// ABOUTME: CostModel resolves context-window limits and token counts per model
// ABOUTME: Known models use a static table; variants fall through substring heuristics
package genai

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// FallbackLimit is the conservative context limit for unrecognized models
const FallbackLimit = 4096

// fallbackEncoding is the generic tokenizer used when a model has none registered
const fallbackEncoding = "cl100k_base"

// contextLimits maps known model identifiers to their maximum input tokens
var contextLimits = map[string]int{
	"gpt-3.5-turbo":      4096,
	"gpt-3.5-turbo-16k":  16385,
	"gpt-3.5-turbo-1106": 16385,
	"gpt-4":              8192,
	"gpt-4-32k":          32768,
	"gpt-4-turbo":        128000,
	"gpt-4o":             128000,
	"gpt-4o-mini":        128000,
	"text-davinci-003":   4097,
	"code-davinci-002":   8001,
}

// Coster reports context limits and token costs for a named model.
// The engine and chunker depend on this rather than a concrete tokenizer.
type Coster interface {
	ContextLimit(model string) int
	TokenCount(text, model string) int
}

// CostModel implements Coster on tiktoken encodings.
// Safe for concurrent use; encodings are cached after first lookup.
type CostModel struct {
	logger *slog.Logger

	mu       sync.Mutex
	encoders map[string]*tiktoken.Tiktoken
}

// NewCostModel creates a CostModel
func NewCostModel() *CostModel {
	return &CostModel{
		logger:   slog.Default(),
		encoders: make(map[string]*tiktoken.Tiktoken),
	}
}

// ContextLimit returns the maximum input tokens for the given model.
// Unrecognized models get a conservative default rather than an error.
func (cm *CostModel) ContextLimit(model string) int {
	if limit, ok := contextLimits[model]; ok {
		return limit
	}

	// Heuristics for unlisted variants, checked in order
	switch {
	case strings.Contains(model, "128k"):
		return 128000
	case strings.Contains(model, "turbo") && strings.Contains(model, "16k"):
		return 16385
	case strings.Contains(model, "gpt-4"):
		return 8192
	case strings.Contains(model, "davinci"):
		if strings.Contains(model, "code") {
			return 8001
		}
		return 4097
	}

	cm.logger.Warn("unknown model, using conservative context limit",
		"model", model, "limit", FallbackLimit)
	return FallbackLimit
}

// TokenCount returns the token cost of text under the model's encoding.
// Deterministic for fixed inputs: the encoding chosen for a model is cached,
// including the downgrade to the generic encoding for unknown models.
func (cm *CostModel) TokenCount(text, model string) int {
	enc := cm.encodingFor(model)
	if enc == nil {
		// No tokenizer data available at all; estimate at ~4 chars per token.
		return (len(text) + 3) / 4
	}
	return len(enc.Encode(text, nil, nil))
}

// encodingFor returns the cached encoding for model, resolving it once
func (cm *CostModel) encodingFor(model string) *tiktoken.Tiktoken {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if enc, ok := cm.encoders[model]; ok {
		return enc
	}

	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		cm.logger.Warn("no tokenizer registered for model, using generic encoding",
			"model", model, "encoding", fallbackEncoding)
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			cm.logger.Warn("generic encoding unavailable, estimating token counts",
				"model", model, "error", err)
			enc = nil
		}
	}

	cm.encoders[model] = enc
	return enc
}
