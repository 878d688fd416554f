// ABOUTME: OpenAI client for article analysis and summary synthesis
// ABOUTME: Wraps chat completions with retry, timeouts, and strict JSON parsing
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/alex-peresunko/news-scraper/internal/genai"
	"github.com/alex-peresunko/news-scraper/internal/models"
)

// DefaultModel is the default model for chat completions
const DefaultModel = "gpt-3.5-turbo"

const analysisSystemPrompt = `You are a news analysis assistant. Given an excerpt from a news article, produce:
1. summary: A concise summary of the excerpt in 2-4 sentences (string)
2. topics: The main subjects covered, 3 to 5 short phrases (array of strings)

Return ONLY a JSON object with these two fields. No additional text.`

const synthesisSystemPrompt = `You are a news analysis assistant. You are given partial summaries of consecutive sections of one article. Combine them into a single coherent summary of the whole article. Remove repetition, keep the original order of events, and do not mention the sections themselves.

Return ONLY the combined summary text. No additional commentary.`

// ChatCompleter is the subset of the OpenAI API the client depends on
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int
	MaxRetries  int
	RetryDelay  time.Duration
	Timeout     time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:      apiKey,
		Model:       DefaultModel,
		Temperature: 0.1,
		MaxTokens:   2000,
		MaxRetries:  3,
		RetryDelay:  time.Second,
		Timeout:     30 * time.Second,
	}
}

// Client analyzes article text through the OpenAI chat completion API.
// It implements genai.Analyzer and genai.Synthesizer.
type Client struct {
	api         ChatCompleter
	model       string
	temperature float32
	maxTokens   int
	maxRetries  int
	retryDelay  time.Duration
	timeout     time.Duration
}

// NewClient creates a new client with the given API key using default configuration
func NewClient(apiKey string) (*Client, error) {
	return NewClientWithConfig(DefaultConfig(apiKey))
}

// NewClientWithConfig creates a new client with custom configuration
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	client := &Client{
		api:         openai.NewClient(config.APIKey),
		model:       config.Model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
		maxRetries:  config.MaxRetries,
		retryDelay:  config.RetryDelay,
		timeout:     config.Timeout,
	}
	if client.model == "" {
		client.model = DefaultModel
	}
	if client.timeout <= 0 {
		client.timeout = 30 * time.Second
	}

	return client, nil
}

// Model returns the chat model the client sends requests to
func (c *Client) Model() string {
	return c.model
}

// Analyze summarizes one excerpt and extracts its topics
func (c *Client) Analyze(ctx context.Context, req genai.AnalyzeRequest) (models.Analysis, error) {
	userPrompt := req.Text
	if req.Context != "" {
		userPrompt = req.Context + "\n\n" + req.Text
	}

	content, err := c.complete(ctx, analysisSystemPrompt, userPrompt)
	if err != nil {
		return models.Analysis{}, err
	}

	payload := extractJSON(content)
	if payload == "" {
		return models.Analysis{}, fmt.Errorf("no JSON object in model response")
	}

	var parsed struct {
		Summary string   `json:"summary"`
		Topics  []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return models.Analysis{}, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}

	return models.Analysis{
		Summary: strings.TrimSpace(parsed.Summary),
		Topics:  parsed.Topics,
	}, nil
}

// Synthesize combines numbered section summaries into one article summary
func (c *Client) Synthesize(ctx context.Context, combined string) (string, error) {
	content, err := c.complete(ctx, synthesisSystemPrompt, combined)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(content), nil
}

// complete runs one chat completion with retries and per-attempt timeouts
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoffDelay(c.retryDelay, attempt)):
			}
		}

		attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)

		resp, err := c.api.CreateChatCompletion(attemptCtx, openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userPrompt,
				},
			},
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
		})
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("chat completion failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
