// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// defaultModel serves requests that carry no model override.
	defaultModel = "claude-sonnet-4-5-20250929"

	// defaultMaxTokens is the output cap per request.
	defaultMaxTokens = 4096

	// defaultMaxRetries covers transient 429/5xx errors. Backoff is
	// handled by the SDK.
	defaultMaxRetries = 3
)

// AnthropicClient implements Client on the official Anthropic SDK.
type AnthropicClient struct {
	client anthropic.Client
	model  string
}

var _ Client = (*AnthropicClient)(nil)

// AnthropicOption configures NewAnthropicClient.
type AnthropicOption func(*anthropicConfig)

type anthropicConfig struct {
	apiKey     string
	model      string
	maxRetries int
}

// WithAPIKey sets the API key explicitly instead of reading
// ANTHROPIC_API_KEY from the environment.
func WithAPIKey(key string) AnthropicOption {
	return func(c *anthropicConfig) { c.apiKey = key }
}

// WithModel overrides the default model for all requests.
func WithModel(model string) AnthropicOption {
	return func(c *anthropicConfig) { c.model = model }
}

// WithMaxRetries sets the retry count for transient errors.
func WithMaxRetries(n int) AnthropicOption {
	return func(c *anthropicConfig) { c.maxRetries = n }
}

// NewAnthropicClient builds a client, erroring when no API key is
// available from either an option or the environment.
func NewAnthropicClient(opts ...AnthropicOption) (*AnthropicClient, error) {
	cfg := anthropicConfig{model: defaultModel, maxRetries: defaultMaxRetries}
	for _, o := range opts {
		o(&cfg)
	}

	apiKey := cfg.apiKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("llm: ANTHROPIC_API_KEY not set and no API key provided")
	}

	return &AnthropicClient{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(cfg.maxRetries),
		),
		model: cfg.model,
	}, nil
}

// Complete implements Client against the Messages API.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (*Response, error) {
	model := c.model
	if req.Model != "" {
		model = req.Model
	}
	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic: completion failed: %w", err)
	}

	var content string
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += text.Text
		}
	}

	return &Response{
		Content: content,
		Model:   string(msg.Model),
		Usage: Usage{
			InputTokens:  int(msg.Usage.InputTokens),
			OutputTokens: int(msg.Usage.OutputTokens),
		},
	}, nil
}

// Model returns the configured default model.
func (c *AnthropicClient) Model() string { return c.model }
