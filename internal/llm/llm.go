// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package llm is the optional model-backed enrichment step. It rewrites
// finding descriptions for a specific codebase; it never touches scores,
// ordering, or the core scoring path, and every failure degrades to the
// unenriched findings.
package llm

import "context"

// Client abstracts a completion API behind one synchronous call.
type Client interface {
	// Complete sends a prompt and returns the model's response.
	// Implementations must respect context cancellation and deadlines.
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Request is a single completion request.
type Request struct {
	// System sets the system instruction for the completion.
	System string

	// Prompt is the user message.
	Prompt string

	// Model overrides the client's default model when non-empty.
	Model string

	// MaxTokens limits the response length. Zero means the client default.
	MaxTokens int
}

// Response is the result of one completion call.
type Response struct {
	// Content is the text returned by the model.
	Content string

	// Model is the model that served the request.
	Model string

	// Usage reports token consumption.
	Usage Usage
}

// Usage tracks token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}
