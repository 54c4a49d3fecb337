// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package analyzer orchestrates the analysis pipeline as a chain of
// interchangeable strategies. The chain tries the most sophisticated
// strategy first and falls back to simpler ones on failure, so a degraded
// result beats no result.
package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

// Input carries everything one analysis run needs. Either Root or Snapshot
// must be set; a pre-built Snapshot takes precedence over Root.
type Input struct {
	// Root is the directory to snapshot when Snapshot is nil.
	Root string

	// Snapshot is a pre-built snapshot, used as-is when non-nil.
	Snapshot *snapshot.Snapshot

	// Prior is an optional coarse scan from an external scanner whose
	// fields are converted into seed signals.
	Prior *signal.PriorScan
}

// Strategy is one complete, substitutable implementation of the
// detection and scoring pipeline.
type Strategy interface {
	// Name identifies the strategy in results and errors.
	Name() string

	// Analyze runs the full pipeline over the input.
	Analyze(ctx context.Context, in Input) (*signal.AnalysisResult, error)
}

// ChainError aggregates the failure of every strategy in a chain.
type ChainError struct {
	// Errors holds one entry per attempted strategy, in attempt order.
	Errors []error
}

// Error implements the error interface.
func (e *ChainError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("all %d strategies failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap exposes the per-strategy errors to errors.Is and errors.As.
func (e *ChainError) Unwrap() []error {
	return e.Errors
}

// Chain runs strategies in order until one succeeds.
type Chain struct {
	strategies []Strategy
}

// NewChain builds a chain from strategies in fallback order, most
// sophisticated first.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies}
}

// Strategies returns the chain's strategy names in attempt order.
func (c *Chain) Strategies() []string {
	names := make([]string, len(c.strategies))
	for i, s := range c.strategies {
		names[i] = s.Name()
	}
	return names
}

// Run attempts each strategy in order and returns the first successful
// result untouched. Context cancellation stops the chain immediately.
// If every strategy fails, Run returns a ChainError carrying all of them.
func (c *Chain) Run(ctx context.Context, in Input) (*signal.AnalysisResult, error) {
	if len(c.strategies) == 0 {
		return nil, fmt.Errorf("analyzer chain has no strategies")
	}

	var failures []error
	for _, s := range c.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := s.Analyze(ctx, in)
		if err != nil {
			failures = append(failures, fmt.Errorf("strategy %s: %w", s.Name(), err))
			continue
		}
		return result, nil
	}
	return nil, &ChainError{Errors: failures}
}
