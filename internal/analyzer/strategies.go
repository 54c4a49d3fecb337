// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uplift-dev/uplift/internal/catalog"
	"github.com/uplift-dev/uplift/internal/classify"
	"github.com/uplift-dev/uplift/internal/detector"
	"github.com/uplift-dev/uplift/internal/detectors"
	"github.com/uplift-dev/uplift/internal/findings"
	"github.com/uplift-dev/uplift/internal/gitmeta"
	"github.com/uplift-dev/uplift/internal/rank"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

// Strategy names, in fallback order.
const (
	StrategyDeep     = "deep"
	StrategyStandard = "standard"
	StrategyBaseline = "baseline"
)

// pipelineStrategy is one configuration of the detect-classify-generate-rank
// pipeline. Strategies differ only in detector richness, rule set, scoring
// weights, and strictness; the flow contract is identical.
type pipelineStrategy struct {
	name          string
	detectorNames []string
	rules         []findings.Rule
	weights       rank.Weights
	catalog       *catalog.Catalog

	// strict makes any invalid generated finding fail the whole strategy
	// instead of being dropped. Only the deep strategy is strict; its
	// failures fall through to the next strategy in the chain.
	strict bool

	// withGit enables best-effort git metadata on the result.
	withGit bool
}

// Deep is the most sophisticated strategy: every registered detector, the
// full rule set, provider matching, git metadata, and strict validation.
func Deep(cat *catalog.Catalog, exclude ...string) Strategy {
	return &pipelineStrategy{
		name:          StrategyDeep,
		detectorNames: without(detector.List(), exclude),
		rules:         findings.DefaultRules(),
		weights:       rank.DefaultWeights,
		catalog:       cat,
		strict:        true,
		withGit:       true,
	}
}

// Standard runs the technology and risk detectors with the full rule set,
// dropping invalid findings instead of failing.
func Standard(cat *catalog.Catalog, exclude ...string) Strategy {
	return &pipelineStrategy{
		name:          StrategyStandard,
		detectorNames: without([]string{"risk", "technology"}, exclude),
		rules:         findings.DefaultRules(),
		weights:       rank.DefaultWeights,
		catalog:       cat,
	}
}

// Baseline is the last-resort strategy: risk detection only, context-free
// rules, no provider matching. It is expected to succeed on any snapshot.
func Baseline() Strategy {
	return &pipelineStrategy{
		name:          StrategyBaseline,
		detectorNames: []string{"risk"},
		rules:         findings.BaselineRules(),
		weights: rank.Weights{
			Impact:     rank.DefaultWeights.Impact,
			Effort:     rank.DefaultWeights.Effort,
			Confidence: rank.DefaultWeights.Confidence,
		},
	}
}

// DefaultChain is the standard fallback order: deep, standard, baseline.
func DefaultChain(cat *catalog.Catalog, exclude ...string) *Chain {
	return NewChain(Deep(cat, exclude...), Standard(cat, exclude...), Baseline())
}

// ChainFor builds a chain from strategy names with default scoring weights,
// preserving the given order. An empty name list yields the default chain.
func ChainFor(cat *catalog.Catalog, names []string, exclude ...string) (*Chain, error) {
	return ChainWith(cat, names, rank.DefaultWeights, exclude...)
}

// ChainWith is ChainFor with an explicit scoring configuration, used when
// config files override weights.
func ChainWith(cat *catalog.Catalog, names []string, w rank.Weights, exclude ...string) (*Chain, error) {
	if len(names) == 0 {
		names = []string{StrategyDeep, StrategyStandard, StrategyBaseline}
	}
	strategies := make([]Strategy, len(names))
	for i, name := range names {
		switch name {
		case StrategyDeep:
			strategies[i] = Deep(cat, exclude...)
		case StrategyStandard:
			strategies[i] = Standard(cat, exclude...)
		case StrategyBaseline:
			strategies[i] = Baseline()
		default:
			return nil, fmt.Errorf("unknown strategy %q (valid: deep, standard, baseline)", name)
		}
		ps := strategies[i].(*pipelineStrategy)
		ps.weights = w
		if name == StrategyBaseline {
			// Baseline ranks without a business context, so the fit
			// bonus stays disabled regardless of configuration.
			ps.weights.ContextFit = 0
		}
	}
	return NewChain(strategies...), nil
}

// without filters excluded detector names, preserving order. The baseline
// strategy ignores exclusions so the chain always has a runnable fallback.
func without(names, exclude []string) []string {
	if len(exclude) == 0 {
		return names
	}
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	out := names[:0:0]
	for _, n := range names {
		if !skip[n] {
			out = append(out, n)
		}
	}
	return out
}

// Name implements Strategy.
func (s *pipelineStrategy) Name() string { return s.name }

// Analyze implements Strategy by running the full pipeline: snapshot,
// detect, classify, generate, match, rank.
func (s *pipelineStrategy) Analyze(ctx context.Context, in Input) (*signal.AnalysisResult, error) {
	snap := in.Snapshot
	if snap == nil {
		var err error
		snap, err = snapshot.Build(ctx, in.Root, snapshot.Options{})
		if err != nil {
			return nil, fmt.Errorf("building snapshot: %w", err)
		}
	}

	ds, err := detector.Resolve(s.detectorNames)
	if err != nil {
		return nil, fmt.Errorf("resolving detectors: %w", err)
	}

	set, err := detector.Run(ctx, ds, snap, detectors.FromPriorScan(in.Prior)...)
	if err != nil {
		return nil, err
	}
	businessCtx := classify.Classify(snap, set)

	candidates := findings.Generate(snap, set, businessCtx, s.rules)
	kept := make([]signal.Finding, 0, len(candidates))
	for _, f := range candidates {
		if s.catalog != nil {
			f.Providers = s.catalog.Match(f)
		}
		if errs := findings.Validate(f); len(errs) > 0 {
			if s.strict {
				return nil, fmt.Errorf("invalid finding %q: %w", f.Category, errs[0])
			}
			slog.Warn("dropping invalid finding",
				"strategy", s.name, "category", f.Category, "error", errs[0])
			continue
		}
		kept = append(kept, f)
	}

	result := &signal.AnalysisResult{
		Context:  businessCtx,
		Findings: rank.Rank(kept, businessCtx, s.weights),
		Metadata: signal.Metadata{
			Strategy:        s.name,
			FilesScanned:    snap.FileCount(),
			TotalLines:      snap.TotalLines,
			DependencyCount: snap.DependencyCount,
			SignalCount:     set.Len(),
		},
	}
	if result.Findings == nil {
		result.Findings = []signal.Finding{}
	}

	if s.withGit && in.Root != "" {
		if meta, err := gitmeta.Describe(in.Root); err == nil {
			result.Metadata.Commit = meta.Commit
			result.Metadata.Branch = meta.Branch
			result.Metadata.CommitCount = meta.CommitCount
		}
	}

	return result, nil
}
