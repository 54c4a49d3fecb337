// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package rank orders findings by a single scoring function. The score is
// derived at ranking time and never stored on the finding itself.
package rank

import (
	"sort"

	"github.com/uplift-dev/uplift/internal/signal"
)

// Weights parameterizes the scoring function. Strategies may tune these;
// everything else about ranking stays identical between strategies.
type Weights struct {
	Impact     float64
	Effort     float64
	Confidence float64
	ContextFit float64
}

// DefaultWeights is the standard scoring configuration:
// score = impact*2 - effort + confidence*10 + contextFit.
var DefaultWeights = Weights{
	Impact:     2,
	Effort:     1,
	Confidence: 10,
	ContextFit: 4,
}

// MaxFindings caps the ranked result.
const MaxFindings = 10

// contextFit lists the finding categories canonically associated with each
// business-context type. A finding in one of its context's categories gets
// the ContextFit bonus.
var contextFit = map[signal.ContextType][]string{
	signal.ContextEcommerce: {
		"payment-optimization", "personalization", "search",
		"email-delivery", "analytics",
	},
	signal.ContextSaaS: {
		"payment-optimization", "authentication", "analytics",
		"rate-limiting",
	},
	signal.ContextAPIService: {
		"rate-limiting", "error-monitoring", "caching",
	},
	signal.ContextPublicSite: {
		"search", "analytics",
	},
}

// Score computes the ordering key for one finding under the given context.
func Score(f signal.Finding, ctx signal.BusinessContext, w Weights) float64 {
	s := f.Impact*w.Impact - f.Effort*w.Effort + f.Confidence*w.Confidence
	if fits(f.Category, ctx.Type) {
		s += w.ContextFit
	}
	return s
}

func fits(category string, t signal.ContextType) bool {
	for _, c := range contextFit[t] {
		if c == category {
			return true
		}
	}
	return false
}

// Rank deduplicates findings by category (first occurrence wins), sorts
// them descending by score, and truncates to MaxFindings. Ties keep
// generation order, so reruns over the same input are byte-identical.
func Rank(findings []signal.Finding, ctx signal.BusinessContext, w Weights) []signal.Finding {
	out := make([]signal.Finding, 0, len(findings))
	seen := make(map[string]bool, len(findings))
	for _, f := range findings {
		if seen[f.Category] {
			continue
		}
		seen[f.Category] = true
		out = append(out, f)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return Score(out[i], ctx, w) > Score(out[j], ctx, w)
	})

	if len(out) > MaxFindings {
		out = out[:MaxFindings]
	}
	return out
}
