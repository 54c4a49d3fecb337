// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package classify derives a coarse business context from the aggregated
// signal set. Classification uses relative signal density per context type,
// so no single keyword can dominate, and is fully deterministic.
package classify

import (
	"log/slog"

	"github.com/uplift-dev/uplift/internal/detectors"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

// minEvidence is the minimum weighted density a context type must reach.
// Below it, the classifier reports an unspecified application instead of
// guessing.
const minEvidence = 3.0

// typePriority breaks density ties in a fixed order so classification is
// deterministic.
var typePriority = []signal.ContextType{
	signal.ContextEcommerce,
	signal.ContextSaaS,
	signal.ContextAPIService,
	signal.ContextPublicSite,
	signal.ContextInternalTool,
}

// contextWeights maps each context type to the signals that evidence it.
// Weights are tuned so a type needs either one strong signal plus support,
// or several weaker ones.
var contextWeights = map[signal.ContextType]map[string]float64{
	signal.ContextEcommerce: {
		detectors.SigPayment:        3.0,
		detectors.SigCart:           3.0,
		detectors.SigProductCatalog: 1.5,
		detectors.SigOrder:          2.0,
		detectors.SigSearch:         0.5,
		detectors.SigEmailDelivery:  0.5,
	},
	signal.ContextSaaS: {
		detectors.SigSubscription: 3.0,
		detectors.SigMultiTenant:  3.0,
		detectors.SigAuth:         1.0,
		detectors.SigAPIEndpoint:  0.5,
		detectors.SigAnalytics:    0.5,
	},
	signal.ContextAPIService: {
		detectors.SigAPIEndpoint: 2.0,
		detectors.SigDatabase:    1.0,
		detectors.SigQueue:       1.5,
		detectors.SigRateLimiting: 1.0,
		detectors.SigCache:       0.5,
	},
	signal.ContextPublicSite: {
		detectors.SigStaticSite:        3.0,
		detectors.SigCMS:               3.0,
		detectors.SigFrontendFramework: 1.0,
		detectors.SigAnalytics:         1.0,
	},
	signal.ContextInternalTool: {
		detectors.SigAdminUI:   3.0,
		detectors.SigCronJobs:  2.0,
		detectors.SigReporting: 2.0,
		detectors.SigDatabase:  0.5,
	},
}

// Scale breakpoints. The larger of the line-based and dependency-based
// estimates wins.
var (
	lineBreakpoints = []struct {
		max   int
		scale signal.Scale
	}{
		{5_000, signal.ScaleSmall},
		{50_000, signal.ScaleMedium},
		{250_000, signal.ScaleLarge},
	}
	depBreakpoints = []struct {
		max   int
		scale signal.Scale
	}{
		{15, signal.ScaleSmall},
		{60, signal.ScaleMedium},
		{150, signal.ScaleLarge},
	}
)

// Classify derives the business context for a snapshot from its signal set.
// Re-running on the same inputs always yields the same context.
func Classify(snap *snapshot.Snapshot, signals *signal.Set) signal.BusinessContext {
	densities := Densities(signals)

	best := signal.ContextUnspecified
	bestDensity := 0.0
	for _, t := range typePriority {
		d := densities[t]
		if d > bestDensity && d >= minEvidence {
			best = t
			bestDensity = d
		}
	}

	ctx := signal.BusinessContext{
		Type:     best,
		Audience: audienceFor(best),
		Scale:    scaleFor(snap),
	}

	slog.Debug("classified business context",
		"type", ctx.Type, "audience", ctx.Audience, "scale", ctx.Scale,
		"density", bestDensity)

	return ctx
}

// Densities computes the weighted signal density for every context type.
// Exposed for tests and for explain-style output.
func Densities(signals *signal.Set) map[signal.ContextType]float64 {
	out := make(map[signal.ContextType]float64, len(contextWeights))
	for t, weights := range contextWeights {
		var sum float64
		for name, w := range weights {
			sum += w * signals.Count(name)
		}
		out[t] = sum
	}
	return out
}

func audienceFor(t signal.ContextType) signal.Audience {
	switch t {
	case signal.ContextEcommerce, signal.ContextPublicSite:
		return signal.AudienceConsumer
	case signal.ContextSaaS, signal.ContextAPIService:
		return signal.AudienceBusiness
	case signal.ContextInternalTool:
		return signal.AudienceInternal
	default:
		return signal.AudienceUnknown
	}
}

func scaleFor(snap *snapshot.Snapshot) signal.Scale {
	lines, deps := 0, 0
	if snap != nil {
		lines = snap.TotalLines
		deps = snap.DependencyCount
	}

	lineScale := signal.ScaleEnterprise
	for _, bp := range lineBreakpoints {
		if lines < bp.max {
			lineScale = bp.scale
			break
		}
	}
	depScale := signal.ScaleEnterprise
	for _, bp := range depBreakpoints {
		if deps < bp.max {
			depScale = bp.scale
			break
		}
	}

	if scaleRank(depScale) > scaleRank(lineScale) {
		return depScale
	}
	return lineScale
}

func scaleRank(s signal.Scale) int {
	switch s {
	case signal.ScaleSmall:
		return 0
	case signal.ScaleMedium:
		return 1
	case signal.ScaleLarge:
		return 2
	default:
		return 3
	}
}
