// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package config

import "sort"

// Explicit records which CLI-derived settings the user set explicitly. A
// field set on the command line keeps its value even when it happens to
// equal the default; callers populate this from cobra's Flags().Changed.
type Explicit struct {
	Format           bool
	MaxFindings      bool
	NoLLM            bool
	CatalogPath      bool
	Strategies       bool
	ExcludeDetectors bool
}

// Merge layers file configs under CLI-derived settings. Fields marked
// explicit in set always win; otherwise the first file config that sets a
// field wins, and anything still unset keeps its default. Files are given
// in precedence order, local before global.
func Merge(cli Settings, set Explicit, files ...*Config) Settings {
	out := cli
	var weightSet [4]bool

	for _, f := range files {
		if f == nil {
			continue
		}
		if !set.Format && f.Format != "" {
			out.Format = f.Format
			set.Format = true
		}
		if !set.MaxFindings && f.MaxFindings > 0 {
			out.MaxFindings = f.MaxFindings
			set.MaxFindings = true
		}
		if !set.NoLLM && f.NoLLM {
			out.NoLLM = true
			set.NoLLM = true
		}
		if !set.CatalogPath && f.CatalogPath != "" {
			out.CatalogPath = f.CatalogPath
			set.CatalogPath = true
		}
		if !set.Strategies && len(f.Strategies) > 0 {
			out.Strategies = f.Strategies
			set.Strategies = true
		}
		if f.Weights != nil {
			applyWeights(&out, f.Weights, &weightSet)
		}
		if !set.ExcludeDetectors && len(f.Detectors) > 0 {
			out.ExcludeDetectors = disabledDetectors(f.Detectors)
			set.ExcludeDetectors = true
		}
	}
	return out
}

// applyWeights copies weight overrides. The first file to set a weight
// wins, even when that value equals the default.
func applyWeights(s *Settings, w *WeightsConfig, set *[4]bool) {
	if w.Impact != nil && !set[0] {
		s.Weights.Impact = *w.Impact
		set[0] = true
	}
	if w.Effort != nil && !set[1] {
		s.Weights.Effort = *w.Effort
		set[1] = true
	}
	if w.Confidence != nil && !set[2] {
		s.Weights.Confidence = *w.Confidence
		set[2] = true
	}
	if w.ContextFit != nil && !set[3] {
		s.Weights.ContextFit = *w.ContextFit
		set[3] = true
	}
}

// disabledDetectors returns the detector names explicitly disabled in the
// config map, sorted for stable downstream behavior.
func disabledDetectors(m map[string]DetectorConfig) []string {
	var out []string
	for name, dc := range m {
		if dc.Enabled != nil && !*dc.Enabled {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
