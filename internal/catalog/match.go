// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"sort"
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
)

// maxProviders caps how many catalog entries are attached to one finding.
const maxProviders = 3

// minTokenLen filters insignificant words from overlap scoring.
const minTokenLen = 3

// Scoring weights: textual relevance dominates; lower implementation
// complexity and higher declared ROI break near-ties.
const (
	overlapWeight    = 1.0
	complexityWeight = 0.5 // applied to (5 - complexity)
	roiWeight        = 0.25
)

// Match ranks catalog entries against a finding and returns the top
// candidates (at most three) as providers. Entries in the finding's own
// category are considered first; if none score above zero, the whole catalog
// is searched. A finding no entry matches gets an empty list, never an
// error.
func (c *Catalog) Match(f signal.Finding) []signal.Provider {
	if c == nil || len(c.flat) == 0 {
		return nil
	}

	candidates := c.entries[f.Category]
	matched := rank(f, candidates)
	if len(matched) == 0 {
		matched = rank(f, c.flat)
	}

	if len(matched) > maxProviders {
		matched = matched[:maxProviders]
	}

	providers := make([]signal.Provider, len(matched))
	for i, e := range matched {
		providers[i] = signal.Provider{
			Name:               e.Name,
			Company:            e.Company,
			URL:                e.URL,
			Pricing:            e.Pricing,
			BusinessImpact:     e.BusinessImpact,
			ImplementationTime: e.ImplementationTime,
			Complexity:         e.Complexity,
			ROI:                e.ROI,
		}
	}
	return providers
}

// rank scores entries against the finding and returns those scoring above
// zero, best first. The sort is stable so catalog order breaks ties.
func rank(f signal.Finding, entries []Entry) []Entry {
	findingTokens := tokenize(f.Category + " " + f.Title + " " + f.Description)

	type scored struct {
		entry Entry
		score float64
	}
	var kept []scored
	for _, e := range entries {
		overlap := overlapCount(findingTokens, entryTokens(e))
		if overlap == 0 {
			continue
		}
		score := overlapWeight*float64(overlap) +
			complexityWeight*float64(5-e.Complexity) +
			roiWeight*float64(e.ROI)
		kept = append(kept, scored{entry: e, score: score})
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })

	out := make([]Entry, len(kept))
	for i, s := range kept {
		out[i] = s.entry
	}
	return out
}

// entryTokens gathers an entry's significant words from its declared
// use-cases, name, and description.
func entryTokens(e Entry) map[string]bool {
	text := e.Name + " " + e.Description + " " + strings.Join(e.UseCases, " ")
	return tokenize(text)
}

// tokenize lower-cases text and returns its significant words (longer than
// three characters, letters and digits only).
func tokenize(text string) map[string]bool {
	out := make(map[string]bool)
	var b strings.Builder
	flush := func() {
		if b.Len() > minTokenLen {
			out[b.String()] = true
		}
		b.Reset()
	}
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return out
}

// overlapCount counts tokens present in both sets.
func overlapCount(a, b map[string]bool) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if b[tok] {
			n++
		}
	}
	return n
}
