// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
)

const enrichSystem = `You improve codebase analysis reports. Given findings for a codebase,
rewrite each description to be specific to that codebase's context. Keep each
description under 80 words. Do not invent files or facts not present in the
finding. Respond with a JSON array of {"id": "...", "description": "..."}
objects, one per finding, and nothing else.`

// enrichMaxTokens bounds one enrichment completion.
const enrichMaxTokens = 2048

// enrichedDescription is one element of the model's JSON reply.
type enrichedDescription struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// promptFinding is the trimmed view of a finding sent to the model.
// Snippets are deliberately excluded so source lines never leave the host.
type promptFinding struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Impact      float64 `json:"impact"`
}

// EnrichFindings asks the model for codebase-specific descriptions and
// returns a new finding slice with them applied. Scores, ordering, and every
// other field are preserved. On any failure the original findings are
// returned along with the error, so callers can always keep going.
func EnrichFindings(ctx context.Context, c Client, bctx signal.BusinessContext, findings []signal.Finding) ([]signal.Finding, error) {
	if len(findings) == 0 {
		return findings, nil
	}

	trimmed := make([]promptFinding, len(findings))
	for i, f := range findings {
		trimmed[i] = promptFinding{
			ID:          f.ID,
			Category:    f.Category,
			Title:       f.Title,
			Description: f.Description,
			Impact:      f.Impact,
		}
	}
	payload, err := json.Marshal(trimmed)
	if err != nil {
		return findings, fmt.Errorf("llm: encoding findings: %w", err)
	}

	prompt := fmt.Sprintf("Codebase type: %s (audience: %s, scale: %s)\n\nFindings:\n%s",
		bctx.Type, bctx.Audience, bctx.Scale, payload)

	resp, err := c.Complete(ctx, Request{
		System:    enrichSystem,
		Prompt:    prompt,
		MaxTokens: enrichMaxTokens,
	})
	if err != nil {
		return findings, fmt.Errorf("llm: enrichment request: %w", err)
	}

	descriptions, err := parseEnriched(resp.Content)
	if err != nil {
		return findings, err
	}

	byID := make(map[string]string, len(descriptions))
	for _, d := range descriptions {
		if strings.TrimSpace(d.Description) != "" {
			byID[d.ID] = d.Description
		}
	}

	out := make([]signal.Finding, len(findings))
	copy(out, findings)
	for i := range out {
		if desc, ok := byID[out[i].ID]; ok {
			out[i].Description = desc
		}
	}
	return out, nil
}

// parseEnriched extracts the JSON array from a model reply, tolerating
// surrounding prose and markdown fences.
func parseEnriched(content string) ([]enrichedDescription, error) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("llm: no JSON array in enrichment reply")
	}

	var out []enrichedDescription
	if err := json.Unmarshal([]byte(content[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("llm: decoding enrichment reply: %w", err)
	}
	return out, nil
}
