// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package report renders analysis results as JSON, Markdown, or a terminal
// table. Rendering is deterministic: the same result always produces the
// same bytes, so nothing here reads clocks or randomness.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
)

// Output formats accepted by Render.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatTable    = "table"
)

// ValidFormat reports whether name is a known output format.
func ValidFormat(name string) bool {
	switch name {
	case FormatJSON, FormatMarkdown, FormatTable:
		return true
	}
	return false
}

// Render writes the result to w in the named format.
func Render(w io.Writer, result *signal.AnalysisResult, format string) error {
	switch format {
	case FormatJSON:
		return RenderJSON(w, result)
	case FormatMarkdown:
		return RenderMarkdown(w, result)
	case FormatTable:
		return RenderTable(w, result)
	default:
		return fmt.Errorf("unknown format %q (valid: json, markdown, table)", format)
	}
}

// RenderJSON writes the result as indented JSON.
func RenderJSON(w io.Writer, result *signal.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}

// RenderMarkdown writes the result as a Markdown report.
func RenderMarkdown(w io.Writer, result *signal.AnalysisResult) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Uplift Analysis\n\n")
	fmt.Fprintf(&b, "**Context:** %s (audience: %s, scale: %s)\n\n",
		result.Context.Type, result.Context.Audience, result.Context.Scale)
	fmt.Fprintf(&b, "**Scanned:** %d files, %d lines, %d dependencies (strategy: %s)\n\n",
		result.Metadata.FilesScanned, result.Metadata.TotalLines,
		result.Metadata.DependencyCount, result.Metadata.Strategy)

	if len(result.Findings) == 0 {
		b.WriteString("No findings.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	for i, f := range result.Findings {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, f.Title)
		fmt.Fprintf(&b, "- **Category:** %s\n", f.Category)
		fmt.Fprintf(&b, "- **Impact:** %s / 10, **Effort:** %s / 10, **Confidence:** %s\n",
			formatScore(f.Impact), formatScore(f.Effort), formatConfidence(f.Confidence))
		fmt.Fprintf(&b, "\n%s\n", f.Description)

		if len(f.AffectedFiles) > 0 {
			b.WriteString("\nAffected files:\n\n")
			for _, a := range f.AffectedFiles {
				if a.Line > 0 {
					fmt.Fprintf(&b, "- `%s:%d`\n", a.Path, a.Line)
				} else {
					fmt.Fprintf(&b, "- `%s`\n", a.Path)
				}
			}
		}
		if len(f.Providers) > 0 {
			b.WriteString("\nCandidate solutions:\n\n")
			for _, p := range f.Providers {
				fmt.Fprintf(&b, "- [%s](%s) (%s) — %s\n", p.Name, p.URL, p.Pricing, p.BusinessImpact)
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderTable writes a compact terminal summary.
func RenderTable(w io.Writer, result *signal.AnalysisResult) error {
	fmt.Fprintf(w, "%s %s (audience: %s, scale: %s)\n",
		SectionTitle("Context:"), result.Context.Type,
		result.Context.Audience, result.Context.Scale)
	fmt.Fprintf(w, "Scanned %d files, %d lines, %d dependencies (strategy: %s)\n\n",
		result.Metadata.FilesScanned, result.Metadata.TotalLines,
		result.Metadata.DependencyCount, result.Metadata.Strategy)

	if len(result.Findings) == 0 {
		_, err := fmt.Fprintln(w, "No findings.")
		return err
	}

	t := NewTable(
		Column{Header: "#", Align: AlignRight},
		Column{Header: "CATEGORY"},
		Column{Header: "FINDING"},
		Column{Header: "IMPACT", Align: AlignRight, Color: ColorImpact},
		Column{Header: "EFFORT", Align: AlignRight},
		Column{Header: "CONF", Align: AlignRight, Color: ColorConfidence},
		Column{Header: "TOP PROVIDER"},
	)
	for i, f := range result.Findings {
		provider := ""
		if len(f.Providers) > 0 {
			provider = f.Providers[0].Name
		}
		t.AddRow(
			strconv.Itoa(i+1),
			f.Category,
			f.Title,
			formatScore(f.Impact),
			formatScore(f.Effort),
			formatConfidence(f.Confidence),
			provider,
		)
	}
	return t.Render(w)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatConfidence(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
