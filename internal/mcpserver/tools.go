// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/uplift-dev/uplift/internal/analyzer"
	"github.com/uplift-dev/uplift/internal/catalog"
	"github.com/uplift-dev/uplift/internal/config"
	"github.com/uplift-dev/uplift/internal/report"
)

// AnalyzeInput is the input schema for the analyze MCP tool.
type AnalyzeInput struct {
	Path        string `json:"path" jsonschema:"Codebase path to analyze (defaults to current directory)"`
	Strategy    string `json:"strategy,omitempty" jsonschema:"Single strategy to run: deep, standard, or baseline (default: full fallback chain)"`
	MaxFindings int    `json:"max_findings,omitempty" jsonschema:"Cap the number of findings returned (0 = default)"`
	Format      string `json:"format,omitempty" jsonschema:"Output format: json or markdown (default: json)"`
}

// CatalogInput is the input schema for the catalog MCP tool.
type CatalogInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter entries to one finding category (default: all)"`
}

func boolPtr(b bool) *bool { return &b }

// registerTools adds all uplift tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze",
		Description: "Analyze a codebase and return ranked improvement findings: detected business context, capability gaps scored by impact/effort/confidence, and candidate third-party solutions.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleAnalyze)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "catalog",
		Description: "List the provider catalog: third-party products that address finding categories, with pricing, complexity, and ROI.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleCatalog)
}

func handleAnalyze(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, any, error) {
	root, err := ResolvePath(input.Path)
	if err != nil {
		return nil, nil, err
	}

	fileCfg, err := config.Load(root)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if err := config.Validate(fileCfg); err != nil {
		return nil, nil, err
	}
	settings := config.Merge(config.Defaults(), config.Explicit{}, fileCfg)

	cat, err := loadCatalog(settings.CatalogPath)
	if err != nil {
		return nil, nil, err
	}

	strategies := settings.Strategies
	if input.Strategy != "" {
		strategies = []string{input.Strategy}
	}
	chain, err := analyzer.ChainWith(cat, strategies, settings.Weights, settings.ExcludeDetectors...)
	if err != nil {
		return nil, nil, err
	}

	result, err := chain.Run(ctx, analyzer.Input{Root: root})
	if err != nil {
		return nil, nil, fmt.Errorf("analysis failed: %w", err)
	}

	maxFindings := settings.MaxFindings
	if input.MaxFindings > 0 {
		maxFindings = input.MaxFindings
	}
	if maxFindings > 0 && len(result.Findings) > maxFindings {
		result.Findings = result.Findings[:maxFindings]
	}

	format := report.FormatJSON
	if input.Format != "" {
		format = input.Format
	}
	if format != report.FormatJSON && format != report.FormatMarkdown {
		return nil, nil, fmt.Errorf("unknown format %q (valid: json, markdown)", input.Format)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, result, format); err != nil {
		return nil, nil, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: buf.String()}},
	}, result, nil
}

func handleCatalog(_ context.Context, _ *mcp.CallToolRequest, input CatalogInput) (*mcp.CallToolResult, any, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, err
	}

	var entries []catalog.Entry
	if input.Category != "" {
		entries = cat.Entries(input.Category)
		if len(entries) == 0 {
			return nil, nil, fmt.Errorf("unknown category %q (valid: %s)",
				input.Category, strings.Join(cat.Categories(), ", "))
		}
	} else {
		entries = cat.All()
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s (%s, %s): %s [complexity %d/5, roi %d/5]\n",
			e.Name, e.Category, e.Pricing, e.BusinessImpact, e.Complexity, e.ROI)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: b.String()}},
	}, entries, nil
}

// loadCatalog loads the embedded catalog, or a file override from config.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}
