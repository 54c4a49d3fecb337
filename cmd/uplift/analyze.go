// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uplift-dev/uplift/internal/analyzer"
	"github.com/uplift-dev/uplift/internal/catalog"
	"github.com/uplift-dev/uplift/internal/config"
	"github.com/uplift-dev/uplift/internal/llm"
	"github.com/uplift-dev/uplift/internal/report"
	"github.com/uplift-dev/uplift/internal/signal"
)

// Analyze-specific flag values.
var (
	analyzeFormat      string
	analyzeOutput      string
	analyzeStrategy    string
	analyzeMaxFindings int
	analyzeNoLLM       bool
	analyzeExclude     []string
	analyzeCatalogPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze a codebase and rank improvement findings",
	Long: `Analyze a source tree and output ranked improvement findings.

Strategies run in a fixed fallback order (deep, standard, baseline); if a
richer strategy fails, the next one produces a degraded result instead of
failing the whole run. Use --strategy to pin a single strategy.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "", "output format (json, markdown, table)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "output file path (default: stdout)")
	analyzeCmd.Flags().StringVarP(&analyzeStrategy, "strategy", "s", "", "run a single strategy (deep, standard, baseline)")
	analyzeCmd.Flags().IntVar(&analyzeMaxFindings, "max-findings", 0, "cap the number of findings (0 = default)")
	analyzeCmd.Flags().BoolVar(&analyzeNoLLM, "no-llm", false, "skip the LLM description enrichment pass")
	analyzeCmd.Flags().StringSliceVarP(&analyzeExclude, "exclude-detectors", "x", nil, "detector names to skip (comma-separated)")
	analyzeCmd.Flags().StringVar(&analyzeCatalogPath, "catalog", "", "path to a provider catalog JSON file (default: embedded)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return exitError(ExitInvalidArgs, "uplift: cannot resolve path: %v", err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return exitError(ExitInvalidArgs, "uplift: %q is not a directory", root)
	}

	settings, err := resolveSettings(cmd, root)
	if err != nil {
		return exitError(ExitInvalidArgs, "uplift: %v", err)
	}

	cat, err := loadCatalog(settings.CatalogPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "uplift: %v", err)
	}

	var strategies []string
	switch {
	case analyzeStrategy != "":
		strategies = []string{analyzeStrategy}
	default:
		strategies = settings.Strategies
	}
	chain, err := analyzer.ChainWith(cat, strategies, settings.Weights, settings.ExcludeDetectors...)
	if err != nil {
		return exitError(ExitInvalidArgs, "uplift: %v", err)
	}

	result, err := chain.Run(cmd.Context(), analyzer.Input{Root: root})
	if err != nil {
		var chainErr *analyzer.ChainError
		if errors.As(err, &chainErr) {
			return exitError(ExitTotalFailure, "uplift: %v", err)
		}
		return err
	}
	degraded := len(strategies) == 0 && result.Metadata.Strategy != analyzer.StrategyDeep

	if settings.MaxFindings > 0 && len(result.Findings) > settings.MaxFindings {
		result.Findings = result.Findings[:settings.MaxFindings]
	}

	if !settings.NoLLM {
		enrichFindings(cmd.Context(), result)
	}

	out := cmd.OutOrStdout()
	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput) //nolint:gosec // user-provided output path
		if err != nil {
			return exitError(ExitInvalidArgs, "uplift: cannot create output file: %v", err)
		}
		defer f.Close() //nolint:errcheck // flushed by Render error path
		out = f
	}
	if err := report.Render(out, result, settings.Format); err != nil {
		return err
	}

	if degraded {
		return exitError(ExitDegraded, "")
	}
	return nil
}

// resolveSettings merges CLI flags over local and global config files. A
// flag the user set explicitly wins even when its value equals the default,
// so explicitness comes from Flags().Changed rather than value comparison.
func resolveSettings(cmd *cobra.Command, root string) (config.Settings, error) {
	local, err := config.Load(root)
	if err != nil {
		return config.Settings{}, fmt.Errorf("loading %s: %w", config.FileName, err)
	}
	if err := config.Validate(local); err != nil {
		return config.Settings{}, err
	}
	global, err := config.LoadGlobal()
	if err != nil {
		slog.Warn("ignoring unreadable global config", "error", err)
		global = nil
	}

	changed := cmd.Flags().Changed
	set := config.Explicit{
		Format: changed("format"),
		// --max-findings=0 means "use the default", not an override.
		MaxFindings:      changed("max-findings") && analyzeMaxFindings > 0,
		NoLLM:            changed("no-llm"),
		CatalogPath:      changed("catalog"),
		ExcludeDetectors: changed("exclude-detectors"),
	}

	cli := config.Defaults()
	if set.Format {
		if !report.ValidFormat(analyzeFormat) {
			return config.Settings{}, fmt.Errorf("unknown format %q (valid: json, markdown, table)", analyzeFormat)
		}
		cli.Format = analyzeFormat
	}
	if set.MaxFindings {
		cli.MaxFindings = analyzeMaxFindings
	}
	cli.NoLLM = analyzeNoLLM
	cli.CatalogPath = analyzeCatalogPath
	cli.ExcludeDetectors = analyzeExclude

	return config.Merge(cli, set, local, global), nil
}

// enrichFindings rewrites finding descriptions with an LLM when an API key
// is available. Any failure leaves the findings untouched.
func enrichFindings(ctx context.Context, result *signal.AnalysisResult) {
	client, err := llm.NewAnthropicClient()
	if err != nil {
		slog.Debug("skipping LLM enrichment", "reason", err)
		return
	}
	enriched, err := llm.EnrichFindings(ctx, client, result.Context, result.Findings)
	if err != nil {
		slog.Warn("LLM enrichment failed, keeping original descriptions", "error", err)
		return
	}
	result.Findings = enriched
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Load()
	}
	return catalog.LoadFile(path)
}
