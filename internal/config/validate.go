// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uplift-dev/uplift/internal/analyzer"
	"github.com/uplift-dev/uplift/internal/report"
)

// Validate checks every field of a file config and returns all errors at
// once, so a user fixes the whole file in one pass.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Format != "" && !report.ValidFormat(cfg.Format) {
		errs = append(errs, fmt.Sprintf("format: unknown value %q (valid: json, markdown, table)", cfg.Format))
	}
	if cfg.MaxFindings < 0 {
		errs = append(errs, fmt.Sprintf("max_findings: must be non-negative, got %d", cfg.MaxFindings))
	}

	for _, s := range cfg.Strategies {
		switch s {
		case analyzer.StrategyDeep, analyzer.StrategyStandard, analyzer.StrategyBaseline:
		default:
			errs = append(errs, fmt.Sprintf("strategies: unknown strategy %q (valid: deep, standard, baseline)", s))
		}
	}

	if cfg.Weights != nil {
		for name, v := range map[string]*float64{
			"impact":      cfg.Weights.Impact,
			"effort":      cfg.Weights.Effort,
			"confidence":  cfg.Weights.Confidence,
			"context_fit": cfg.Weights.ContextFit,
		} {
			if v != nil && (*v < 0 || *v > 100) {
				errs = append(errs, fmt.Sprintf("weights.%s: must be between 0 and 100, got %g", name, *v))
			}
		}
	}

	if len(errs) > 0 {
		// Map iteration above means multiple weight errors may arrive in
		// any order; sort for a stable message.
		sort.Strings(errs)
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
