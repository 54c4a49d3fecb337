// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uplift-dev/uplift/internal/report"
)

var catalogCategory string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the provider catalog",
	Long: `List the third-party solution catalog that findings are matched against.
Each entry carries pricing, implementation complexity (1-5, lower is
easier), and declared ROI (1-5, higher is better).`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogCategory, "category", "c", "", "show entries for one finding category")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cat, err := loadCatalog(analyzeCatalogPath)
	if err != nil {
		return exitError(ExitInvalidArgs, "uplift: %v", err)
	}

	entries := cat.All()
	if catalogCategory != "" {
		entries = cat.Entries(catalogCategory)
		if len(entries) == 0 {
			return exitError(ExitInvalidArgs, "uplift: unknown category %q (valid: %s)",
				catalogCategory, strings.Join(cat.Categories(), ", "))
		}
	}

	t := report.NewTable(
		report.Column{Header: "NAME"},
		report.Column{Header: "CATEGORY"},
		report.Column{Header: "PRICING"},
		report.Column{Header: "COMPLEXITY", Align: report.AlignRight},
		report.Column{Header: "ROI", Align: report.AlignRight},
	)
	for _, e := range entries {
		t.AddRow(e.Name, e.Category, e.Pricing, strconv.Itoa(e.Complexity), strconv.Itoa(e.ROI))
	}
	return t.Render(cmd.OutOrStdout())
}
