// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	upliftlog "github.com/uplift-dev/uplift/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for uplift.
var rootCmd = &cobra.Command{
	Use:   "uplift",
	Short: "Find ranked improvement opportunities in a codebase",
	Long: `Uplift analyzes a source tree with heuristic detectors, classifies what
kind of application it is, and produces a ranked list of improvement
findings — capability gaps scored by business impact, implementation
effort, and confidence, each backed by candidate third-party solutions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		upliftlog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
