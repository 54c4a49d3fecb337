// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package config handles .uplift.yaml configuration files. Precedence is
// CLI flags over file values over built-in defaults.
package config

import (
	"github.com/uplift-dev/uplift/internal/rank"
)

// FileName is the expected config file name in an analyzed tree's root.
const FileName = ".uplift.yaml"

// Config represents the contents of a .uplift.yaml file. Pointer fields
// distinguish "unset" from zero values during merging.
type Config struct {
	Format      string                    `yaml:"format,omitempty"`
	MaxFindings int                       `yaml:"max_findings,omitempty"`
	NoLLM       bool                      `yaml:"no_llm,omitempty"`
	CatalogPath string                    `yaml:"catalog_path,omitempty"`
	Strategies  []string                  `yaml:"strategies,omitempty"`
	Weights     *WeightsConfig            `yaml:"weights,omitempty"`
	Detectors   map[string]DetectorConfig `yaml:"detectors,omitempty"`
}

// WeightsConfig overrides individual scoring weights.
type WeightsConfig struct {
	Impact     *float64 `yaml:"impact,omitempty"`
	Effort     *float64 `yaml:"effort,omitempty"`
	Confidence *float64 `yaml:"confidence,omitempty"`
	ContextFit *float64 `yaml:"context_fit,omitempty"`
}

// DetectorConfig holds per-detector settings in the config file.
type DetectorConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// Settings is the fully resolved runtime configuration after merging CLI
// flags, file config, and defaults.
type Settings struct {
	Format      string
	MaxFindings int
	NoLLM       bool
	CatalogPath string
	Strategies  []string
	Weights     rank.Weights

	// ExcludeDetectors lists detector names disabled in config. The
	// deep strategy runs every registered detector minus these.
	ExcludeDetectors []string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Format:      "table",
		MaxFindings: rank.MaxFindings,
		Weights:     rank.DefaultWeights,
	}
}
