// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package detectors

import (
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
)

// FromPriorScan converts an external scanner's coarse result into seed
// signals so the classifier and finding rules can use it alongside detector
// output. Unknown values are ignored; the prior scan supplements detection,
// it never replaces it.
func FromPriorScan(p *signal.PriorScan) []signal.Signal {
	if p == nil {
		return nil
	}
	var out []signal.Signal
	seed := func(name string, strength float64) {
		out = append(out, signal.Signal{
			Name:     name,
			Category: signal.CategoryTechnology,
			FilePath: "",
			Strength: strength,
		})
	}

	for range p.Endpoints {
		seed(SigAPIEndpoint, 1)
	}
	for range p.AuthFlows {
		seed(SigAuth, 1)
	}

	switch strings.ToLower(p.Framework) {
	case "react", "vue", "angular", "svelte":
		seed(SigFrontendFramework, 2)
	case "rails", "django", "laravel", "express", "gin", "spring", "fastapi", "flask":
		seed(SigAPIEndpoint, 2)
	case "gatsby", "jekyll", "hugo", "astro":
		seed(SigStaticSite, 2)
	case "wordpress":
		seed(SigCMS, 2)
	}

	return out
}
