// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package detectors provides the built-in detector rule sets. Each detector
// is a group of independent pattern rules; new rules can be added without
// touching existing ones.
package detectors

import (
	"regexp"
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

// Signal names shared by the classifier and the finding rules. Detectors
// emit these; nothing else should invent new names ad hoc.
const (
	SigPayment           = "payment"
	SigCart              = "cart"
	SigProductCatalog    = "product-catalog"
	SigOrder             = "order"
	SigSubscription      = "subscription"
	SigMultiTenant       = "multi-tenant"
	SigAPIEndpoint       = "api-endpoint"
	SigAuth              = "auth"
	SigDatabase          = "database"
	SigCache             = "cache"
	SigSearch            = "search-capability"
	SigEmailDelivery     = "email-delivery"
	SigAnalytics         = "analytics"
	SigErrorMonitoring   = "error-monitoring"
	SigStructuredLogging = "structured-logging"
	SigInputValidation   = "input-validation"
	SigQueue             = "queue"
	SigRateLimiting      = "rate-limiting"
	SigPersonalization   = "personalization"
	SigFrontendFramework = "frontend-framework"
	SigStaticSite        = "static-site"
	SigCMS               = "cms"
	SigAdminUI           = "admin-ui"
	SigCronJobs          = "cron-jobs"
	SigReporting         = "reporting"

	SigTests  = "tests"
	SigCI     = "ci"
	SigDocker = "docker"
	SigIaC    = "infrastructure-as-code"

	SigPIIExposure      = "pii-exposure"
	SigHardcodedSecret  = "hardcoded-secret"
	SigSQLInjectionRisk = "sql-injection-risk"
	SigUnvalidatedInput = "unvalidated-input"
	SigConsoleLogging   = "console-logging"
	SigEvalUse          = "eval-use"
)

// maxMatchesPerFile caps how many times a single rule fires in one file, so
// one keyword-dense file cannot dominate the signal density.
const maxMatchesPerFile = 5

// maxSnippetLen truncates matched lines carried as evidence.
const maxSnippetLen = 160

// patternRule maps a regular expression over file content to a named signal.
type patternRule struct {
	name     string
	category signal.Category
	re       *regexp.Regexp
	strength float64
	exts     map[string]bool // nil = any analyzable extension
}

// codeExts limits a rule to script/source files, excluding config and docs
// where keyword matches are usually prose.
var codeExts = map[string]bool{
	".go": true, ".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".mjs": true, ".cjs": true, ".py": true, ".rb": true, ".php": true,
	".java": true, ".kt": true, ".cs": true, ".rs": true, ".swift": true,
	".scala": true, ".vue": true, ".svelte": true,
}

// applies reports whether a rule should run against the given file.
func (r patternRule) applies(f snapshot.FileRecord) bool {
	return r.exts == nil || r.exts[f.Extension]
}

// scanLines runs every rule against each line of the file and emits one
// signal per match, capped per rule per file.
func scanLines(f snapshot.FileRecord, rules []patternRule) []signal.Signal {
	var out []signal.Signal
	hits := make(map[string]int, len(rules))

	lines := strings.Split(f.Content, "\n")
	for i, line := range lines {
		for _, r := range rules {
			if hits[r.name] >= maxMatchesPerFile {
				continue
			}
			if !r.applies(f) {
				continue
			}
			if !r.re.MatchString(line) {
				continue
			}
			hits[r.name]++
			out = append(out, signal.Signal{
				Name:     r.name,
				Category: r.category,
				FilePath: f.Path,
				Line:     i + 1,
				Strength: r.strength,
				Snippet:  snippet(line),
			})
		}
	}
	return out
}

// snippet trims and truncates a matched line for evidence display.
func snippet(line string) string {
	s := strings.TrimSpace(line)
	if len(s) > maxSnippetLen {
		s = s[:maxSnippetLen]
	}
	return s
}
