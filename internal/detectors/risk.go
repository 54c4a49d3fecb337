// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package detectors

import (
	"regexp"

	"github.com/uplift-dev/uplift/internal/detector"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

func init() {
	detector.Register(&RiskDetector{rules: riskRules})
}

// riskRules flag hazards: PII handling, hardcoded credentials, injection
// vectors, and logging practices that leak into production.
var riskRules = []patternRule{
	{name: SigPIIExposure, category: signal.CategoryRisk, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(ssn|social[_-]?security|date[_-]?of[_-]?birth|passport[_-]?(number|no)|credit[_-]?card[_-]?(number|no)|card[_-]?holder)\b`)},
	{name: SigHardcodedSecret, category: signal.CategoryRisk, strength: 1,
		re: regexp.MustCompile(`(?i)((api[_-]?key|api[_-]?secret|secret[_-]?key|access[_-]?token|password)\s*[:=]\s*['"][^'"]{8,}['"])|AKIA[0-9A-Z]{16}|-----BEGIN (RSA |EC |OPENSSH )?PRIVATE KEY-----`)},
	{name: SigSQLInjectionRisk, category: signal.CategoryRisk, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)(select|insert|update|delete)\s+.*['"]\s*\+\s*(req\.(body|params|query)|request\.(args|form|POST|GET)|params\[)|f["']\s*(select|insert|update|delete)\b`)},
	{name: SigUnvalidatedInput, category: signal.CategoryRisk, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`req\.(body|params|query)|request\.(args|form|POST|GET)|params\.require|\$_(POST|GET|REQUEST)`)},
	{name: SigConsoleLogging, category: signal.CategoryRisk, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`console\.(log|error|warn)\s*\(|\bprint\s*\(|fmt\.Print(ln|f)?\s*\(|System\.out\.print|var_dump\s*\(|\bputs\s`)},
	{name: SigEvalUse, category: signal.CategoryRisk, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`\beval\s*\(|new Function\s*\(|exec\s*\(\s*f?["']`)},
}

// RiskDetector emits risk signals about the handling of data and input.
type RiskDetector struct {
	rules []patternRule
}

func (d *RiskDetector) Name() string { return "risk" }

func (d *RiskDetector) Detect(f snapshot.FileRecord) []signal.Signal {
	return scanLines(f, d.rules)
}

var _ detector.Detector = (*RiskDetector)(nil)
