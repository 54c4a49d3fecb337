// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package detectors

import (
	"path/filepath"
	"strings"

	"github.com/uplift-dev/uplift/internal/detector"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

func init() {
	detector.Register(&HygieneDetector{})
}

// HygieneDetector emits one signal per file for engineering-practice
// evidence that lives in paths rather than content: test files, CI
// configuration, container and infrastructure definitions.
type HygieneDetector struct{}

func (d *HygieneDetector) Name() string { return "hygiene" }

func (d *HygieneDetector) Detect(f snapshot.FileRecord) []signal.Signal {
	var out []signal.Signal
	emit := func(name string) {
		out = append(out, signal.Signal{
			Name:     name,
			Category: signal.CategoryTechnology,
			FilePath: f.Path,
			Strength: 1,
		})
	}

	if isTestPath(f.Path) {
		emit(SigTests)
	}
	if isCIPath(f.Path) {
		emit(SigCI)
	}
	base := filepath.Base(f.Path)
	if base == "Dockerfile" || base == "docker-compose.yml" || base == "docker-compose.yaml" {
		emit(SigDocker)
	}
	if f.Extension == ".tf" {
		emit(SigIaC)
	}
	return out
}

// isTestPath matches common test-file naming conventions across languages.
func isTestPath(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, "_test.go"),
		strings.HasSuffix(base, "_spec.rb"),
		strings.HasSuffix(base, "_test.rb"),
		strings.HasSuffix(base, "_test.py"),
		strings.HasPrefix(base, "test_") && strings.HasSuffix(base, ".py"):
		return true
	}
	for _, suffix := range []string{".test.js", ".test.ts", ".test.jsx", ".test.tsx", ".spec.js", ".spec.ts", ".spec.jsx", ".spec.tsx"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	for _, dir := range []string{"tests/", "test/", "spec/", "__tests__/"} {
		if strings.HasPrefix(path, dir) || strings.Contains(path, "/"+dir) {
			return true
		}
	}
	return false
}

// isCIPath matches CI pipeline definitions.
func isCIPath(path string) bool {
	if strings.HasPrefix(path, ".github/workflows/") {
		return true
	}
	base := filepath.Base(path)
	return base == ".gitlab-ci.yml" || base == "Jenkinsfile" || base == ".travis.yml" || base == "azure-pipelines.yml"
}

var _ detector.Detector = (*HygieneDetector)(nil)
