// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package snapshot builds an immutable file-tree snapshot of a codebase for
// analysis. The builder walks a root directory, skips hidden and
// dependency-cache directories, and eagerly loads the content of
// text-analyzable files.
package snapshot

import "strings"

// FileRecord is one text-analyzable file in a snapshot. Paths are relative
// to the snapshot root and slash-separated.
type FileRecord struct {
	Path      string
	Extension string
	SizeBytes int64
	Content   string
	Lines     int
}

// Snapshot is the ordered, immutable file list for a single analysis run.
// It is owned exclusively by that run and never mutated after Build returns.
type Snapshot struct {
	Root            string
	Files           []FileRecord
	TotalLines      int
	DependencyCount int
}

// FileCount returns the number of files in the snapshot.
func (s *Snapshot) FileCount() int {
	if s == nil {
		return 0
	}
	return len(s.Files)
}

// analyzableExtensions is the allow-list of extensions whose content is
// loaded. Binary formats and lockfiles are excluded.
var analyzableExtensions = map[string]bool{
	".go":     true,
	".js":     true,
	".jsx":    true,
	".ts":     true,
	".tsx":    true,
	".mjs":    true,
	".cjs":    true,
	".py":     true,
	".rb":     true,
	".php":    true,
	".java":   true,
	".kt":     true,
	".cs":     true,
	".rs":     true,
	".swift":  true,
	".scala":  true,
	".vue":    true,
	".svelte": true,
	".html":   true,
	".erb":    true,
	".ejs":    true,
	".css":    true,
	".scss":   true,
	".sql":    true,
	".sh":     true,
	".yaml":   true,
	".yml":    true,
	".toml":   true,
	".json":   true,
	".tf":     true,
	".env":    true,
	".md":     true,
}

// analyzableBasenames allow-lists extensionless files that carry strong
// signals (manifests, build and CI configuration).
var analyzableBasenames = map[string]bool{
	"go.mod":           true,
	"Gemfile":          true,
	"requirements.txt": true,
	"Dockerfile":       true,
	"Makefile":         true,
	"Procfile":         true,
	"Jenkinsfile":      true,
}

// dependencyDirs are directory names that hold third-party code or build
// output and are always skipped.
var dependencyDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"target":       true,
	"dist":         true,
	"build":        true,
	"out":          true,
	"bin":          true,
	"obj":          true,
	"__pycache__":  true,
	"venv":         true,
	"env":          true,
	"site-packages": true,
	"bower_components": true,
	"coverage":     true,
}

// hiddenDirExceptions are dot-directories kept in the walk because they
// carry CI and tooling evidence.
var hiddenDirExceptions = map[string]bool{
	".github":   true,
	".gitlab":   true,
	".circleci": true,
}

// skipDir reports whether a directory should be pruned from the walk.
// Hidden directories (leading dot) and dependency caches are skipped,
// except the CI directories listed above.
func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return !hiddenDirExceptions[name]
	}
	return dependencyDirs[name]
}
