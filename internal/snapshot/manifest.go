// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/mod/modfile"
)

// countDependencies sums declared third-party dependencies across every
// recognized manifest in the snapshot. Manifests that fail to parse are
// ignored; a malformed package.json should not sink the whole analysis.
func countDependencies(files []FileRecord) int {
	total := 0
	for _, f := range files {
		base := filepath.Base(f.Path)
		switch base {
		case "go.mod":
			total += countGoMod(f)
		case "package.json":
			total += countPackageJSON(f)
		case "Cargo.toml":
			total += countCargoTOML(f)
		case "pyproject.toml":
			total += countPyprojectTOML(f)
		case "requirements.txt":
			total += countRequirements(f)
		case "Gemfile":
			total += countGemfile(f)
		}
	}
	return total
}

func countGoMod(f FileRecord) int {
	mf, err := modfile.Parse(f.Path, []byte(f.Content), nil)
	if err != nil {
		slog.Debug("unparseable go.mod", "path", f.Path, "error", err)
		return 0
	}
	n := 0
	for _, r := range mf.Require {
		if !r.Indirect {
			n++
		}
	}
	return n
}

func countPackageJSON(f FileRecord) int {
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(f.Content), &pkg); err != nil {
		slog.Debug("unparseable package.json", "path", f.Path, "error", err)
		return 0
	}
	return len(pkg.Dependencies) + len(pkg.DevDependencies)
}

func countCargoTOML(f FileRecord) int {
	var manifest struct {
		Dependencies    map[string]toml.Primitive `toml:"dependencies"`
		DevDependencies map[string]toml.Primitive `toml:"dev-dependencies"`
	}
	if _, err := toml.Decode(f.Content, &manifest); err != nil {
		slog.Debug("unparseable Cargo.toml", "path", f.Path, "error", err)
		return 0
	}
	return len(manifest.Dependencies) + len(manifest.DevDependencies)
}

func countPyprojectTOML(f FileRecord) int {
	var manifest struct {
		Project struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"project"`
		Tool struct {
			Poetry struct {
				Dependencies map[string]toml.Primitive `toml:"dependencies"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if _, err := toml.Decode(f.Content, &manifest); err != nil {
		slog.Debug("unparseable pyproject.toml", "path", f.Path, "error", err)
		return 0
	}
	n := len(manifest.Project.Dependencies) + len(manifest.Tool.Poetry.Dependencies)
	// Poetry always declares a python version constraint; it is not a dep.
	if manifest.Tool.Poetry.Dependencies != nil {
		if _, ok := manifest.Tool.Poetry.Dependencies["python"]; ok {
			n--
		}
	}
	return n
}

func countRequirements(f FileRecord) int {
	n := 0
	for _, line := range strings.Split(f.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		n++
	}
	return n
}

func countGemfile(f FileRecord) int {
	n := 0
	for _, line := range strings.Split(f.Content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "gem ") {
			n++
		}
	}
	return n
}
