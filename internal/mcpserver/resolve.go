// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes uplift's analysis as tools over a stdio transport.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath resolves a tree path to an absolute, symlink-resolved
// directory. An empty path means the current directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("cannot resolve path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("path %q does not exist", path)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", path)
	}
	return abs, nil
}
