// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// defaultMaxFileSize caps how many bytes of a single file are loaded.
// Larger files are skipped; they are almost always generated or vendored.
const defaultMaxFileSize = 1 << 20 // 1 MiB

// Options configures a snapshot build.
type Options struct {
	// MaxFileSize caps per-file content size in bytes. Zero means the
	// default (1 MiB).
	MaxFileSize int64

	// ExcludePatterns skips files whose relative path matches any of these
	// globs.
	ExcludePatterns []string

	// Concurrency bounds parallel file reads. Zero means GOMAXPROCS.
	Concurrency int
}

// Build walks root and returns a Snapshot of its text-analyzable files.
// Hidden directories, dependency caches, and symlinks resolving outside the
// root are skipped. A file that cannot be read is skipped with a debug log;
// it never aborts the scan. Build checks ctx between directory entries so a
// scan over a very large tree can be cancelled.
func Build(ctx context.Context, root string, opts Options) (*Snapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	maxSize := opts.MaxFileSize
	if maxSize <= 0 {
		maxSize = defaultMaxFileSize
	}

	// The walk and the symlink escape guard both use the resolved root, so
	// a root path that itself goes through a symlink (a symlinked /tmp, for
	// example) still descends and keeps its in-tree symlinks.
	resolvedRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}

	// First pass: collect candidate paths in walk order so the resulting
	// snapshot is deterministic regardless of read concurrency.
	type candidate struct {
		rel  string
		abs  string
		size int64
	}
	var candidates []candidate

	err = filepath.WalkDir(resolvedRoot, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil // skip unreadable entries
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, relErr := filepath.Rel(resolvedRoot, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(rel, opts.ExcludePatterns) {
			return nil
		}

		// Skip symlinks that resolve outside the root tree.
		if d.Type()&os.ModeSymlink != 0 {
			resolved, resolveErr := filepath.EvalSymlinks(path)
			if resolveErr != nil {
				return nil
			}
			if !strings.HasPrefix(resolved, resolvedRoot+string(filepath.Separator)) && resolved != resolvedRoot {
				return nil
			}
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !analyzableExtensions[ext] && !analyzableBasenames[d.Name()] {
			return nil
		}

		fi, statErr := d.Info()
		if statErr != nil {
			return nil
		}
		if fi.Size() > maxSize {
			slog.Debug("skipping oversized file", "path", rel, "size", fi.Size())
			return nil
		}

		candidates = append(candidates, candidate{rel: rel, abs: path, size: fi.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	// Second pass: read contents in parallel. Each goroutine writes only
	// its own slot, so the slice needs no locking.
	records := make([]*FileRecord, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i, c := range candidates {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, readErr := os.ReadFile(c.abs)
			if readErr != nil {
				slog.Debug("skipping unreadable file", "path", c.rel, "error", readErr)
				return nil
			}
			content := string(data)
			if !utf8.ValidString(content) || strings.ContainsRune(content, 0) {
				return nil // binary content slipped past the extension allow-list
			}
			records[i] = &FileRecord{
				Path:      c.rel,
				Extension: strings.ToLower(filepath.Ext(c.rel)),
				SizeBytes: c.size,
				Content:   content,
				Lines:     countLines(content),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &Snapshot{Root: absRoot}
	for _, r := range records {
		if r == nil {
			continue
		}
		snap.Files = append(snap.Files, *r)
		snap.TotalLines += r.Lines
	}
	snap.DependencyCount = countDependencies(snap.Files)

	slog.Debug("snapshot built",
		"root", absRoot,
		"files", len(snap.Files),
		"lines", snap.TotalLines,
		"dependencies", snap.DependencyCount)

	return snap, nil
}

// FromFiles builds a Snapshot directly from records, for callers that
// already hold file content (e.g. a ZIP upload unpacked by the host).
func FromFiles(root string, files []FileRecord) *Snapshot {
	snap := &Snapshot{Root: root, Files: files}
	for i := range files {
		if files[i].Lines == 0 && files[i].Content != "" {
			files[i].Lines = countLines(files[i].Content)
		}
		snap.TotalLines += files[i].Lines
	}
	snap.DependencyCount = countDependencies(files)
	return snap
}

// countLines counts newline-terminated lines, matching wc -l semantics for
// files without a trailing newline.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// matchesAny reports whether rel matches any glob pattern. Patterns with a
// "**" prefix segment are matched by path prefix, mirroring common ignore
// syntax.
func matchesAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := filepath.Match(p, rel); err == nil && ok {
			return true
		}
		if strings.Contains(p, "**") {
			prefix := strings.SplitN(p, "**", 2)[0]
			if prefix != "" && strings.HasPrefix(rel, prefix) {
				return true
			}
		}
	}
	return false
}
