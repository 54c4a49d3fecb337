// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package gitmeta reads lightweight repository metadata for analysis
// results. Everything here is best-effort; a tree that is not a git
// repository is not an error worth failing an analysis over.
package gitmeta

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// maxCommitCount bounds history walking on very large repositories.
const maxCommitCount = 10000

// Meta describes the repository state at analysis time.
type Meta struct {
	Commit      string
	Branch      string
	CommitCount int
}

// Describe opens the repository at root and returns its HEAD commit,
// branch name, and a capped commit count. Returns an error if root is not
// a git repository or has no commits yet.
func Describe(root string) (*Meta, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("reading HEAD: %w", err)
	}

	m := &Meta{Commit: head.Hash().String()}
	if head.Name().IsBranch() {
		m.Branch = head.Name().Short()
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	defer iter.Close()

	err = iter.ForEach(func(*object.Commit) error {
		m.CommitCount++
		if m.CommitCount >= maxCommitCount {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	return m, nil
}
