// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package gitmeta

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestDescribeNotARepository(t *testing.T) {
	if _, err := Describe(t.TempDir()); err == nil {
		t.Error("expected error for a plain directory")
	}
}

func TestDescribe(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()}
	var last string
	for i, name := range []string{"a.txt", "b.txt"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("add: %v", err)
		}
		hash, err := wt.Commit("commit "+name, &git.CommitOptions{Author: sig, Committer: sig})
		if err != nil {
			t.Fatalf("commit %d: %v", i, err)
		}
		last = hash.String()
	}

	m, err := Describe(dir)
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if m.Commit != last {
		t.Errorf("Commit = %q, want %q", m.Commit, last)
	}
	if m.CommitCount != 2 {
		t.Errorf("CommitCount = %d, want 2", m.CommitCount)
	}
	if m.Branch == "" {
		t.Error("Branch is empty")
	}
}
