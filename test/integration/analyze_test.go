// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package integration contains end-to-end tests for uplift.
//
// These tests build the uplift binary and run it against fixture trees,
// verifying JSON output shape, classification, and idempotency.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplift-dev/uplift/internal/signal"
)

// repoRoot returns the uplift repository root directory.
func repoRoot(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	require.True(t, ok, "runtime.Caller failed")
	// test/integration/analyze_test.go -> repo root
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// buildBinary compiles uplift into a temp directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	binary := filepath.Join(t.TempDir(), "uplift-test")
	cmd := exec.Command("go", "build", "-o", binary, "./cmd/uplift") //nolint:gosec // test helper
	cmd.Dir = repoRoot(t)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "go build failed:\n%s", out)
	return binary
}

// fixtureDir returns the path to a named fixture directory.
func fixtureDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(repoRoot(t), "testdata", "fixtures", name)
	_, err := os.Stat(dir)
	require.NoError(t, err, "fixture %q not found", name)
	return dir
}

func runAnalyze(t *testing.T, binary string, args ...string) []byte {
	t.Helper()
	cmd := exec.Command(binary, append([]string{"analyze"}, args...)...) //nolint:gosec // test helper
	cmd.Env = append(os.Environ(), "ANTHROPIC_API_KEY=")
	stdout, err := cmd.Output()
	if ee, ok := err.(*exec.ExitError); ok {
		require.NoError(t, err, "uplift analyze failed:\n%s", ee.Stderr)
	}
	require.NoError(t, err, "uplift analyze failed")
	return stdout
}

func TestAnalyze_Webshop(t *testing.T) {
	binary := buildBinary(t)
	fixture := fixtureDir(t, "webshop")

	stdout := runAnalyze(t, binary, fixture, "--format=json", "--no-llm", "--quiet")

	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout, &result), "output:\n%s", stdout)

	assert.Equal(t, signal.ContextEcommerce, result.Context.Type, "webshop should classify as e-commerce")
	assert.Positive(t, result.Metadata.FilesScanned)
	assert.Positive(t, result.Metadata.DependencyCount, "package.json deps should be counted")

	categories := map[string]bool{}
	for _, f := range result.Findings {
		categories[f.Category] = true

		assert.GreaterOrEqual(t, f.Impact, 0.0)
		assert.LessOrEqual(t, f.Impact, 10.0)
		assert.GreaterOrEqual(t, f.Confidence, 0.0)
		assert.LessOrEqual(t, f.Confidence, 1.0)
		assert.LessOrEqual(t, len(f.Providers), 3)
	}
	assert.True(t, categories["security"], "SQL concatenation should yield a security finding")
	assert.True(t, categories["secrets-management"], "hardcoded key should yield a secrets finding")
	assert.True(t, categories["payment-optimization"], "stripe checkout should yield a payment finding")
}

func TestAnalyze_SecretRedaction(t *testing.T) {
	binary := buildBinary(t)
	fixture := fixtureDir(t, "webshop")

	stdout := runAnalyze(t, binary, fixture, "--format=json", "--no-llm", "--quiet")
	assert.NotContains(t, string(stdout), "sk_live_webshop_test_0001",
		"hardcoded secret value must not appear in output")
}

func TestAnalyze_Idempotent(t *testing.T) {
	binary := buildBinary(t)
	fixture := fixtureDir(t, "webshop")

	first := runAnalyze(t, binary, fixture, "--format=json", "--no-llm", "--quiet")
	second := runAnalyze(t, binary, fixture, "--format=json", "--no-llm", "--quiet")
	assert.True(t, bytes.Equal(first, second), "two runs over the same tree should be byte-identical")
}

func TestAnalyze_EmptyTree(t *testing.T) {
	binary := buildBinary(t)

	stdout := runAnalyze(t, binary, t.TempDir(), "--format=json", "--no-llm", "--quiet")

	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout, &result))
	assert.Equal(t, signal.ContextUnspecified, result.Context.Type)
	assert.Empty(t, result.Findings)
}

func TestAnalyze_BaselineStrategy(t *testing.T) {
	binary := buildBinary(t)
	fixture := fixtureDir(t, "webshop")

	stdout := runAnalyze(t, binary, fixture, "--format=json", "--no-llm", "--quiet", "--strategy=baseline")

	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal(stdout, &result))
	assert.Equal(t, "baseline", result.Metadata.Strategy)
}
