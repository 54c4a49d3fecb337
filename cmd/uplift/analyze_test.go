// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uplift-dev/uplift/internal/signal"
)

// resetFlags restores analyze flag state between tests, since cobra flag
// variables (and their Changed markers) are process globals.
func resetFlags(t *testing.T) {
	t.Helper()
	analyzeFormat = ""
	analyzeOutput = ""
	analyzeStrategy = ""
	analyzeMaxFindings = 0
	analyzeNoLLM = false
	analyzeExclude = nil
	analyzeCatalogPath = ""
	catalogCategory = ""
	for _, c := range []*cobra.Command{rootCmd, analyzeCmd, catalogCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
	t.Setenv("ANTHROPIC_API_KEY", "")
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestAnalyzeJSON(t *testing.T) {
	resetFlags(t)
	dir := writeTree(t, map[string]string{
		"checkout.js": "import stripe from 'stripe';\nconst session = stripe.checkout.sessions.create(cart);\n",
	})

	out, err := execute(t, "analyze", dir, "--format", "json", "--no-llm")
	require.NoError(t, err)

	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
	assert.Equal(t, signal.ContextEcommerce, result.Context.Type)

	categories := make([]string, 0, len(result.Findings))
	for _, f := range result.Findings {
		categories = append(categories, f.Category)
	}
	assert.Contains(t, categories, "payment-optimization")
}

func TestAnalyzeOutputFile(t *testing.T) {
	resetFlags(t)
	dir := writeTree(t, map[string]string{"main.go": "package main\n"})
	outPath := filepath.Join(t.TempDir(), "result.json")

	_, err := execute(t, "analyze", dir, "--format", "json", "--no-llm", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal(data, &result))
}

func TestAnalyzeBadPath(t *testing.T) {
	resetFlags(t)
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestAnalyzeBadStrategy(t *testing.T) {
	resetFlags(t)
	_, err := execute(t, "analyze", t.TempDir(), "--strategy", "psychic")
	require.Error(t, err)

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestAnalyzeMaxFindings(t *testing.T) {
	resetFlags(t)
	dir := writeTree(t, map[string]string{
		"app.js": "import stripe from 'stripe';\nconst cart = s.cart;\napp.get('/api/x', h);\ndb.query(\"SELECT * FROM t WHERE id = '\" + req.params.id + \"'\");\nconsole.log('hi');\n",
	})

	out, err := execute(t, "analyze", dir, "--format", "json", "--no-llm", "--max-findings", "1")
	require.NoError(t, err)

	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Len(t, result.Findings, 1)
}

func TestAnalyzeConfigFile(t *testing.T) {
	resetFlags(t)
	dir := writeTree(t, map[string]string{
		"checkout.js": "import stripe from 'stripe';\nconst cart = s.cart;\n",
		".uplift.yaml": `format: json
no_llm: true
strategies: [baseline]
`,
	})

	out, err := execute(t, "analyze", dir)
	require.NoError(t, err)

	var result signal.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result), "output: %s", out)
	assert.Equal(t, "baseline", result.Metadata.Strategy)
}

// An explicit --format=table must beat a config file's format, even though
// table is the default value.
func TestAnalyzeExplicitFormatBeatsConfigFile(t *testing.T) {
	resetFlags(t)
	dir := writeTree(t, map[string]string{
		"checkout.js": "import stripe from 'stripe';\nconst cart = s.cart;\n",
		".uplift.yaml": `format: json
no_llm: true
`,
	})

	out, err := execute(t, "analyze", dir, "--format", "table", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "CATEGORY", "expected table output, got: %s", out)
	var result signal.AnalysisResult
	assert.Error(t, json.Unmarshal([]byte(out), &result), "config file format should not override explicit flag")
}

func TestAnalyzeInvalidConfig(t *testing.T) {
	resetFlags(t)
	dir := writeTree(t, map[string]string{
		".uplift.yaml": "format: xml\n",
	})

	_, err := execute(t, "analyze", dir)
	require.Error(t, err)

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestCatalogCommand(t *testing.T) {
	resetFlags(t)
	out, err := execute(t, "catalog", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Sentry")
}

func TestCatalogUnknownCategory(t *testing.T) {
	resetFlags(t)
	_, err := execute(t, "catalog", "-c", "nope")
	require.Error(t, err)

	var ece *exitCodeError
	require.ErrorAs(t, err, &ece)
	assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
}

func TestVersionCommand(t *testing.T) {
	resetFlags(t)
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "uplift")
}
