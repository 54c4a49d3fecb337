// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/uplift-dev/uplift/internal/signal"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("embedded catalog is empty")
	}
	if c.Version == "" {
		t.Error("catalog version missing")
	}
	for _, e := range c.All() {
		if e.Complexity < 1 || e.Complexity > 5 {
			t.Errorf("entry %q: complexity %d out of range", e.Name, e.Complexity)
		}
		if e.ROI < 1 || e.ROI > 5 {
			t.Errorf("entry %q: roi %d out of range", e.Name, e.ROI)
		}
		if len(e.UseCases) == 0 {
			t.Errorf("entry %q: no use cases", e.Name)
		}
	}
}

func TestLoadFileRejectsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	data := `{"version":"1","categories":{"x":[{"name":"Bad","complexity":9,"roi":1,"use_cases":["y"]}]}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject complexity out of range")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/catalog.json"); err == nil {
		t.Error("LoadFile on missing path should fail")
	}
}

func TestMatchReturnsTopThree(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	f := signal.Finding{
		Category:    "error-monitoring",
		Title:       "No error monitoring configured",
		Description: "Production exceptions are invisible; add error monitoring and crash reporting with alerting.",
	}

	providers := c.Match(f)
	if len(providers) == 0 {
		t.Fatal("expected providers for error-monitoring finding")
	}
	if len(providers) > 3 {
		t.Errorf("got %d providers, want at most 3", len(providers))
	}
	// Sentry has the highest combined relevance/complexity/roi score.
	if providers[0].Name != "Sentry" {
		t.Errorf("top provider = %q, want Sentry", providers[0].Name)
	}
}

func TestMatchNoOverlapYieldsEmpty(t *testing.T) {
	c := &Catalog{
		entries: map[string][]Entry{
			"widgets": {{Name: "WidgetCo", Complexity: 1, ROI: 1, UseCases: []string{"widgets"}}},
		},
		flat: []Entry{{Name: "WidgetCo", Complexity: 1, ROI: 1, UseCases: []string{"widgets"}}},
	}

	f := signal.Finding{Category: "qqqq", Title: "zzzz", Description: "xxxx"}
	if got := c.Match(f); len(got) != 0 {
		t.Errorf("expected empty provider list, got %v", got)
	}
}

func TestMatchStableTieBreak(t *testing.T) {
	entries := []Entry{
		{Name: "First", Complexity: 2, ROI: 3, UseCases: []string{"sprocket tuning"}},
		{Name: "Second", Complexity: 2, ROI: 3, UseCases: []string{"sprocket tuning"}},
	}
	c := &Catalog{entries: map[string][]Entry{"sprockets": entries}, flat: entries}

	f := signal.Finding{Category: "sprockets", Title: "Sprocket tuning missing", Description: "needs sprocket tuning"}
	got := c.Match(f)
	if len(got) != 2 || got[0].Name != "First" {
		t.Errorf("tie should preserve catalog order, got %v", got)
	}
}

func TestMatchDeterministic(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	f := signal.Finding{
		Category:    "search",
		Title:       "No product search capability",
		Description: "Customers cannot search the product catalog; add hosted search with autocomplete.",
	}

	first := c.Match(f)
	for range 5 {
		again := c.Match(f)
		if len(again) != len(first) {
			t.Fatalf("provider count changed between runs")
		}
		for i := range again {
			if again[i].Name != first[i].Name {
				t.Fatalf("provider order changed: %v vs %v", again, first)
			}
		}
	}
}

func TestTokenize(t *testing.T) {
	toks := tokenize("SQL-injection risk in users.js (req.body)")
	for _, want := range []string{"injection", "risk", "users", "body"} {
		if !toks[want] {
			t.Errorf("tokenize missing %q: %v", want, toks)
		}
	}
	if toks["sql"] || toks["in"] || toks["js"] {
		t.Error("tokens of length <= 3 should be filtered")
	}
}
