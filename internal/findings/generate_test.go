// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package findings

import (
	"strings"
	"testing"

	"github.com/uplift-dev/uplift/internal/detectors"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

func set(sigs ...signal.Signal) *signal.Set { return signal.NewSet(sigs) }

func ecommerceCtx() signal.BusinessContext {
	return signal.BusinessContext{
		Type:     signal.ContextEcommerce,
		Audience: signal.AudienceConsumer,
		Scale:    signal.ScaleSmall,
	}
}

func TestGenerateSecurityFinding(t *testing.T) {
	signals := set(signal.Signal{
		Name:     detectors.SigSQLInjectionRisk,
		Category: signal.CategoryRisk,
		FilePath: "routes/users.js",
		Line:     12,
		Strength: 1,
		Snippet:  `db.query("SELECT * FROM users WHERE id = '" + req.params.id + "'")`,
	})

	out := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())

	var sec *signal.Finding
	for i := range out {
		if out[i].Category == "security" {
			sec = &out[i]
		}
	}
	if sec == nil {
		t.Fatal("expected a security finding")
	}
	if sec.Confidence < 0.9 {
		t.Errorf("security confidence = %v, want >= 0.9", sec.Confidence)
	}
	if len(sec.AffectedFiles) != 1 || sec.AffectedFiles[0].Path != "routes/users.js" {
		t.Errorf("affected files = %+v", sec.AffectedFiles)
	}
	if !strings.Contains(sec.Description, "routes/users.js") {
		t.Errorf("description should name the example file: %q", sec.Description)
	}
}

func TestGeneratePaymentOptimizationImpact(t *testing.T) {
	signals := set(
		signal.Signal{Name: detectors.SigPayment, FilePath: "checkout.js", Strength: 1},
		signal.Signal{Name: detectors.SigCart, FilePath: "checkout.js", Strength: 1},
	)

	out := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())

	for _, f := range out {
		if f.Category == "payment-optimization" {
			if f.Impact < 8 {
				t.Errorf("payment-optimization impact = %v, want >= 8", f.Impact)
			}
			return
		}
	}
	t.Fatal("expected a payment-optimization finding for e-commerce with payments")
}

func TestGenerateAmbiguousAbsenceDoesNotFire(t *testing.T) {
	// Console logging present AND a structured logger present: ambiguous,
	// the structured-logging rule must not fire.
	signals := set(
		signal.Signal{Name: detectors.SigConsoleLogging, FilePath: "a.js", Strength: 1},
		signal.Signal{Name: detectors.SigStructuredLogging, FilePath: "log.js", Strength: 1},
	)

	out := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())
	for _, f := range out {
		if f.Category == "structured-logging" {
			t.Error("rule fired despite evidence the capability exists")
		}
	}
}

func TestGenerateContextRestriction(t *testing.T) {
	// payment-optimization applies to e-commerce/saas only.
	signals := set(signal.Signal{Name: detectors.SigPayment, FilePath: "pay.go", Strength: 1})
	ctx := signal.BusinessContext{Type: signal.ContextInternalTool}

	out := Generate(&snapshot.Snapshot{}, signals, ctx, DefaultRules())
	for _, f := range out {
		if f.Category == "payment-optimization" {
			t.Error("context-restricted rule fired outside its contexts")
		}
	}
}

func TestGenerateUniqueCategories(t *testing.T) {
	signals := set(
		signal.Signal{Name: detectors.SigSQLInjectionRisk, FilePath: "a.js", Strength: 1},
		signal.Signal{Name: detectors.SigHardcodedSecret, FilePath: "b.js", Strength: 1},
		signal.Signal{Name: detectors.SigPayment, FilePath: "c.js", Strength: 1},
		signal.Signal{Name: detectors.SigAPIEndpoint, FilePath: "d.js", Strength: 1},
	)

	out := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())
	seen := make(map[string]bool)
	for _, f := range out {
		if seen[f.Category] {
			t.Errorf("duplicate category %q", f.Category)
		}
		seen[f.Category] = true
	}
}

func TestGenerateEmptySignalsYieldsNoFindings(t *testing.T) {
	out := Generate(&snapshot.Snapshot{}, set(), signal.BusinessContext{Type: signal.ContextUnspecified}, DefaultRules())
	if len(out) != 0 {
		t.Errorf("empty signal set should produce no findings, got %d", len(out))
	}
}

func TestGenerateDeterministicIDs(t *testing.T) {
	signals := set(signal.Signal{Name: detectors.SigHardcodedSecret, FilePath: "cfg.js", Strength: 1, Snippet: `key = "aaaabbbbcccc"`})

	first := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())
	second := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())

	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("unexpected finding counts: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("finding ID not deterministic: %q vs %q", first[i].ID, second[i].ID)
		}
	}
}

func TestGenerateRedactsSecretSnippets(t *testing.T) {
	signals := set(signal.Signal{
		Name:     detectors.SigHardcodedSecret,
		FilePath: "config.js",
		Line:     3,
		Strength: 1,
		Snippet:  `const apiKey = "sk_live_abc123def456";`,
	})

	out := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), DefaultRules())
	for _, f := range out {
		if f.Category != "secrets-management" {
			continue
		}
		if len(f.AffectedFiles) == 0 {
			t.Fatal("expected affected files on secret finding")
		}
		snippet := f.AffectedFiles[0].Snippet
		if strings.Contains(snippet, "sk_live_abc123def456") {
			t.Errorf("snippet leaks the secret: %q", snippet)
		}
		if !strings.Contains(snippet, "[REDACTED]") {
			t.Errorf("snippet should carry a redaction marker: %q", snippet)
		}
		return
	}
	t.Fatal("expected a secrets-management finding")
}

func TestGenerateSkipsRuleWithBadTemplate(t *testing.T) {
	rules := []Rule{
		{
			Category:    "broken",
			Trigger:     []string{detectors.SigPayment},
			Title:       "{{.NoSuchField}}",
			Description: "x",
			Impact:      5, Effort: 5, Confidence: 0.5,
		},
		{
			Category:    "works",
			Trigger:     []string{detectors.SigPayment},
			Title:       "Payment present",
			Description: "ok",
			Impact:      5, Effort: 5, Confidence: 0.5,
		},
	}
	signals := set(signal.Signal{Name: detectors.SigPayment, FilePath: "p.js", Strength: 1})

	out := Generate(&snapshot.Snapshot{}, signals, ecommerceCtx(), rules)
	if len(out) != 1 || out[0].Category != "works" {
		t.Errorf("bad-template rule should be skipped, got %+v", out)
	}
}

func TestValidateBounds(t *testing.T) {
	good := signal.Finding{Category: "x", Title: "t", Impact: 5, Effort: 5, Confidence: 0.5}
	if errs := Validate(good); len(errs) != 0 {
		t.Errorf("valid finding rejected: %v", errs)
	}

	bad := signal.Finding{
		Category:      "x",
		Title:         "t",
		Impact:        11,
		Effort:        -1,
		Confidence:    2,
		Providers:     make([]signal.Provider, 4),
		AffectedFiles: []signal.AffectedFile{{Path: "/abs/path.go"}},
	}
	errs := Validate(bad)
	if len(errs) != 5 {
		t.Errorf("got %d validation errors, want 5: %v", len(errs), errs)
	}
}

func TestBaselineRulesAreContextFree(t *testing.T) {
	for _, r := range BaselineRules() {
		if len(r.AppliesTo) != 0 {
			t.Errorf("baseline rule %q restricts contexts", r.Category)
		}
	}
	if len(BaselineRules()) == 0 {
		t.Error("baseline rule set is empty")
	}
}
