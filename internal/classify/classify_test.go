// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package classify

import (
	"testing"

	"github.com/uplift-dev/uplift/internal/detectors"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

func sigs(counts map[string]int) *signal.Set {
	var out []signal.Signal
	for name, n := range counts {
		for range n {
			out = append(out, signal.Signal{Name: name, Strength: 1})
		}
	}
	return signal.NewSet(out)
}

func TestClassifyEcommerce(t *testing.T) {
	set := sigs(map[string]int{
		detectors.SigPayment: 2,
		detectors.SigCart:    3,
		detectors.SigOrder:   1,
	})

	ctx := Classify(&snapshot.Snapshot{TotalLines: 1000}, set)
	if ctx.Type != signal.ContextEcommerce {
		t.Errorf("Type = %q, want e-commerce", ctx.Type)
	}
	if ctx.Audience != signal.AudienceConsumer {
		t.Errorf("Audience = %q, want consumer", ctx.Audience)
	}
}

func TestClassifySinglePaymentFileIsEnough(t *testing.T) {
	// One file with stripe + checkout tokens must classify as e-commerce.
	set := sigs(map[string]int{
		detectors.SigPayment: 1,
		detectors.SigCart:    1,
	})

	ctx := Classify(&snapshot.Snapshot{TotalLines: 50}, set)
	if ctx.Type != signal.ContextEcommerce {
		t.Errorf("Type = %q, want e-commerce", ctx.Type)
	}
}

func TestClassifyBelowThresholdIsUnspecified(t *testing.T) {
	set := sigs(map[string]int{detectors.SigDatabase: 1})

	ctx := Classify(&snapshot.Snapshot{TotalLines: 100}, set)
	if ctx.Type != signal.ContextUnspecified {
		t.Errorf("Type = %q, want unspecified", ctx.Type)
	}
	if ctx.Audience != signal.AudienceUnknown {
		t.Errorf("Audience = %q, want unknown", ctx.Audience)
	}
}

func TestClassifyEmptySnapshot(t *testing.T) {
	ctx := Classify(&snapshot.Snapshot{}, signal.NewSet(nil))
	if ctx.Type != signal.ContextUnspecified {
		t.Errorf("Type = %q, want unspecified for empty input", ctx.Type)
	}
	if ctx.Scale != signal.ScaleSmall {
		t.Errorf("Scale = %q, want small", ctx.Scale)
	}
}

func TestClassifyTieBreakIsPriorityOrdered(t *testing.T) {
	// Construct equal densities for e-commerce and saas: payment*3 == subscription*3.
	set := sigs(map[string]int{
		detectors.SigPayment:      2,
		detectors.SigSubscription: 2,
	})

	ctx := Classify(&snapshot.Snapshot{}, set)
	if ctx.Type != signal.ContextEcommerce {
		t.Errorf("tie should resolve to e-commerce (fixed priority), got %q", ctx.Type)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	set := sigs(map[string]int{
		detectors.SigAPIEndpoint: 4,
		detectors.SigDatabase:    2,
		detectors.SigQueue:       1,
	})
	snap := &snapshot.Snapshot{TotalLines: 80_000, DependencyCount: 40}

	first := Classify(snap, set)
	for range 10 {
		if got := Classify(snap, set); got != first {
			t.Fatalf("classification not deterministic: %+v vs %+v", got, first)
		}
	}
	if first.Type != signal.ContextAPIService {
		t.Errorf("Type = %q, want api-service", first.Type)
	}
}

func TestScaleBreakpoints(t *testing.T) {
	cases := []struct {
		lines, deps int
		want        signal.Scale
	}{
		{100, 2, signal.ScaleSmall},
		{10_000, 5, signal.ScaleMedium},
		{1000, 80, signal.ScaleLarge},  // dependency count dominates
		{300_000, 10, signal.ScaleEnterprise},
		{60_000, 200, signal.ScaleEnterprise},
	}
	for _, tc := range cases {
		snap := &snapshot.Snapshot{TotalLines: tc.lines, DependencyCount: tc.deps}
		if got := scaleFor(snap); got != tc.want {
			t.Errorf("scaleFor(lines=%d, deps=%d) = %q, want %q", tc.lines, tc.deps, got, tc.want)
		}
	}
}

func TestDensitiesWeighting(t *testing.T) {
	set := sigs(map[string]int{detectors.SigPayment: 2})
	d := Densities(set)
	if d[signal.ContextEcommerce] != 6.0 {
		t.Errorf("e-commerce density = %v, want 6.0", d[signal.ContextEcommerce])
	}
	if d[signal.ContextSaaS] != 0 {
		t.Errorf("saas density = %v, want 0", d[signal.ContextSaaS])
	}
}
