// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package detector defines the Detector interface and a registry for
// managing available detectors.
package detector

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

// Detector extracts signals from a single file. Implementations must be
// pure: no side effects, same output for the same input.
type Detector interface {
	// Name returns the unique name of this detector (e.g., "technology").
	Name() string

	// Detect inspects one file record and returns any signals found.
	Detect(f snapshot.FileRecord) []signal.Signal
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Detector)
)

// Register adds a detector to the global registry.
// It panics if a detector with the same name is already registered.
func Register(d Detector) {
	mu.Lock()
	defer mu.Unlock()
	name := d.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("detector already registered: %s", name))
	}
	registry[name] = d
}

// Get returns the detector with the given name, or nil if not found.
func Get(name string) Detector {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered detectors in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks up detectors by name. If names is empty, all registered
// detectors are returned in sorted-name order so detection is deterministic.
func Resolve(names []string) ([]Detector, error) {
	if len(names) == 0 {
		names = List()
	}
	detectors := make([]Detector, len(names))
	for i, name := range names {
		d := Get(name)
		if d == nil {
			return nil, fmt.Errorf("unknown detector: %q", name)
		}
		detectors[i] = d
	}
	return detectors, nil
}

// Run applies each detector to every file in the snapshot and returns the
// accumulated signal set. Detection order is detector-major then file-major,
// so re-running on the same snapshot always yields the same signal order.
// Seed signals, if any, are prepended before detection output. Cancellation
// is checked between files.
func Run(ctx context.Context, detectors []Detector, snap *snapshot.Snapshot, seed ...signal.Signal) (*signal.Set, error) {
	all := append([]signal.Signal(nil), seed...)
	for _, d := range detectors {
		for _, f := range snap.Files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			all = append(all, d.Detect(f)...)
		}
	}
	return signal.NewSet(all), nil
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Detector)
}
