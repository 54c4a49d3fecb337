// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package catalog loads the static provider catalog and matches findings
// against it. The catalog is read-only after load and safe to share across
// concurrent analysis runs.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed catalog.json
var embedded []byte

// Entry describes a third-party product that can address a finding category.
type Entry struct {
	// Category is the finding category this entry belongs to, stamped
	// from its group during load.
	Category string `json:"-"`

	Name               string   `json:"name"`
	Company            string   `json:"company"`
	URL                string   `json:"url"`
	Description        string   `json:"description"`
	Pricing            string   `json:"pricing"`
	BusinessImpact     string   `json:"business_impact"`
	ImplementationTime string   `json:"implementation_time"`
	Complexity         int      `json:"complexity"` // 1 (trivial) to 5 (major project)
	ROI                int      `json:"roi"`        // 1 (marginal) to 5 (transformative)
	UseCases           []string `json:"use_cases"`
}

// Catalog is the loaded provider dataset, grouped by category. Entries keep
// their file order; ties in match scoring resolve by that order.
type Catalog struct {
	Version    string
	categories []string
	entries    map[string][]Entry
	flat       []Entry
}

// catalogFile is the on-disk JSON shape.
type catalogFile struct {
	Version    string             `json:"version"`
	Categories map[string][]Entry `json:"categories"`
}

// Load returns the embedded catalog. It is intended to be called once at
// process start and the result shared.
func Load() (*Catalog, error) {
	return parse(embedded)
}

// LoadFile reads a catalog from an external JSON file, replacing the
// embedded dataset.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		Version: file.Version,
		entries: make(map[string][]Entry, len(file.Categories)),
	}
	for category := range file.Categories {
		c.categories = append(c.categories, category)
	}
	sort.Strings(c.categories)

	for _, category := range c.categories {
		for _, e := range file.Categories[category] {
			if e.Name == "" {
				return nil, fmt.Errorf("catalog category %q: entry with empty name", category)
			}
			if e.Complexity < 1 || e.Complexity > 5 {
				return nil, fmt.Errorf("catalog entry %q: complexity %d out of range [1,5]", e.Name, e.Complexity)
			}
			if e.ROI < 1 || e.ROI > 5 {
				return nil, fmt.Errorf("catalog entry %q: roi %d out of range [1,5]", e.Name, e.ROI)
			}
			e.Category = category
			c.entries[category] = append(c.entries[category], e)
			c.flat = append(c.flat, e)
		}
	}
	return c, nil
}

// Categories returns the catalog's category names, sorted.
func (c *Catalog) Categories() []string { return c.categories }

// Entries returns the entries for a category in file order.
func (c *Catalog) Entries(category string) []Entry { return c.entries[category] }

// All returns every entry, grouped by sorted category then file order.
func (c *Catalog) All() []Entry { return c.flat }

// Len returns the total entry count.
func (c *Catalog) Len() int { return len(c.flat) }
