// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package findings

import (
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/google/uuid"

	"github.com/uplift-dev/uplift/internal/redact"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

// maxAffectedFiles caps the evidence attached to one finding.
const maxAffectedFiles = 5

// findingNamespace seeds deterministic finding IDs. Same category and title
// always produce the same ID, keeping reruns byte-identical.
var findingNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// templateData is the value rendered into rule title/description templates.
type templateData struct {
	Context signal.BusinessContext
	Count   int    // occurrences of the first trigger signal
	Files   int    // distinct files carrying evidence
	Example string // first evidence file path
}

// Generate evaluates rules against the signal set and returns candidate
// findings in rule order. Each rule fires at most once; a rule whose
// template fails to render is skipped with a warning, never fatal.
func Generate(snap *snapshot.Snapshot, signals *signal.Set, ctx signal.BusinessContext, rules []Rule) []signal.Finding {
	var out []signal.Finding
	emitted := make(map[string]bool, len(rules))

	for _, r := range rules {
		if emitted[r.Category] {
			continue
		}
		if !r.appliesTo(ctx.Type) {
			continue
		}
		if !allPresent(signals, r.Trigger) {
			continue
		}
		// Absence must be unambiguous: any evidence that the capability
		// already exists suppresses the rule.
		if anyPresent(signals, r.Satisfied) {
			continue
		}

		f, err := r.build(signals, ctx)
		if err != nil {
			slog.Warn("skipping rule with failed template", "category", r.Category, "error", err)
			continue
		}
		emitted[r.Category] = true
		out = append(out, f)
	}
	return out
}

func (r Rule) appliesTo(t signal.ContextType) bool {
	if len(r.AppliesTo) == 0 {
		return true
	}
	for _, ct := range r.AppliesTo {
		if ct == t {
			return true
		}
	}
	return false
}

func allPresent(signals *signal.Set, names []string) bool {
	if len(names) == 0 {
		return false // a rule with no trigger can never fire
	}
	for _, n := range names {
		if !signals.Has(n) {
			return false
		}
	}
	return true
}

func anyPresent(signals *signal.Set, names []string) bool {
	for _, n := range names {
		if signals.Has(n) {
			return true
		}
	}
	return false
}

// build renders the rule templates and assembles the finding.
func (r Rule) build(signals *signal.Set, ctx signal.BusinessContext) (signal.Finding, error) {
	affected := r.evidence(signals)

	data := templateData{
		Context: ctx,
		Count:   len(signals.Occurrences(r.Trigger[0])),
		Files:   distinctFiles(affected),
	}
	if len(affected) > 0 {
		data.Example = affected[0].Path
	}

	title, err := render("title", r.Title, data)
	if err != nil {
		return signal.Finding{}, err
	}
	description, err := render("description", r.Description, data)
	if err != nil {
		return signal.Finding{}, err
	}

	return signal.Finding{
		ID:            uuid.NewSHA1(findingNamespace, []byte(r.Category+"\x00"+title)).String(),
		Category:      r.Category,
		Title:         title,
		Description:   description,
		AffectedFiles: affected,
		Impact:        r.Impact,
		Effort:        r.Effort,
		Confidence:    r.Confidence,
	}, nil
}

// evidence collects affected files from the rule's trigger signals, in
// emission order, capped at maxAffectedFiles.
func (r Rule) evidence(signals *signal.Set) []signal.AffectedFile {
	var out []signal.AffectedFile
	for _, name := range r.Trigger {
		for _, s := range signals.Occurrences(name) {
			if s.FilePath == "" {
				continue // seed signals from a prior scan carry no file
			}
			snippet := s.Snippet
			if r.RedactSnippets {
				snippet = redact.Value(snippet)
			}
			out = append(out, signal.AffectedFile{
				Path:    s.FilePath,
				Line:    s.Line,
				Snippet: snippet,
			})
			if len(out) >= maxAffectedFiles {
				return out
			}
		}
	}
	return out
}

func distinctFiles(affected []signal.AffectedFile) int {
	seen := make(map[string]bool, len(affected))
	for _, a := range affected {
		seen[a.Path] = true
	}
	return len(seen)
}

func render(name, tmpl string, data templateData) (string, error) {
	t, err := template.New(name).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parsing %s template: %w", name, err)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", name, err)
	}
	return b.String(), nil
}
