// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package findings

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/uplift-dev/uplift/internal/signal"
)

// ValidationError describes a single validation failure for a Finding.
type ValidationError struct {
	// Field is the struct field that failed validation.
	Field string

	// Message describes what went wrong.
	Message string
}

// Error implements the error interface.
func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Validate checks a Finding's bounds and returns all validation errors
// found. An empty slice means the finding is valid.
func Validate(f signal.Finding) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(f.Title) == "" {
		errs = append(errs, ValidationError{Field: "Title", Message: "must not be empty"})
	}
	if strings.TrimSpace(f.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Message: "must not be empty"})
	}
	if f.Impact < 0 || f.Impact > 10 {
		errs = append(errs, ValidationError{
			Field:   "Impact",
			Message: fmt.Sprintf("must be between 0 and 10, got %v", f.Impact),
		})
	}
	if f.Effort < 0 || f.Effort > 10 {
		errs = append(errs, ValidationError{
			Field:   "Effort",
			Message: fmt.Sprintf("must be between 0 and 10, got %v", f.Effort),
		})
	}
	if f.Confidence < 0 || f.Confidence > 1 {
		errs = append(errs, ValidationError{
			Field:   "Confidence",
			Message: fmt.Sprintf("must be between 0.0 and 1.0, got %v", f.Confidence),
		})
	}
	if len(f.Providers) > 3 {
		errs = append(errs, ValidationError{
			Field:   "Providers",
			Message: fmt.Sprintf("at most 3 allowed, got %d", len(f.Providers)),
		})
	}
	for _, a := range f.AffectedFiles {
		if filepath.IsAbs(a.Path) {
			errs = append(errs, ValidationError{
				Field:   "AffectedFiles",
				Message: fmt.Sprintf("path %q must be relative", a.Path),
			})
		}
	}

	return errs
}
