// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. Nil means no color.
type ColorFunc func(value string) string

// Column describes one table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Extra values are dropped, missing ones are empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	t.rows = append(t.rows, row)
}

// Render writes the table to w with computed column widths.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	sep := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, widths[i], col.Align))
		sep[i] = strings.Repeat("-", widths[i])
	}
	if _, err := fmt.Fprintf(w, "  %s\n  %s\n", strings.Join(header, "  "), strings.Join(sep, "  ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			// Pad on the raw value so ANSI codes don't skew widths.
			padding := strings.Repeat(" ", widths[i]-len(row[i]))
			display := row[i]
			if col.Color != nil {
				display = col.Color(display)
			}
			if col.Align == AlignRight {
				parts[i] = padding + display
			} else {
				parts[i] = display + padding
			}
		}
		if _, err := fmt.Fprintf(w, "  %s\n", strings.Join(parts, "  ")); err != nil {
			return fmt.Errorf("render table: %w", err)
		}
	}
	return nil
}

func pad(s string, width int, align Alignment) string {
	if align == AlignRight {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}
