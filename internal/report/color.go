// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/fatih/color"
)

var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorBold   = color.New(color.Bold)
)

// ColorImpact colors a 0-10 impact value: 8+ red, 5+ yellow, rest plain.
func ColorImpact(val string) string {
	n, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	switch {
	case n >= 8:
		return colorRed.Sprint(val)
	case n >= 5:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// ColorConfidence colors a 0-1 confidence value: 0.8+ green, under 0.5 yellow.
func ColorConfidence(val string) string {
	n, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return val
	}
	switch {
	case n >= 0.8:
		return colorGreen.Sprint(val)
	case n < 0.5:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
