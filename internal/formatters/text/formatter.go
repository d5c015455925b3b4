// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"skyredact/internal/core"
	"skyredact/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) Format(result core.Result, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder

	if !options.Verbose {
		sb.WriteString(result.Redacted)
		sb.WriteString("\n")
		return sb.String(), nil
	}

	sb.WriteString(f.colors["white"].Sprint("Redacted output:"))
	sb.WriteString("\n  ")
	sb.WriteString(result.Redacted)
	sb.WriteString("\n\n")

	if len(result.Findings) == 0 {
		sb.WriteString(f.colors["green"].Sprint("No entities detected."))
		sb.WriteString("\n")
		return sb.String(), nil
	}

	sb.WriteString(f.colors["white"].Sprintf("Detected %d entities:", len(result.Findings)))
	sb.WriteString("\n")
	for _, finding := range result.Findings {
		col := f.colorFor(finding.Score)
		sb.WriteString(fmt.Sprintf("  %-18s %s  [%d:%d]  score %.2f  (%s)",
			col.Sprint(finding.Kind),
			f.matchText(finding, options),
			finding.Start, finding.End,
			finding.Score, finding.Source))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// colorFor maps detection confidence to a display color
func (f *Formatter) colorFor(score float64) *color.Color {
	switch {
	case score >= 0.9:
		return f.colors["red"]
	case score >= 0.6:
		return f.colors["yellow"]
	default:
		return f.colors["cyan"]
	}
}

// matchText shows the detected span text only when explicitly requested,
// since the whole point of the tool is not to leak it.
func (f *Formatter) matchText(finding core.Finding, options formatters.FormatterOptions) string {
	if !options.ShowMatch {
		return strings.Repeat("*", len([]rune(finding.Text)))
	}
	return finding.Text
}
