// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"skyredact/internal/core"
	"skyredact/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Machine-readable JSON output"
}

// output is the serialized shape. Finding text is withheld unless the
// caller asked to see matches.
type output struct {
	Redacted string         `json:"redacted"`
	Findings []findingEntry `json:"findings"`
}

type findingEntry struct {
	Kind   string  `json:"kind"`
	Text   string  `json:"text,omitempty"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Score  float64 `json:"score"`
	Source string  `json:"source"`
}

func (f *Formatter) Format(result core.Result, options formatters.FormatterOptions) (string, error) {
	out := output{
		Redacted: result.Redacted,
		Findings: make([]findingEntry, 0, len(result.Findings)),
	}
	for _, finding := range result.Findings {
		entry := findingEntry{
			Kind:   string(finding.Kind),
			Start:  finding.Start,
			End:    finding.End,
			Score:  finding.Score,
			Source: string(finding.Source),
		}
		if options.ShowMatch {
			entry.Text = finding.Text
		}
		out.Findings = append(out.Findings, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(data), nil
}
