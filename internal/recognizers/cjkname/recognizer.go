// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cjkname detects Chinese personal names with a deterministic
// surname-anchored pattern. It is the fallback path that keeps CJK name
// redaction working when no statistical model is loaded; when a model is
// present its results are merged by the collector alongside these.
package cjkname

import (
	"regexp"
	"sort"
	"strings"

	"skyredact/internal/detector"
)

const nameScore = 0.9

// namePattern matches a known surname followed by one or two characters from
// the broad CJK block (U+2E80–U+9FFF covers simplified, traditional and
// radical forms). Built once at package init.
var namePattern = buildNamePattern()

func buildNamePattern() *regexp.Regexp {
	surnames := make([]string, len(chineseSurnames))
	copy(surnames, chineseSurnames)
	// Longest first so compound surnames win over their leading character.
	sort.Slice(surnames, func(i, j int) bool { return len(surnames[i]) > len(surnames[j]) })
	for i, s := range surnames {
		surnames[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile("(?:" + strings.Join(surnames, "|") + ")[⺀-鿿]{1,2}")
}

// Recognizer implements detector.Recognizer for CJK names.
type Recognizer struct{}

// NewRecognizer returns a CJK name recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourceCJKName }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult
	for _, loc := range namePattern.FindAllStringIndex(text, -1) {
		results = append(results, detector.DetectorResult{
			Text:        text[loc[0]:loc[1]],
			Start:       loc[0],
			End:         loc[1],
			Kind:        detector.Person,
			Score:       nameScore,
			Specificity: 2,
			Source:      detector.SourceCJKName,
		})
	}
	return results
}
