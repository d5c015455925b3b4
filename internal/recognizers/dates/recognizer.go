// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dates proposes date expressions as DateOfBirth candidates. The
// recognizer is intentionally permissive: every date-shaped span is emitted
// and the date-of-birth classifier decides which ones stay.
package dates

import (
	"regexp"

	"skyredact/internal/detector"
)

const dateScore = 0.6

const monthNames = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var datePatterns = []*regexp.Regexp{
	// ISO and reversed numeric forms: 1990-05-20, 20/05/1990, 05.20.1990
	regexp.MustCompile(`\b\d{4}[-/.]\d{1,2}[-/.]\d{1,2}\b`),
	regexp.MustCompile(`\b\d{1,2}[-/.]\d{1,2}[-/.]\d{4}\b`),
	// Compact 8-digit: 19900520, 05201990
	regexp.MustCompile(`\b\d{8}\b`),
	// Month-name forms: May 20, 1990 / 20 May 1990 / 20th of May 1990
	regexp.MustCompile(`(?i)\b` + monthNames + `\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?` + monthNames + `\.?,?\s+\d{4}\b`),
}

// Recognizer detects date expressions.
type Recognizer struct{}

// NewRecognizer returns a date recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourceDates }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult
	seen := make(map[[2]int]bool)
	for _, re := range datePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			key := [2]int{loc[0], loc[1]}
			if seen[key] {
				continue
			}
			seen[key] = true
			results = append(results, detector.DetectorResult{
				Text:        text[loc[0]:loc[1]],
				Start:       loc[0],
				End:         loc[1],
				Kind:        detector.DateOfBirth,
				Score:       dateScore,
				Specificity: 2,
				Source:      detector.SourceDates,
			})
		}
	}
	return results
}
