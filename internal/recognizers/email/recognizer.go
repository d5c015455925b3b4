// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package email

import (
	"regexp"

	"skyredact/internal/detector"
)

const emailScore = 0.95

// maxEmailLen caps address length per RFC 5321.
const maxEmailLen = 254

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// Recognizer detects email addresses.
type Recognizer struct{}

// NewRecognizer returns an email recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourceEmail }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult
	for _, loc := range emailRegex.FindAllStringIndex(text, -1) {
		if loc[1]-loc[0] > maxEmailLen {
			continue
		}
		results = append(results, detector.DetectorResult{
			Text:        text[loc[0]:loc[1]],
			Start:       loc[0],
			End:         loc[1],
			Kind:        detector.Email,
			Score:       emailScore,
			Specificity: 3,
			Source:      detector.SourceEmail,
		})
	}
	return results
}
