// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package govid

import (
	"regexp"
	"strings"

	"skyredact/internal/detector"
)

const idScore = 0.7

// contextWindow is the rune window scanned for identity-document keywords.
const contextWindow = 30

// idRegex covers passport-book shapes: one or two letters followed by six to
// nine digits. The shape collides with frequent-flyer codes, so a document
// keyword near the match is mandatory.
var idRegex = regexp.MustCompile(`\b[A-Z]{1,2}\d{6,9}\b`)

var idKeywords = []string{
	"passport", "national id", "identity", "id card", "licence", "license",
	"travel document", "visa",
}

// Recognizer detects government-issued identity document numbers.
type Recognizer struct{}

// NewRecognizer returns a government-ID recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourceGovID }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult
	for _, loc := range idRegex.FindAllStringIndex(text, -1) {
		window := strings.ToLower(detector.ContextWindow(text, loc[0], loc[1], contextWindow))
		if !hasKeyword(window) {
			continue
		}
		results = append(results, detector.DetectorResult{
			Text:        text[loc[0]:loc[1]],
			Start:       loc[0],
			End:         loc[1],
			Kind:        detector.GovernmentID,
			Score:       idScore,
			Specificity: 3,
			Source:      detector.SourceGovID,
		})
	}
	return results
}

func hasKeyword(window string) bool {
	for _, k := range idKeywords {
		if strings.Contains(window, k) {
			return true
		}
	}
	return false
}
