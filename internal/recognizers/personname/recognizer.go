// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package personname detects Latin-script passenger names with two
// word-list heuristics: romanized Chinese surname matching and western
// given/family name matching. Both operate on adjacent capitalized word
// pairs so that every pair in a longer run ("Passenger John Smith") is
// considered, not just the leftmost regex match.
package personname

import (
	"regexp"
	"strings"

	"skyredact/internal/detector"
)

const (
	compoundSurnameScore = 0.90
	singleSurnameScore   = 0.85
	fullWesternScore     = 0.90
	givenNameScore       = 0.80
	westernSurnameScore  = 0.70
)

var capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

// Recognizer implements detector.Recognizer for Latin-script names.
type Recognizer struct{}

// NewRecognizer returns a Latin-script name recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourcePersonName }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	words := capitalizedWord.FindAllStringIndex(text, -1)
	var results []detector.DetectorResult

	for i := 0; i+1 < len(words); i++ {
		w1start, w1end := words[i][0], words[i][1]
		w2start, w2end := words[i+1][0], words[i+1][1]
		if !isWhitespace(text[w1end:w2start]) {
			continue
		}
		first := strings.ToLower(text[w1start:w1end])
		second := strings.ToLower(text[w2start:w2end])

		score := pairScore(first, second)
		if score == 0 {
			continue
		}
		results = append(results, detector.DetectorResult{
			Text:        text[w1start:w2end],
			Start:       w1start,
			End:         w2end,
			Kind:        detector.Person,
			Score:       score,
			Specificity: 2,
			Source:      detector.SourcePersonName,
		})
	}
	return results
}

// pairScore rates a capitalized word pair as a candidate name, returning 0
// when neither heuristic fires.
func pairScore(first, second string) float64 {
	if leadingStopwords[first] {
		return 0
	}
	if compoundSurnames[first] && !surnameBlacklist[first] {
		return compoundSurnameScore
	}
	if isPinyinSurname(first) || isPinyinSurname(second) {
		return singleSurnameScore
	}
	switch {
	case givenNames[first] && westernSurnames[second]:
		return fullWesternScore
	case givenNames[first]:
		return givenNameScore
	case westernSurnames[second]:
		return westernSurnameScore
	}
	return 0
}

// isPinyinSurname reports whether a lowercased token is a known romanized
// surname and not a blacklisted English word.
func isPinyinSurname(word string) bool {
	if surnameBlacklist[word] {
		return false
	}
	return singleSurnames[word] || compoundSurnames[word]
}

func isWhitespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
