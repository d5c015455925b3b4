// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"
	"strings"

	"skyredact/internal/detector"
)

// regionSpec describes one regional phone format: the matching pattern, the
// accepted digit-count range after separator stripping, an optional prefix
// check, and the confidence assigned to matches from this region.
type regionSpec struct {
	region     string
	regex      *regexp.Regexp
	minLength  int
	maxLength  int
	prefixOK   func(clean string) bool
	confidence float64
}

// Recognizer detects mobile and landline numbers across the regions that
// dominate airline customer-service traffic. Regions are tried independently
// and may emit overlapping candidates; overlap is resolved downstream.
type Recognizer struct {
	specs []regionSpec
}

// cnMobilePrefixes is the set of valid mainland-China mobile prefixes.
var cnMobilePrefixes = map[string]bool{
	"130": true, "131": true, "132": true, "133": true, "134": true,
	"135": true, "136": true, "137": true, "138": true, "139": true,
	"145": true, "147": true, "149": true, "150": true, "151": true,
	"152": true, "153": true, "155": true, "156": true, "157": true,
	"158": true, "159": true, "165": true, "166": true, "170": true,
	"171": true, "173": true, "175": true, "176": true, "177": true,
	"178": true, "180": true, "181": true, "182": true, "183": true,
	"184": true, "185": true, "186": true, "187": true, "188": true,
	"189": true, "190": true, "191": true, "192": true, "193": true,
	"195": true, "196": true, "197": true, "198": true, "199": true,
}

// separatorStripper removes formatting characters before length and prefix
// checks.
var separatorStripper = strings.NewReplacer(" ", "", "-", "", "+", "", "(", "", ")", "")

// NewRecognizer builds the per-region specification table.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		specs: []regionSpec{
			{
				region:     "CN",
				regex:      regexp.MustCompile(`1[3-9][0-9]{9}`),
				minLength:  11,
				maxLength:  11,
				prefixOK:   func(clean string) bool { return len(clean) >= 3 && cnMobilePrefixes[clean[:3]] },
				confidence: 0.95,
			},
			{
				region:     "HK",
				regex:      regexp.MustCompile(`(?:\+?852[-\s]?)?[569][0-9]{3}[-\s]?[0-9]{4}`),
				minLength:  8,
				maxLength:  12,
				confidence: 0.90,
			},
			{
				region:     "TW",
				regex:      regexp.MustCompile(`(?:\+?886[-\s]?)?0?9[0-9]{2}[-\s]?[0-9]{3}[-\s]?[0-9]{3}`),
				minLength:  9,
				maxLength:  15,
				confidence: 0.90,
			},
			{
				region:     "US_CA",
				regex:      regexp.MustCompile(`(?:\+?1[-\s]?)?\(?[2-9][0-9]{2}\)?[-\s]?[2-9][0-9]{2}[-\s]?[0-9]{4}`),
				minLength:  10,
				maxLength:  16,
				confidence: 0.85,
			},
			{
				region:     "UK",
				regex:      regexp.MustCompile(`(?:\+?44[-\s]?)?0?7[0-9]{3}[-\s]?[0-9]{6}`),
				minLength:  10,
				maxLength:  15,
				confidence: 0.85,
			},
			{
				region:     "SG",
				regex:      regexp.MustCompile(`(?:\+?65[-\s]?)?[689][0-9]{3}[-\s]?[0-9]{4}`),
				minLength:  8,
				maxLength:  12,
				confidence: 0.85,
			},
			{
				region:     "MY",
				regex:      regexp.MustCompile(`(?:\+?60[-\s]?)?1[0-9][-\s]?[0-9]{3,4}[-\s]?[0-9]{4}`),
				minLength:  9,
				maxLength:  12,
				confidence: 0.85,
			},
			{
				region:     "AU",
				regex:      regexp.MustCompile(`(?:\+?61[-\s]?)?0?4[0-9]{2}[-\s]?[0-9]{3}[-\s]?[0-9]{3}`),
				minLength:  9,
				maxLength:  12,
				confidence: 0.85,
			},
			{
				region:     "NZ",
				regex:      regexp.MustCompile(`(?:\+?64[-\s]?)?0?2[0-9][-\s]?[0-9]{3}[-\s]?[0-9]{4}`),
				minLength:  9,
				maxLength:  12,
				confidence: 0.85,
			},
			{
				region:     "JP",
				regex:      regexp.MustCompile(`(?:\+?81[-\s]?)?0?(?:70|80|90)[-\s]?[0-9]{4}[-\s]?[0-9]{4}`),
				minLength:  10,
				maxLength:  13,
				confidence: 0.85,
			},
			{
				region:     "KR",
				regex:      regexp.MustCompile(`(?:\+?82[-\s]?)?0?1[0-9][-\s]?[0-9]{3,4}[-\s]?[0-9]{4}`),
				minLength:  10,
				maxLength:  13,
				confidence: 0.85,
			},
			{
				region:     "IN",
				regex:      regexp.MustCompile(`(?:\+?91[-\s]?)?[6-9][0-9]{4}[-\s]?[0-9]{5}`),
				minLength:  10,
				maxLength:  12,
				confidence: 0.85,
			},
		},
	}
}

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourcePhone }

// Scan implements detector.Recognizer. A candidate is accepted only if,
// after stripping separators, its digit count lies in the region's range and
// its prefix (where a prefix check is defined) is valid. Matches embedded in
// longer digit runs are skipped.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult
	for _, spec := range r.specs {
		for _, loc := range spec.regex.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if detector.DigitAdjacent(text, start, end) {
				continue
			}
			raw := text[start:end]
			clean := separatorStripper.Replace(raw)
			if len(clean) < spec.minLength || len(clean) > spec.maxLength {
				continue
			}
			if spec.prefixOK != nil && !spec.prefixOK(clean) {
				continue
			}
			results = append(results, detector.DetectorResult{
				Text:        raw,
				Start:       start,
				End:         end,
				Kind:        detector.PhoneNumber,
				Score:       spec.confidence,
				Specificity: 3,
				Source:      detector.SourcePhone,
			})
		}
	}
	return results
}

// Regions lists the configured region codes, for help output.
func (r *Recognizer) Regions() []string {
	out := make([]string, 0, len(r.specs))
	for _, s := range r.specs {
		out = append(out, s.region)
	}
	return out
}
