// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package validate holds the per-entity-kind plausibility checks that run
// between candidate collection and conflict resolution. Each check is a pure
// function of the candidate, its literal text and a bounded context window
// around it.
package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"golang.org/x/text/unicode/norm"

	"skyredact/internal/detector"
)

// DefaultContextWindow is the rune window scanned for disambiguating
// keywords on each side of a candidate.
const DefaultContextWindow = 30

// ambiguousNameThreshold is the minimum score that lets a single-token
// person candidate through when its text is a common English word.
const ambiguousNameThreshold = 0.6

// DOBClass is the tri-state outcome of date-of-birth classification.
type DOBClass int

const (
	// NotDOB marks parsed dates that read as travel dates.
	NotDOB DOBClass = iota
	// LikelyDOB marks dates plausibly identifying a person.
	LikelyDOB
	// Unparseable marks text no parser could read; treated as not a DOB.
	Unparseable
)

// Validator applies the per-kind semantic checks. It carries only immutable
// configuration and a clock, so a single instance is safe for concurrent use.
type Validator struct {
	window         int
	now            func() time.Time
	extraBlacklist map[string]bool
	extraContext   []string
}

// Option configures a Validator.
type Option func(*Validator)

// WithWindow overrides the context window size in runes.
func WithWindow(runes int) Option {
	return func(v *Validator) { v.window = runes }
}

// WithClock overrides the time source used by date classification.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) { v.now = now }
}

// WithExtraPNRBlacklist adds deployment-specific words that must never be
// treated as booking references.
func WithExtraPNRBlacklist(words []string) Option {
	return func(v *Validator) {
		if len(words) == 0 {
			return
		}
		v.extraBlacklist = make(map[string]bool, len(words))
		for _, w := range words {
			v.extraBlacklist[strings.ToUpper(strings.TrimSpace(w))] = true
		}
	}
}

// WithExtraPNRContext adds deployment-specific booking vocabulary that lets
// an ambiguous all-letter code count as a booking reference.
func WithExtraPNRContext(keywords []string) Option {
	return func(v *Validator) {
		for _, k := range keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				v.extraContext = append(v.extraContext, k)
			}
		}
	}
}

// NewValidator returns a validator with the default context window.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{window: DefaultContextWindow, now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Accept decides whether a candidate survives validation. Kinds without a
// dedicated check pass through unconditionally.
func (v *Validator) Accept(res detector.DetectorResult, text string) bool {
	literal := strings.TrimSpace(res.Text)
	switch res.Kind {
	case detector.BookingReference:
		return v.validPNR(literal, text, res.Start, res.End)
	case detector.FlightNumber:
		return validFlightNumber(literal)
	case detector.FrequentFlyerNumber:
		return v.validFrequentFlyer(literal, text, res.Start, res.End)
	case detector.DateOfBirth:
		return v.ClassifyDOB(literal) == LikelyDOB
	case detector.Person:
		return validPerson(literal, res.Score)
	default:
		return true
	}
}

// validPNR arbitrates the all-uppercase 5–6 character shape: blacklisted
// words and mixed-case ordinary words are out, anything carrying a digit is
// in, and ambiguous all-letter codes need a booking keyword nearby.
func (v *Validator) validPNR(literal, text string, start, end int) bool {
	upper := strings.ToUpper(literal)
	if pnrBlacklist[upper] || v.extraBlacklist[upper] {
		return false
	}
	if isAlpha(literal) && literal != upper {
		return false
	}
	if strings.ContainsAny(literal, "0123456789") {
		return true
	}
	if v.windowHasKeyword(text, start, end, pnrContextKeywords) {
		return true
	}
	return len(v.extraContext) > 0 && v.windowHasKeyword(text, start, end, v.extraContext)
}

// validFlightNumber guards against the case-insensitive pattern matching
// ordinary lowercase words adjacent to digits ("is 176").
func validFlightNumber(literal string) bool {
	return !hasLowercase(literal)
}

// validFrequentFlyer is the strictest check: uppercase only, not purely
// numeric, and loyalty-program vocabulary required in the window.
func (v *Validator) validFrequentFlyer(literal, text string, start, end int) bool {
	if hasLowercase(literal) {
		return false
	}
	if isNumeric(literal) {
		return false
	}
	return v.windowHasKeyword(text, start, end, ffContextKeywords)
}

// validPerson suppresses single common words that double as names unless
// the detector was confident.
func validPerson(literal string, score float64) bool {
	if strings.Count(literal, " ") > 0 {
		return true
	}
	if ambiguousNameWords[strings.ToLower(literal)] && score < ambiguousNameThreshold {
		return false
	}
	return true
}

var compactDate = regexp.MustCompile(`^\d{8}$`)
var spaceRun = regexp.MustCompile(`\s+`)

// compactLayouts are tried in fixed priority order over 8-digit dates:
// month-day-year, then day-month-year, then year-month-day.
var compactLayouts = []string{"01022006", "02012006", "20060102"}

// ClassifyDOB decides whether a date expression identifies a person rather
// than a journey. Future dates and dates within the last two years are
// travel context; earlier twentieth-century-or-later dates are birth dates.
func (v *Validator) ClassifyDOB(literal string) DOBClass {
	var parsed time.Time
	if compactDate.MatchString(literal) {
		ok := false
		for _, layout := range compactLayouts {
			if t, err := time.Parse(layout, literal); err == nil {
				parsed = t
				ok = true
				break
			}
		}
		if !ok {
			return Unparseable
		}
	} else {
		clean := strings.TrimSpace(spaceRun.ReplaceAllString(literal, " "))
		t, err := dateparse.ParseAny(clean)
		if err != nil {
			return Unparseable
		}
		parsed = t
	}

	currentYear := v.now().Year()
	switch {
	case parsed.Year() > currentYear:
		return NotDOB
	case currentYear-parsed.Year() <= 2:
		return NotDOB
	case parsed.Year() > 1900:
		return LikelyDOB
	default:
		return NotDOB
	}
}

// windowHasKeyword reports whether any keyword occurs within the context
// window around the byte range [start, end). The window is NFKC-folded so
// full-width letters on CJK keyboards still match.
func (v *Validator) windowHasKeyword(text string, start, end int, keywords []string) bool {
	window := strings.ToLower(norm.NFKC.String(detector.ContextWindow(text, start, end, v.window)))
	for _, k := range keywords {
		if strings.Contains(window, k) {
			return true
		}
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}
