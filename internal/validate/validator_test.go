// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package validate

import (
	"strings"
	"testing"
	"time"

	"skyredact/internal/detector"
)

// fixedClock pins date classification to a known year.
func fixedClock() time.Time {
	return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
}

func newTestValidator(opts ...Option) *Validator {
	return NewValidator(append([]Option{WithClock(fixedClock)}, opts...)...)
}

func candidate(text, full string, kind detector.EntityKind, score float64) detector.DetectorResult {
	start := strings.Index(full, text)
	return detector.DetectorResult{
		Text:  text,
		Start: start,
		End:   start + len(text),
		Kind:  kind,
		Score: score,
	}
}

func TestValidPNR(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name string
		text string
		full string
		want bool
	}{
		{"digit mix accepted", "X9Y8Z7", "code X9Y8Z7 here", true},
		{"blacklisted word", "FLIGHT", "the FLIGHT was late", false},
		{"mixed case word", "Thanks", "many Thanks again", false},
		{"all letters with context", "ABCDEF", "your booking ABCDEF is confirmed", true},
		{"all letters without context", "ABCDEF", "we walked ABCDEF yesterday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate(tt.text, tt.full, detector.BookingReference, 0.4)
			if got := v.Accept(c, tt.full); got != tt.want {
				t.Errorf("Accept(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidPNRExtraWords(t *testing.T) {
	v := newTestValidator(
		WithExtraPNRBlacklist([]string{"SKYTEA"}),
		WithExtraPNRContext([]string{"dossier"}),
	)

	full := "your booking SKYTEA is ready"
	if v.Accept(candidate("SKYTEA", full, detector.BookingReference, 0.4), full) {
		t.Error("extra blacklist word should be rejected even with context")
	}

	full2 := "see dossier ABCDEF attached"
	if !v.Accept(candidate("ABCDEF", full2, detector.BookingReference, 0.4), full2) {
		t.Error("extra context keyword should admit the candidate")
	}
}

func TestValidFlightNumber(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		text string
		want bool
	}{
		{"MU583", true},
		{"CA1234", true},
		{"is 176", false},
		{"mu583", false},
	}
	for _, tt := range tests {
		full := "x " + tt.text + " y"
		c := candidate(tt.text, full, detector.FlightNumber, 0.6)
		if got := v.Accept(c, full); got != tt.want {
			t.Errorf("Accept(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestValidFrequentFlyer(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name string
		text string
		full string
		want bool
	}{
		{"keyword nearby", "AA12345678", "my frequent flyer AA12345678 number", true},
		{"no keyword", "AA12345678", "see AA12345678 in the email", false},
		{"lowercase", "aa12345678", "frequent flyer aa12345678 number", false},
		{"all digits", "1234567890", "frequent flyer 1234567890 number", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate(tt.text, tt.full, detector.FrequentFlyerNumber, 0.5)
			if got := v.Accept(c, tt.full); got != tt.want {
				t.Errorf("Accept(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidPerson(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name  string
		text  string
		score float64
		want  bool
	}{
		{"two tokens always pass", "John Smith", 0.5, true},
		{"ambiguous word low score", "May", 0.5, false},
		{"ambiguous word high score", "May", 0.85, true},
		{"ordinary single name", "Heinrich", 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := "text " + tt.text + " text"
			c := candidate(tt.text, full, detector.Person, tt.score)
			if got := v.Accept(c, full); got != tt.want {
				t.Errorf("Accept(%q, score %v) = %v, want %v", tt.text, tt.score, got, tt.want)
			}
		})
	}
}

func TestClassifyDOB(t *testing.T) {
	v := newTestValidator()
	tests := []struct {
		name    string
		literal string
		want    DOBClass
	}{
		{"old ISO date", "1990-05-20", LikelyDOB},
		{"recent date", "2025-12-25", NotDOB},
		{"current year", "2026-01-15", NotDOB},
		{"future date", "2027-03-01", NotDOB},
		{"nineteenth century", "1899-01-01", NotDOB},
		{"compact mdy", "05201990", LikelyDOB},
		{"compact ymd", "19900520", LikelyDOB},
		{"month name", "20 May 1990", LikelyDOB},
		{"gibberish", "not a date", Unparseable},
		{"compact non-date digits", "99999999", Unparseable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ClassifyDOB(tt.literal); got != tt.want {
				t.Errorf("ClassifyDOB(%q) = %v, want %v", tt.literal, got, tt.want)
			}
		})
	}
}

func TestAcceptDOBKind(t *testing.T) {
	v := newTestValidator()
	full := "born 1990-05-20 travels 2025-12-25"

	if !v.Accept(candidate("1990-05-20", full, detector.DateOfBirth, 0.6), full) {
		t.Error("1990-05-20 should be accepted as a DOB")
	}
	if v.Accept(candidate("2025-12-25", full, detector.DateOfBirth, 0.6), full) {
		t.Error("2025-12-25 should be rejected as a travel date")
	}
}

func TestAcceptPassesUnvalidatedKinds(t *testing.T) {
	v := newTestValidator()
	full := "mail me at a@b.com"
	if !v.Accept(candidate("a@b.com", full, detector.Email, 0.95), full) {
		t.Error("kinds without a dedicated check must pass through")
	}
}

func TestFullWidthContextMatches(t *testing.T) {
	v := newTestValidator()
	// Full-width letters fold to ASCII under NFKC before keyword search.
	full := "ｂｏｏｋｉｎｇ ABCDEF"
	c := candidate("ABCDEF", full, detector.BookingReference, 0.4)
	if !v.Accept(c, full) {
		t.Error("full-width booking keyword should match after folding")
	}
}
