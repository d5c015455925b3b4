// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package airline detects the structured identifiers specific to airline
// customer-service text: booking references (PNR), flight numbers, ticket
// numbers and frequent-flyer numbers. The lexical shapes deliberately
// overlap (a five-character flight number is also a syntactically valid
// PNR); overlap is resolved by score and by the per-kind validators, never
// here.
package airline

import (
	"regexp"
	"strings"

	"skyredact/internal/detector"
)

// Pattern shapes mirror the booking-system formats. Case-insensitive on
// purpose: the validators reject lowercase matches, keeping the
// recognizer/validator split observable in scan output.
var (
	flightRegex = regexp.MustCompile(`(?i)\b(?:[A-Z]{2}|[A-Z]\d|\d[A-Z])\s?\d{3,4}\b`)
	pnrRegex    = regexp.MustCompile(`(?i)\b[A-Z0-9]{5,6}\b`)
	ticketRegex = regexp.MustCompile(`\b\d{3}-?\d{10}\b`)
	ffRegex     = regexp.MustCompile(`(?i)\b[A-Z0-9]{5,12}\b`)
	digitRun13  = regexp.MustCompile(`\d{13}`)
)

const (
	flightScore = 0.6
	pnrScore    = 0.4
	ticketScore = 0.6
	ffScore     = 0.5
	// Unbroken 13-digit runs are e-ticket numbers with near certainty.
	stickyTicketScore = 0.9
)

// Recognizer emits candidates for all four airline code families plus the
// unhyphenated 13-digit e-ticket form the generic ticket pattern misses.
type Recognizer struct{}

// NewRecognizer returns an airline-code recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourceAirline }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult

	emit := func(loc []int, kind detector.EntityKind, score float64) {
		results = append(results, detector.DetectorResult{
			Text:        text[loc[0]:loc[1]],
			Start:       loc[0],
			End:         loc[1],
			Kind:        kind,
			Score:       score,
			Specificity: 3,
			Source:      detector.SourceAirline,
		})
	}

	for _, loc := range flightRegex.FindAllStringIndex(text, -1) {
		emit(loc, detector.FlightNumber, flightScore)
	}
	for _, loc := range pnrRegex.FindAllStringIndex(text, -1) {
		emit(loc, detector.BookingReference, pnrScore)
	}
	for _, loc := range ticketRegex.FindAllStringIndex(text, -1) {
		emit(loc, detector.TicketNumber, ticketScore)
	}
	for _, loc := range ffRegex.FindAllStringIndex(text, -1) {
		// A frequent-flyer code carries at least one digit and at least one
		// letter; all-letter matches are ordinary words and all-digit runs
		// collide with phone and ticket numbers.
		m := text[loc[0]:loc[1]]
		if !strings.ContainsAny(m, "0123456789") {
			continue
		}
		if isAllDigits(m) {
			continue
		}
		emit(loc, detector.FrequentFlyerNumber, ffScore)
	}
	for _, loc := range digitRun13.FindAllStringIndex(text, -1) {
		if detector.DigitAdjacent(text, loc[0], loc[1]) {
			continue
		}
		emit(loc, detector.TicketNumber, stickyTicketScore)
	}

	return results
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
