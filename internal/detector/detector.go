// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "fmt"

// EntityKind identifies the classification of a detected span.
// The set is closed: recognizers and validators switch on these values.
type EntityKind string

const (
	Person              EntityKind = "PERSON"
	PhoneNumber         EntityKind = "PHONE_NUMBER"
	DateOfBirth         EntityKind = "DATE_OF_BIRTH"
	Email               EntityKind = "EMAIL"
	PaymentCard         EntityKind = "PAYMENT_CARD"
	GovernmentID        EntityKind = "GOVERNMENT_ID"
	BookingReference    EntityKind = "BOOKING_REFERENCE"
	FlightNumber        EntityKind = "FLIGHT_NUMBER"
	TicketNumber        EntityKind = "TICKET_NUMBER"
	FrequentFlyerNumber EntityKind = "FREQUENT_FLYER"
	Organization        EntityKind = "ORGANIZATION"
	Location            EntityKind = "LOCATION"
	Nationality         EntityKind = "NATIONALITY"
)

// DetectorID identifies the recognizer family that produced a candidate.
// Used for tie-breaking in conflict resolution and for debugging.
type DetectorID string

const (
	SourcePhone       DetectorID = "phone"
	SourceAirline     DetectorID = "airline"
	SourcePersonName  DetectorID = "personname"
	SourceCJKName     DetectorID = "cjkname"
	SourceEmail       DetectorID = "email"
	SourcePaymentCard DetectorID = "paymentcard"
	SourceGovID       DetectorID = "govid"
	SourceDates       DetectorID = "dates"
	SourceModel       DetectorID = "model"
)

// Span is a half-open character range [Start, End) over the input text,
// measured in runes, tagged with an entity kind, a confidence score in [0,1]
// and the detector that produced it. Spans are immutable value types.
type Span struct {
	Start int
	End   int
	Kind  EntityKind
	Score float64
	// Specificity ranks the detector family for same-score tie-breaking:
	// domain-validated pattern (3) > generic heuristic (2) > model (1).
	Specificity int
	Source      DetectorID
}

// Len returns the span length in runes.
func (s Span) Len() int { return s.End - s.Start }

// Intersects reports whether two spans share at least one rune.
func (s Span) Intersects(o Span) bool {
	return max(s.Start, o.Start) < min(s.End, o.End)
}

func (s Span) String() string {
	return fmt.Sprintf("%s[%d:%d]@%.2f(%s)", s.Kind, s.Start, s.End, s.Score, s.Source)
}

// DetectorResult is an unvalidated candidate: a byte-offset range into the
// scanned text plus the raw matched substring. Recognizers work on bytes
// (what regexp yields); the collector converts candidates to rune-offset
// Spans once, in one place.
type DetectorResult struct {
	Text  string // literal matched text, kept for validators
	Start int    // byte offset, inclusive
	End   int    // byte offset, exclusive
	Kind  EntityKind
	Score float64
	// Specificity ranks the detector family for same-score tie-breaking:
	// domain-validated pattern (3) > generic heuristic (2) > model (1).
	Specificity int
	Source      DetectorID
}

// Recognizer is the contract every detector family implements: scan the full
// text and return zero or more candidates. Implementations are deterministic,
// side-effect-free and never fail; absence of matches is an empty slice.
type Recognizer interface {
	Name() DetectorID
	Scan(text string) []DetectorResult
}

// ContextWindow returns the text within window runes on each side of the
// byte range [start, end), including the match itself. Validators run
// keyword checks against it.
func ContextWindow(text string, start, end, window int) string {
	runes := []rune(text[:start])
	left := len(runes) - window
	if left < 0 {
		left = 0
	}
	before := string(runes[left:])

	after := []rune(text[end:])
	if len(after) > window {
		after = after[:window]
	}
	return before + text[start:end] + string(after)
}
