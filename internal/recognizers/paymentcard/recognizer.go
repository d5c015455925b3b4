// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paymentcard

import (
	"regexp"

	"skyredact/internal/detector"
)

const cardScore = 0.9

// cardRegex matches 13 to 19 digits in the groupings card issuers print:
// solid runs or 4-digit groups separated by spaces or hyphens.
var cardRegex = regexp.MustCompile(`\b\d{4}[ -]?\d{4}[ -]?\d{4}[ -]?\d{1,7}\b|\b\d{13,19}\b`)

// Recognizer detects payment card numbers. Candidates must pass the Luhn
// checksum; that alone eliminates nearly all ticket-number and phone-number
// collisions before conflict resolution.
type Recognizer struct{}

// NewRecognizer returns a payment-card recognizer.
func NewRecognizer() *Recognizer { return &Recognizer{} }

// Name implements detector.Recognizer.
func (r *Recognizer) Name() detector.DetectorID { return detector.SourcePaymentCard }

// Scan implements detector.Recognizer.
func (r *Recognizer) Scan(text string) []detector.DetectorResult {
	var results []detector.DetectorResult
	for _, loc := range cardRegex.FindAllStringIndex(text, -1) {
		if detector.DigitAdjacent(text, loc[0], loc[1]) {
			continue
		}
		raw := text[loc[0]:loc[1]]
		digits := digitsOnly(raw)
		if len(digits) < 13 || len(digits) > 19 {
			continue
		}
		if !luhnValid(digits) {
			continue
		}
		results = append(results, detector.DetectorResult{
			Text:        raw,
			Start:       loc[0],
			End:         loc[1],
			Kind:        detector.PaymentCard,
			Score:       cardScore,
			Specificity: 2,
			Source:      detector.SourcePaymentCard,
		})
	}
	return results
}

func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// luhnValid runs the standard mod-10 checksum over a digit string.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
