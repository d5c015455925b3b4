// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package airline

import (
	"skyredact/internal/help"
)

// GetDetectorInfo returns standardized help information for the airline detector
func (r *Recognizer) GetDetectorInfo() help.DetectorInfo {
	return help.DetectorInfo{
		Name:             "AIRLINE",
		ShortDescription: "Detects booking references, flight numbers, ticket numbers and frequent flyer IDs",
		DetailedDescription: "The AIRLINE detector matches the identifier shapes used across airline " +
			"systems. Booking references (PNRs) are 5-6 character alphanumeric codes; flight numbers " +
			"pair an IATA carrier designator with 3-4 digits; ticket numbers are 13 digits with an " +
			"optional dash after the airline prefix; frequent flyer numbers are 5-12 character " +
			"alphanumeric codes. Ambiguous shapes are only reported when validation finds booking " +
			"or loyalty vocabulary near the candidate.",
		Patterns: []string{
			"Booking reference: 5-6 alphanumeric characters (X9Y8Z7)",
			"Flight number: carrier designator + 3-4 digits (MU583, CA1234)",
			"Ticket number: 13 digits, optional dash (784-1234567890)",
			"Frequent flyer: 5-12 alphanumeric characters with at least one digit",
		},
		PositiveKeywords: []string{
			"booking", "reservation", "pnr", "confirmation", "frequent flyer", "mileage", "miles",
		},
		Examples: []string{
			"skyredact --text \"Your booking reference is X9Y8Z7\"",
			"skyredact --text \"Flight MU583 ticket 784-1234567890\" --scan",
		},
	}
}
