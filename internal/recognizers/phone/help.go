// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"skyredact/internal/help"
)

// GetDetectorInfo returns standardized help information for the phone detector
func (r *Recognizer) GetDetectorInfo() help.DetectorInfo {
	return help.DetectorInfo{
		Name:             "PHONE",
		ShortDescription: "Detects phone numbers across Asia-Pacific, North American and European formats",
		DetailedDescription: "The PHONE detector matches region-specific phone number shapes with " +
			"optional country prefixes and common separator styles. Each region carries its own " +
			"digit-length rules; Chinese mobile numbers are additionally checked against the " +
			"assigned carrier prefix ranges. Matches adjacent to other digits are rejected so " +
			"fragments of longer numbers do not false-positive.",
		Patterns: []string{
			"Chinese mobile: 1[3-9]xxxxxxxxx with optional +86/86 prefix",
			"Hong Kong: 8-digit numbers starting 2/3/5/6/9 with optional +852",
			"Taiwan: 09xxxxxxxx with optional +886",
			"North America: (xxx) xxx-xxxx and 10/11-digit variants",
			"UK, Singapore, Malaysia, Australia, New Zealand, Japan, Korea, India formats",
		},
		Examples: []string{
			"skyredact --text \"Call me at 13812345678\"",
			"skyredact --text \"Contact: +1 (555) 123-4567\" --scan",
		},
	}
}
