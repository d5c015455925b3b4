// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"regexp"
	"strings"
)

var (
	alnumBeforeTag = regexp.MustCompile(`([A-Za-z0-9])(\[)`)
	tagBeforeAlnum = regexp.MustCompile(`(\])([A-Za-z0-9])`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// Normalize fixes tag/word spacing after redaction: a single space
// separates an inserted bracket tag from adjacent alphanumeric text,
// whitespace runs collapse to one space, and the result is trimmed.
// Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = alnumBeforeTag.ReplaceAllString(s, "$1 $2")
	s = tagBeforeAlnum.ReplaceAllString(s, "$1 $2")
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
