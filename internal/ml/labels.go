// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ml

import (
	"strings"

	"skyredact/internal/detector"
)

// entitySpan is a contiguous run of tokens carrying the same entity label,
// expressed in rune offsets relative to the analyzed text.
type entitySpan struct {
	start int
	end   int
	kind  detector.EntityKind
	score float64
}

// kindForLabel maps a model label (without the B-/I- prefix) to an entity
// kind. Token classification models in the wild disagree on label names, so
// the common aliases are folded together. Unknown labels are dropped.
func kindForLabel(label string) (detector.EntityKind, bool) {
	switch strings.ToUpper(label) {
	case "PER", "PERSON":
		return detector.Person, true
	case "ORG", "ORGANIZATION":
		return detector.Organization, true
	case "LOC", "GPE", "LOCATION", "FAC":
		return detector.Location, true
	case "NORP", "NATIONALITY", "MISC":
		return detector.Nationality, true
	default:
		return "", false
	}
}

// splitBIO separates a raw label into its BIO marker and entity part.
// "B-PER" yields ("B", "PER"); plain "PER" is treated as "I-PER" so models
// emitting IO tagging still merge into spans.
func splitBIO(raw string) (marker, entity string) {
	switch {
	case raw == "O" || raw == "":
		return "O", ""
	case len(raw) > 2 && (raw[1] == '-' || raw[1] == '_'):
		return strings.ToUpper(raw[:1]), raw[2:]
	default:
		return "I", raw
	}
}

// tokenLabel is one classified token with its rune offsets and confidence.
type tokenLabel struct {
	raw   string
	start int
	end   int
	score float64
}

// mergeBIO folds per-token labels into entity spans. A B- marker always
// starts a new span; an I- marker extends the current span when the entity
// part matches, otherwise it starts one. Special tokens arrive with equal
// offsets and are skipped.
func mergeBIO(tokens []tokenLabel) []entitySpan {
	var spans []entitySpan
	var cur *entitySpan
	var curEntity string
	var scoreSum float64
	var scoreN int

	flush := func() {
		if cur == nil {
			return
		}
		if scoreN > 0 {
			cur.score = scoreSum / float64(scoreN)
		}
		spans = append(spans, *cur)
		cur = nil
		scoreSum, scoreN = 0, 0
	}

	for _, tok := range tokens {
		if tok.end <= tok.start {
			continue
		}
		marker, entity := splitBIO(tok.raw)
		if marker == "O" {
			flush()
			continue
		}
		kind, ok := kindForLabel(entity)
		if !ok {
			flush()
			continue
		}
		if marker == "B" || cur == nil || entity != curEntity || tok.start > cur.end+1 {
			flush()
			cur = &entitySpan{start: tok.start, end: tok.end, kind: kind}
			curEntity = entity
		} else {
			cur.end = tok.end
		}
		scoreSum += tok.score
		scoreN++
	}
	flush()
	return spans
}
