// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"fmt"
	"unicode/utf8"
)

// RuneIndex maps byte offsets of a specific text to rune offsets. Built once
// per document so every candidate conversion is O(1).
type RuneIndex struct {
	byteToRune map[int]int
	runeCount  int
}

// NewRuneIndex precomputes the byte-to-rune offset table for text. Every
// rune start position and the end-of-text position are valid lookups.
func NewRuneIndex(text string) *RuneIndex {
	idx := &RuneIndex{byteToRune: make(map[int]int, len(text)+1)}
	r := 0
	for b := range text {
		idx.byteToRune[b] = r
		r++
	}
	idx.byteToRune[len(text)] = r
	idx.runeCount = r
	return idx
}

// RuneCount returns the length of the indexed text in runes.
func (ri *RuneIndex) RuneCount() int { return ri.runeCount }

// ToSpan converts a byte-offset candidate into a rune-offset Span. It fails
// if the byte offsets do not land on rune boundaries or fall outside the
// indexed text, which would indicate a recognizer bug.
func (ri *RuneIndex) ToSpan(res DetectorResult) (Span, error) {
	start, ok := ri.byteToRune[res.Start]
	if !ok {
		return Span{}, fmt.Errorf("byte offset %d is not a rune boundary", res.Start)
	}
	end, ok := ri.byteToRune[res.End]
	if !ok {
		return Span{}, fmt.Errorf("byte offset %d is not a rune boundary", res.End)
	}
	if start >= end || end > ri.runeCount {
		return Span{}, fmt.Errorf("invalid span bounds [%d,%d) over %d runes", start, end, ri.runeCount)
	}
	return Span{
		Start:       start,
		End:         end,
		Kind:        res.Kind,
		Score:       res.Score,
		Specificity: res.Specificity,
		Source:      res.Source,
	}, nil
}

// DigitAdjacent reports whether the byte range [start, end) in text touches
// an ASCII digit on either side. Replaces the lookaround guards that the
// regexp engine cannot express.
func DigitAdjacent(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if r >= '0' && r <= '9' {
			return true
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}
