// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ml

import (
	"testing"

	"skyredact/internal/detector"
)

func tl(raw string, start, end int) tokenLabel {
	return tokenLabel{raw: raw, start: start, end: end, score: 0.85}
}

func TestMergeBIOSingleEntity(t *testing.T) {
	spans := mergeBIO([]tokenLabel{
		tl("O", 0, 4),
		tl("B-PER", 5, 9),
		tl("I-PER", 10, 15),
		tl("O", 16, 20),
	})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(spans), spans)
	}
	s := spans[0]
	if s.start != 5 || s.end != 15 {
		t.Errorf("span = [%d,%d), want [5,15)", s.start, s.end)
	}
	if s.kind != detector.Person {
		t.Errorf("kind = %v, want Person", s.kind)
	}
	if s.score != 0.85 {
		t.Errorf("score = %v, want 0.85", s.score)
	}
}

func TestMergeBIOAdjacentEntities(t *testing.T) {
	// A new B- marker splits entities even without an O between them.
	spans := mergeBIO([]tokenLabel{
		tl("B-PER", 0, 4),
		tl("B-PER", 5, 9),
	})
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %v", len(spans), spans)
	}
}

func TestMergeBIOKindChange(t *testing.T) {
	spans := mergeBIO([]tokenLabel{
		tl("B-PER", 0, 4),
		tl("I-ORG", 5, 9),
	})
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2: %v", len(spans), spans)
	}
	if spans[0].kind != detector.Person || spans[1].kind != detector.Organization {
		t.Errorf("kinds = %v, %v", spans[0].kind, spans[1].kind)
	}
}

func TestMergeBIOOrphanInside(t *testing.T) {
	// IO tagging without B markers still forms a span.
	spans := mergeBIO([]tokenLabel{
		tl("I-LOC", 0, 6),
		tl("I-LOC", 7, 12),
	})
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1: %v", len(spans), spans)
	}
	if spans[0].kind != detector.Location {
		t.Errorf("kind = %v, want Location", spans[0].kind)
	}
}

func TestMergeBIOUnknownLabelDropped(t *testing.T) {
	spans := mergeBIO([]tokenLabel{
		tl("B-MONEY", 0, 4),
		tl("I-MONEY", 5, 9),
	})
	if len(spans) != 0 {
		t.Errorf("unknown labels should produce no spans: %v", spans)
	}
}

func TestMergeBIOSkipsSpecialTokens(t *testing.T) {
	// Special tokens carry equal offsets and must not join spans.
	spans := mergeBIO([]tokenLabel{
		tl("O", 0, 0),
		tl("B-PER", 0, 4),
		tl("O", 4, 4),
	})
	if len(spans) != 1 || spans[0].start != 0 || spans[0].end != 4 {
		t.Errorf("spans = %v, want single [0,4)", spans)
	}
}

func TestSplitBIO(t *testing.T) {
	tests := []struct {
		raw        string
		marker     string
		entity     string
	}{
		{"B-PER", "B", "PER"},
		{"I-ORG", "I", "ORG"},
		{"O", "O", ""},
		{"PER", "I", "PER"},
		{"B_LOC", "B", "LOC"},
	}
	for _, tt := range tests {
		marker, entity := splitBIO(tt.raw)
		if marker != tt.marker || entity != tt.entity {
			t.Errorf("splitBIO(%q) = %q, %q, want %q, %q", tt.raw, marker, entity, tt.marker, tt.entity)
		}
	}
}

func TestKindForLabelAliases(t *testing.T) {
	tests := []struct {
		label string
		kind  detector.EntityKind
		ok    bool
	}{
		{"PER", detector.Person, true},
		{"PERSON", detector.Person, true},
		{"GPE", detector.Location, true},
		{"NORP", detector.Nationality, true},
		{"org", detector.Organization, true},
		{"DATE", "", false},
	}
	for _, tt := range tests {
		kind, ok := kindForLabel(tt.label)
		if ok != tt.ok || kind != tt.kind {
			t.Errorf("kindForLabel(%q) = %v, %v; want %v, %v", tt.label, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestContainsLatin(t *testing.T) {
	if !containsLatin("John Smith") {
		t.Error("ASCII name contains Latin letters")
	}
	if containsLatin("张伟") {
		t.Error("CJK name has no Latin letters")
	}
	if !containsLatin("Smith 张") {
		t.Error("mixed text contains Latin letters")
	}
	if !containsLatin("黃Ming") {
		t.Error("romanized given name contains Latin letters")
	}
	if containsLatin("3-2") {
		t.Error("digits and punctuation are not Latin letters")
	}
}

func TestToResultsDropsLatinSpans(t *testing.T) {
	text := "黃Ming 和 张伟"
	spans := []entitySpan{
		{start: 0, end: 5, kind: detector.Person, score: 0.85},
		{start: 8, end: 10, kind: detector.Person, score: 0.85},
	}

	d := &Detector{cfg: Config{DropLatin: true}}
	results := d.toResults(text, spans)
	if len(results) != 1 {
		t.Fatalf("toResults = %v, want only the CJK span", results)
	}
	if results[0].Text != "张伟" {
		t.Errorf("kept %q, want %q", results[0].Text, "张伟")
	}

	d = &Detector{cfg: Config{}}
	if results := d.toResults(text, spans); len(results) != 2 {
		t.Errorf("unfiltered toResults = %v, want both spans", results)
	}
}
