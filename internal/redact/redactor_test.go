// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"strings"
	"testing"

	"skyredact/internal/detector"
)

func span(start, end int, kind detector.EntityKind) detector.Span {
	return detector.Span{Start: start, End: end, Kind: kind}
}

func TestApplyReplacesSensitiveKinds(t *testing.T) {
	r := NewRedactor(nil)
	text := "Passenger John Smith on MU583"
	plan := r.BuildPlan([]detector.Span{
		span(10, 20, detector.Person),
		span(24, 29, detector.FlightNumber),
	})

	out, err := r.Apply(text, plan)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := "Passenger [NAME] on [Flight no]"
	if out != want {
		t.Errorf("Apply() = %q, want %q", out, want)
	}
}

func TestApplyKeepsInformationalKinds(t *testing.T) {
	r := NewRedactor(nil)
	text := "I flew with Lufthansa to Munich"
	plan := r.BuildPlan([]detector.Span{
		span(12, 21, detector.Organization),
		span(25, 31, detector.Location),
	})

	out, err := r.Apply(text, plan)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if out != text {
		t.Errorf("Apply() = %q, want unchanged %q", out, text)
	}
}

func TestApplyMultibyteOffsets(t *testing.T) {
	r := NewRedactor(nil)
	// Offsets are rune offsets: 张伟 occupies runes [2,4).
	text := "旅客张伟先生"
	plan := r.BuildPlan([]detector.Span{span(2, 4, detector.Person)})

	out, err := r.Apply(text, plan)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	want := "旅客[NAME]先生"
	if out != want {
		t.Errorf("Apply() = %q, want %q", out, want)
	}
}

func TestApplyRejectsBadSpans(t *testing.T) {
	r := NewRedactor(nil)
	text := "short"

	cases := []struct {
		name  string
		spans []detector.Span
	}{
		{"out of bounds", []detector.Span{span(0, 99, detector.Person)}},
		{"negative start", []detector.Span{span(-1, 3, detector.Person)}},
		{"empty", []detector.Span{span(2, 2, detector.Person)}},
		{"overlapping", []detector.Span{span(0, 3, detector.Person), span(2, 5, detector.Email)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := r.Apply(text, r.BuildPlan(tc.spans)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestApplyCustomTags(t *testing.T) {
	r := NewRedactor(map[detector.EntityKind]string{
		detector.Person: "[REDACTED]",
	})
	text := "Jane Doe called"
	out, err := r.Apply(text, r.BuildPlan([]detector.Span{span(0, 8, detector.Person)}))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !strings.HasPrefix(out, "[REDACTED]") {
		t.Errorf("Apply() = %q, want custom tag", out)
	}
	// Kinds absent from a custom table are kept
	out2, err := r.Apply(text, r.BuildPlan([]detector.Span{span(0, 8, detector.Email)}))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if out2 != text {
		t.Errorf("Apply() = %q, want unchanged for untagged kind", out2)
	}
}

func TestApplyEmptyPlan(t *testing.T) {
	r := NewRedactor(nil)
	out, err := r.Apply("nothing sensitive here", Plan{})
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if out != "nothing sensitive here" {
		t.Errorf("Apply() = %q, want input unchanged", out)
	}
}
