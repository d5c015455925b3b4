// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package redact turns a resolved span set into output text. Sensitive
// kinds are replaced with bracketed tags, informational kinds are kept
// verbatim, and the rewrite is a single forward pass over the rune buffer
// so span offsets stay valid throughout.
package redact

import (
	"fmt"
	"strings"

	"skyredact/internal/detector"
)

// Action says what to do with a span's text in the output.
type Action int

const (
	// Keep copies the span text through unchanged.
	Keep Action = iota
	// Replace substitutes the span text with the kind's tag.
	Replace
)

// PlannedSpan pairs a final span with its output action.
type PlannedSpan struct {
	Span   detector.Span
	Action Action
	Tag    string
}

// Plan is the final, start-ordered, non-overlapping redaction decision for
// one document.
type Plan struct {
	Spans []PlannedSpan
}

// DefaultTags is the tag substitution table for sensitive kinds. Kinds
// absent here are kept verbatim.
var DefaultTags = map[detector.EntityKind]string{
	detector.Person:              "[NAME]",
	detector.PhoneNumber:         "[Phone]",
	detector.DateOfBirth:         "[DOB]",
	detector.Email:               "[Email]",
	detector.PaymentCard:         "[Payment]",
	detector.GovernmentID:        "[ID]",
	detector.BookingReference:    "[PNR]",
	detector.FlightNumber:        "[Flight no]",
	detector.TicketNumber:        "[Ticket no]",
	detector.FrequentFlyerNumber: "[Frequent Flyer]",
}

// Redactor applies redaction plans using a fixed kind→tag table.
type Redactor struct {
	tags map[detector.EntityKind]string
}

// NewRedactor builds a redactor. A nil table selects DefaultTags; a caller
// table is copied so later mutation cannot leak in.
func NewRedactor(tags map[detector.EntityKind]string) *Redactor {
	if tags == nil {
		tags = DefaultTags
	}
	copied := make(map[detector.EntityKind]string, len(tags))
	for k, v := range tags {
		copied[k] = v
	}
	return &Redactor{tags: copied}
}

// BuildPlan assigns an output action to every final span.
func (r *Redactor) BuildPlan(spans []detector.Span) Plan {
	plan := Plan{Spans: make([]PlannedSpan, 0, len(spans))}
	for _, s := range spans {
		if tag, ok := r.tags[s.Kind]; ok {
			plan.Spans = append(plan.Spans, PlannedSpan{Span: s, Action: Replace, Tag: tag})
		} else {
			plan.Spans = append(plan.Spans, PlannedSpan{Span: s, Action: Keep})
		}
	}
	return plan
}

// Apply rewrites text according to the plan. Span offsets are rune offsets.
// It fails on any bounds or ordering violation instead of producing
// corrupted output; the engine converts that failure into fail-open.
func (r *Redactor) Apply(text string, plan Plan) (string, error) {
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))

	cursor := 0
	for i, ps := range plan.Spans {
		s := ps.Span
		if s.Start < 0 || s.Start >= s.End || s.End > len(runes) {
			return "", fmt.Errorf("span %v out of bounds for %d runes", s, len(runes))
		}
		if s.Start < cursor {
			return "", fmt.Errorf("span %v overlaps previous span (plan index %d)", s, i)
		}
		out.WriteString(string(runes[cursor:s.Start]))
		switch ps.Action {
		case Replace:
			out.WriteString(ps.Tag)
		case Keep:
			out.WriteString(string(runes[s.Start:s.End]))
		default:
			return "", fmt.Errorf("unknown action %d for span %v", ps.Action, s)
		}
		cursor = s.End
	}
	out.WriteString(string(runes[cursor:]))
	return out.String(), nil
}
