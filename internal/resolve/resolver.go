// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolve reduces a validated candidate list to a non-overlapping
// final span set. The ordering is total, so the output is deterministic
// regardless of candidate arrival order, and chain overlaps (a-b overlap,
// b-c overlap) cannot reintroduce conflicts past pairwise checks.
package resolve

import (
	"sort"

	"skyredact/internal/detector"
)

// Resolve returns a start-ordered, non-overlapping subset of spans. Among
// conflicting candidates the highest score wins; score ties fall to the
// span's specificity (domain-validated pattern over generic fallback), then
// to the earlier start, then to kind name for a total order.
func Resolve(spans []detector.Span) []detector.Span {
	if len(spans) == 0 {
		return nil
	}

	ranked := make([]detector.Span, len(spans))
	copy(ranked, spans)
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Specificity != b.Specificity {
			return a.Specificity > b.Specificity
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End > b.End // prefer the longer match
		}
		return a.Kind < b.Kind
	})

	var accepted []detector.Span
	for _, cand := range ranked {
		if intersectsAny(cand, accepted) {
			continue
		}
		accepted = append(accepted, cand)
	}

	sort.Slice(accepted, func(i, j int) bool { return accepted[i].Start < accepted[j].Start })
	return accepted
}

func intersectsAny(s detector.Span, accepted []detector.Span) bool {
	for _, a := range accepted {
		if s.Intersects(a) {
			return true
		}
	}
	return false
}
