// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package personname

import (
	"testing"

	"skyredact/internal/detector"
)

func matches(results []detector.DetectorResult, text string) *detector.DetectorResult {
	for i := range results {
		if results[i].Text == text {
			return &results[i]
		}
	}
	return nil
}

func TestScanWesternFullName(t *testing.T) {
	r := NewRecognizer()
	results := r.Scan("Passenger John Smith has checked in")

	m := matches(results, "John Smith")
	if m == nil {
		t.Fatalf("missed John Smith: %v", results)
	}
	if m.Score != fullWesternScore {
		t.Errorf("score = %v, want %v", m.Score, fullWesternScore)
	}
	if m.Kind != detector.Person {
		t.Errorf("kind = %v, want Person", m.Kind)
	}
	// "Passenger John" must not be reported; the leading word is a stopword.
	if matches(results, "Passenger John") != nil {
		t.Error("stopword pair Passenger John should be suppressed")
	}
}

func TestScanPinyinSurname(t *testing.T) {
	r := NewRecognizer()

	m := matches(r.Scan("Mr Wang Wei will board soon"), "Wang Wei")
	if m == nil {
		t.Fatal("missed pinyin name Wang Wei")
	}
	if m.Score != singleSurnameScore {
		t.Errorf("score = %v, want %v", m.Score, singleSurnameScore)
	}
}

func TestScanCompoundSurname(t *testing.T) {
	r := NewRecognizer()

	m := matches(r.Scan("contact Ouyang Feng directly"), "Ouyang Feng")
	if m == nil {
		t.Fatal("missed compound surname Ouyang Feng")
	}
	if m.Score != compoundSurnameScore {
		t.Errorf("score = %v, want %v", m.Score, compoundSurnameScore)
	}
}

func TestScanGivenNameOnly(t *testing.T) {
	r := NewRecognizer()
	// Jane is a known given name; the following capitalized word completes
	// the pair even when the surname is unknown.
	m := matches(r.Scan("ask Jane Zxyvb about it"), "Jane Zxyvb")
	if m == nil {
		t.Fatal("missed given-name-led pair")
	}
	if m.Score != givenNameScore {
		t.Errorf("score = %v, want %v", m.Score, givenNameScore)
	}
}

func TestScanRejectsNonNames(t *testing.T) {
	r := NewRecognizer()
	for _, text := range []string{
		"The Weather Is Nice Today",
		"lowercase words only here",
		"FLIGHT DELAYED AGAIN",
	} {
		for _, res := range r.Scan(text) {
			t.Errorf("Scan(%q) produced unexpected candidate %v", text, res)
		}
	}
}

func TestScanPairsAcrossRun(t *testing.T) {
	r := NewRecognizer()
	// Both adjacent pairs of the three-word run are evaluated.
	results := r.Scan("Dear John Smith")
	if matches(results, "John Smith") == nil {
		t.Errorf("middle pair of a capitalized run missed: %v", results)
	}
}

func TestScanRequiresAdjacency(t *testing.T) {
	r := NewRecognizer()
	if m := matches(r.Scan("John, meanwhile, Smith"), "John, meanwhile, Smith"); m != nil {
		t.Error("non-adjacent words must not pair")
	}
}
