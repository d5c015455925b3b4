// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cjkname

import (
	"testing"

	"skyredact/internal/detector"
)

func TestScanDetectsSurnameAnchoredNames(t *testing.T) {
	r := NewRecognizer()
	tests := []struct {
		text  string
		match string
	}{
		{"旅客张伟已登机", "张伟已"},
		{"王芳女士您好", "王芳女"},
		{"李明", "李明"},
	}

	for _, tt := range tests {
		results := r.Scan(tt.text)
		found := false
		for _, res := range results {
			if res.Text == tt.match {
				found = true
				if res.Kind != detector.Person {
					t.Errorf("kind = %v, want Person", res.Kind)
				}
				if res.Score != nameScore {
					t.Errorf("score = %v, want %v", res.Score, nameScore)
				}
				if tt.text[res.Start:res.End] != res.Text {
					t.Errorf("offsets mismatch for %q", res.Text)
				}
			}
		}
		if !found {
			t.Errorf("Scan(%q) missed %q: %v", tt.text, tt.match, results)
		}
	}
}

func TestScanCompoundSurnameWins(t *testing.T) {
	r := NewRecognizer()
	// The compound surname must anchor the match, not its leading character.
	results := r.Scan("欧阳锋先生")
	found := false
	for _, res := range results {
		if res.Text == "欧阳锋先" {
			found = true
		}
	}
	if !found {
		t.Errorf("compound surname match missing: %v", results)
	}
}

func TestScanIgnoresPlainProse(t *testing.T) {
	r := NewRecognizer()
	// No leading surname character: weather talk stays untouched.
	if results := r.Scan("今天天气很好"); len(results) != 0 {
		t.Errorf("prose produced candidates: %v", results)
	}
}

func TestScanIgnoresLatinText(t *testing.T) {
	r := NewRecognizer()
	if results := r.Scan("John Smith flies tomorrow"); len(results) != 0 {
		t.Errorf("Latin text produced CJK candidates: %v", results)
	}
}
