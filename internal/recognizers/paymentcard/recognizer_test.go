// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paymentcard

import (
	"testing"

	"skyredact/internal/detector"
)

func TestScanLuhnValidCards(t *testing.T) {
	r := NewRecognizer()
	tests := []struct {
		text  string
		match string
	}{
		{"charged to 4111 1111 1111 1111 today", "4111 1111 1111 1111"},
		{"card 4111-1111-1111-1111 on file", "4111-1111-1111-1111"},
		{"pay with 5555555555554444", "5555555555554444"},
	}
	for _, tt := range tests {
		results := r.Scan(tt.text)
		if len(results) != 1 {
			t.Fatalf("Scan(%q) = %v, want one match", tt.text, results)
		}
		res := results[0]
		if res.Text != tt.match {
			t.Errorf("match = %q, want %q", res.Text, tt.match)
		}
		if res.Kind != detector.PaymentCard || res.Score != cardScore {
			t.Errorf("kind/score = %v/%v", res.Kind, res.Score)
		}
	}
}

func TestScanRejectsLuhnInvalid(t *testing.T) {
	r := NewRecognizer()
	// Same shape as a Visa number, fails the checksum.
	if results := r.Scan("card 4111 1111 1111 1112"); len(results) != 0 {
		t.Errorf("Luhn-invalid number accepted: %v", results)
	}
}

func TestScanRejectsOversizedRun(t *testing.T) {
	r := NewRecognizer()
	// 21 digits: too long for any card grouping, and the embedded valid
	// 16-digit substring has no word boundary to anchor on.
	if results := r.Scan("ref 994111111111111111994"); len(results) != 0 {
		t.Errorf("oversized digit run accepted: %v", results)
	}
}

func TestLuhnValid(t *testing.T) {
	tests := []struct {
		digits string
		want   bool
	}{
		{"4111111111111111", true},
		{"5555555555554444", true},
		{"4111111111111112", false},
		{"1234567890123456", false},
	}
	for _, tt := range tests {
		if got := luhnValid(tt.digits); got != tt.want {
			t.Errorf("luhnValid(%q) = %v, want %v", tt.digits, got, tt.want)
		}
	}
}
