// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExtractPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "message.txt")
	content := "Passenger John Smith, booking X9Y8Z7"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != content {
		t.Errorf("ExtractText() = %q, want %q", got, content)
	}
}

func TestExtractUnknownExtensionTreatedAsText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "message.log")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ExtractText(path)
	if err != nil {
		t.Fatalf("ExtractText returned error: %v", err)
	}
	if got != "hello" {
		t.Errorf("ExtractText() = %q, want hello", got)
	}
}

func TestExtractMissingFile(t *testing.T) {
	if _, err := ExtractText(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ExtractText(path); err == nil {
		t.Error("expected error for corrupt PDF")
	}
}
