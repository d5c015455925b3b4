// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package preprocess turns input files into plain text the pipeline can
// analyze. Plain text passes through; PDFs go through text extraction.
package preprocess

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages caps extraction work on very large documents.
const maxPDFPages = 50

// maxInputBytes rejects inputs that are clearly not customer messages.
const maxInputBytes = 16 << 20

// ExtractText reads a file and returns its text content. The format is
// chosen by extension; anything that is not a PDF is treated as UTF-8 text.
func ExtractText(filePath string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("stat input: %w", err)
	}
	if info.Size() > maxInputBytes {
		return "", fmt.Errorf("input %s exceeds %d bytes", filePath, maxInputBytes)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDFText(filePath)
	default:
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

// extractPDFText pulls the plain text out of a PDF, page by page. Pages
// that fail to extract are skipped rather than failing the document.
func extractPDFText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxPDFPages {
		pageCount = maxPDFPages
	}

	var buf bytes.Buffer
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(text)
	}

	return buf.String(), nil
}
