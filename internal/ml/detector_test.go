// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ml

import (
	"bytes"
	"strings"
	"testing"

	"skyredact/internal/observability"
)

func TestWarnKeepsPathsLiteral(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewStandardObserver(observability.ObservabilityMetrics, &buf)
	d := New(Config{ModelPath: "/models/100%ner/model.onnx"}, obs)

	d.warn("model %s not found, continuing without it", d.cfg.ModelPath)
	if !strings.Contains(buf.String(), "/models/100%ner/model.onnx") {
		t.Errorf("warning garbled the path: %q", buf.String())
	}
}

func TestWarnFiresOnce(t *testing.T) {
	var buf bytes.Buffer
	obs := observability.NewStandardObserver(observability.ObservabilityMetrics, &buf)
	d := New(Config{ModelPath: "/nowhere/model.onnx"}, obs)

	d.warn("first: %s", d.cfg.ModelPath)
	d.warn("second: %s", d.cfg.ModelPath)
	if got := strings.Count(buf.String(), "Warning:"); got != 1 {
		t.Errorf("warning emitted %d times, want 1: %q", got, buf.String())
	}
}
