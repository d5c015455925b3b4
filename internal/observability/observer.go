// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// ObservabilityLevel controls how much the observer emits.
type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// StandardObserver implements observability for all components. Warnings
// and errors always go to the writer; per-operation timing records are
// emitted as JSON only in debug mode.
type StandardObserver struct {
	level  ObservabilityLevel
	mu     sync.Mutex
	writer io.Writer
}

// NewStandardObserver creates an observability component.
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{level: level, writer: writer}
}

// StartTiming returns a function to complete timing for one operation.
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, metadata map[string]any) {
	start := time.Now()
	return func(success bool, metadata map[string]any) {
		o.LogOperation(OperationRecord{
			Component:  component,
			Operation:  operation,
			DurationMs: time.Since(start).Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation emits one operation record in debug mode.
func (o *StandardObserver) LogOperation(rec OperationRecord) {
	if o == nil || o.level < ObservabilityDebug || o.writer == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	json.NewEncoder(o.writer).Encode(rec)
}

// Warn emits a warning line unless observability is off.
func (o *StandardObserver) Warn(component, format string, args ...any) {
	if o == nil || o.level == ObservabilityOff || o.writer == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "Warning: [%s] %s\n", component, fmt.Sprintf(format, args...))
}

// Error emits an error line unless observability is off. Fail-open events
// are reported through this path so operators can monitor them.
func (o *StandardObserver) Error(component, format string, args ...any) {
	if o == nil || o.level == ObservabilityOff || o.writer == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, "Error: [%s] %s\n", component, fmt.Sprintf(format, args...))
}

// OperationRecord is the timing record for one component operation.
type OperationRecord struct {
	Component  string         `json:"component"`
	Operation  string         `json:"operation"`
	DurationMs int64          `json:"duration_ms,omitempty"`
	Success    bool           `json:"success"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
