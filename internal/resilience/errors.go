// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"errors"
	"fmt"
)

// BreakerOpenError is returned when a request is rejected without being
// attempted because the circuit is open or half-open at capacity.
type BreakerOpenError struct {
	Name    string
	State   BreakerState
	Message string
}

func (e *BreakerOpenError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("circuit breaker %q is %s", e.Name, e.State)
}

// IsBreakerOpen reports whether err means the call was rejected by the
// breaker rather than failed by the backend.
func IsBreakerOpen(err error) bool {
	var open *BreakerOpenError
	return errors.As(err, &open)
}

// IsCanceled reports whether err stems from context cancellation or a
// deadline set by the caller.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
