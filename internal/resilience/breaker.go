// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package resilience

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// BreakerState represents the state of a circuit breaker
type BreakerState int

const (
	StateClosed   BreakerState = iota // Normal operation
	StateOpen                         // Failing fast
	StateHalfOpen                     // Testing if the backend recovered
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// BreakerConfig holds circuit breaker configuration
type BreakerConfig struct {
	Name             string                                   // Name for logging
	FailureThreshold int                                      // Failures before opening
	SuccessThreshold int                                      // Successes to close from half-open
	OpenTimeout      time.Duration                            // Wait before trying half-open
	MaxProbes        int                                      // Max probe requests in half-open state
	IsFailure        func(error) bool                         // Custom failure detection
	OnStateChange    func(name string, from, to BreakerState) // State change callback
}

// DefaultBreakerConfig returns defaults tuned for a local inference backend:
// a misconfigured or crashed model session fails immediately and repeatedly,
// so a short open window is enough to keep the pattern path responsive.
func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Second,
		MaxProbes:        1,
		IsFailure: func(err error) bool {
			if err == nil {
				return false
			}
			// Context cancellation reflects the caller giving up, not the
			// backend failing; it should not trip the breaker.
			return !IsCanceled(err)
		},
	}
}

// Breaker implements the circuit breaker pattern around inference calls.
// When the model backend keeps failing, the breaker fails fast so the
// pattern recognizers carry detection alone.
type Breaker struct {
	config BreakerConfig
	mu     sync.RWMutex

	state           BreakerState
	failureCount    int
	successCount    int
	lastFailureTime time.Time
	probeCount      int // For half-open state
}

// NewBreaker creates a circuit breaker in the closed state.
func NewBreaker(config BreakerConfig) *Breaker {
	return &Breaker{
		config: config,
		state:  StateClosed,
	}
}

// Execute runs the given function with circuit breaker protection.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := b.beforeRequest(); err != nil {
		return err
	}

	err := fn(ctx)
	b.afterRequest(err)
	return err
}

// beforeRequest checks if the request should be allowed
func (b *Breaker) beforeRequest() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()

	switch b.state {
	case StateClosed:
		return nil

	case StateOpen:
		if now.Sub(b.lastFailureTime) >= b.config.OpenTimeout {
			b.setState(StateHalfOpen)
			b.probeCount = 0
			b.probeCount++
			return nil
		}
		return &BreakerOpenError{
			Name:  b.config.Name,
			State: b.state,
			Message: fmt.Sprintf("circuit breaker %q is OPEN (failed %d times, last failure %v ago)",
				b.config.Name, b.failureCount, now.Sub(b.lastFailureTime).Round(time.Second)),
		}

	case StateHalfOpen:
		if b.probeCount >= b.config.MaxProbes {
			return &BreakerOpenError{
				Name:  b.config.Name,
				State: b.state,
				Message: fmt.Sprintf("circuit breaker %q is HALF_OPEN and at max probes (%d)",
					b.config.Name, b.config.MaxProbes),
			}
		}
		b.probeCount++
		return nil

	default:
		return fmt.Errorf("unknown circuit breaker state: %v", b.state)
	}
}

// afterRequest updates circuit breaker state from the call outcome
func (b *Breaker) afterRequest(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	isFailure := b.config.IsFailure
	if isFailure == nil {
		isFailure = func(err error) bool { return err != nil }
	}

	if isFailure(err) {
		b.onFailure()
	} else {
		b.onSuccess()
	}
}

func (b *Breaker) onFailure() {
	b.failureCount++
	b.lastFailureTime = time.Now()

	switch b.state {
	case StateClosed:
		if b.failureCount >= b.config.FailureThreshold {
			b.setState(StateOpen)
		}

	case StateHalfOpen:
		// Any failure in half-open immediately reopens the circuit
		b.setState(StateOpen)
		b.probeCount = 0
	}
}

func (b *Breaker) onSuccess() {
	switch b.state {
	case StateClosed:
		b.failureCount = 0

	case StateHalfOpen:
		b.successCount++
		if b.successCount >= b.config.SuccessThreshold {
			b.setState(StateClosed)
			b.failureCount = 0
			b.successCount = 0
			b.probeCount = 0
		}
	}
}

func (b *Breaker) setState(newState BreakerState) {
	if b.state == newState {
		return
	}

	oldState := b.state
	b.state = newState

	if b.config.OnStateChange != nil {
		b.config.OnStateChange(b.config.Name, oldState, newState)
	}
}

// State returns the current state (thread-safe)
func (b *Breaker) State() BreakerState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Stats returns current circuit breaker counters
func (b *Breaker) Stats() BreakerStats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return BreakerStats{
		Name:            b.config.Name,
		State:           b.state,
		FailureCount:    b.failureCount,
		SuccessCount:    b.successCount,
		ProbeCount:      b.probeCount,
		LastFailureTime: b.lastFailureTime,
	}
}

// Reset manually returns the circuit breaker to the closed state
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.setState(StateClosed)
	b.failureCount = 0
	b.successCount = 0
	b.probeCount = 0
	b.lastFailureTime = time.Time{}
}

// BreakerStats is a snapshot of circuit breaker counters
type BreakerStats struct {
	Name            string
	State           BreakerState
	FailureCount    int
	SuccessCount    int
	ProbeCount      int
	LastFailureTime time.Time
}
