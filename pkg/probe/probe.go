// Package probe defines the core types for smoke-test probes.
//
// A Probe is a single independent assertion against one endpoint of the
// backend under test. Each execution produces exactly one Outcome, an
// immutable record of what happened. Payload expectations are declared
// as a Shape contract and validated generically, so adding a probe for
// a new endpoint means declaring a contract rather than writing parsing
// code.
package probe

import (
	"context"
	"time"
)

// Probe is the interface all smoke-test probes implement.
type Probe interface {
	// Name returns the label the probe's outcomes are recorded under.
	Name() string

	// Run executes the probe against the backend reached through c.
	// Any fault encountered along the way is reported through the
	// returned Outcome, never by panicking past the probe boundary.
	Run(ctx context.Context, c *Client) Outcome
}

// Outcome is the immutable record of one probe execution.
type Outcome struct {
	// Name identifies the probe that produced this outcome.
	Name string `json:"name"`

	// Success indicates whether the probe passed.
	Success bool `json:"success"`

	// Details is a human-readable explanation. Empty on trivial success.
	Details string `json:"details"`

	// ResponseData optionally captures the payload the backend returned,
	// for later inspection in the exported results.
	ResponseData any `json:"response_data,omitempty"`

	// Timestamp is when the probe completed.
	Timestamp time.Time `json:"timestamp"`
}

// Pass builds a successful Outcome stamped with the current time.
func Pass(name, details string, data any) Outcome {
	return Outcome{
		Name:         name,
		Success:      true,
		Details:      details,
		ResponseData: data,
		Timestamp:    time.Now(),
	}
}

// Fail builds a failing Outcome stamped with the current time.
func Fail(name, details string) Outcome {
	return Outcome{
		Name:      name,
		Success:   false,
		Details:   details,
		Timestamp: time.Now(),
	}
}
