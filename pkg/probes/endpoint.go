// Package probes declares the fixed battery of smoke-test probes run
// against the signaling backend. Most probes are data: a request plus an
// ordered list of acceptable response contracts evaluated by the generic
// endpoint runner. The static, unknown-route, and cross-origin probes
// carry their own logic.
package probes

import (
	"context"
	"fmt"

	"rtcheck/pkg/probe"
)

// contract is one acceptable response for an endpoint probe: an exact
// status code plus a Shape the decoded payload must satisfy. describe,
// when set, renders the pass details from the payload.
type contract struct {
	status   int
	shape    probe.Shape
	describe func(data map[string]any) string
}

// endpoint is a declarative JSON endpoint probe. Contracts are tried in
// order; the first whose status matches the response decides the outcome.
// A response matching no contract's status fails with the observed status
// and body.
type endpoint struct {
	name    string
	method  string
	path    string
	payload any
	accepts []contract
}

func (e endpoint) Name() string {
	return e.name
}

func (e endpoint) Run(ctx context.Context, c *probe.Client) probe.Outcome {
	resp, err := c.Do(ctx, e.method, e.path, e.payload)
	if err != nil {
		return probe.Fail(e.name, err.Error())
	}

	for _, ct := range e.accepts {
		if resp.Status != ct.status {
			continue
		}
		data, err := resp.JSON()
		if err != nil {
			return probe.Fail(e.name, fmt.Sprintf("HTTP %d: %v", resp.Status, err))
		}
		if err := ct.shape.Validate(data); err != nil {
			return probe.Fail(e.name, err.Error())
		}
		var details string
		if ct.describe != nil {
			details = ct.describe(data)
		}
		return probe.Pass(e.name, details, data)
	}

	return probe.Fail(e.name, fmt.Sprintf("HTTP %d: %s", resp.Status, truncate(resp.Body, 100)))
}

// truncate clips a response body for inclusion in failure details.
func truncate(b []byte, n int) string {
	s := string(b)
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
