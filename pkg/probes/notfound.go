package probes

import (
	"context"
	"fmt"
	"net/http"

	"rtcheck/pkg/probe"
)

type notFoundProbe struct{}

// NotFound probes GET /api/nonexistent. A 404 is the expected answer;
// a 200 still passes when the body carries the front-end marker, since
// client-side routing may catch unmatched paths. Any other outcome fails.
func NotFound() probe.Probe {
	return notFoundProbe{}
}

func (notFoundProbe) Name() string {
	return "Error Handling"
}

func (p notFoundProbe) Run(ctx context.Context, c *probe.Client) probe.Outcome {
	resp, err := c.Get(ctx, "/api/nonexistent")
	if err != nil {
		return probe.Fail(p.Name(), err.Error())
	}

	switch resp.Status {
	case http.StatusNotFound:
		return probe.Pass(p.Name(), "404 for non-existent endpoint", nil)
	case http.StatusOK:
		if hasFrontendMarker(resp.Body) {
			return probe.Pass(p.Name(), "non-API routes served by the front-end", nil)
		}
		return probe.Fail(p.Name(), fmt.Sprintf("unexpected 200 response: %s", truncate(resp.Body, 100)))
	default:
		return probe.Fail(p.Name(), fmt.Sprintf("unexpected status code: %d", resp.Status))
	}
}
