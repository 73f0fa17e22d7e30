package probes

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"rtcheck/pkg/probe"
)

// hasFrontendMarker reports whether body looks like the expected
// front-end bundle: it mentions WebRTC, react in any case, or the root
// mount div.
func hasFrontendMarker(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "WebRTC") ||
		strings.Contains(strings.ToLower(s), "react") ||
		strings.Contains(s, `div id="root"`)
}

type staticProbe struct{}

// Static probes GET /: a 200 whose body carries a recognizable front-end
// marker, confirming the expected bundle is served.
func Static() probe.Probe {
	return staticProbe{}
}

func (staticProbe) Name() string {
	return "Static File Serving"
}

func (p staticProbe) Run(ctx context.Context, c *probe.Client) probe.Outcome {
	resp, err := c.Get(ctx, "/")
	if err != nil {
		return probe.Fail(p.Name(), err.Error())
	}
	if resp.Status != http.StatusOK {
		return probe.Fail(p.Name(), fmt.Sprintf("HTTP %d", resp.Status))
	}
	if !hasFrontendMarker(resp.Body) {
		return probe.Fail(p.Name(), "response doesn't look like the expected front-end")
	}
	return probe.Pass(p.Name(), "front-end served successfully", nil)
}
