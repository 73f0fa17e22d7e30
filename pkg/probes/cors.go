package probes

import (
	"context"
	"fmt"

	"rtcheck/pkg/probe"
)

// corsHeaders are the cross-origin permission headers, any one of which
// satisfies the probe.
var corsHeaders = []string{
	"Access-Control-Allow-Origin",
	"Access-Control-Allow-Methods",
	"Access-Control-Allow-Headers",
}

type corsProbe struct{}

// CORS issues a preflight OPTIONS to the health path and passes when a
// recognized cross-origin permission header is present. Some servers only
// attach these headers to plain requests, so a GET fallback is tried
// before failing.
func CORS() probe.Probe {
	return corsProbe{}
}

func (corsProbe) Name() string {
	return "CORS Headers"
}

func (p corsProbe) Run(ctx context.Context, c *probe.Client) probe.Outcome {
	resp, optErr := c.Options(ctx, "/api/health")
	if optErr == nil {
		var present []string
		for _, h := range corsHeaders {
			if resp.Header.Get(h) != "" {
				present = append(present, h)
			}
		}
		if len(present) > 0 {
			return probe.Pass(p.Name(), fmt.Sprintf("found headers: %v", present), nil)
		}
	}

	get, err := c.Get(ctx, "/api/health")
	if err != nil {
		if optErr != nil {
			return probe.Fail(p.Name(), optErr.Error())
		}
		return probe.Fail(p.Name(), err.Error())
	}
	if get.Header.Get("Access-Control-Allow-Origin") != "" {
		return probe.Pass(p.Name(), "CORS enabled on GET requests", nil)
	}
	return probe.Fail(p.Name(), "no CORS headers found")
}
