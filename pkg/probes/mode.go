package probes

import (
	"fmt"
	"net/http"

	"rtcheck/pkg/probe"
)

// Mode probes GET /api/mode: a 200 whose mode field is one of the two
// processing modes the backend can run in.
func Mode() probe.Probe {
	return endpoint{
		name:   "Mode Endpoint",
		method: http.MethodGet,
		path:   "/api/mode",
		accepts: []contract{{
			status: http.StatusOK,
			shape: probe.Shape{
				Required: []string{"mode"},
				Rules: map[string]probe.Rule{
					"mode": probe.OneOf("wasm", "server"),
				},
			},
			describe: func(data map[string]any) string {
				return fmt.Sprintf("Mode: %v", data["mode"])
			},
		}},
	}
}
