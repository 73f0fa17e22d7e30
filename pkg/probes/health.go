package probes

import (
	"fmt"
	"net/http"

	"rtcheck/pkg/probe"
)

// Health probes GET /api/health: a 200 whose payload carries the four
// documented fields and reports status "ok".
func Health() probe.Probe {
	return endpoint{
		name:   "Health Endpoint",
		method: http.MethodGet,
		path:   "/api/health",
		accepts: []contract{{
			status: http.StatusOK,
			shape: probe.Shape{
				Required: []string{"status", "mode", "timestamp", "clients"},
				Rules: map[string]probe.Rule{
					"status": probe.Equals("ok"),
				},
			},
			describe: func(data map[string]any) string {
				return fmt.Sprintf("Mode: %v, Clients: %v", data["mode"], data["clients"])
			},
		}},
	}
}
