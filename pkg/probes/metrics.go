package probes

import (
	"fmt"
	"net/http"

	"rtcheck/pkg/probe"
)

// summaryShape lists the derived counters the metrics summary section
// must expose.
var summaryShape = probe.Shape{
	Required: []string{
		"run_duration_s",
		"total_frames",
		"processed_frames",
		"dropped_frames",
		"processed_fps",
		"drop_rate",
	},
}

// Metrics probes GET /api/metrics: a 200 with the three top-level
// sections, where the summary section satisfies summaryShape.
func Metrics() probe.Probe {
	return endpoint{
		name:   "Metrics Endpoint",
		method: http.MethodGet,
		path:   "/api/metrics",
		accepts: []contract{{
			status: http.StatusOK,
			shape: probe.Shape{
				Required: []string{"summary", "latency", "bandwidth"},
				Rules: map[string]probe.Rule{
					"summary": probe.Object(summaryShape),
				},
			},
			describe: func(data map[string]any) string {
				summary, _ := data["summary"].(map[string]any)
				return fmt.Sprintf("Duration: %vs, FPS: %v",
					summary["run_duration_s"], summary["processed_fps"])
			},
		}},
	}
}
