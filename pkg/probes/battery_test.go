package probes

import "testing"

func TestBattery_FixedOrder(t *testing.T) {
	want := []string{
		"Health Endpoint",
		"Mode Endpoint",
		"Metrics Endpoint",
		"WebRTC Offer Endpoint",
		"WebRTC ICE Candidate Endpoint",
		"Static File Serving",
		"CORS Headers",
		"Error Handling",
	}

	battery := Battery()
	if len(battery) != len(want) {
		t.Fatalf("expected %d probes, got %d", len(want), len(battery))
	}
	for i, p := range battery {
		if p.Name() != want[i] {
			t.Errorf("probe %d: expected %q, got %q", i, want[i], p.Name())
		}
	}
}
