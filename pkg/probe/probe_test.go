package probe

import "testing"

func TestPass(t *testing.T) {
	o := Pass("Health Endpoint", "Mode: server", map[string]any{"status": "ok"})
	if !o.Success {
		t.Error("expected success")
	}
	if o.Name != "Health Endpoint" {
		t.Errorf("unexpected name %q", o.Name)
	}
	if o.ResponseData == nil {
		t.Error("expected captured response data")
	}
	if o.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestFail(t *testing.T) {
	o := Fail("Mode Endpoint", "HTTP 500")
	if o.Success {
		t.Error("expected failure")
	}
	if o.Details != "HTTP 500" {
		t.Errorf("unexpected details %q", o.Details)
	}
	if o.ResponseData != nil {
		t.Error("expected no response data on failure")
	}
	if o.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}
