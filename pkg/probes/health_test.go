package probes

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

const healthyBody = `{"status":"ok","mode":"server","timestamp":"2026-01-01T00:00:00Z","clients":2}`

func TestHealth_Conformant(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusOK, healthyBody))

	o := Health().Run(context.Background(), c)
	if !o.Success {
		t.Fatalf("expected success, got failure: %s", o.Details)
	}
	if !strings.Contains(o.Details, "Mode: server") {
		t.Errorf("expected mode in details, got %q", o.Details)
	}
	if o.ResponseData == nil {
		t.Error("expected captured payload")
	}
}

func TestHealth_DegradedStatus(t *testing.T) {
	body := strings.Replace(healthyBody, `"ok"`, `"degraded"`, 1)
	c := testClient(t, jsonHandler(http.StatusOK, body))

	o := Health().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for degraded status")
	}
	if !strings.Contains(o.Details, "degraded") {
		t.Errorf("details should name the observed status, got %q", o.Details)
	}
}

func TestHealth_MissingFields(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusOK, `{"status":"ok","mode":"server"}`))

	o := Health().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for missing fields")
	}
	if !strings.Contains(o.Details, "missing fields") ||
		!strings.Contains(o.Details, "clients") ||
		!strings.Contains(o.Details, "timestamp") {
		t.Errorf("expected missing field names in details, got %q", o.Details)
	}
}

func TestHealth_ServerError(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusInternalServerError, `{}`))

	o := Health().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for HTTP 500")
	}
	if !strings.Contains(o.Details, "500") {
		t.Errorf("expected status code in details, got %q", o.Details)
	}
}
