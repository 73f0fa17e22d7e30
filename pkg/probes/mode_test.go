package probes

import (
	"context"
	"net/http"
	"strings"
	"testing"
)

func TestMode_Wasm(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusOK, `{"mode":"wasm"}`))

	o := Mode().Run(context.Background(), c)
	if !o.Success {
		t.Fatalf("expected success, got failure: %s", o.Details)
	}
	if !strings.Contains(o.Details, "wasm") {
		t.Errorf("expected mode in details, got %q", o.Details)
	}
}

func TestMode_Server(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusOK, `{"mode":"server"}`))

	o := Mode().Run(context.Background(), c)
	if !o.Success {
		t.Fatalf("expected success, got failure: %s", o.Details)
	}
}

func TestMode_UnknownValue(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusOK, `{"mode":"native"}`))

	o := Mode().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for unknown mode")
	}
	if !strings.Contains(o.Details, "native") {
		t.Errorf("details should name the observed mode, got %q", o.Details)
	}
}

func TestMode_MissingField(t *testing.T) {
	c := testClient(t, jsonHandler(http.StatusOK, `{}`))

	o := Mode().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for missing mode field")
	}
}
