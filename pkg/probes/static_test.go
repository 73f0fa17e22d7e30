package probes

import (
	"context"
	"net/http"
	"testing"
)

func htmlHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

func TestStatic_WebRTCMarker(t *testing.T) {
	c := testClient(t, htmlHandler(http.StatusOK, `<html><title>WebRTC Demo</title></html>`))

	o := Static().Run(context.Background(), c)
	if !o.Success {
		t.Fatalf("expected success, got failure: %s", o.Details)
	}
}

func TestStatic_RootDivMarker(t *testing.T) {
	c := testClient(t, htmlHandler(http.StatusOK, `<html><body><div id="root"></div></body></html>`))

	o := Static().Run(context.Background(), c)
	if !o.Success {
		t.Fatalf("expected success, got failure: %s", o.Details)
	}
}

func TestStatic_ReactMarkerCaseInsensitive(t *testing.T) {
	c := testClient(t, htmlHandler(http.StatusOK, `<html><script src="/React.js"></script></html>`))

	o := Static().Run(context.Background(), c)
	if !o.Success {
		t.Fatalf("expected success, got failure: %s", o.Details)
	}
}

func TestStatic_NoMarker(t *testing.T) {
	c := testClient(t, htmlHandler(http.StatusOK, `<html>It works!</html>`))

	o := Static().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for unrecognized page")
	}
}

func TestStatic_NotOK(t *testing.T) {
	c := testClient(t, htmlHandler(http.StatusServiceUnavailable, ``))

	o := Static().Run(context.Background(), c)
	if o.Success {
		t.Fatal("expected failure for 503")
	}
}
