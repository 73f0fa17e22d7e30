package probes

import (
	"fmt"
	"net/http"

	"rtcheck/pkg/probe"
)

// probeClientID identifies the harness in signaling requests.
const probeClientID = "test-client-123"

// sdpOffer is a minimal syntactically valid VP8 video offer, enough for
// the signaling endpoint to parse and attempt negotiation.
const sdpOffer = "v=0\r\n" +
	"o=- 123456789 2 IN IP4 127.0.0.1\r\n" +
	"s=-\r\n" +
	"t=0 0\r\n" +
	"a=group:BUNDLE 0\r\n" +
	"a=msid-semantic: WMS\r\n" +
	"m=video 9 UDP/TLS/RTP/SAVPF 96\r\n" +
	"c=IN IP4 0.0.0.0\r\n" +
	"a=rtcp:9 IN IP4 0.0.0.0\r\n" +
	"a=ice-ufrag:test\r\n" +
	"a=ice-pwd:test\r\n" +
	"a=ice-options:trickle\r\n" +
	"a=fingerprint:sha-256 00:00:00:00:00:00:00:00:00:00:00:00:00:00:00:00:" +
	"00:00:00:00:00:00:00:00:00:00:00:00:00:00:00:00\r\n" +
	"a=setup:actpass\r\n" +
	"a=mid:0\r\n" +
	"a=sendrecv\r\n" +
	"a=rtcp-mux\r\n" +
	"a=rtpmap:96 VP8/90000\r\n"

// Offer probes POST /api/webrtc/offer with a synthetic session
// description. Media negotiation may legitimately fail in a test
// environment, so a 500 carrying a structured error field still counts
// as a pass: it proves the endpoint is up and parsing requests.
func Offer() probe.Probe {
	return endpoint{
		name:   "WebRTC Offer Endpoint",
		method: http.MethodPost,
		path:   "/api/webrtc/offer",
		payload: map[string]any{
			"offer": map[string]any{
				"type": "offer",
				"sdp":  sdpOffer,
			},
			"clientId": probeClientID,
		},
		accepts: []contract{
			{
				status: http.StatusOK,
				shape:  probe.Shape{Required: []string{"answer"}},
				describe: func(map[string]any) string {
					return "Received answer from server"
				},
			},
			{
				status: http.StatusInternalServerError,
				shape:  probe.Shape{Required: []string{"error"}},
				describe: func(data map[string]any) string {
					return fmt.Sprintf("Endpoint working, expected error: %v", data["error"])
				},
			},
		},
	}
}

// ICECandidate probes POST /api/webrtc/ice-candidate with a synthetic
// host candidate, under the same dual-acceptance policy as Offer.
func ICECandidate() probe.Probe {
	return endpoint{
		name:   "WebRTC ICE Candidate Endpoint",
		method: http.MethodPost,
		path:   "/api/webrtc/ice-candidate",
		payload: map[string]any{
			"candidate": map[string]any{
				"candidate":     "candidate:1 1 UDP 2130706431 192.168.1.100 54400 typ host",
				"sdpMLineIndex": 0,
				"sdpMid":        "0",
			},
			"clientId": probeClientID,
		},
		accepts: []contract{
			{
				status: http.StatusOK,
				shape: probe.Shape{
					Required: []string{"success"},
					Rules: map[string]probe.Rule{
						"success": probe.Truthy(),
					},
				},
				describe: func(map[string]any) string {
					return "ICE candidate processed"
				},
			},
			{
				status: http.StatusInternalServerError,
				shape:  probe.Shape{Required: []string{"error"}},
				describe: func(data map[string]any) string {
					return fmt.Sprintf("Endpoint working, expected error: %v", data["error"])
				},
			},
		},
	}
}
