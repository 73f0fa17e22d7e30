package probes

import "rtcheck/pkg/probe"

// Battery returns the full probe battery in its fixed execution order:
// core API probes first, then signaling, then infrastructure. Probes are
// stateless and independent; order only affects reporting.
func Battery() []probe.Probe {
	return []probe.Probe{
		Health(),
		Mode(),
		Metrics(),
		Offer(),
		ICECandidate(),
		Static(),
		CORS(),
		NotFound(),
	}
}
