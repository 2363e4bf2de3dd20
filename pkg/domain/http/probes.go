package http

import "sync/atomic"

// Probe statuses. Any status other than StatusOK is served as 503.
const (
	StatusOK       = "ok"
	StatusStarting = "starting"
	StatusDraining = "draining"
)

// ProbeResponse is the JSON body of a probe endpoint.
type ProbeResponse struct {
	Status  string                 `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ProbeCheck performs one health check.
type ProbeCheck func() ProbeResponse

// ProbeHandlers contains the checks behind /internal/health,
// /internal/ready and /internal/startup.
type ProbeHandlers struct {
	// LivenessCheck backs /internal/health. It should only fail when the
	// process cannot recover.
	LivenessCheck ProbeCheck

	// ReadinessCheck backs /internal/ready. A failing check takes the
	// instance out of rotation without restarting it.
	ReadinessCheck ProbeCheck

	// StartupCheck backs /internal/startup.
	StartupCheck ProbeCheck
}

// DefaultProbeHandlers returns probes that always report ok.
func DefaultProbeHandlers() *ProbeHandlers {
	defaultCheck := func() ProbeResponse {
		return ProbeResponse{
			Status: StatusOK,
		}
	}

	return &ProbeHandlers{
		LivenessCheck:  defaultCheck,
		ReadinessCheck: defaultCheck,
		StartupCheck:   defaultCheck,
	}
}

// NewProbeResponse creates a ProbeResponse with the given values.
func NewProbeResponse(status string, details map[string]interface{}) ProbeResponse {
	return ProbeResponse{
		Status:  status,
		Details: details,
	}
}

// Lifecycle tracks whether the server has started listening and whether it
// is draining connections during shutdown. The zero value is "starting".
type Lifecycle struct {
	started  atomic.Bool
	draining atomic.Bool
}

// MarkStarted records that the listener is accepting connections.
func (l *Lifecycle) MarkStarted() { l.started.Store(true) }

// MarkDraining records that shutdown has begun.
func (l *Lifecycle) MarkDraining() { l.draining.Store(true) }

// Probes returns handlers driven by the lifecycle. Liveness is always ok;
// readiness fails before start and while draining.
func (l *Lifecycle) Probes() *ProbeHandlers {
	return &ProbeHandlers{
		LivenessCheck: func() ProbeResponse {
			return NewProbeResponse(StatusOK, nil)
		},
		ReadinessCheck: func() ProbeResponse {
			switch {
			case l.draining.Load():
				return NewProbeResponse(StatusDraining, nil)
			case !l.started.Load():
				return NewProbeResponse(StatusStarting, nil)
			default:
				return NewProbeResponse(StatusOK, nil)
			}
		},
		StartupCheck: func() ProbeResponse {
			if !l.started.Load() {
				return NewProbeResponse(StatusStarting, nil)
			}
			return NewProbeResponse(StatusOK, nil)
		},
	}
}
