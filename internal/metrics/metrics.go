// Package metrics exposes Prometheus metrics for the tracking pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the counters and gauges published by the application.
type Metrics struct {
	registry *prometheus.Registry

	// FramesProcessed counts frames run through the rep/form engine.
	FramesProcessed prometheus.Counter

	// RepsCounted counts completed repetitions across all sessions.
	RepsCounted prometheus.Counter

	// WrongExerciseFrames counts frames rejected by movement validation.
	WrongExerciseFrames prometheus.Counter

	// DegradedFrames counts frames with an incomplete landmark set.
	DegradedFrames prometheus.Counter

	// SessionActive is 1 while a tracking session is live.
	SessionActive prometheus.Gauge
}

// New creates a Metrics instance with its own registry, keeping the
// default Go collector noise out of the scrape output.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		FramesProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gymtrace",
			Name:      "frames_processed_total",
			Help:      "Frames run through the rep/form engine.",
		}),
		RepsCounted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gymtrace",
			Name:      "reps_counted_total",
			Help:      "Completed repetitions across all sessions.",
		}),
		WrongExerciseFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gymtrace",
			Name:      "wrong_exercise_frames_total",
			Help:      "Frames rejected by movement pattern validation.",
		}),
		DegradedFrames: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "gymtrace",
			Name:      "degraded_frames_total",
			Help:      "Frames with fewer landmarks than required.",
		}),
		SessionActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "gymtrace",
			Name:      "session_active",
			Help:      "1 while a tracking session is live.",
		}),
	}
}

// Handler returns the HTTP handler serving the scrape endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
