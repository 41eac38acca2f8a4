// Package metrics exposes the storefront prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pipelineDuration tracks how long a listing takes to filter and sort.
	pipelineDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_pipeline_duration_seconds",
		Help:    "Time taken to filter and sort a listing by view",
		Buckets: []float64{0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"view"}) // view: products, services, accessories

	// pipelineResults tracks the size of derived listings.
	pipelineResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_pipeline_result_count",
		Help:    "Number of items returned by a listing by view",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	}, []string{"view"})

	// emptyResults counts listings that matched nothing.
	emptyResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_pipeline_empty_total",
		Help: "Total number of listings with no matching items by view",
	}, []string{"view"})

	// cartAdds counts successful cart additions.
	cartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_cart_additions_total",
		Help: "Total number of items added to carts",
	})

	// cartRejections counts rejected cart additions.
	cartRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_rejections_total",
		Help: "Total number of rejected cart additions by reason",
	}, []string{"reason"}) // reason: unavailable, unknown

	// wizardTransitions counts wizard state changes.
	wizardTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_wizard_transitions_total",
		Help: "Total number of wizard transitions by wizard, source and target state",
	}, []string{"wizard", "from", "to"})

	// wizardValidationFailures counts blocked forward transitions.
	wizardValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_wizard_validation_failures_total",
		Help: "Total number of forward transitions blocked by missing fields",
	}, []string{"wizard"})

	// activeSessions tracks live visitor sessions.
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "storefront_sessions_active",
		Help: "Number of live visitor sessions",
	})

	// sessionsSwept counts sessions removed for inactivity.
	sessionsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_sessions_swept_total",
		Help: "Total number of idle sessions removed by the sweeper",
	})
)

// Recorder provides methods to record storefront metrics.
type Recorder struct{}

// NewRecorder creates a new metrics recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordPipeline records one listing computation.
func (m *Recorder) RecordPipeline(view string, duration time.Duration, results int) {
	pipelineDuration.WithLabelValues(view).Observe(duration.Seconds())
	pipelineResults.WithLabelValues(view).Observe(float64(results))
	if results == 0 {
		emptyResults.WithLabelValues(view).Inc()
	}
}

// RecordCartAdd records a successful cart addition.
func (m *Recorder) RecordCartAdd() {
	cartAdds.Inc()
}

// RecordCartRejection records a rejected cart addition.
func (m *Recorder) RecordCartRejection(reason string) {
	cartRejections.WithLabelValues(reason).Inc()
}

// RecordWizardTransition records a state change. Calls where from equals to
// are ignored.
func (m *Recorder) RecordWizardTransition(wizard, from, to string) {
	if from == to {
		return
	}
	wizardTransitions.WithLabelValues(wizard, from, to).Inc()
}

// RecordValidationFailure records a forward transition blocked by validation.
func (m *Recorder) RecordValidationFailure(wizard string) {
	wizardValidationFailures.WithLabelValues(wizard).Inc()
}

// SetActiveSessions sets the live session gauge.
func (m *Recorder) SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// RecordSessionsSwept records sessions removed by a sweep.
func (m *Recorder) RecordSessionsSwept(n int) {
	sessionsSwept.Add(float64(n))
}
