package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-fulfillment/internal/domain"
	"github.com/jsamuelsen/quote-fulfillment/internal/ports"
)

// Fetch results recorded on the fetch duration histogram.
// A fetch that downloaded a document the parser rejected is "malformed",
// so transport latency and content problems stay apart.
const (
	fetchResultOK        = "ok"
	fetchResultError     = "error"
	fetchResultMalformed = "malformed"
)

// fetchBuckets span a fast CDN hit up to the client timeout.
var fetchBuckets = []float64{0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// FulfillmentMetrics implements ports.FulfillmentObserver. It exports
// fulfillment outcomes and content fetch latency in Prometheus format.
// It is safe for concurrent use.
type FulfillmentMetrics struct {
	outcomes      *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewFulfillmentMetrics creates the collectors and registers them with reg.
func NewFulfillmentMetrics(reg prometheus.Registerer) (*FulfillmentMetrics, error) {
	m := &FulfillmentMetrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "quote",
				Subsystem: "fulfillment",
				Name:      "outcomes_total",
				Help:      "Fulfillment requests by outcome.",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "quote",
				Subsystem: "fulfillment",
				Name:      "fetch_duration_seconds",
				Help:      "Latency of quotes document fetches.",
				Buckets:   fetchBuckets,
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{m.outcomes, m.fetchDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	for _, o := range []string{ports.OutcomeSuccess, ports.OutcomeFetchError, ports.OutcomeContentError} {
		m.outcomes.WithLabelValues(o)
	}

	return m, nil
}

// ObserveFetch records one fetch attempt.
func (m *FulfillmentMetrics) ObserveFetch(d time.Duration, err error) {
	result := fetchResultOK
	switch {
	case domain.IsMalformed(err):
		result = fetchResultMalformed
	case err != nil:
		result = fetchResultError
	}

	m.fetchDuration.WithLabelValues(result).Observe(d.Seconds())
}

// ObserveOutcome counts one served fulfillment.
func (m *FulfillmentMetrics) ObserveOutcome(outcome string) {
	m.outcomes.WithLabelValues(outcome).Inc()
}
