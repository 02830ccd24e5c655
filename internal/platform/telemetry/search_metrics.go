package telemetry

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// SearchMetrics records census search activity in Prometheus.
type SearchMetrics struct {
	requests *prometheus.CounterVec
	results  prometheus.Histogram
	empty    *prometheus.CounterVec
}

// NewSearchMetrics creates the search collectors and registers them with reg.
// Collectors already registered under the same names are reused.
func NewSearchMetrics(reg prometheus.Registerer) (*SearchMetrics, error) {
	m := &SearchMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "census",
			Name:      "search_requests_total",
			Help:      "Searches executed, by field and order.",
		}, []string{"field", "order"}),
		results: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "census",
			Name:      "search_results",
			Help:      "Number of copies returned per search.",
			Buckets:   []float64{0, 1, 5, 10, 50, 100, 250, 500, 1000},
		}),
		empty: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "census",
			Name:      "search_empty_total",
			Help:      "Searches that returned no copies, by field.",
		}, []string{"field"}),
	}

	var err error
	if m.requests, err = register(reg, m.requests); err != nil {
		return nil, err
	}

	if m.results, err = register(reg, m.results); err != nil {
		return nil, err
	}

	if m.empty, err = register(reg, m.empty); err != nil {
		return nil, err
	}

	return m, nil
}

// ObserveSearch records one executed search.
func (m *SearchMetrics) ObserveSearch(field, order string, results int) {
	if field == "" {
		field = "none"
	}

	m.requests.WithLabelValues(field, order).Inc()
	m.results.Observe(float64(results))

	if results == 0 {
		m.empty.WithLabelValues(field).Inc()
	}
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}
