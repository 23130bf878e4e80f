// Package metrics collects prometheus metrics about searches.
package metrics

import (
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/exascience/primesearch"
)

const namespace = "primesearch"

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics groups the collectors of one registry. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	searches   *prometheus.CounterVec
	partitions *prometheus.CounterVec
	values     *prometheus.CounterVec
	primes     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of searches, by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		partitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "partitions_dispatched_total",
			Help:      "The total number of partitions handed to workers.",
		}, []string{"strategy"}),
		values: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "values_checked_total",
			Help:      "The total number of values the predicate was evaluated for.",
		}, []string{"strategy"}),
		primes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "primes_found_total",
			Help:      "The total number of values for which the predicate held.",
		}, []string{"strategy"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "The duration of searches that passed validation.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{"strategy"}),
	}
}

// Outcome maps the error of a search to an outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, primesearch.ErrThreadFailure):
		return OutcomeFailed
	default:
		return OutcomeRejected
	}
}

// Observe records one search.
func (m *Metrics) Observe(strategy string, partitions int, values []primesearch.CheckedValue, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := Outcome(err)
	m.searches.WithLabelValues(strategy, outcome).Inc()
	if outcome == OutcomeRejected {
		return
	}
	m.partitions.WithLabelValues(strategy).Add(float64(partitions))
	m.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	if outcome == OutcomeFailed {
		return
	}
	var primes int
	for _, v := range values {
		if v.Prime {
			primes++
		}
	}
	m.values.WithLabelValues(strategy).Add(float64(len(values)))
	m.primes.WithLabelValues(strategy).Add(float64(primes))
}

// Dump writes every metric family gathered from g in the text exposition
// format, for short-lived processes that are never scraped.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return err
		}
	}
	return nil
}
