// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/sampling/utils/metric"
)

const (
	modeWeighted = "weighted"
	modeDecay    = "decay"
	modeUniform  = "uniform"

	reasonEmptyInput      = "empty_input"
	reasonInvalidArgument = "invalid_argument"
	reasonOther           = "other"
)

// noMetrics is never registered, so updating it only costs the atomic adds.
var noMetrics = newUnregisteredMetrics("")

type metrics struct {
	draws      *prometheus.CounterVec
	fallbacks  prometheus.Counter
	failures   *prometheus.CounterVec
	population prometheus.Histogram
}

func newUnregisteredMetrics(namespace string) *metrics {
	return &metrics{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metric.AppendNamespace(namespace, "draws"),
			Help: "Number of elements drawn",
		}, []string{"mode"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: metric.AppendNamespace(namespace, "fallbacks"),
			Help: "Number of weighted draws that fell back to uniform selection",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metric.AppendNamespace(namespace, "failures"),
			Help: "Number of rejected sampling requests",
		}, []string{"reason"}),
		population: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    metric.AppendNamespace(namespace, "population"),
			Help:    "Number of candidate elements per draw",
			Buckets: metric.PopulationBuckets,
		}),
	}
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := newUnregisteredMetrics(namespace)
	collectors := []prometheus.Collector{
		m.draws,
		m.fallbacks,
		m.failures,
		m.population,
	}

	var (
		errs       []error
		registered []prometheus.Collector
	)
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			errs = append(errs, err)
			continue
		}
		registered = append(registered, c)
	}
	if len(errs) == 0 {
		return m, nil
	}

	// Leave the registerer as it was found.
	for _, c := range registered {
		registerer.Unregister(c)
	}
	return nil, errors.Join(errs...)
}

func (m *metrics) observe(mode string, population int) {
	m.draws.WithLabelValues(mode).Inc()
	m.population.Observe(float64(population))
}

func (m *metrics) failed(err error) {
	reason := reasonOther
	switch {
	case errors.Is(err, ErrEmptyInput):
		reason = reasonEmptyInput
	case errors.Is(err, ErrInvalidArgument):
		reason = reasonInvalidArgument
	}
	m.failures.WithLabelValues(reason).Inc()
}
