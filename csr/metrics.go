// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// metrics.go - optional Prometheus instrumentation of builder operations.
//
// A nil *Metrics is valid and records nothing. One Metrics value may be
// shared by many builders; Prometheus collectors are safe for concurrent use
// even though builders are not.

package csr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opCompress = "compress"
	opMerge    = "merge"
	opRead     = "read"
	opWrite    = "write"

	statusOK    = "ok"
	statusError = "error"
)

// Metrics groups the collectors updated by builders created WithMetrics.
type Metrics struct {
	// OperationTotal counts Compress, ApplyVertexMerges, Read and Write calls.
	OperationTotal *prometheus.CounterVec

	// ContributionsTotal counts pending contributions folded by Compress.
	ContributionsTotal prometheus.Counter

	// Edges is the number of unique edges after the latest Compress.
	Edges prometheus.Gauge
}

// NewMetrics creates the collectors under namespace and registers them
// with reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	return &Metrics{
		OperationTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "csr_operations_total",
				Help:      "Total number of CSR builder operations",
			},
			[]string{"operation", "status"}, // operation: compress/merge/read/write
		),
		ContributionsTotal: promauto.With(reg).NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "csr_contributions_total",
				Help:      "Pending connections folded into compressed graphs",
			},
		),
		Edges: promauto.With(reg).NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "csr_edges",
				Help:      "Unique edges after the most recent compression",
			},
		),
	}
}

func (m *Metrics) operation(op string, err error) {
	if m == nil {
		return
	}
	status := statusOK
	if err != nil {
		status = statusError
	}
	m.OperationTotal.WithLabelValues(op, status).Inc()
}

func (m *Metrics) compressed(contributions, edges int) {
	if m == nil {
		return
	}
	m.ContributionsTotal.Add(float64(contributions))
	m.Edges.Set(float64(edges))
}
