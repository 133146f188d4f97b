// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// types.go - vertex ID constraint, functional options and resolved config.
//
// Contract:
//   • Options are resolved once at construction; the config never changes.
//   • Option constructors panic on programmer errors (nil logger, nil
//     metrics, negative capacity).

// Package csr builds Compressed Sparse Row (CSR) adjacency structures from
// unordered, possibly repeated streams of directed (row, col) vertex pairs.
package csr

import (
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// VertexID is the set of types usable as vertex identifiers. Vertex IDs are
// zero-based; no other meaning is attached to them.
type VertexID interface {
	constraints.Integer
}

// Option customizes a Graph or TrackedGraph at construction time.
// Options are applied in order; later options override earlier ones.
type Option func(*config)

// config aggregates construction-time policy. It is resolved once and never
// changes for the lifetime of a builder.
type config struct {
	permitSelf bool
	capacity   int
	logger     logrus.FieldLogger
	metrics    *Metrics
}

// WithSelfConnections permits connections of the form v->v (diagonal
// entries). By default such connections are silently dropped.
func WithSelfConnections() Option {
	return func(c *config) {
		c.permitSelf = true
	}
}

// WithLogger routes builder diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("csr: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithCapacity pre-sizes the pending connection buffers for n contributions.
// Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic("csr: WithCapacity(n<0)")
	}
	return func(c *config) {
		c.capacity = n
	}
}

// WithMetrics records operation counters in m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("csr: WithMetrics(nil)")
	}
	return func(c *config) {
		c.metrics = m
	}
}

// newConfig resolves opts over the defaults: no self-connections, no
// preallocation, discarded log output, no metrics.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.logger = l
	}

	return cfg
}
