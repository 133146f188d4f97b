// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// api.go - Connector, Constructor and the Emit orchestrator.
//
// Contract:
//   • Emit resolves options once and runs constructors in order.
//   • Constructors validate parameters before emitting anything.
//   • Same inputs, options and seed ⇒ identical connection stream.

package topology

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

// Connector receives directed connections. *csr.Graph and *csr.TrackedGraph
// satisfy it.
type Connector[V csr.VertexID] interface {
	AddConnection(v1, v2 V)
}

// Constructor emits one topology into c using the resolved config.
type Constructor[V csr.VertexID] func(c Connector[V], cfg config) error

// Emit resolves opts and applies every constructor to c in order. The first
// failing constructor aborts Emit; connections already emitted stay in c.
//
// Complexity: O(len(opts)) plus the cost of each constructor.
func Emit[V csr.VertexID](c Connector[V], opts []Option, cons ...Constructor[V]) error {
	cfg := newConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Emit: constructor %d: %w", i, ErrNilConstructor)
		}
		if err := fn(c, cfg); err != nil {
			return fmt.Errorf("Emit: %w", err)
		}
	}

	return nil
}

// connect emits u→v (and v→u when symmetric) cfg.repeat times.
func connect[V csr.VertexID](c Connector[V], cfg config, u, v int) {
	a, b := V(u+cfg.offset), V(v+cfg.offset)
	for k := 0; k < cfg.repeat; k++ {
		c.AddConnection(a, b)
		if cfg.symmetric {
			c.AddConnection(b, a)
		}
	}
}
