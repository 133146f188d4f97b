// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// impl_path.go - Path(n), Cycle(n) and Diagonal(n).
//
// Emission order:
//   • Path:     (i-1, i) for i = 1..n-1.
//   • Cycle:    Path order, then the closing pair (n-1, 0).
//   • Diagonal: (i, i) for i = 0..n-1, never mirrored.

package topology

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodDiagonal = "Diagonal"

	minPathNodes     = 2
	minCycleNodes    = 3
	minDiagonalNodes = 1
)

// Path returns a Constructor emitting the simple path 0-1-…-(n-1).
// This is the cell adjacency of an n×1×1 cartesian grid.
func Path[V csr.VertexID](n int) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			connect(c, cfg, i-1, i)
		}
		return nil
	}
}

// Cycle returns a Constructor emitting the ring 0-1-…-(n-1)-0.
func Cycle[V csr.VertexID](n int) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			connect(c, cfg, i-1, i)
		}
		connect(c, cfg, n-1, 0)
		return nil
	}
}

// Diagonal returns a Constructor emitting the self-connections i→i. Such
// pairs reach the builder's self-connection policy unchanged.
func Diagonal[V csr.VertexID](n int) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if n < minDiagonalNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDiagonal, n, minDiagonalNodes, ErrTooFewVertices)
		}
		diag := cfg
		diag.symmetric = false
		for i := 0; i < n; i++ {
			connect(c, diag, i, i)
		}
		return nil
	}
}
