// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// impl_star.go - Star(n) and Complete(n).
//
// Emission order:
//   • Star:     (0, i) for i = 1..n-1; vertex 0 is the hub.
//   • Complete: (i, j) for i asc, j > i asc.

package topology

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

const (
	methodStar     = "Star"
	methodComplete = "Complete"

	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor emitting a hub (vertex 0) with n-1 leaves.
func Star[V csr.VertexID](n int) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			connect(c, cfg, 0, i)
		}
		return nil
	}
}

// Complete returns a Constructor emitting every unordered pair of n vertices.
// Complexity: O(n²).
func Complete[V csr.VertexID](n int) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				connect(c, cfg, i, j)
			}
		}
		return nil
	}
}
