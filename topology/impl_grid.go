// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// impl_grid.go - Grid(rows, cols): 2D cartesian 4-neighbourhood.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c) is vertex r*cols + c (natural, row-major ordering).
//   • For each cell in row-major order emit the right neighbour, then the
//     bottom neighbour, when they exist.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package topology

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor emitting the face adjacency of a rows×cols
// grid of cells.
func Grid[V csr.VertexID](rows, cols int) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				u := r*cols + col
				if col+1 < cols {
					connect(c, cfg, u, u+1)
				}
				if r+1 < rows {
					connect(c, cfg, u, u+cols)
				}
			}
		}

		return nil
	}
}
