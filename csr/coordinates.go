// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// coordinates.go - append-only coordinate-format buffer of pending
// (row, col) contributions.
//
// Contract:
//   • rows and cols always have equal length; entry k is the k-th
//     contribution since the last clear().
//   • maxRow/maxCol/minID are absent (has == false) while the buffer is empty.
//   • No bounds validation happens here; Compress validates.

package csr

import "fmt"

// coordinates holds uncompressed, possibly repeated, directed edges.
type coordinates[V VertexID] struct {
	rows []V
	cols []V

	has    bool
	maxRow V
	maxCol V
	minID  V // smallest endpoint seen; used to reject negative IDs
}

// add appends a single (v1, v2) contribution.
// Complexity: O(1) amortized.
func (c *coordinates[V]) add(v1, v2 V) {
	c.rows = append(c.rows, v1)
	c.cols = append(c.cols, v2)
	c.observe(v1, v2, min(v1, v2))
}

// addBulk appends parallel row/column tables whose maxima are already known.
// Complexity: O(len(rows)).
func (c *coordinates[V]) addBulk(maxRow, maxCol V, rows, cols []V) error {
	if len(rows) != len(cols) {
		return fmt.Errorf("addBulk: %d rows vs %d cols: %w", len(rows), len(cols), ErrSizeMismatch)
	}
	if len(rows) == 0 {
		return nil
	}

	c.rows = append(c.rows, rows...)
	c.cols = append(c.cols, cols...)

	lo := rows[0]
	for k := range rows {
		lo = min(lo, rows[k], cols[k])
	}
	c.observe(maxRow, maxCol, lo)

	return nil
}

func (c *coordinates[V]) observe(r, col, lo V) {
	if !c.has {
		c.maxRow, c.maxCol, c.minID, c.has = r, col, lo, true
		return
	}
	c.maxRow = max(c.maxRow, r)
	c.maxCol = max(c.maxCol, col)
	c.minID = min(c.minID, lo)
}

// recomputeBounds rescans the buffer after an in-place rewrite.
func (c *coordinates[V]) recomputeBounds() {
	c.has = false
	for k := range c.rows {
		c.observe(c.rows[k], c.cols[k], min(c.rows[k], c.cols[k]))
	}
}

// clear empties the buffer and preserves allocated capacity.
func (c *coordinates[V]) clear() {
	c.rows = c.rows[:0]
	c.cols = c.cols[:0]
	c.has = false
	c.maxRow, c.maxCol, c.minID = 0, 0, 0
}

func (c *coordinates[V]) size() int { return len(c.rows) }
