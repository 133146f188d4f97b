// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// compressed.go - the CSR compressor.
//
// Pipeline (merge):
//  1. validate      - reject negative IDs, rows ≥ maxNumVertices, columns
//                     beyond int, shrinking.
//  2. assemble      - counting-sort placement of existing entries followed by
//                     the new contributions into per-row segments.
//  3. sortPerRow    - transpose twice; each transpose is a stable bucket pass,
//                     so rows come back ascending in O(nnz + rows + cols).
//  4. condense      - collapse repeated column indices within each row.
//  5. pad           - extend start pointers to maxNumVertices rows.
//
// Index tracking:
//   idx[k] is the slot in columns holding contribution k. Every pass that
//   moves entries produces a fresh slot table for its input positions and
//   the previous table is composed through it (remapIndex).
//
// Complexity: O(nnz + numRows + numCols) time and space per merge.

package csr

import (
	"fmt"
	"math"
)

// compressed is the canonical CSR state. Column indices are ascending and
// unique per row once merge returns successfully.
type compressed[V VertexID] struct {
	start   []int // row r occupies columns[start[r]:start[r+1]]
	columns []V
	idx     []int // contribution -> slot; maintained only when track is set
	track   bool

	numRows int // active rows, excluding padding added by pad
	numCols int // 1 + largest column index
}

// merge folds conns into the existing structure and re-establishes the CSR
// invariants. The receiver is left untouched when validation fails.
func (c *compressed[V]) merge(conns *coordinates[V], maxNumVertices int, expand bool) error {
	if err := c.validate(conns, maxNumVertices); err != nil {
		return err
	}

	nRows, nCols := c.numRows, c.numCols
	if conns.has {
		nRows = max(nRows, int(conns.maxRow)+1)
		nCols = max(nCols, int(conns.maxCol)+1)
	}

	c.assemble(conns.rows, conns.cols, nRows, nCols, expand)
	c.sortPerRow()
	c.condense()
	c.pad(maxNumVertices)

	return nil
}

func (c *compressed[V]) validate(conns *coordinates[V], maxNumVertices int) error {
	if maxNumVertices < 0 {
		return fmt.Errorf("compress: negative graph size %d: %w", maxNumVertices, ErrOutOfRange)
	}
	if maxNumVertices < c.rowCount() {
		return fmt.Errorf("compress: %d vertices requested, graph already has %d: %w: %w",
			maxNumVertices, c.rowCount(), ErrShrinkRowSpace, ErrOutOfRange)
	}
	if !conns.has {
		return nil
	}
	if conns.minID < 0 {
		return fmt.Errorf("compress: vertex id %d: %w", conns.minID, ErrNegativeVertex)
	}
	if uint64(conns.maxRow) >= uint64(maxNumVertices) {
		return fmt.Errorf("compress: vertex %d exceeds graph size %d: %w",
			conns.maxRow, maxNumVertices, ErrOutOfRange)
	}
	if uint64(conns.maxCol) >= math.MaxInt {
		return fmt.Errorf("compress: column %d exceeds the addressable range: %w",
			conns.maxCol, ErrOutOfRange)
	}

	return nil
}

// assemble groups the existing entries followed by (rows, cols) by row.
// Columns within a row are unsorted and may repeat on return.
func (c *compressed[V]) assemble(rows, cols []V, nRows, nCols int, expand bool) {
	prev := c.idx
	numOrig := len(c.columns)

	i := append(c.coordinateRows(), rows...)
	j := make([]V, 0, numOrig+len(cols))
	j = append(j, c.columns...)
	j = append(j, cols...)

	c.prepareRowGrouping(nRows, i)
	c.groupByRow(i, j)

	if c.track && expand {
		// Previously issued entries referred to the old slots, which are the
		// first numOrig inputs of this pass. New contributions follow.
		c.remapIndex(prev, numOrig)
	}

	c.numRows, c.numCols = nRows, nCols
}

// sortPerRow orders column indices ascending within each row.
func (c *compressed[V]) sortPerRow() {
	c.transpose()
	c.transpose()
}

// transpose swaps the roles of rows and columns. Entries are visited in
// row order, so every new row receives its entries in ascending old-row
// order.
func (c *compressed[V]) transpose() {
	prev := c.idx

	rowIdx := c.coordinateRows()
	colIdx := c.columns

	c.prepareRowGrouping(c.numCols, colIdx)
	c.groupByRow(colIdx, rowIdx)

	if c.track {
		c.remapIndex(prev, -1)
	}

	c.numRows, c.numCols = c.numCols, c.numRows
}

// condense removes repeated column indices per row. Columns must be sorted
// per row on entry.
func (c *compressed[V]) condense() {
	cols := c.columns
	prev := c.idx

	c.columns = make([]V, 0, len(cols))
	if c.track {
		c.idx = make([]int, 0, len(cols))
	}

	nRows := len(c.start) - 1
	end := 0
	for r := 0; r < nRows; r++ {
		begin := end
		end += c.start[r+1] - c.start[r]

		q := len(c.columns)
		c.condenseRow(cols[begin:end])
		c.start[r] = q
	}
	c.start[nRows] = len(c.columns)

	if c.track {
		c.remapIndex(prev, -1)
	}
}

// condenseRow appends the unique values of the sorted segment seg. When
// tracking, every input position records the slot of its surviving value.
func (c *compressed[V]) condenseRow(seg []V) {
	for k := 0; k < len(seg); {
		slot := len(c.columns)
		c.columns = append(c.columns, seg[k])

		next := k + 1
		for next < len(seg) && seg[next] == seg[k] {
			next++
		}
		if c.track {
			for ; k < next; k++ {
				c.idx = append(c.idx, slot)
			}
		}
		k = next
	}
}

// pad appends empty rows until the structure has n rows.
func (c *compressed[V]) pad(n int) {
	last := c.start[len(c.start)-1]
	for len(c.start) < n+1 {
		c.start = append(c.start, last)
	}
}

// prepareRowGrouping sizes start for nRows rows and leaves start[r+1] equal
// to the first slot of row r, ready for groupByRow to use as a cursor.
func (c *compressed[V]) prepareRowGrouping(nRows int, rowIdx []V) {
	c.start = make([]int, nRows+1)
	for _, r := range rowIdx {
		c.start[int(r)+1]++
	}

	// Exclusive prefix sum shifted by one position; start[0] is scratch.
	for r := 1; r <= nRows; r++ {
		c.start[0] += c.start[r]
		c.start[r] = c.start[0] - c.start[r]
	}
}

// groupByRow scatters colIdx into row segments. On return start holds
// proper start pointers and, when tracking, idx[nz] is the slot of input nz.
func (c *compressed[V]) groupByRow(rowIdx, colIdx []V) {
	nnz := len(rowIdx)
	c.columns = make([]V, nnz)
	if c.track {
		c.idx = make([]int, 0, nnz)
	}

	for nz := 0; nz < nnz; nz++ {
		k := c.start[int(rowIdx[nz])+1]
		c.start[int(rowIdx[nz])+1]++

		c.columns[k] = colIdx[nz]
		if c.track {
			c.idx = append(c.idx, k)
		}
	}
	c.start[0] = 0
}

// remapIndex composes prev through the slot table of the pass that just ran.
// If numOrig ≥ 0, entries of the current table from position numOrig on are
// appended as contributions new to this pass.
func (c *compressed[V]) remapIndex(prev []int, numOrig int) {
	out := make([]int, len(prev), len(prev)+max(0, len(c.idx)-max(numOrig, 0)))
	for k, slot := range prev {
		out[k] = c.idx[slot]
	}
	if numOrig >= 0 && numOrig < len(c.idx) {
		out = append(out, c.idx[numOrig:]...)
	}
	c.idx = out
}

// coordinateRows expands start into one row index per stored entry.
func (c *compressed[V]) coordinateRows() []V {
	if len(c.start) == 0 {
		return nil
	}

	rows := make([]V, 0, c.start[len(c.start)-1])
	for r := 0; r+1 < len(c.start); r++ {
		for n := c.start[r+1] - c.start[r]; n > 0; n-- {
			rows = append(rows, V(r))
		}
	}

	return rows
}

// rowCount reports the number of rows including padding.
func (c *compressed[V]) rowCount() int {
	if len(c.start) == 0 {
		return 0
	}
	return len(c.start) - 1
}

// edgeCount reports the number of stored entries.
func (c *compressed[V]) edgeCount() int {
	if len(c.start) == 0 {
		return 0
	}
	return c.start[len(c.start)-1]
}

// clear drops all entries and restores the never-compressed state.
func (c *compressed[V]) clear() {
	c.start = c.start[:0]
	c.columns = c.columns[:0]
	c.idx = c.idx[:0]
	c.numRows, c.numCols = 0, 0
}
