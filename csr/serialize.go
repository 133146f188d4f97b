// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// serialize.go - exchange of compressed structures between builders.
//
// Record layout (every value is one WriteInt call):
//   len(start), start...
//   len(columns), columns...
//   len(index), index...          (TrackedGraph only)
//   numRows, numCols
//
// The layout is a pairwise protocol between builders of the same VertexID
// type and tracking capability. It is not a storage format.

package csr

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// MessageWriter is the transport capability used by Write.
type MessageWriter interface {
	WriteInt(v int64) error
}

// MessageReader is the transport capability used by Read.
type MessageReader interface {
	ReadInt() (int64, error)
}

// preallocation ceiling for sequences read from an untrusted length prefix.
const maxPrealloc = 1 << 16

// Write emits the compressed structure to w. Pending connections are not
// part of the stream.
func (b *builder[V]) Write(w MessageWriter) error {
	err := b.write(w)
	b.cfg.metrics.operation(opWrite, err)
	return err
}

func (b *builder[V]) write(w MessageWriter) error {
	c := &b.csr
	if err := writeSeq(w, c.start); err != nil {
		return fmt.Errorf("Write: start pointers: %w", err)
	}
	if err := writeSeq(w, c.columns); err != nil {
		return fmt.Errorf("Write: column indices: %w", err)
	}
	if c.track {
		if err := writeSeq(w, c.idx); err != nil {
			return fmt.Errorf("Write: index map: %w", err)
		}
	}
	if err := w.WriteInt(int64(c.numRows)); err != nil {
		return fmt.Errorf("Write: row count: %w", err)
	}
	if err := w.WriteInt(int64(c.numCols)); err != nil {
		return fmt.Errorf("Write: column count: %w", err)
	}

	return nil
}

// Read decodes a structure produced by Write and adds every edge it holds
// to the pending connections, as if submitted through AddConnection in
// row-major order. The next Compress unions it with this builder's state.
func (b *builder[V]) Read(r MessageReader) error {
	err := b.read(r)
	b.cfg.metrics.operation(opRead, err)
	return err
}

func (b *builder[V]) read(r MessageReader) error {
	other := compressed[V]{track: b.csr.track}

	var err error
	if other.start, err = readSeq[int](r); err != nil {
		return fmt.Errorf("Read: start pointers: %w", err)
	}
	if other.columns, err = readSeq[V](r); err != nil {
		return fmt.Errorf("Read: column indices: %w", err)
	}
	if other.track {
		if other.idx, err = readSeq[int](r); err != nil {
			return fmt.Errorf("Read: index map: %w", err)
		}
	}
	nRows, err := r.ReadInt()
	if err != nil {
		return fmt.Errorf("Read: row count: %w", err)
	}
	nCols, err := r.ReadInt()
	if err != nil {
		return fmt.Errorf("Read: column count: %w", err)
	}
	other.numRows, other.numCols = int(nRows), int(nCols)

	if err = other.check(); err != nil {
		return fmt.Errorf("Read: %w", err)
	}

	if other.edgeCount() > 0 {
		if !fits[V](int64(other.numRows)-1) || !fits[V](int64(other.numCols)-1) {
			return fmt.Errorf("Read: dimensions %dx%d exceed the vertex type: %w",
				other.numRows, other.numCols, ErrCorruptStream)
		}
		err = b.pending.addBulk(V(other.numRows-1), V(other.numCols-1),
			other.coordinateRows(), other.columns)
		if err != nil {
			return fmt.Errorf("Read: %w", err)
		}
	}

	b.cfg.logger.WithFields(logrus.Fields{
		"rows":    other.rowCount(),
		"nnz":     other.edgeCount(),
		"pending": b.pending.size(),
	}).Debug("csr: read graph")

	return nil
}

// check validates a decoded structure before it is trusted.
func (c *compressed[V]) check() error {
	if c.numRows < 0 || c.numCols < 0 {
		return fmt.Errorf("negative dimensions %dx%d: %w", c.numRows, c.numCols, ErrCorruptStream)
	}
	if len(c.start) == 0 {
		if len(c.columns) != 0 {
			return fmt.Errorf("%d columns without start pointers: %w", len(c.columns), ErrCorruptStream)
		}
		return nil
	}
	if c.numRows > len(c.start)-1 {
		return fmt.Errorf("row count %d exceeds %d start pointers: %w", c.numRows, len(c.start), ErrCorruptStream)
	}
	if c.start[0] != 0 || c.start[len(c.start)-1] != len(c.columns) {
		return fmt.Errorf("start pointers do not span %d columns: %w", len(c.columns), ErrCorruptStream)
	}
	for r := 0; r+1 < len(c.start); r++ {
		if c.start[r] > c.start[r+1] {
			return fmt.Errorf("start pointers decrease at row %d: %w", r, ErrCorruptStream)
		}
		if r >= c.numRows && c.start[r] != c.start[r+1] {
			return fmt.Errorf("row %d beyond row count %d holds edges: %w", r, c.numRows, ErrCorruptStream)
		}
	}
	for _, col := range c.columns {
		if col < 0 || uint64(col) >= uint64(c.numCols) {
			return fmt.Errorf("column %d outside %d columns: %w", col, c.numCols, ErrCorruptStream)
		}
	}
	for _, slot := range c.idx {
		if slot < 0 || slot >= len(c.columns) {
			return fmt.Errorf("index map slot %d outside %d edges: %w", slot, len(c.columns), ErrCorruptStream)
		}
	}

	return nil
}

func writeSeq[T constraints.Integer](w MessageWriter, xs []T) error {
	if err := w.WriteInt(int64(len(xs))); err != nil {
		return err
	}
	for _, x := range xs {
		if err := w.WriteInt(int64(x)); err != nil {
			return err
		}
	}

	return nil
}

func readSeq[T constraints.Integer](r MessageReader) ([]T, error) {
	n, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("sequence length %d: %w", n, ErrCorruptStream)
	}

	xs := make([]T, 0, min(n, maxPrealloc))
	for ; n > 0; n-- {
		x, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		if !fits[T](x) {
			return nil, fmt.Errorf("value %d does not fit the element type: %w", x, ErrCorruptStream)
		}
		xs = append(xs, T(x))
	}

	return xs, nil
}

// fits reports whether x survives conversion to T unchanged.
func fits[T constraints.Integer](x int64) bool {
	return int64(T(x)) == x && (x < 0) == (T(x) < 0)
}
