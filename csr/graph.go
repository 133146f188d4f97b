// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// graph.go - public façade: Graph (untracked) and TrackedGraph.
//
// Lifecycle:
//   AddConnection* → [AddVertexGroup* → ApplyVertexMerges] → Compress
//   → (AddConnection* → Compress)* ...
//
// Capabilities are fixed at construction. TrackedGraph additionally records,
// for every contribution, the slot of its edge in ColumnIndices; only
// TrackedGraph exposes CompressedIndexMap.
//
// Concurrency: none. A builder must be owned by one goroutine at a time;
// combine partial graphs through Write/Read.

package csr

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// builder carries the state shared by Graph and TrackedGraph.
type builder[V VertexID] struct {
	cfg     config
	pending coordinates[V]
	csr     compressed[V]
	merges  mergeEngine[V]

	// pending[0:remapped] already lives in the final ID space of the last
	// ApplyVertexMerges call.
	remapped int
}

// Graph compiles connections into a CSR adjacency structure.
type Graph[V VertexID] struct {
	builder[V]
}

// TrackedGraph is a Graph that also maps every contribution, in the order
// it was submitted, to the position of its edge in ColumnIndices.
type TrackedGraph[V VertexID] struct {
	builder[V]
}

// NewGraph returns an empty builder without index tracking.
func NewGraph[V VertexID](opts ...Option) *Graph[V] {
	g := &Graph[V]{}
	g.init(false, opts)
	return g
}

// NewTrackedGraph returns an empty builder with index tracking.
func NewTrackedGraph[V VertexID](opts ...Option) *TrackedGraph[V] {
	g := &TrackedGraph[V]{}
	g.init(true, opts)
	return g
}

func (b *builder[V]) init(track bool, opts []Option) {
	b.cfg = newConfig(opts...)
	b.csr.track = track
	b.merges = newMergeEngine[V]()
	if b.cfg.capacity > 0 {
		b.pending.rows = make([]V, 0, b.cfg.capacity)
		b.pending.cols = make([]V, 0, b.cfg.capacity)
	}
}

// AddConnection records the directed connection v1 -> v2. v1 is the row,
// v2 the column. A self-connection is silently ignored unless the builder
// was created WithSelfConnections.
// Complexity: O(1) amortized.
func (b *builder[V]) AddConnection(v1, v2 V) {
	if v1 == v2 && !b.cfg.permitSelf {
		return
	}
	b.pending.add(v1, v2)
}

// AddVertexGroup declares that all vertices are to be merged into one.
// Groups sharing a vertex end up in the same merged vertex. Call before
// the Compress that should reflect the merge; compressed data is never
// renumbered retroactively.
func (b *builder[V]) AddVertexGroup(vertices []V) {
	b.merges.addGroup(vertices)
}

// ApplyVertexMerges resolves all declared groups, assigns compact final
// IDs (ascending by smallest member) to every vertex seen so far and
// rewrites pending connections through that numbering. Connections that
// collapse onto a single vertex are dropped unless self-connections are
// permitted. It returns the number of final vertex IDs.
//
// After a Compress has consumed merged data, IDs already handed out stay
// fixed: vertices seen for the first time are numbered after the largest
// existing ID, and a group joining vertices with different IDs keeps the
// smallest one. The abandoned ID remains a row of the compressed graph.
//
// Without any declared group pending data is left untouched and the result
// is one more than the largest pending vertex ID.
func (b *builder[V]) ApplyVertexMerges() int {
	if !b.merges.grouped {
		if !b.pending.has {
			return 0
		}
		return int(max(b.pending.maxRow, b.pending.maxCol)) + 1
	}

	before := b.pending.size()
	n := b.merges.apply(&b.pending, b.remapped, b.cfg.permitSelf)
	b.remapped = b.pending.size()
	b.cfg.metrics.operation(opMerge, nil)

	b.cfg.logger.WithFields(logrus.Fields{
		"vertices": n,
		"pending":  b.pending.size(),
		"dropped":  before - b.pending.size(),
	}).Debug("csr: applied vertex merges")

	return n
}

// FinalVertexID maps an original vertex ID to its ID after the most recent
// ApplyVertexMerges. Unknown vertices map to themselves.
func (b *builder[V]) FinalVertexID(v V) V {
	return b.merges.finalID(v)
}

// Compress merges all pending connections into the compressed structure,
// which ends up with max(maxNumVertices, NumVertices()) rows. Declared but
// unapplied vertex groups are applied first.
//
// With expandExistingIndexTracking set, a TrackedGraph keeps the entries
// issued by earlier compressions valid and appends the new contributions.
// Otherwise the index map is rebuilt over the existing edges, in compressed
// order, followed by the new contributions. Untracked graphs ignore the flag.
//
// Errors (the compressed structure is left unchanged):
//   - ErrOutOfRange if a pending row index is ≥ maxNumVertices or a column
//     index does not fit in an int,
//   - ErrShrinkRowSpace (also matching ErrOutOfRange) if
//     maxNumVertices < NumVertices(),
//   - ErrNegativeVertex if a pending vertex ID is negative.
//
// Complexity: O(nnz + rows + cols), nnz counting existing edges.
func (b *builder[V]) Compress(maxNumVertices int, expandExistingIndexTracking bool) error {
	if b.merges.grouped && (b.merges.dirty || b.remapped < b.pending.size()) {
		b.ApplyVertexMerges()
	}

	contributions := b.pending.size()
	err := b.csr.merge(&b.pending, maxNumVertices, expandExistingIndexTracking)
	b.cfg.metrics.operation(opCompress, err)
	if err != nil {
		return fmt.Errorf("Compress: %w", err)
	}
	b.pending.clear()
	b.remapped = 0
	b.merges.commit()
	b.cfg.metrics.compressed(contributions, b.csr.edgeCount())

	b.cfg.logger.WithFields(logrus.Fields{
		"contributions": contributions,
		"rows":          b.csr.rowCount(),
		"nnz":           b.csr.edgeCount(),
	}).Debug("csr: compressed graph")

	return nil
}

// NumVertices returns the number of rows of the compressed structure.
// Valid after the first Compress; zero before.
func (b *builder[V]) NumVertices() int {
	return b.csr.rowCount()
}

// NumEdges returns the number of unique compressed edges.
func (b *builder[V]) NumEdges() int {
	return b.csr.edgeCount()
}

// NumPendingConnections returns the number of contributions awaiting Compress.
func (b *builder[V]) NumPendingConnections() int {
	return b.pending.size()
}

// StartPointers returns the CSR start pointers; row r occupies
// ColumnIndices()[s[r]:s[r+1]]. The slice aliases internal state and must
// not be modified.
func (b *builder[V]) StartPointers() []int {
	return b.csr.start
}

// ColumnIndices returns the column indices, ascending and unique per row.
// The slice aliases internal state and must not be modified.
func (b *builder[V]) ColumnIndices() []V {
	return b.csr.columns
}

// Clear drops pending and compressed data while keeping allocated capacity.
// Declared vertex groups are retained; the next ApplyVertexMerges numbers
// them afresh.
func (b *builder[V]) Clear() {
	b.pending.clear()
	b.csr.clear()
	b.remapped = 0
	b.merges.committed = false
}

// CompressedIndexMap returns, for every contribution in submission order,
// the position of its edge in ColumnIndices. The slice aliases internal
// state and must not be modified.
func (g *TrackedGraph[V]) CompressedIndexMap() []int {
	return g.csr.idx
}
