// SPDX-License-Identifier: MIT
// Package: csrgraph/converters
//
// gonum.go - CSR ⇄ gonum graph/simple.
//
// Contract:
//   • ToDirected adds one node per CSR row (padding rows included) and one
//     edge per stored column index. Column-only vertices become nodes via
//     SetEdge.
//   • gonum simple graphs reject self edges; ToDirected reports them with
//     ErrSelfLoop instead of panicking.
//   • FromDirected visits nodes and successors in ascending ID order.
//
// Complexity: O(rows + nnz) plus gonum's map costs.

package converters

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/csrgraph/csr"
)

// ErrSelfLoop indicates a diagonal entry, which gonum simple graphs cannot hold.
var ErrSelfLoop = errors.New("converters: self loop not representable")

// CSR is the read-only view exported by csr.Graph and csr.TrackedGraph.
type CSR[V csr.VertexID] interface {
	StartPointers() []int
	ColumnIndices() []V
}

// Connector receives directed connections.
type Connector[V csr.VertexID] interface {
	AddConnection(v1, v2 V)
}

// ToDirected returns a new gonum directed graph holding every edge of src.
func ToDirected[V csr.VertexID](src CSR[V]) (*simple.DirectedGraph, error) {
	start, cols := src.StartPointers(), src.ColumnIndices()
	dg := simple.NewDirectedGraph()

	for r := 0; r+1 < len(start); r++ {
		dg.AddNode(simple.Node(int64(r)))
	}
	for r := 0; r+1 < len(start); r++ {
		for _, c := range cols[start[r]:start[r+1]] {
			if int64(c) == int64(r) {
				return nil, fmt.Errorf("ToDirected: vertex %d: %w", r, ErrSelfLoop)
			}
			dg.SetEdge(simple.Edge{F: simple.Node(int64(r)), T: simple.Node(int64(c))})
		}
	}

	return dg, nil
}

// FromDirected emits every edge of g into dst and returns the number of
// edges emitted.
func FromDirected[V csr.VertexID](g graph.Directed, dst Connector[V]) int {
	ids := sortedIDs(g.Nodes())

	n := 0
	for _, u := range ids {
		for _, v := range sortedIDs(g.From(u)) {
			dst.AddConnection(V(u), V(v))
			n++
		}
	}

	return n
}

func sortedIDs(it graph.Nodes) []int64 {
	ids := make([]int64, 0, max(it.Len(), 0))
	for it.Next() {
		ids = append(ids, it.Node().ID())
	}
	slices.Sort(ids)

	return ids
}
