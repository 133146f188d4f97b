// Package converters moves adjacency between csr builders and gonum graphs.
//
//   - ToDirected exports a compressed structure as a gonum
//     graph/simple.DirectedGraph, so gonum's traversal, path and topo
//     algorithms run directly on the result.
//   - FromDirected feeds the edges of any gonum graph.Directed into a
//     Connector such as csr.Graph.
//
// Node IDs are vertex IDs. No attributes or weights are carried.
package converters
