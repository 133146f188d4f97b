// Package csrgraph compiles streams of directed vertex pairs into
// Compressed Sparse Row (CSR) adjacency structures.
//
// What is csrgraph?
//
//	A small toolkit for turning "who is connected to whom" into a compact,
//	canonical sparse structure:
//		• csr:        Graph / TrackedGraph builders: accumulate, merge, compress
//		• csr/msgbuf: msgpack message buffers to ship partial graphs around
//		• topology:   deterministic connection generators (path, grid, star…)
//		• converters: hand the result to gonum for traversal and analysis
//
// Typical flow:
//
//	g := csr.NewTrackedGraph[int32](csr.WithLogger(log))
//	g.AddConnection(2, 0)               // any order, repeats allowed
//	g.AddVertexGroup([]int32{4, 5, 6})  // optional: merge vertices
//	if err := g.Compress(n, false); err != nil { … }
//	start, cols := g.StartPointers(), g.ColumnIndices()
//	slots := g.CompressedIndexMap()     // contribution k lives in cols[slots[k]]
//
// Guarantees:
//
//   - Column indices are ascending and unique within every row.
//   - Compression is linear in edges plus rows plus columns; no comparison sort.
//   - Builders are single-owner; combine partitions with Write / Read.
//
// See examples/ for a two-partition region assembly.
package csrgraph
