// Package topology generates deterministic connection streams for common
// graph shapes (paths, cycles, stars, complete graphs, cartesian grids,
// diagonals, random sparse graphs) and feeds them into any Connector,
// typically a csr.Graph or csr.TrackedGraph.
//
// Vertices are the integers 0..n-1 (shifted by WithOffset). Each generator
// documents its emission order; the same constructors, options and seed
// always produce the same stream, which makes the package suitable for
// fixtures whose compressed index maps are asserted verbatim.
//
// Options:
//   - WithSymmetric(bool): emit v→u right after every u→v (default true).
//   - WithRepeat(k):       emit every pair k times (duplicate contributions).
//   - WithOffset(k):       add k to every vertex ID.
//   - WithSeed / WithRand: randomness source for RandomSparse.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrNilConstructor) wrapped with the generator name;
// branch with errors.Is. Option constructors panic on meaningless values.
package topology
