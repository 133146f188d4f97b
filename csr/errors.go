// SPDX-License-Identifier: MIT
// Package: csrgraph/csr
//
// errors.go - sentinel errors for the csr package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Operations attach context with fmt.Errorf("Method: ...: %w", ErrX).
//   • User input never triggers a panic; option constructors may panic on
//     programmer errors (nil logger).

package csr

import "errors"

var (
	// ErrOutOfRange indicates that a pending row index is not smaller than
	// the number of vertices passed to Compress, or that a column index does
	// not fit in an int.
	ErrOutOfRange = errors.New("csr: vertex index out of range")

	// ErrShrinkRowSpace indicates that Compress was asked for fewer rows than
	// an earlier compression already established. Existing rows are never
	// truncated. Errors carrying it also match ErrOutOfRange.
	ErrShrinkRowSpace = errors.New("csr: cannot shrink vertex count of compressed graph")

	// ErrNegativeVertex indicates that a pending connection refers to a
	// negative vertex ID.
	ErrNegativeVertex = errors.New("csr: negative vertex id")

	// ErrSizeMismatch indicates parallel row/column arrays of unequal length.
	ErrSizeMismatch = errors.New("csr: row and column index tables differ in size")

	// ErrCorruptStream indicates that a serialized graph failed structural
	// validation while being read.
	ErrCorruptStream = errors.New("csr: corrupt graph stream")
)
