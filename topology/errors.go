// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// errors.go - sentinel errors for the topology package.

package topology

import "errors"

var (
	// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
	// below the minimum of the requested generator.
	ErrTooFewVertices = errors.New("topology: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("topology: probability out of range")

	// ErrNeedRandSource indicates that a stochastic generator ran without
	// WithSeed or WithRand.
	ErrNeedRandSource = errors.New("topology: rng is required")

	// ErrNilConstructor indicates a nil Constructor passed to Emit.
	ErrNilConstructor = errors.New("topology: nil constructor")
)
