// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi-like stream.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1.
//   • An RNG is required for 0 < p < 1; p ∈ {0, 1} is deterministic.
//   • Symmetric config: trials over unordered pairs i < j, each accepted
//     pair emitted as (i, j), (j, i). Otherwise trials over ordered pairs
//     i ≠ j.
//
// Determinism: fixed trial order (i asc, then j asc) and a fixed seed give
// a fixed stream.

package topology

import (
	"fmt"

	"github.com/katalvlaran/csrgraph/csr"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor sampling each admissible pair with
// probability p.
// Complexity: O(n²) trials.
func RandomSparse[V csr.VertexID](n int, p float64) Constructor[V] {
	return func(c Connector[V], cfg config) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		accept := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			j := 0
			if cfg.symmetric {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if accept() {
					connect(c, cfg, i, j)
				}
			}
		}

		return nil
	}
}
