// SPDX-License-Identifier: MIT
// Package: csrgraph/topology
//
// options.go - functional options and the resolved emission config.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Generators never panic; they return sentinel errors.
//   • Options apply in order, later ones override earlier ones.

package topology

import "math/rand"

// Option customizes how generators emit connections.
type Option func(*config)

// config is passed by value to every Constructor.
type config struct {
	symmetric bool       // emit v→u after u→v
	repeat    int        // copies of every emitted pair, ≥ 1
	offset    int        // added to every vertex ID
	rng       *rand.Rand // nil unless WithSeed/WithRand
}

const (
	defaultSymmetric = true
	defaultRepeat    = 1
)

// WithSymmetric selects whether every connection u→v is followed by v→u.
func WithSymmetric(on bool) Option {
	return func(c *config) {
		c.symmetric = on
	}
}

// WithRepeat emits every connection k times. Panics if k < 1.
func WithRepeat(k int) Option {
	if k < 1 {
		panic("topology: WithRepeat(k<1)")
	}
	return func(c *config) {
		c.repeat = k
	}
}

// WithOffset shifts every vertex ID by k. Panics if k < 0.
func WithOffset(k int) Option {
	if k < 0 {
		panic("topology: WithOffset(k<0)")
	}
	return func(c *config) {
		c.offset = k
	}
}

// WithSeed installs a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs r as the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("topology: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

func newConfig(opts ...Option) config {
	cfg := config{
		symmetric: defaultSymmetric,
		repeat:    defaultRepeat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
