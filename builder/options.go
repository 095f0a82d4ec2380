// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolved into builderConfig.
//
// Invalid option values are programmer errors and panic at option
// construction time; constructors themselves never panic.

package builder

import (
	"math/rand"
)

// Option mutates builderConfig before constructors run.
type Option func(*builderConfig)

// WithRand uses r for every stochastic decision.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDirected sets the directedness of every emitted edge (default false).
// It clears a previous WithMixed.
func WithDirected(directed bool) Option {
	return func(c *builderConfig) {
		c.directed = directed
		c.mixed = false
	}
}

// WithMixed makes each emitted edge directed with probability p, drawn
// independently. Requires an RNG when 0 < p < 1.
func WithMixed(p float64) Option {
	if p < probMin || p > probMax {
		panic("builder: WithMixed(p outside [0,1])")
	}
	return func(c *builderConfig) {
		c.mixed = true
		c.pDirected = p
	}
}
