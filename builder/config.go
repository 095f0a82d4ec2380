// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - resolved builder configuration.

package builder

import (
	"math/rand" // RNG for stochastic builders
)

const (
	probMin = 0.0
	probMax = 1.0
)

// builderConfig is resolved once per Build/Apply and passed by value.
type builderConfig struct {
	rng *rand.Rand // nil unless WithSeed/WithRand

	directed  bool    // directedness when not mixed
	mixed     bool    // per-edge Bernoulli directedness
	pDirected float64 // P(directed) in mixed mode
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stochastic reports whether edge directedness needs the RNG.
func (c builderConfig) stochastic() bool {
	return c.mixed && c.pDirected > probMin && c.pDirected < probMax
}

// nextDirected decides the directedness of the next emitted edge.
func (c builderConfig) nextDirected() bool {
	if !c.mixed {
		return c.directed
	}
	if !c.stochastic() {
		return c.pDirected == probMax
	}

	return c.rng.Float64() < c.pDirected
}
