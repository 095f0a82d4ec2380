// SPDX-License-Identifier: MIT
// Package: builder
//
// helpers.go - shared validation and emission steps for constructors.

package builder

import (
	"fmt"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

// validateMin rejects v < minimum with ErrTooFewVertices.
func validateMin(method, name string, v, minimum int) error {
	if v < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, v, minimum, ErrTooFewVertices)
	}

	return nil
}

// requireRand rejects a stochastic direction policy without an RNG.
func requireRand(method string, cfg builderConfig) error {
	if cfg.stochastic() && cfg.rng == nil {
		return fmt.Errorf("%s: mixed directedness: %w", method, ErrNeedRandSource)
	}

	return nil
}

// link emits u→v with the configured directedness and reports it.
func link(g *core.Graph, cfg builderConfig, method string, u, v core.Node) (bool, error) {
	directed := cfg.nextDirected()
	if e := g.CreateEdge(u, v, directed); e == core.NoEdge {
		return directed, fmt.Errorf("%s: CreateEdge(%d→%d): %w", method, u, v, ErrConstructFailed)
	}

	return directed, nil
}
