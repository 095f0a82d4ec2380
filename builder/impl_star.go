// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first node created is the center; the other n-1 are leaves.
//   - Emits center → leaf in leaf creation order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.

package builder

import (
	"github.com/MachineryHealth/cytoscape-sub002/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := requireRand(methodStar, cfg); err != nil {
			return err
		}

		ns := g.CreateNodes(n)
		for _, leaf := range ns[1:] {
			if _, err := link(g, cfg, methodStar, ns[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
