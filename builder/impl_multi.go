// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_multi.go - multigraph fixtures: SelfLoops(k) and Parallel(k).
//
// Contract:
//   - k ≥ 1 (else ErrTooFewVertices).
//   - SelfLoops creates one node carrying k self-edges.
//   - Parallel creates two nodes a, b and k edges a → b.
//
// Complexity:
//   - Time: O(k).

package builder

import (
	"github.com/MachineryHealth/cytoscape-sub002/core"
)

const (
	methodSelfLoops = "SelfLoops"
	methodParallel  = "Parallel"
	minMultiEdges   = 1
)

// SelfLoops returns a Constructor adding one node with k self-edges.
func SelfLoops(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodSelfLoops, "k", k, minMultiEdges); err != nil {
			return err
		}
		if err := requireRand(methodSelfLoops, cfg); err != nil {
			return err
		}

		n := g.CreateNode()
		for i := 0; i < k; i++ {
			if _, err := link(g, cfg, methodSelfLoops, n, n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Parallel returns a Constructor adding two nodes joined by k parallel edges.
func Parallel(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodParallel, "k", k, minMultiEdges); err != nil {
			return err
		}
		if err := requireRand(methodParallel, cfg); err != nil {
			return err
		}

		a, b := g.CreateNode(), g.CreateNode()
		for i := 0; i < k; i++ {
			if _, err := link(g, cfg, methodParallel, a, b); err != nil {
				return err
			}
		}

		return nil
	}
}
