// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected (default): one edge per unordered pair {i,j}, i<j.
//   - WithDirected(true): one arc per ordered pair (i,j), i≠j.
//   - WithMixed: one edge per unordered pair, each directed i→j with the
//     configured probability.
//   - No self-edges.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) edges.
//
// Determinism:
//   - Pair order: i asc, then j asc.

package builder

import (
	"github.com/MachineryHealth/cytoscape-sub002/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := requireRand(methodComplete, cfg); err != nil {
			return err
		}

		ns := g.CreateNodes(n)
		ordered := cfg.directed && !cfg.mixed
		for i := 0; i < n; i++ {
			start := i + 1
			if ordered {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if _, err := link(g, cfg, methodComplete, ns[i], ns[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
