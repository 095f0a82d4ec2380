// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Creates n nodes, then emits (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(n) for the handle slice.

package builder

import (
	"github.com/MachineryHealth/cytoscape-sub002/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := requireRand(methodPath, cfg); err != nil {
			return err
		}

		ns := g.CreateNodes(n)
		for i := 1; i < n; i++ {
			if _, err := link(g, cfg, methodPath, ns[i-1], ns[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
