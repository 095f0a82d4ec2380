// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Creates n nodes and emits i → (i+1) mod n for i=0..n-1.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.

package builder

import (
	"github.com/MachineryHealth/cytoscape-sub002/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := requireRand(methodCycle, cfg); err != nil {
			return err
		}

		ns := g.CreateNodes(n)
		for i := 0; i < n; i++ {
			if _, err := link(g, cfg, methodCycle, ns[i], ns[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
