// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Nodes are created in row-major order; cell (r,c) is the r*cols+c-th node.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Emits an edge to the right (r,c+1) and bottom (r+1,c) neighbor where
//     they exist. A directed edge gets the reverse arc as well, so directed
//     grids keep a symmetric neighborhood.
//
// Complexity:
//   - Time: O(rows*cols) nodes and edges.
//
// Determinism:
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import (
	"fmt"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireRand(methodGrid, cfg); err != nil {
			return err
		}

		ns := g.CreateNodes(rows * cols)
		cell := func(r, c int) core.Node { return ns[r*cols+c] }

		emit := func(u, v core.Node) error {
			directed, err := link(g, cfg, methodGrid, u, v)
			if err != nil || !directed {
				return err
			}
			if g.CreateEdge(v, u, true) == core.NoEdge {
				return fmt.Errorf("%s: CreateEdge(%d→%d): %w", methodGrid, v, u, ErrConstructFailed)
			}

			return nil
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := emit(cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emit(cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
