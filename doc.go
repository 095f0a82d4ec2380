// SPDX-License-Identifier: MIT

// Package topology is the root of a mutable, in-memory multigraph topology
// store: dense reusable integer handles for nodes and edges, O(1) structural
// edits and lazy adjacency enumeration. Attributes, layout, rendering and
// analysis live outside and build on the handles.
//
// Under the hood, everything is organized into small packages, leaves first:
//
//	ids/            : identifier pools: high-water mark plus LIFO free-list
//	arena/          : sparse growable record stores keyed by handle
//	core/           : the Graph: node/edge lifecycle, degree counters,
//	                  Nodes/Edges/AdjacentEdges/ConnectingEdges, Validate,
//	                  Clone, Clear, Stats, change feed
//	gonumview/      : read-only gonum graph.Directed / graph.Undirected views
//	builder/        : deterministic fixtures (path, cycle, star, complete,
//	                  grid, random sparse, self-loops, parallel bundles)
//	internal/stress : seeded edit-session driver with a shadow oracle
//	cmd/topostress  : CLI over internal/stress
//
// Quick start:
//
//	g := core.NewGraph()
//	a, b := g.CreateNode(), g.CreateNode()
//	e := g.CreateEdge(a, b, true)
//	it, _ := g.AdjacentEdges(a, true, true, true)
//	for e := range it.All() { ... }
//	g.RemoveNode(a) // e goes with it
package topology
