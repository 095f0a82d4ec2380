// SPDX-License-Identifier: MIT

// Package core provides a mutable, in-memory multigraph topology store with
// dense integer handles and O(1) structural edits.
//
// The Graph G = (V,E) holds only topology. Attributes, layout and rendering
// live in collaborators keyed by the Node and Edge handles it issues.
//
//   - Directed and undirected edges chosen per edge (no global mode)
//   - Parallel edges between the same pair, of either directedness
//   - Directed and undirected self-edges
//   - Handles recycled LIFO after removal (see package ids)
//   - Records stored in growable arenas (see package arena), linked by
//     handle into intrusive doubly-linked lists
//
// Storage layout:
//
//	node record: prev/next in the global node list,
//	             head of outgoing list, head of incoming list,
//	             outDegree, inDegree, undirectedDegree, selfEdgeCount
//	edge record: source, target, directed,
//	             prev/next in source's outgoing list,
//	             prev/next in target's incoming list
//
// An undirected edge is stored exactly like a directed one, nominal source to
// nominal target; only the enumeration and degree rules ignore orientation.
//
// Core Methods:
//
//	// Node lifecycle
//	CreateNode() Node                           // O(1) amortized
//	CreateNodes(k int) []Node                   // O(k)
//	RemoveNode(n Node) bool                     // O(deg(n)), cascades edges
//	NodeExists(n Node) bool                     // O(1)
//
//	// Edge lifecycle
//	CreateEdge(src, tgt Node, directed bool) Edge   // O(1) amortized, NoEdge on dead endpoint
//	RemoveEdge(e Edge) bool                         // O(1)
//	EdgeExists(e Edge) bool                         // O(1)
//	Directedness(e Edge) EdgeType                   // O(1)
//	EdgeSource(e), EdgeTarget(e), EdgeEndpoints(e)  // O(1)
//
//	// Enumeration (lazy, invalidated by mutation)
//	Nodes() *Enumerator[Node]
//	Edges() *Enumerator[Edge]
//	AdjacentEdges(n, out, in, und) (*Enumerator[Edge], bool)
//	ConnectingEdges(a, b, out, in, und) (*Enumerator[Edge], bool)
//
//	// Counts and degrees
//	NodeCount(), EdgeCount() int                     // O(1)
//	Degree(n) (in, out, undirected int, ok bool)     // O(1)
//	SelfEdges(n) (int, bool)                         // O(1)
//	Stats() GraphStats                               // O(V+E)
//
//	// Maintenance
//	Clear()
//	Clone() *Graph
//	Validate() error                                 // wraps ErrCorrupt
//
// Absence is not an error. Missing handles yield false, NoNode, NoEdge,
// Nonexistent, or (nil, false) from the enumeration constructors, distinct
// from an empty enumerator over a live but isolated node.
//
// Concurrency: a Graph has no internal locking. Callers that share one across
// goroutines must serialize access; Clone gives a reader its own copy.
package core
