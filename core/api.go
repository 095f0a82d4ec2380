// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Whole-graph operations: Stats snapshot, Clear, Clone.
// Policy:
//   - No per-handle logic here; these compose the arenas and pools wholesale.
// AI-HINT (file):
//   - Clone preserves every handle, list order and free-list, so a clone issues
//     the same future handles as its source.
//   - Stats() is O(E); use NodeCount()/EdgeCount() for O(1) sizes.

package core

import "go.uber.org/zap"

// GraphStats is a read-only snapshot of sizes and storage occupancy.
type GraphStats struct {
	NodeCount           int
	EdgeCount           int
	DirectedEdgeCount   int
	UndirectedEdgeCount int
	SelfEdgeCount       int // directed and undirected self-edges

	NodeCapacity    int // node arena slots allocated
	EdgeCapacity    int // edge arena slots allocated
	FreeNodeHandles int // released node handles awaiting reuse
	FreeEdgeHandles int // released edge handles awaiting reuse
}

// Stats produces a snapshot of counts, edge classification and arena usage.
//
// Implementation:
//   - Stage 1: Copy O(1) counters and capacities.
//   - Stage 2: Classify every live edge by directedness and loopiness.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	s := GraphStats{
		NodeCount:       g.nodeCount,
		EdgeCount:       g.edgeCount,
		NodeCapacity:    g.nodes.Cap(),
		EdgeCapacity:    g.edges.Cap(),
		FreeNodeHandles: g.nodeIDs.Free(),
		FreeEdgeHandles: g.edgeIDs.Free(),
	}
	it := g.Edges()
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		r := g.edge(e)
		if r.directed {
			s.DirectedEdgeCount++
		} else {
			s.UndirectedEdgeCount++
		}
		if r.src == r.tgt {
			s.SelfEdgeCount++
		}
	}

	return s
}

// Clear removes every node and edge and resets both identifier pools, so
// the next CreateNode returns 0 again. Options and arena capacity are kept.
// Listeners receive a single Cleared change instead of per-handle removals.
// Complexity: O(capacity).
func (g *Graph) Clear() {
	nodes, edges := g.nodeCount, g.edgeCount
	g.nodes.Reset()
	g.edges.Reset()
	g.nodeIDs.Reset()
	g.edgeIDs.Reset()
	g.head = noneNode
	g.nodeCount, g.edgeCount = 0, 0

	if ce := g.log.Check(zap.DebugLevel, "graph cleared"); ce != nil {
		ce.Write(zap.Int("nodes", nodes), zap.Int("edges", edges))
	}
	g.emit(Change{Kind: Cleared, Node: NoNode, Edge: NoEdge, Source: NoNode, Target: NoNode})
}

// Clone returns a deep, independent copy of the topology.
//
// Behavior highlights:
//   - Every handle of g names the same object in the clone.
//   - Nodes(), Edges() and adjacency enumerations yield identical orders.
//   - Both pools are copied, so future handles match those g would issue.
//   - The logger is shared; listeners are not copied.
//
// Complexity:
//   - Time O(node capacity + edge capacity).
func (g *Graph) Clone() *Graph {
	return &Graph{
		nodes:     g.nodes.Clone(),
		edges:     g.edges.Clone(),
		nodeIDs:   *g.nodeIDs.Clone(),
		edgeIDs:   *g.edgeIDs.Clone(),
		head:      g.head,
		nodeCount: g.nodeCount,
		edgeCount: g.edgeCount,
		nodeCap:   g.nodeCap,
		edgeCap:   g.edgeCap,
		log:       g.log,
	}
}
