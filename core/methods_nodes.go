// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle and O(1) node queries.
//
// Determinism:
//   - New nodes are linked at the head of the global node list; Nodes()
//     therefore enumerates most recently created first.
//
// AI-Hints (file):
//   - RemoveNode cascades to every incident edge before releasing the handle.
//   - Degree() reads maintained counters; it never scans edges.

package core

import "go.uber.org/zap"

// CreateNode adds an isolated node and returns its handle.
//
// Implementation:
//   - Stage 1: Acquire a handle from the node pool (recycled handles first).
//   - Stage 2: Install a zero-degree record with empty adjacency lists.
//   - Stage 3: Link it at the head of the global node list.
//
// Errors:
//   - None; creation always succeeds.
//
// Complexity:
//   - Time O(1) amortized (arena growth doubles capacity).
func (g *Graph) CreateNode() Node {
	n := Node(g.nodeIDs.Acquire())
	if g.head != noneNode {
		g.node(g.head).prev = n
	}
	grew := g.nodes.Put(int(n), nodeRecord{
		prev:     noneNode,
		next:     g.head,
		firstOut: noneEdge,
		firstIn:  noneEdge,
	})
	g.head = n
	g.nodeCount++

	if grew {
		if ce := g.log.Check(zap.DebugLevel, "node arena grew"); ce != nil {
			ce.Write(zap.Int("capacity", g.nodes.Cap()), zap.Int("nodes", g.nodeCount))
		}
	}
	g.emit(Change{Kind: NodeCreated, Node: n, Edge: NoEdge, Source: NoNode, Target: NoNode})

	return n
}

// CreateNodes adds k isolated nodes and returns their handles in creation order.
// k <= 0 returns an empty slice.
func (g *Graph) CreateNodes(k int) []Node {
	if k < 0 {
		k = 0
	}
	out := make([]Node, k)
	for i := range out {
		out[i] = g.CreateNode()
	}

	return out
}

// RemoveNode deletes n together with every edge incident to it.
//
// Implementation:
//   - Stage 1: Reject a handle that is not live (no side effects).
//   - Stage 2: Remove every edge of the outgoing list, then every edge left on
//     the incoming list, through the ordinary edge-removal path. A self-edge
//     sits on both lists and is removed once.
//   - Stage 3: Unlink n from the global node list and release its handle.
//
// Returns:
//   - bool: false if n was not live.
//
// Complexity:
//   - Time O(deg(n)).
//
// Notes:
//   - Listeners observe one EdgeRemoved per cascaded edge, then NodeRemoved.
func (g *Graph) RemoveNode(n Node) bool {
	rec := g.node(n)
	if rec == nil {
		return false
	}

	// Listeners run inside RemoveEdge, so the record is re-read after each one.
	cascaded := 0
	for e := rec.firstOut; e != noneEdge; e = g.node(n).firstOut {
		g.RemoveEdge(e)
		cascaded++
	}
	for e := g.node(n).firstIn; e != noneEdge; e = g.node(n).firstIn {
		g.RemoveEdge(e)
		cascaded++
	}

	rec = g.node(n)
	if rec.prev != noneNode {
		g.node(rec.prev).next = rec.next
	} else {
		g.head = rec.next
	}
	if rec.next != noneNode {
		g.node(rec.next).prev = rec.prev
	}

	g.nodes.Delete(int(n))
	g.nodeIDs.Release(int(n))
	g.nodeCount--

	if ce := g.log.Check(zap.DebugLevel, "node removed"); ce != nil {
		ce.Write(zap.Int("node", int(n)), zap.Int("cascaded_edges", cascaded))
	}
	g.emit(Change{Kind: NodeRemoved, Node: n, Edge: NoEdge, Source: NoNode, Target: NoNode})

	return true
}

// NodeExists reports whether n names a live node. Any int is a valid probe.
// Complexity: O(1).
func (g *Graph) NodeExists(n Node) bool {
	return g.nodes.Has(int(n))
}

// NodeCount returns the number of live nodes. O(1).
func (g *Graph) NodeCount() int {
	return g.nodeCount
}

// Degree returns the degree components of n:
//
//   - in: directed edges whose target is n
//   - out: directed edges whose source is n
//   - undirected: undirected edges touching n, an undirected self-edge counting once
//
// A directed self-edge counts once in in and once in out.
// ok is false (and all counts zero) when n is not live.
//
// Complexity: O(1).
func (g *Graph) Degree(n Node) (in, out, undirected int, ok bool) {
	rec := g.node(n)
	if rec == nil {
		return 0, 0, 0, false
	}

	return rec.inDeg, rec.outDeg, rec.undDeg, true
}

// SelfEdges returns the number of directed self-edges on n.
func (g *Graph) SelfEdges(n Node) (int, bool) {
	rec := g.node(n)
	if rec == nil {
		return 0, false
	}

	return rec.selfEdges, true
}

// incident is the number of distinct edges touching rec.
func (rec *nodeRecord) incident() int {
	return rec.outDeg + rec.inDeg + rec.undDeg - rec.selfEdges
}
