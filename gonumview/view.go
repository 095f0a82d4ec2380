// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only gonum adapters over *core.Graph.
// Policy:
//   - Node IDs are core handles widened to int64.
//   - Parallel edges collapse to one gonum edge per ordered (or unordered) pair.
//   - An undirected core edge is traversable both ways in the Directed view.
// AI-HINT (file):
//   - Views read the live graph; mutate only between algorithm runs.

package gonumview

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

var (
	_ graph.Directed   = Directed{}
	_ graph.Undirected = Undirected{}
)

// Directed exposes g as a gonum graph.Directed.
type Directed struct {
	g *core.Graph
}

// NewDirected wraps g.
func NewDirected(g *core.Graph) Directed { return Directed{g: g} }

// Node returns the node with the given ID, or nil if it is not live.
func (d Directed) Node(id int64) graph.Node { return node(d.g, id) }

// Nodes returns every live node in core enumeration order.
func (d Directed) Nodes() graph.Nodes { return nodes(d.g) }

// From returns the distinct nodes reachable from id by one edge: targets of
// outgoing directed edges and peers of undirected edges.
func (d Directed) From(id int64) graph.Nodes {
	return peers(d.g, id, true, false, true)
}

// To returns the distinct nodes with an edge into id.
func (d Directed) To(id int64) graph.Nodes {
	return peers(d.g, id, false, true, true)
}

// HasEdgeBetween reports whether any edge joins x and y.
func (d Directed) HasEdgeBetween(xid, yid int64) bool {
	return connected(d.g, xid, yid, true, true, true)
}

// HasEdgeFromTo reports whether u→v is traversable.
func (d Directed) HasEdgeFromTo(uid, vid int64) bool {
	return connected(d.g, uid, vid, true, false, true)
}

// Edge returns the u→v edge, or nil when none is traversable.
func (d Directed) Edge(uid, vid int64) graph.Edge {
	if !d.HasEdgeFromTo(uid, vid) {
		return nil
	}

	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

// Undirected exposes g as a gonum graph.Undirected, ignoring direction.
type Undirected struct {
	g *core.Graph
}

// NewUndirected wraps g.
func NewUndirected(g *core.Graph) Undirected { return Undirected{g: g} }

// Node returns the node with the given ID, or nil if it is not live.
func (u Undirected) Node(id int64) graph.Node { return node(u.g, id) }

// Nodes returns every live node in core enumeration order.
func (u Undirected) Nodes() graph.Nodes { return nodes(u.g) }

// From returns the distinct neighbors of id.
func (u Undirected) From(id int64) graph.Nodes {
	return peers(u.g, id, true, true, true)
}

// HasEdgeBetween reports whether any edge joins x and y.
func (u Undirected) HasEdgeBetween(xid, yid int64) bool {
	return connected(u.g, xid, yid, true, true, true)
}

// Edge returns the edge between u and v, or nil.
func (u Undirected) Edge(uid, vid int64) graph.Edge {
	return u.EdgeBetween(uid, vid)
}

// EdgeBetween returns the edge between x and y, or nil.
func (u Undirected) EdgeBetween(xid, yid int64) graph.Edge {
	if !u.HasEdgeBetween(xid, yid) {
		return nil
	}

	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}

// handle narrows a gonum ID to a core handle; ok is false outside the handle space.
func handle(id int64) (core.Node, bool) {
	if id < 0 || id >= math.MaxInt32 {
		return core.NoNode, false
	}

	return core.Node(id), true
}

func node(g *core.Graph, id int64) graph.Node {
	n, ok := handle(id)
	if !ok || !g.NodeExists(n) {
		return nil
	}

	return simple.Node(id)
}

func nodes(g *core.Graph) graph.Nodes {
	it := g.Nodes()
	if it.Remaining() == 0 {
		return graph.Empty
	}
	out := make([]graph.Node, 0, it.Remaining())
	for n := range it.All() {
		out = append(out, simple.Node(n))
	}

	return iterator.NewOrderedNodes(out)
}

// peers collects the distinct opposite endpoints of the selected edges of id,
// in adjacency order.
func peers(g *core.Graph, id int64, outgoing, incoming, undirected bool) graph.Nodes {
	n, ok := handle(id)
	if !ok {
		return graph.Empty
	}
	it, ok := g.AdjacentEdges(n, outgoing, incoming, undirected)
	if !ok || it.Remaining() == 0 {
		return graph.Empty
	}

	seen := make(map[core.Node]struct{}, it.Remaining())
	var out []graph.Node
	for e := range it.All() {
		src, tgt, _ := g.EdgeEndpoints(e)
		peer := src
		if peer == n {
			peer = tgt
		}
		if _, dup := seen[peer]; dup {
			continue
		}
		seen[peer] = struct{}{}
		out = append(out, simple.Node(peer))
	}

	return iterator.NewOrderedNodes(out)
}

func connected(g *core.Graph, xid, yid int64, outgoing, incoming, undirected bool) bool {
	x, okx := handle(xid)
	y, oky := handle(yid)
	if !okx || !oky {
		return false
	}
	it, ok := g.ConnectingEdges(x, y, outgoing, incoming, undirected)

	return ok && it.Remaining() > 0
}
