// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Enumeration APIs: Nodes, Edges, AdjacentEdges, ConnectingEdges.
// Determinism:
//   - Nodes(): global list order (most recently created first).
//   - Edges(): for each node in Nodes() order, its outgoing list (newest first).
//   - AdjacentEdges(): outgoing list, then incoming list (newest first in each).
//   - Two enumerations with no mutation in between yield identical sequences.
// AI-HINT (file):
//   - ok == false means "no such node", distinct from an empty enumerator.
//   - Every qualifying edge is yielded once, including self-edges matching two flags.

package core

// Nodes enumerates every live node exactly once.
// Complexity: O(1) to create, O(1) per step.
func (g *Graph) Nodes() *Enumerator[Node] {
	cur := g.head

	return newEnumerator(g.nodeCount, func() Node {
		n := cur
		cur = g.node(n).next

		return n
	})
}

// Edges enumerates every live edge exactly once. Each edge sits on exactly
// one outgoing list (its source's), so walking all outgoing lists covers E.
// Complexity: O(1) to create, amortized O(1) per step.
func (g *Graph) Edges() *Enumerator[Edge] {
	w := edgeWalk{g: g, node: g.head, cur: noneEdge}
	if w.node != noneNode {
		w.cur = g.node(w.node).firstOut
	}

	return newEnumerator(g.edgeCount, w.next)
}

type edgeWalk struct {
	g    *Graph
	node Node
	cur  Edge
}

func (w *edgeWalk) next() Edge {
	for w.cur == noneEdge {
		w.node = w.g.node(w.node).next
		w.cur = w.g.node(w.node).firstOut
	}
	e := w.cur
	w.cur = w.g.edge(e).nextOut

	return e
}

// AdjacentEdges enumerates the edges touching n, selected by category:
//
//   - outgoing: directed edges whose source is n
//   - incoming: directed edges whose target is n
//   - undirected: undirected edges with n as either endpoint
//
// Implementation:
//   - Stage 1: Reject a handle that is not live (nil, false).
//   - Stage 2: Compute the exact count from the degree counters:
//     o·out + i·in + u·und − (o∧i ? selfEdges : 0).
//   - Stage 3: Walk the outgoing list, then the incoming list, yielding the
//     edges that qualify. An edge met on both lists (a self-edge) is yielded
//     on the outgoing pass only when that pass already selects it.
//
// Returns:
//   - *Enumerator[Edge]: lazy sequence; empty (not nil) when no flag is set
//     or n is isolated.
//   - bool: false iff n is not live.
//
// Complexity:
//   - Time O(1) to create, O(deg(n)) to exhaust.
//
// Notes:
//   - Mutating the graph before exhaustion invalidates the enumerator.
func (g *Graph) AdjacentEdges(n Node, outgoing, incoming, undirected bool) (*Enumerator[Edge], bool) {
	rec := g.node(n)
	if rec == nil {
		return nil, false
	}

	count := 0
	if outgoing {
		count += rec.outDeg
	}
	if incoming {
		count += rec.inDeg
	}
	if undirected {
		count += rec.undDeg
	}
	if outgoing && incoming {
		count -= rec.selfEdges
	}

	w := &adjacentWalk{
		g:       g,
		out:     outgoing,
		in:      incoming,
		und:     undirected,
		cur:     rec.firstOut,
		firstIn: rec.firstIn,
	}
	if !outgoing && !undirected {
		// Nothing on the outgoing list can qualify.
		w.inPass, w.cur = true, rec.firstIn
	}

	return newEnumerator(count, w.next), true
}

type adjacentWalk struct {
	g            *Graph
	out, in, und bool

	inPass  bool
	cur     Edge
	firstIn Edge
}

func (w *adjacentWalk) next() Edge {
	for {
		if !w.inPass {
			if w.cur == noneEdge {
				w.inPass, w.cur = true, w.firstIn
				continue
			}
			e := w.cur
			r := w.g.edge(e)
			w.cur = r.nextOut
			if (r.directed && w.out) || (!r.directed && w.und) {
				return e
			}
			continue
		}

		e := w.cur
		r := w.g.edge(e)
		w.cur = r.nextIn
		self := r.src == r.tgt
		if r.directed {
			if w.in && !(self && w.out) {
				return e
			}
		} else if w.und && !self {
			return e
		}
	}
}

// ConnectingEdges enumerates the edges directly joining a and b:
//
//   - outgoing: directed edges a → b
//   - incoming: directed edges b → a
//   - undirected: undirected edges between a and b in either nominal orientation
//
// With a == b the result is the matching self-edges of a.
//
// Implementation:
//   - Stage 1: Reject the call (nil, false) unless both endpoints are live.
//   - Stage 2: Drive from the endpoint with fewer incident edges; when that
//     is b, swap the outgoing/incoming flags so they stay relative to a.
//   - Stage 3: Keep the adjacent edges of the driver whose opposite endpoint
//     is the other node.
//
// Complexity:
//   - Time O(min(deg(a), deg(b))), Space O(k) for k results.
//
// Notes:
//   - The result is materialized, so its Remaining() is exact on creation.
func (g *Graph) ConnectingEdges(a, b Node, outgoing, incoming, undirected bool) (*Enumerator[Edge], bool) {
	ra, rb := g.node(a), g.node(b)
	if ra == nil || rb == nil {
		return nil, false
	}

	driver, other := a, b
	out, in := outgoing, incoming
	if rb.incident() < ra.incident() {
		driver, other = b, a
		out, in = incoming, outgoing
	}

	adj, _ := g.AdjacentEdges(driver, out, in, undirected)
	var found []Edge
	for e, ok := adj.Next(); ok; e, ok = adj.Next() {
		r := g.edge(e)
		peer := r.src
		if peer == driver {
			peer = r.tgt
		}
		if peer == other {
			found = append(found, e)
		}
	}

	return sliceEnumerator(found), true
}

// IsNeighbor reports whether at least one edge of any kind joins a and b.
// False when either endpoint is not live.
func (g *Graph) IsNeighbor(a, b Node) bool {
	it, ok := g.ConnectingEdges(a, b, true, true, true)

	return ok && it.Remaining() > 0
}
