// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and O(1) edge queries.
// Determinism:
//   - A new edge is threaded at the head of its source's outgoing list and
//     its target's incoming list.
// AI-HINT (file):
//   - CreateEdge against a dead endpoint returns NoEdge and changes nothing.
//   - Parallel edges and self-edges are always allowed (multigraph).

package core

import "go.uber.org/zap"

// CreateEdge adds an edge from source to target and returns its handle.
//
// Implementation:
//   - Stage 1: Reject the call (NoEdge, no side effects) unless both endpoints are live.
//   - Stage 2: Acquire an edge handle and thread the record onto the head of
//     source's outgoing list and target's incoming list.
//   - Stage 3: Update degree counters:
//     directed: out(source)++, in(target)++, and a self-edge also bumps selfEdges;
//     undirected: und(source)++, und(target)++, and a self-edge takes one back.
//
// Behavior highlights:
//   - An undirected edge still records a nominal source and target; queries
//     that ignore direction treat them as equivalent endpoints.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) CreateEdge(source, target Node, directed bool) Edge {
	src, tgt := g.node(source), g.node(target)
	if src == nil || tgt == nil {
		return NoEdge
	}

	e := Edge(g.edgeIDs.Acquire())
	if src.firstOut != noneEdge {
		g.edge(src.firstOut).prevOut = e
	}
	if tgt.firstIn != noneEdge {
		g.edge(tgt.firstIn).prevIn = e
	}
	grew := g.edges.Put(int(e), edgeRecord{
		src:      source,
		tgt:      target,
		directed: directed,
		prevOut:  noneEdge,
		nextOut:  src.firstOut,
		prevIn:   noneEdge,
		nextIn:   tgt.firstIn,
	})
	src.firstOut = e
	tgt.firstIn = e

	if directed {
		src.outDeg++
		tgt.inDeg++
		if source == target {
			src.selfEdges++
		}
	} else {
		src.undDeg++
		tgt.undDeg++
		if source == target {
			src.undDeg-- // one occurrence, not two
		}
	}
	g.edgeCount++

	if grew {
		if ce := g.log.Check(zap.DebugLevel, "edge arena grew"); ce != nil {
			ce.Write(zap.Int("capacity", g.edges.Cap()), zap.Int("edges", g.edgeCount))
		}
	}
	g.emit(Change{Kind: EdgeCreated, Node: NoNode, Edge: e, Source: source, Target: target, Directed: directed})

	return e
}

// RemoveEdge deletes e and reverses every counter effect of its creation.
// It returns false if e was not live.
// Complexity: O(1).
func (g *Graph) RemoveEdge(e Edge) bool {
	rec := g.edge(e)
	if rec == nil {
		return false
	}
	r := *rec // rec is zeroed by Delete below
	src, tgt := g.node(r.src), g.node(r.tgt)

	if r.prevOut != noneEdge {
		g.edge(r.prevOut).nextOut = r.nextOut
	} else {
		src.firstOut = r.nextOut
	}
	if r.nextOut != noneEdge {
		g.edge(r.nextOut).prevOut = r.prevOut
	}

	if r.prevIn != noneEdge {
		g.edge(r.prevIn).nextIn = r.nextIn
	} else {
		tgt.firstIn = r.nextIn
	}
	if r.nextIn != noneEdge {
		g.edge(r.nextIn).prevIn = r.prevIn
	}

	if r.directed {
		src.outDeg--
		tgt.inDeg--
		if r.src == r.tgt {
			src.selfEdges--
		}
	} else {
		src.undDeg--
		tgt.undDeg--
		if r.src == r.tgt {
			src.undDeg++
		}
	}

	g.edges.Delete(int(e))
	g.edgeIDs.Release(int(e))
	g.edgeCount--
	g.emit(Change{Kind: EdgeRemoved, Node: NoNode, Edge: e, Source: r.src, Target: r.tgt, Directed: r.directed})

	return true
}

// EdgeExists reports whether e names a live edge. O(1).
func (g *Graph) EdgeExists(e Edge) bool {
	return g.edges.Has(int(e))
}

// EdgeCount returns the number of live edges. O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Directedness reports whether e is Directed, Undirected, or Nonexistent. O(1).
func (g *Graph) Directedness(e Edge) EdgeType {
	rec := g.edge(e)
	switch {
	case rec == nil:
		return Nonexistent
	case rec.directed:
		return Directed
	default:
		return Undirected
	}
}

// EdgeSource returns the (nominal, for undirected edges) source of e, or NoNode.
func (g *Graph) EdgeSource(e Edge) Node {
	if rec := g.edge(e); rec != nil {
		return rec.src
	}

	return NoNode
}

// EdgeTarget returns the (nominal, for undirected edges) target of e, or NoNode.
func (g *Graph) EdgeTarget(e Edge) Node {
	if rec := g.edge(e); rec != nil {
		return rec.tgt
	}

	return NoNode
}

// EdgeEndpoints returns both endpoints of e in one lookup.
// ok is false, and both nodes are NoNode, when e is not live.
func (g *Graph) EdgeEndpoints(e Edge) (source, target Node, ok bool) {
	rec := g.edge(e)
	if rec == nil {
		return NoNode, NoNode, false
	}

	return rec.src, rec.tgt, true
}
