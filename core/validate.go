// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Full consistency check of links, counters and pools.
// AI-HINT (file):
//   - Validate is O(V+E) and read-only; call it from tests and fuzz drivers, not hot paths.
//   - Every failure wraps ErrCorrupt; branch with errors.Is.

package core

import "fmt"

// Validate walks every record and reports the first violated invariant:
//
//   - the global node list is acyclic, doubly linked and holds NodeCount live nodes;
//   - every list edge is live and belongs to the list it is on;
//   - each node's counters equal what its lists imply;
//   - every edge appears on exactly one outgoing list, and EdgeCount matches;
//   - both identifier pools account for exactly the live handles.
//
// Complexity: O(V+E) time, O(1) extra space.
func (g *Graph) Validate() error {
	if g.nodes.Len() != g.nodeCount {
		return fmt.Errorf("%w: node arena holds %d records, count is %d", ErrCorrupt, g.nodes.Len(), g.nodeCount)
	}
	if g.edges.Len() != g.edgeCount {
		return fmt.Errorf("%w: edge arena holds %d records, count is %d", ErrCorrupt, g.edges.Len(), g.edgeCount)
	}
	if got := g.nodeIDs.Issued(); got != g.nodeCount {
		return fmt.Errorf("%w: node pool has %d issued handles, count is %d", ErrCorrupt, got, g.nodeCount)
	}
	if got := g.edgeIDs.Issued(); got != g.edgeCount {
		return fmt.Errorf("%w: edge pool has %d issued handles, count is %d", ErrCorrupt, got, g.edgeCount)
	}

	seenNodes, seenEdges := 0, 0
	prev := noneNode
	for n := g.head; n != noneNode; n = g.node(n).next {
		if seenNodes == g.nodeCount {
			return fmt.Errorf("%w: node list longer than %d (cycle?)", ErrCorrupt, g.nodeCount)
		}
		rec := g.node(n)
		if rec == nil {
			return fmt.Errorf("%w: node list references dead node %d", ErrCorrupt, n)
		}
		if rec.prev != prev {
			return fmt.Errorf("%w: node %d prev=%d, want %d", ErrCorrupt, n, rec.prev, prev)
		}
		out, err := g.validateNode(n, rec)
		if err != nil {
			return err
		}
		seenEdges += out
		seenNodes++
		prev = n
	}
	if seenNodes != g.nodeCount {
		return fmt.Errorf("%w: node list holds %d nodes, count is %d", ErrCorrupt, seenNodes, g.nodeCount)
	}
	if seenEdges != g.edgeCount {
		return fmt.Errorf("%w: outgoing lists hold %d edges, count is %d", ErrCorrupt, seenEdges, g.edgeCount)
	}

	return nil
}

// validateNode checks both adjacency lists of n against its counters and
// returns the length of its outgoing list.
func (g *Graph) validateNode(n Node, rec *nodeRecord) (int, error) {
	var outDeg, inDeg, undDeg, selfEdges, outLen, inLen int

	prev := noneEdge
	for e := rec.firstOut; e != noneEdge; e = g.edge(e).nextOut {
		if outLen > g.edgeCount {
			return 0, fmt.Errorf("%w: outgoing list of node %d is cyclic", ErrCorrupt, n)
		}
		r := g.edge(e)
		if r == nil {
			return 0, fmt.Errorf("%w: outgoing list of node %d references dead edge %d", ErrCorrupt, n, e)
		}
		if r.src != n {
			return 0, fmt.Errorf("%w: edge %d on outgoing list of %d has source %d", ErrCorrupt, e, n, r.src)
		}
		if r.prevOut != prev {
			return 0, fmt.Errorf("%w: edge %d prevOut=%d, want %d", ErrCorrupt, e, r.prevOut, prev)
		}
		if !g.NodeExists(r.tgt) {
			return 0, fmt.Errorf("%w: edge %d targets dead node %d", ErrCorrupt, e, r.tgt)
		}
		if r.directed {
			outDeg++
			if r.tgt == n {
				selfEdges++
			}
		} else {
			undDeg++
		}
		outLen++
		prev = e
	}

	prev = noneEdge
	for e := rec.firstIn; e != noneEdge; e = g.edge(e).nextIn {
		if inLen > g.edgeCount {
			return 0, fmt.Errorf("%w: incoming list of node %d is cyclic", ErrCorrupt, n)
		}
		r := g.edge(e)
		if r == nil {
			return 0, fmt.Errorf("%w: incoming list of node %d references dead edge %d", ErrCorrupt, n, e)
		}
		if r.tgt != n {
			return 0, fmt.Errorf("%w: edge %d on incoming list of %d has target %d", ErrCorrupt, e, n, r.tgt)
		}
		if r.prevIn != prev {
			return 0, fmt.Errorf("%w: edge %d prevIn=%d, want %d", ErrCorrupt, e, r.prevIn, prev)
		}
		if r.directed {
			inDeg++
		} else if r.src != n {
			undDeg++ // an undirected self-edge was counted on the outgoing pass
		}
		inLen++
		prev = e
	}

	switch {
	case rec.outDeg != outDeg:
		return 0, fmt.Errorf("%w: node %d outDegree=%d, lists imply %d", ErrCorrupt, n, rec.outDeg, outDeg)
	case rec.inDeg != inDeg:
		return 0, fmt.Errorf("%w: node %d inDegree=%d, lists imply %d", ErrCorrupt, n, rec.inDeg, inDeg)
	case rec.undDeg != undDeg:
		return 0, fmt.Errorf("%w: node %d undirectedDegree=%d, lists imply %d", ErrCorrupt, n, rec.undDeg, undDeg)
	case rec.selfEdges != selfEdges:
		return 0, fmt.Errorf("%w: node %d selfEdgeCount=%d, lists imply %d", ErrCorrupt, n, rec.selfEdges, selfEdges)
	}

	return outLen, nil
}
