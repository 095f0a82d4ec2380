// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Handle types, sentinels, record layouts, the Graph type and NewGraph.
// Policy:
//   - Structural absence is reported through sentinels and ok flags, never errors.
//   - Records link to each other by handle; ids.Reserved is the "none" link.
// AI-HINT (file):
//   - Node and Edge are separate namespaces: Node(3) and Edge(3) may both be live.
//   - A Graph is single-owner. There is no internal locking.

package core

import (
	"errors"

	"go.uber.org/zap"

	"github.com/MachineryHealth/cytoscape-sub002/arena"
	"github.com/MachineryHealth/cytoscape-sub002/ids"
)

// Node is a handle naming a live node within one Graph.
type Node int

// Edge is a handle naming a live edge within one Graph.
type Edge int

// Handle is satisfied by the two handle types and parameterizes Enumerator.
type Handle interface {
	Node | Edge
}

// Sentinels returned in place of a handle when the requested object does not exist.
const (
	NoNode Node = -1
	NoEdge Edge = -1
)

// link values meaning "no next/previous element" inside intrusive lists.
const (
	noneNode = Node(ids.Reserved)
	noneEdge = Edge(ids.Reserved)
)

// EdgeType classifies an edge handle.
type EdgeType int8

const (
	// Nonexistent marks a handle that names no live edge.
	Nonexistent EdgeType = -1
	// Undirected edges have no distinguished source and target.
	Undirected EdgeType = 0
	// Directed edges run from source to target.
	Directed EdgeType = 1
)

// String returns "directed", "undirected" or "nonexistent".
func (t EdgeType) String() string {
	switch t {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "nonexistent"
	}
}

// ErrCorrupt is wrapped by every error Validate returns.
var ErrCorrupt = errors.New("core: topology invariant violated")

// nodeRecord is the adjacency record of one live node.
//
// undDeg counts each undirected edge once per endpoint, except that an
// undirected self-edge counts once in total. selfEdges counts directed
// self-edges only; each of those is also counted in outDeg and inDeg.
type nodeRecord struct {
	prev, next Node // global node list, most recently created first

	firstOut Edge // head of the list of edges whose source is this node
	firstIn  Edge // head of the list of edges whose target is this node

	outDeg    int
	inDeg     int
	undDeg    int
	selfEdges int
}

// edgeRecord is the record of one live edge. It is threaded into its
// source's outgoing list and its target's incoming list. A self-edge sits
// in both lists of the same node.
type edgeRecord struct {
	src, tgt Node
	directed bool

	prevOut, nextOut Edge
	prevIn, nextIn   Edge
}

// Graph is a mutable multigraph topology store with dense integer handles.
//
// It supports, in one instance:
//   - directed and undirected edges (per edge),
//   - parallel edges with the same or different directedness,
//   - directed and undirected self-edges.
//
// Graph is not safe for concurrent use; callers that share it across
// goroutines must serialize access themselves.
type Graph struct {
	nodes   *arena.Store[nodeRecord]
	edges   *arena.Store[edgeRecord]
	nodeIDs ids.Pool
	edgeIDs ids.Pool

	head      Node // first node of the global list, noneNode when empty
	nodeCount int
	edgeCount int

	// configuration (resolved by GraphOption)
	nodeCap   int
	edgeCap   int
	log       *zap.Logger
	listeners []func(Change)
}

// NewGraph creates an empty Graph and applies opts in order.
// By default arenas start empty and logging is disabled.
// Complexity: O(capacity) for the initial allocation.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{head: noneNode, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = arena.New[nodeRecord](g.nodeCap)
	g.edges = arena.New[edgeRecord](g.edgeCap)

	return g
}

// node returns the live record of n, or nil.
func (g *Graph) node(n Node) *nodeRecord {
	return g.nodes.At(int(n))
}

// edge returns the live record of e, or nil.
func (g *Graph) edge(e Edge) *edgeRecord {
	return g.edges.At(int(e))
}
