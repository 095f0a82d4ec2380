// SPDX-License-Identifier: MIT
//
// File: model.go
// Role: Shadow model of the engine built from plain maps; the oracle Run
// compares every result against.

package stress

import (
	"maps"
	"math/rand"
	"slices"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

type modelEdge struct {
	src, tgt core.Node
	directed bool
}

// handleSet is a set with O(1) uniform sampling.
type handleSet[H core.Handle] struct {
	items []H
	index map[H]int
}

func newHandleSet[H core.Handle]() *handleSet[H] {
	return &handleSet[H]{index: map[H]int{}}
}

func (s *handleSet[H]) add(h H) {
	if _, ok := s.index[h]; ok {
		return
	}
	s.index[h] = len(s.items)
	s.items = append(s.items, h)
}

func (s *handleSet[H]) remove(h H) {
	i, ok := s.index[h]
	if !ok {
		return
	}
	last := s.items[len(s.items)-1]
	s.items[i] = last
	s.index[last] = i
	s.items = s.items[:len(s.items)-1]
	delete(s.index, h)
}

func (s *handleSet[H]) has(h H) bool {
	_, ok := s.index[h]
	return ok
}

func (s *handleSet[H]) len() int { return len(s.items) }

func (s *handleSet[H]) pick(rng *rand.Rand) H {
	return s.items[rng.Intn(len(s.items))]
}

type model struct {
	nodes    *handleSet[core.Node]
	edges    *handleSet[core.Edge]
	records  map[core.Edge]modelEdge
	incident map[core.Node]map[core.Edge]struct{}

	nodeHigh int // one past the largest node handle ever seen
	edgeHigh int
}

func newModel() *model {
	return &model{
		nodes:    newHandleSet[core.Node](),
		edges:    newHandleSet[core.Edge](),
		records:  map[core.Edge]modelEdge{},
		incident: map[core.Node]map[core.Edge]struct{}{},
	}
}

// load mirrors an existing graph.
func (m *model) load(g *core.Graph) {
	for n := range g.Nodes().All() {
		m.addNode(n)
	}
	for e := range g.Edges().All() {
		src, tgt, _ := g.EdgeEndpoints(e)
		m.addEdge(e, src, tgt, g.Directedness(e) == core.Directed)
	}
}

func (m *model) addNode(n core.Node) {
	m.nodes.add(n)
	m.incident[n] = map[core.Edge]struct{}{}
	m.nodeHigh = max(m.nodeHigh, int(n)+1)
}

func (m *model) addEdge(e core.Edge, src, tgt core.Node, directed bool) {
	m.edges.add(e)
	m.records[e] = modelEdge{src: src, tgt: tgt, directed: directed}
	m.incident[src][e] = struct{}{}
	m.incident[tgt][e] = struct{}{}
	m.edgeHigh = max(m.edgeHigh, int(e)+1)
}

func (m *model) removeEdge(e core.Edge) {
	r := m.records[e]
	delete(m.incident[r.src], e)
	delete(m.incident[r.tgt], e)
	delete(m.records, e)
	m.edges.remove(e)
}

// removeNode drops n and its incident edges, returning how many went.
// Edges go in ascending handle order so the layout of m.edges, and with it
// every later pick, depends only on the seed.
func (m *model) removeNode(n core.Node) int {
	cascaded := 0
	for _, e := range slices.Sorted(maps.Keys(m.incident[n])) {
		m.removeEdge(e)
		cascaded++
	}
	delete(m.incident, n)
	m.nodes.remove(n)

	return cascaded
}

// degree recomputes the Degree components of n by brute force.
func (m *model) degree(n core.Node) (in, out, undirected int) {
	for e := range m.incident[n] {
		r := m.records[e]
		switch {
		case !r.directed:
			undirected++
		case r.src == n && r.tgt == n:
			in++
			out++
		case r.src == n:
			out++
		default:
			in++
		}
	}

	return in, out, undirected
}

// deadNode returns a handle that is not live in the model.
func (m *model) deadNode(rng *rand.Rand) core.Node {
	for {
		n := core.Node(rng.Intn(m.nodeHigh+4) - 1)
		if !m.nodes.has(n) {
			return n
		}
	}
}

// deadEdge returns an edge handle that is not live in the model.
func (m *model) deadEdge(rng *rand.Rand) core.Edge {
	for {
		e := core.Edge(rng.Intn(m.edgeHigh+4) - 1)
		if !m.edges.has(e) {
			return e
		}
	}
}
