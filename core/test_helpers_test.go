// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide a shadow model that recomputes every query by brute force.
//   - Keep flag combinations and small fixtures in one place.

package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

// flagSet is one (outgoing, incoming, undirected) combination.
type flagSet struct {
	out, in, und bool
}

// allFlagSets lists the eight category selections.
var allFlagSets = []flagSet{
	{false, false, false},
	{true, false, false},
	{false, true, false},
	{false, false, true},
	{true, true, false},
	{true, false, true},
	{false, true, true},
	{true, true, true},
}

type shadowEdge struct {
	src, tgt core.Node
	directed bool
}

// shadow mirrors a Graph with plain maps.
type shadow struct {
	nodes map[core.Node]bool
	edges map[core.Edge]shadowEdge
}

func newShadow() *shadow {
	return &shadow{nodes: map[core.Node]bool{}, edges: map[core.Edge]shadowEdge{}}
}

func (s *shadow) addNode(n core.Node) { s.nodes[n] = true }

func (s *shadow) addEdge(e core.Edge, src, tgt core.Node, directed bool) {
	s.edges[e] = shadowEdge{src: src, tgt: tgt, directed: directed}
}

// removeNode drops n and returns the edges that went with it.
func (s *shadow) removeNode(n core.Node) []core.Edge {
	var gone []core.Edge
	for e, r := range s.edges {
		if r.src == n || r.tgt == n {
			gone = append(gone, e)
			delete(s.edges, e)
		}
	}
	delete(s.nodes, n)

	return gone
}

func (s *shadow) adjacent(n core.Node, f flagSet) []core.Edge {
	var out []core.Edge
	for e, r := range s.edges {
		switch {
		case r.directed && f.out && r.src == n,
			r.directed && f.in && r.tgt == n,
			!r.directed && f.und && (r.src == n || r.tgt == n):
			out = append(out, e)
		}
	}

	return out
}

func (s *shadow) connecting(a, b core.Node, f flagSet) []core.Edge {
	var out []core.Edge
	for e, r := range s.edges {
		switch {
		case r.directed && f.out && r.src == a && r.tgt == b,
			r.directed && f.in && r.src == b && r.tgt == a,
			!r.directed && f.und && ((r.src == a && r.tgt == b) || (r.src == b && r.tgt == a)):
			out = append(out, e)
		}
	}

	return out
}

// requireMatchesShadow checks counts, liveness and every enumeration of g
// against s.
func requireMatchesShadow(t *testing.T, g *core.Graph, s *shadow) {
	t.Helper()

	require.Equal(t, len(s.nodes), g.NodeCount())
	require.Equal(t, len(s.edges), g.EdgeCount())
	require.ElementsMatch(t, keys(s.nodes), g.Nodes().Collect())
	require.ElementsMatch(t, keys(s.edges), g.Edges().Collect())

	for n := range s.nodes {
		require.True(t, g.NodeExists(n))
		for _, f := range allFlagSets {
			it, ok := g.AdjacentEdges(n, f.out, f.in, f.und)
			require.True(t, ok)
			want := s.adjacent(n, f)
			require.Equal(t, len(want), it.Remaining(), "node %d flags %+v", n, f)
			require.ElementsMatch(t, want, it.Collect(), "node %d flags %+v", n, f)
		}
	}
	for e, r := range s.edges {
		src, tgt, ok := g.EdgeEndpoints(e)
		require.True(t, ok)
		require.Equal(t, r.src, src)
		require.Equal(t, r.tgt, tgt)
		want := core.Undirected
		if r.directed {
			want = core.Directed
		}
		require.Equal(t, want, g.Directedness(e))
	}
	require.NoError(t, g.Validate())
}

func keys[K comparable, V any](m map[K]V) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}

func sorted[H core.Handle](hs []H) []H {
	slices.Sort(hs)

	return hs
}

// triangle builds n0→n1, n1–n2 (undirected), n2→n0 and returns the handles.
func triangle(t *testing.T) (*core.Graph, []core.Node, []core.Edge) {
	t.Helper()

	g := core.NewGraph()
	ns := g.CreateNodes(3)
	es := []core.Edge{
		g.CreateEdge(ns[0], ns[1], true),
		g.CreateEdge(ns[1], ns[2], false),
		g.CreateEdge(ns[2], ns[0], true),
	}
	for _, e := range es {
		require.NotEqual(t, core.NoEdge, e)
	}

	return g, ns, es
}
