// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

func TestAdjacentEdges_Categories(t *testing.T) {
	g, ns, es := triangle(t)
	n1 := ns[1] // n0→n1 incoming, n1–n2 undirected

	cases := []struct {
		name string
		f    flagSet
		want []core.Edge
	}{
		{"none", flagSet{}, nil},
		{"outgoing", flagSet{out: true}, nil},
		{"incoming", flagSet{in: true}, []core.Edge{es[0]}},
		{"undirected", flagSet{und: true}, []core.Edge{es[1]}},
		{"all", flagSet{true, true, true}, []core.Edge{es[0], es[1]}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, ok := g.AdjacentEdges(n1, tc.f.out, tc.f.in, tc.f.und)
			require.True(t, ok)
			require.NotNil(t, it, "an isolated selection is empty, not absent")
			assert.Equal(t, len(tc.want), it.Remaining())
			assert.ElementsMatch(t, tc.want, it.Collect())
		})
	}
}

func TestAdjacentEdges_Absent(t *testing.T) {
	g := core.NewGraph()
	n := g.CreateNode()
	it, ok := g.AdjacentEdges(n, true, true, true)
	require.True(t, ok)
	assert.Zero(t, it.Remaining())

	require.True(t, g.RemoveNode(n))
	it, ok = g.AdjacentEdges(n, true, true, true)
	assert.False(t, ok)
	assert.Nil(t, it)
	assert.Zero(t, it.Remaining(), "nil enumerator is empty")
	_, more := it.Next()
	assert.False(t, more)
}

func TestAdjacentEdges_DirectedSelfEdge(t *testing.T) {
	g := core.NewGraph()
	n := g.CreateNode()
	e := g.CreateEdge(n, n, true)

	for _, f := range []flagSet{{out: true}, {in: true}, {out: true, in: true}, {true, true, true}} {
		it, ok := g.AdjacentEdges(n, f.out, f.in, f.und)
		require.True(t, ok)
		assert.Equal(t, []core.Edge{e}, it.Collect(), "flags %+v", f)
	}
	it, _ := g.AdjacentEdges(n, false, false, true)
	assert.Empty(t, it.Collect())
}

func TestAdjacentEdges_NewestFirst(t *testing.T) {
	g := core.NewGraph()
	hub := g.CreateNode()
	leaves := g.CreateNodes(3)
	var out []core.Edge
	for _, l := range leaves {
		out = append(out, g.CreateEdge(hub, l, true))
	}
	in := g.CreateEdge(leaves[0], hub, true)

	it, _ := g.AdjacentEdges(hub, true, true, false)
	assert.Equal(t, []core.Edge{out[2], out[1], out[0], in}, it.Collect())
}

func TestConnectingEdges_Semantics(t *testing.T) {
	g := core.NewGraph()
	a, b, c := g.CreateNode(), g.CreateNode(), g.CreateNode()
	ab := g.CreateEdge(a, b, true)
	ba := g.CreateEdge(b, a, true)
	uab := g.CreateEdge(a, b, false)
	uba := g.CreateEdge(b, a, false)
	g.CreateEdge(a, c, true)
	g.CreateEdge(c, b, false)
	aa := g.CreateEdge(a, a, true)
	uaa := g.CreateEdge(a, a, false)

	cases := []struct {
		name string
		x, y core.Node
		f    flagSet
		want []core.Edge
	}{
		{"a to b", a, b, flagSet{out: true}, []core.Edge{ab}},
		{"b to a", a, b, flagSet{in: true}, []core.Edge{ba}},
		{"undirected either orientation", a, b, flagSet{und: true}, []core.Edge{uab, uba}},
		{"all", a, b, flagSet{true, true, true}, []core.Edge{ab, ba, uab, uba}},
		{"reversed pair", b, a, flagSet{out: true}, []core.Edge{ba}},
		{"self directed once", a, a, flagSet{out: true, in: true}, []core.Edge{aa}},
		{"self all", a, a, flagSet{true, true, true}, []core.Edge{aa, uaa}},
		{"none", a, b, flagSet{}, nil},
		{"no self-edges on b", b, b, flagSet{true, true, true}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it, ok := g.ConnectingEdges(tc.x, tc.y, tc.f.out, tc.f.in, tc.f.und)
			require.True(t, ok)
			assert.Equal(t, len(tc.want), it.Remaining())
			assert.ElementsMatch(t, tc.want, it.Collect())
		})
	}
}

// The hub has far more edges than the leaf, so the leaf drives; flags must
// still be read relative to the first argument.
func TestConnectingEdges_HubDriver(t *testing.T) {
	g := core.NewGraph()
	hub := g.CreateNode()
	leaf := g.CreateNode()
	for _, n := range g.CreateNodes(50) {
		g.CreateEdge(hub, n, true)
	}
	out := g.CreateEdge(hub, leaf, true)
	in := g.CreateEdge(leaf, hub, true)

	it, _ := g.ConnectingEdges(hub, leaf, true, false, false)
	assert.Equal(t, []core.Edge{out}, it.Collect())
	it, _ = g.ConnectingEdges(hub, leaf, false, true, false)
	assert.Equal(t, []core.Edge{in}, it.Collect())
	it, _ = g.ConnectingEdges(leaf, hub, true, false, false)
	assert.Equal(t, []core.Edge{in}, it.Collect())
}

func TestConnectingEdges_Absent(t *testing.T) {
	g := core.NewGraph()
	a, b := g.CreateNode(), g.CreateNode()
	g.CreateEdge(a, b, true)
	require.True(t, g.RemoveNode(b))

	it, ok := g.ConnectingEdges(a, b, true, true, true)
	assert.False(t, ok)
	assert.Nil(t, it)
	_, ok = g.ConnectingEdges(b, a, true, true, true)
	assert.False(t, ok)
	assert.False(t, g.IsNeighbor(a, b))

	c := g.CreateNode()
	it, ok = g.ConnectingEdges(a, c, true, true, true)
	require.True(t, ok)
	assert.Zero(t, it.Remaining())
	assert.False(t, g.IsNeighbor(a, c))
}

func TestEnumerator_All_Break(t *testing.T) {
	g := core.NewGraph()
	g.CreateNodes(5)

	it := g.Nodes()
	taken := 0
	for range it.All() {
		taken++
		if taken == 2 {
			break
		}
	}
	assert.Equal(t, 3, it.Remaining())
	assert.Len(t, it.Collect(), 3)
	_, ok := it.Next()
	assert.False(t, ok, "enumerators are not restartable")
}
