// SPDX-License-Identifier: MIT

package stress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

func TestHandleSet(t *testing.T) {
	s := newHandleSet[core.Node]()
	for n := core.Node(0); n < 5; n++ {
		s.add(n)
	}
	s.add(2)
	require.Equal(t, 5, s.len())

	s.remove(0)
	s.remove(42)
	assert.Equal(t, 4, s.len())
	assert.False(t, s.has(0))
	assert.ElementsMatch(t, []core.Node{1, 2, 3, 4}, s.items)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.True(t, s.has(s.pick(rng)))
	}
}

func TestModel_RemoveNodeCascades(t *testing.T) {
	g := core.NewGraph()
	a, b := g.CreateNode(), g.CreateNode()
	g.CreateEdge(a, b, true)
	g.CreateEdge(a, a, false)
	g.CreateEdge(b, b, true)

	m := newModel()
	m.load(g)
	in, out, und := m.degree(a)
	assert.Equal(t, []int{0, 1, 1}, []int{in, out, und})
	in, out, und = m.degree(b)
	assert.Equal(t, []int{2, 1, 0}, []int{in, out, und})

	assert.Equal(t, 2, m.removeNode(a))
	assert.Equal(t, 1, m.edges.len())
	assert.Equal(t, 2, m.nodeHigh)

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 20; i++ {
		assert.False(t, m.nodes.has(m.deadNode(rng)))
		assert.False(t, m.edges.has(m.deadEdge(rng)))
	}
}

func TestModel_RemoveNodeLayoutIsStable(t *testing.T) {
	g := core.NewGraph()
	hub := g.CreateNode()
	leaves := g.CreateNodes(16)
	for i, n := range leaves {
		g.CreateEdge(hub, n, i%2 == 0)
		g.CreateEdge(n, leaves[(i+1)%len(leaves)], true)
	}

	var layouts [][]core.Edge
	for i := 0; i < 8; i++ {
		m := newModel()
		m.load(g)
		require.Equal(t, 16, m.removeNode(hub))
		layouts = append(layouts, m.edges.items)
	}
	for _, l := range layouts[1:] {
		assert.Equal(t, layouts[0], l)
	}
}
