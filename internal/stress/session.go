// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Per-step operations and their oracle checks.

package stress

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

// draw picks the next Op by weight, falling back to creation when the
// chosen kind has nothing to act on.
func (s *session) draw() Op {
	mix := s.cfg.Mix
	r := s.rng.Intn(mix.total())
	var op Op
	switch {
	case r < mix.CreateNode:
		op = OpCreateNode
	case r < mix.CreateNode+mix.RemoveNode:
		op = OpRemoveNode
	case r < mix.CreateNode+mix.RemoveNode+mix.CreateEdge:
		op = OpCreateEdge
	case r < mix.CreateNode+mix.RemoveNode+mix.CreateEdge+mix.RemoveEdge:
		op = OpRemoveEdge
	default:
		op = OpProbe
	}

	switch {
	case op == OpCreateNode && s.cfg.MaxNodes > 0 && s.m.nodes.len() >= s.cfg.MaxNodes:
		return OpRemoveNode
	case (op == OpRemoveNode || op == OpCreateEdge) && s.m.nodes.len() == 0:
		return OpCreateNode
	case op == OpRemoveEdge && s.m.edges.len() == 0 && s.m.nodes.len() > 0:
		return OpCreateEdge
	case op == OpRemoveEdge && s.m.edges.len() == 0:
		return OpCreateNode
	}

	return op
}

func (s *session) apply(op Op) error {
	switch op {
	case OpCreateNode:
		return s.createNode()
	case OpRemoveNode:
		return s.removeNode()
	case OpCreateEdge:
		return s.createEdge()
	case OpRemoveEdge:
		return s.removeEdge()
	default:
		return s.probe()
	}
}

func (s *session) createNode() error {
	n := s.g.CreateNode()
	if s.m.nodes.has(n) {
		return fmt.Errorf("%w: CreateNode returned live handle %d", ErrMismatch, n)
	}
	in, out, und, ok := s.g.Degree(n)
	if !ok || in+out+und != 0 {
		return fmt.Errorf("%w: new node %d has degree (%d,%d,%d) ok=%v", ErrMismatch, n, in, out, und, ok)
	}
	s.m.addNode(n)

	return nil
}

func (s *session) removeNode() error {
	n := s.m.nodes.pick(s.rng)
	it, ok := s.g.AdjacentEdges(n, true, true, true)
	if !ok {
		return fmt.Errorf("%w: live node %d reported absent", ErrMismatch, n)
	}
	adjacent := it.Collect()
	if len(adjacent) != len(s.m.incident[n]) {
		return fmt.Errorf("%w: node %d has %d adjacent edges, model has %d",
			ErrMismatch, n, len(adjacent), len(s.m.incident[n]))
	}
	for _, e := range adjacent {
		if _, ok := s.m.incident[n][e]; !ok {
			return fmt.Errorf("%w: edge %d adjacent to %d in engine only", ErrMismatch, e, n)
		}
	}

	if !s.g.RemoveNode(n) {
		return fmt.Errorf("%w: RemoveNode(%d) refused a live node", ErrMismatch, n)
	}
	for _, e := range adjacent {
		if s.g.EdgeExists(e) {
			return fmt.Errorf("%w: edge %d survived removal of node %d", ErrMismatch, e, n)
		}
	}
	s.report.Cascaded += s.m.removeNode(n)
	if s.g.RemoveNode(n) {
		return fmt.Errorf("%w: second RemoveNode(%d) succeeded", ErrMismatch, n)
	}

	return nil
}

func (s *session) createEdge() error {
	// One in ten attempts targets a dead endpoint and must be refused.
	if s.rng.Intn(10) == 0 {
		a, b := s.m.nodes.pick(s.rng), s.m.deadNode(s.rng)
		if s.rng.Intn(2) == 0 {
			a, b = b, a
		}
		nodes, edges := s.g.NodeCount(), s.g.EdgeCount()
		if e := s.g.CreateEdge(a, b, s.rng.Intn(2) == 0); e != core.NoEdge {
			return fmt.Errorf("%w: CreateEdge(%d,%d) on a dead endpoint returned %d", ErrMismatch, a, b, e)
		}
		if s.g.NodeCount() != nodes || s.g.EdgeCount() != edges {
			return fmt.Errorf("%w: refused CreateEdge changed counts", ErrMismatch)
		}
		s.report.Rejected++

		return nil
	}

	var a, b core.Node
	switch r := s.rng.Intn(8); {
	case r == 0:
		a = s.m.nodes.pick(s.rng)
		b = a
	case r == 1 && s.m.edges.len() > 0:
		rec := s.m.records[s.m.edges.pick(s.rng)]
		a, b = rec.src, rec.tgt
	default:
		a, b = s.m.nodes.pick(s.rng), s.m.nodes.pick(s.rng)
	}
	directed := s.rng.Intn(2) == 0

	parallel := false
	if it, ok := s.g.ConnectingEdges(a, b, true, true, true); ok && it.Remaining() > 0 {
		parallel = true
	}
	e := s.g.CreateEdge(a, b, directed)
	if e == core.NoEdge || s.m.edges.has(e) {
		return fmt.Errorf("%w: CreateEdge(%d,%d) returned %d", ErrMismatch, a, b, e)
	}
	s.m.addEdge(e, a, b, directed)
	if a == b {
		s.report.SelfEdges++
	}
	if parallel {
		s.report.Parallel++
	}

	return nil
}

func (s *session) removeEdge() error {
	if s.rng.Intn(10) == 0 {
		if e := s.m.deadEdge(s.rng); s.g.RemoveEdge(e) {
			return fmt.Errorf("%w: RemoveEdge(%d) succeeded on a dead edge", ErrMismatch, e)
		}
		s.report.Rejected++

		return nil
	}

	e := s.m.edges.pick(s.rng)
	if !s.g.RemoveEdge(e) {
		return fmt.Errorf("%w: RemoveEdge(%d) refused a live edge", ErrMismatch, e)
	}
	s.m.removeEdge(e)

	return nil
}

// probe checks existence, endpoint and degree queries on one random node
// handle and one random edge handle, live or dead.
func (s *session) probe() error {
	n := core.Node(s.rng.Intn(s.m.nodeHigh+2) - 1)
	if got, want := s.g.NodeExists(n), s.m.nodes.has(n); got != want {
		return fmt.Errorf("%w: NodeExists(%d)=%v, model %v", ErrMismatch, n, got, want)
	}
	if s.m.nodes.has(n) {
		in, out, und, _ := s.g.Degree(n)
		win, wout, wund := s.m.degree(n)
		if in != win || out != wout || und != wund {
			return fmt.Errorf("%w: Degree(%d)=(%d,%d,%d), model (%d,%d,%d)",
				ErrMismatch, n, in, out, und, win, wout, wund)
		}
	} else if _, ok := s.g.AdjacentEdges(n, true, true, true); ok {
		return fmt.Errorf("%w: AdjacentEdges(%d) on a dead node", ErrMismatch, n)
	}

	e := core.Edge(s.rng.Intn(s.m.edgeHigh+2) - 1)
	rec, live := s.m.records[e]
	src, tgt, ok := s.g.EdgeEndpoints(e)
	switch {
	case ok != live:
		return fmt.Errorf("%w: EdgeEndpoints(%d) ok=%v, model %v", ErrMismatch, e, ok, live)
	case live && (src != rec.src || tgt != rec.tgt):
		return fmt.Errorf("%w: edge %d endpoints (%d,%d), model (%d,%d)", ErrMismatch, e, src, tgt, rec.src, rec.tgt)
	case live && (s.g.Directedness(e) == core.Directed) != rec.directed:
		return fmt.Errorf("%w: edge %d directedness %s", ErrMismatch, e, s.g.Directedness(e))
	case !live && s.g.Directedness(e) != core.Nonexistent:
		return fmt.Errorf("%w: dead edge %d reports %s", ErrMismatch, e, s.g.Directedness(e))
	}

	return nil
}

// check runs the engine's own consistency check and compares counts.
func (s *session) check() error {
	s.report.Checks++
	if err := s.g.Validate(); err != nil {
		return err
	}
	if s.g.NodeCount() != s.m.nodes.len() || s.g.EdgeCount() != s.m.edges.len() {
		return fmt.Errorf("%w: counts (%d,%d), model (%d,%d)", ErrMismatch,
			s.g.NodeCount(), s.g.EdgeCount(), s.m.nodes.len(), s.m.edges.len())
	}
	if ce := s.log.Check(zap.DebugLevel, "consistency check passed"); ce != nil {
		ce.Write(zap.Int("steps", s.report.Steps), zap.Int("nodes", s.g.NodeCount()), zap.Int("edges", s.g.EdgeCount()))
	}

	return nil
}

func (s *session) finish() Report {
	s.report.FinalStats = s.g.Stats()

	return s.report
}
