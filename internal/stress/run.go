// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Seeded random edit session against core.Graph with a shadow oracle.
// Determinism:
//   - Same Config ⇒ same operation sequence and same Report.
// AI-HINT (file):
//   - Every divergence wraps ErrMismatch; consistency failures wrap core.ErrCorrupt.

package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/MachineryHealth/cytoscape-sub002/builder"
	"github.com/MachineryHealth/cytoscape-sub002/core"
)

// ErrMismatch reports that the engine disagreed with the shadow model.
var ErrMismatch = errors.New("stress: engine diverged from model")

// Op is one kind of session step.
type Op uint8

const (
	OpCreateNode Op = iota
	OpRemoveNode
	OpCreateEdge
	OpRemoveEdge
	OpProbe
	numOps
)

// String returns a snake_case name such as "create_edge".
func (o Op) String() string {
	switch o {
	case OpCreateNode:
		return "create_node"
	case OpRemoveNode:
		return "remove_node"
	case OpCreateEdge:
		return "create_edge"
	case OpRemoveEdge:
		return "remove_edge"
	case OpProbe:
		return "probe"
	default:
		return "unknown"
	}
}

// Ops lists every Op in declaration order.
func Ops() []Op {
	return []Op{OpCreateNode, OpRemoveNode, OpCreateEdge, OpRemoveEdge, OpProbe}
}

// Report summarizes a session.
type Report struct {
	Steps      int        // steps completed
	Ops        map[Op]int // steps per kind
	Checks     int        // full consistency checks run
	Rejected   int        // mutations on dead handles correctly refused
	SelfEdges  int        // self-edges created
	Parallel   int        // edges created parallel to an existing one
	Cascaded   int        // edges removed through RemoveNode
	PeakNodes  int
	PeakEdges  int
	FinalStats core.GraphStats
}

type session struct {
	cfg    Config
	rng    *rand.Rand
	g      *core.Graph
	m      *model
	log    *zap.Logger
	report Report
}

// Run executes cfg against a fresh graph. It stops at the first mismatch or
// consistency failure, or when ctx is done, returning the partial Report.
func Run(ctx context.Context, cfg Config, log *zap.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	var cons []builder.Constructor
	if cfg.InitialNodes > 0 {
		cons = append(cons, builder.RandomSparse(cfg.InitialNodes, cfg.InitialDensity))
	}
	g, err := builder.Build(
		[]core.GraphOption{core.WithLogger(log.Named("core"))},
		[]builder.Option{builder.WithSeed(cfg.Seed), builder.WithMixed(0.5)},
		cons...,
	)
	if err != nil {
		return Report{}, fmt.Errorf("stress: initial fixture: %w", err)
	}

	s := &session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		g:      g,
		m:      newModel(),
		log:    log,
		report: Report{Ops: make(map[Op]int, numOps)},
	}
	s.m.load(g)
	log.Info("stress session started",
		zap.Int64("seed", cfg.Seed),
		zap.Int("steps", cfg.Steps),
		zap.Int("initial_nodes", g.NodeCount()),
		zap.Int("initial_edges", g.EdgeCount()))

	for step := 0; step < cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return s.finish(), fmt.Errorf("stress: interrupted at step %d: %w", step, err)
		}
		op := s.draw()
		if err := s.apply(op); err != nil {
			return s.finish(), fmt.Errorf("step %d (%s): %w", step, op, err)
		}
		s.report.Ops[op]++
		s.report.Steps++
		s.report.PeakNodes = max(s.report.PeakNodes, g.NodeCount())
		s.report.PeakEdges = max(s.report.PeakEdges, g.EdgeCount())

		if (step+1)%cfg.CheckEvery == 0 {
			if err := s.check(); err != nil {
				return s.finish(), fmt.Errorf("step %d: %w", step, err)
			}
		}
	}
	if err := s.check(); err != nil {
		return s.finish(), fmt.Errorf("final check: %w", err)
	}

	r := s.finish()
	log.Info("stress session finished",
		zap.Int("steps", r.Steps),
		zap.Int("checks", r.Checks),
		zap.Int("nodes", r.FinalStats.NodeCount),
		zap.Int("edges", r.FinalStats.EdgeCount),
		zap.Int("cascaded", r.Cascaded))

	return r, nil
}
