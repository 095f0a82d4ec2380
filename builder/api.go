// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: Build(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Apply runs the same pipeline against an existing graph.
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors wrapped with %w; they never panic at runtime.
//
// AI-Hints:
//   - Compose several constructors in one Build to assemble disconnected fixtures.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, WithMixed).

package builder

import (
	"fmt"

	"github.com/MachineryHealth/cytoscape-sub002/core"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Each constructor creates its own nodes (handles issued in
// ascending order on a fresh graph) and only links nodes it created.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped as "Build: %w" and returned immediately;
// the partial graph is discarded.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed.
func Build(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return g, nil
}

// Apply resolves bopts and runs cons against an existing graph. Nodes and
// edges added before a failing constructor stay in g.
func Apply(g *core.Graph, bopts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
