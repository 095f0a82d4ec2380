// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for NewGraph.
// AI-HINT (file):
//   - Capacities are hints; arenas still grow on demand.
//   - Listeners run synchronously inside the mutating call and must not mutate the graph.

package core

import "go.uber.org/zap"

// GraphOption configures a Graph before its arenas are allocated.
type GraphOption func(g *Graph)

// WithNodeCapacity pre-sizes the node arena for n handles.
func WithNodeCapacity(n int) GraphOption {
	return func(g *Graph) { g.nodeCap = n }
}

// WithEdgeCapacity pre-sizes the edge arena for n handles.
func WithEdgeCapacity(n int) GraphOption {
	return func(g *Graph) { g.edgeCap = n }
}

// WithLogger routes Debug-level structural events (cascading removals,
// arena growth, Clear) to l. A nil logger leaves logging disabled.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.log = l
		}
	}
}

// WithListener registers fn to receive every Change, in mutation order.
// Multiple listeners are called in registration order. A nil fn is ignored.
func WithListener(fn func(Change)) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.listeners = append(g.listeners, fn)
		}
	}
}
