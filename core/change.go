// SPDX-License-Identifier: MIT
//
// File: change.go
// Role: Synchronous change feed for collaborators keyed by handle (attribute stores, views).

package core

// ChangeKind identifies what a Change reports.
type ChangeKind uint8

const (
	NodeCreated ChangeKind = iota + 1
	NodeRemoved
	EdgeCreated
	EdgeRemoved
	// Cleared reports that Clear dropped every node and edge at once.
	Cleared
)

// String returns a lower-case name such as "edge-removed".
func (k ChangeKind) String() string {
	switch k {
	case NodeCreated:
		return "node-created"
	case NodeRemoved:
		return "node-removed"
	case EdgeCreated:
		return "edge-created"
	case EdgeRemoved:
		return "edge-removed"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Change describes one topology mutation.
//
// For node changes only Node is meaningful. For edge changes Edge, Source,
// Target and Directed describe the edge as it was created or just before it
// was removed. RemoveNode reports each cascaded EdgeRemoved before the
// NodeRemoved of the node itself.
type Change struct {
	Kind     ChangeKind
	Node     Node
	Edge     Edge
	Source   Node
	Target   Node
	Directed bool
}

func (g *Graph) emit(c Change) {
	for _, fn := range g.listeners {
		fn(c)
	}
}
