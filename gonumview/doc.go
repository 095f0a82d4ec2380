// SPDX-License-Identifier: MIT

// Package gonumview adapts a *core.Graph to the gonum graph interfaces so
// the gonum algorithm suite (topo, traverse, path, network) can run on the
// live topology without copying it.
//
// Directed treats directed core edges as one-way and undirected core edges
// as two-way. Undirected ignores direction altogether. Both collapse parallel
// edges, since gonum's interfaces describe simple graphs.
package gonumview
