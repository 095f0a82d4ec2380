// SPDX-License-Identifier: MIT

// Package ids manages dense, reusable integer handles.
//
// A Pool issues handles from a monotonically increasing high-water mark and
// prefers recycling released handles, which keeps the index space compact
// over long edit sessions. Node and edge handles of a graph come from two
// independent pools, so the same integer may name a node and an edge at once.
//
// Handles are never negative and never equal to Reserved.
package ids
