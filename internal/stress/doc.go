// SPDX-License-Identifier: MIT

// Package stress runs seeded random edit sessions against core.Graph and
// checks every result against a brute-force shadow model.
//
// A session creates and removes nodes and edges (self-edges and parallel
// edges included), deliberately targets dead handles, and periodically runs
// core.Graph.Validate. The first divergence stops the run with an error
// wrapping ErrMismatch or core.ErrCorrupt.
package stress
