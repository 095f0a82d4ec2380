// SPDX-License-Identifier: MIT

// Package builder assembles deterministic topology fixtures on top of
// core.Graph for tests, benchmarks and the stress driver.
//
// The package offers:
//
//   - Build(gopts, bopts, cons...) and Apply(g, bopts, cons...): one
//     orchestrator that resolves options once and runs constructors in order.
//   - Constructors: Path, Cycle, Star, Complete, Grid, RandomSparse,
//     SelfLoops, Parallel.
//   - Options:
//     WithSeed / WithRand: RNG for stochastic constructors.
//     WithDirected:        every emitted edge directed (or not).
//     WithMixed(p):        each emitted edge directed with probability p.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     handles, edges and enumeration orders.
//   - Fast-fail on invalid option values via panics in option constructors.
//   - Runtime parameter errors wrap the package sentinels with the method
//     name, e.g. "Build: Cycle: n=2 < min=3: builder: parameter too small".
package builder
