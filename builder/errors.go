// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors. Constructors wrap them with method context
// via %w; callers branch with errors.Is.

package builder

import (
	"errors"
)

// ErrTooFewVertices is returned when a size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when a probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic path runs without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for nil constructors or graphs and when the
// engine rejects an edge.
var ErrConstructFailed = errors.New("builder: construction failed")
