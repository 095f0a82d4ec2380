// SPDX-License-Identifier: MIT
//
// File: enumerator.go
// Role: Lazy, single-pass handle sequences returned by the enumeration APIs.
// Concurrency & aliasing:
//   - An Enumerator reads live graph records as it advances. Any mutation of
//     the graph before the enumerator is exhausted invalidates it; continuing
//     to pull is undefined behavior and is not detected.
//   - Mutating after exhaustion is always safe.
// AI-HINT (file):
//   - Collect() first when the loop body mutates the graph.

package core

import "iter"

// Enumerator yields each handle of a finite sequence exactly once.
// It is not restartable; call the producing method again for a new pass.
//
// A nil *Enumerator behaves as an empty sequence.
type Enumerator[H Handle] struct {
	remaining int
	advance   func() H
}

func newEnumerator[H Handle](n int, advance func() H) *Enumerator[H] {
	return &Enumerator[H]{remaining: n, advance: advance}
}

func sliceEnumerator[H Handle](hs []H) *Enumerator[H] {
	i := 0

	return newEnumerator(len(hs), func() H {
		h := hs[i]
		i++

		return h
	})
}

// Remaining reports how many handles are still to be yielded.
func (it *Enumerator[H]) Remaining() int {
	if it == nil {
		return 0
	}

	return it.remaining
}

// Next returns the next handle, or false once the sequence is exhausted.
func (it *Enumerator[H]) Next() (H, bool) {
	if it == nil || it.remaining == 0 {
		var zero H
		return zero, false
	}
	it.remaining--

	return it.advance(), true
}

// All adapts the enumerator to a range-over-func sequence. Breaking out of
// the loop leaves the remaining handles unconsumed.
func (it *Enumerator[H]) All() iter.Seq[H] {
	return func(yield func(H) bool) {
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if !yield(h) {
				return
			}
		}
	}
}

// Collect drains the enumerator into a fresh slice.
func (it *Enumerator[H]) Collect() []H {
	out := make([]H, 0, it.Remaining())
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		out = append(out, h)
	}

	return out
}
