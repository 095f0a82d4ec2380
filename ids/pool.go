// SPDX-License-Identifier: MIT
//
// File: pool.go
// Role: Reusable dense integer handles (high-water mark + LIFO free-list).
// Determinism:
//   - Acquire order is a pure function of the Acquire/Release call sequence.
// Concurrency:
//   - None. A Pool is owned by exactly one graph instance.
// AI-HINT (file):
//   - Released handles are reused before the high-water mark grows.
//   - Releasing a handle that is not currently issued corrupts the pool (unchecked).

package ids

import "math"

// Reserved is the one value a Pool never issues. Containers built on top of a
// Pool use it as the "none" link in index-based lists.
const Reserved = math.MaxInt32

// Pool hands out non-negative integer handles and recycles released ones.
//
// The zero value is an empty pool whose first Acquire returns 0.
type Pool struct {
	next int   // high-water mark: the smallest handle never issued
	free []int // released handles, reused LIFO
}

// Acquire returns a handle that is not currently issued.
//
// Implementation:
//   - Stage 1: If the free-list is non-empty, pop its top.
//   - Stage 2: Otherwise return the high-water mark and advance it.
//
// Complexity: O(1) amortized.
//
// Exhausting the handle space (reaching Reserved) is a fatal condition and panics.
func (p *Pool) Acquire() int {
	if n := len(p.free); n > 0 {
		h := p.free[n-1]
		p.free = p.free[:n-1]

		return h
	}
	if p.next >= Reserved {
		panic("ids: handle space exhausted")
	}
	h := p.next
	p.next++

	return h
}

// Release returns h to the pool for later reuse.
// h must have been issued by Acquire and not released since.
// Complexity: O(1) amortized.
func (p *Pool) Release(h int) {
	p.free = append(p.free, h)
}

// HighWater reports the smallest handle that has never been issued.
// Every issued handle is strictly below it.
func (p *Pool) HighWater() int { return p.next }

// Free reports how many released handles are waiting for reuse.
func (p *Pool) Free() int { return len(p.free) }

// Issued reports how many handles are currently live.
func (p *Pool) Issued() int { return p.next - len(p.free) }

// Reset forgets every issued and released handle; the next Acquire returns 0.
func (p *Pool) Reset() {
	p.next = 0
	p.free = p.free[:0]
}

// Clone returns an independent copy that will issue exactly the same
// sequence of handles as p for the same future calls.
func (p *Pool) Clone() *Pool {
	free := make([]int, len(p.free))
	copy(free, p.free)

	return &Pool{next: p.next, free: free}
}
