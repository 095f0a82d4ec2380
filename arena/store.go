// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Sparse, growable, handle-indexed record storage.
// Determinism:
//   - Growth never reorders or alters stored entries.
// Concurrency:
//   - None. A Store is owned by exactly one graph instance.
// AI-HINT (file):
//   - Get beyond capacity is "absent", never a panic.
//   - Delete beyond capacity is a no-op and never grows the slice.
//   - Pointers returned by At are invalidated by the next growing Put.

package arena

// slot is one cell of the backing array; ok distinguishes a stored zero
// record from an empty cell.
type slot[R any] struct {
	rec R
	ok  bool
}

// Store maps non-negative integer handles to records of type R.
//
// The zero value is an empty store with zero capacity.
type Store[R any] struct {
	slots []slot[R]
	live  int
}

// New returns a Store with room for capacity handles before the first growth.
func New[R any](capacity int) *Store[R] {
	if capacity < 0 {
		capacity = 0
	}

	return &Store[R]{slots: make([]slot[R], capacity)}
}

// Get returns a copy of the record stored at h and whether one is present.
// Handles outside [0, Cap()) report absent.
// Complexity: O(1).
func (s *Store[R]) Get(h int) (R, bool) {
	if h < 0 || h >= len(s.slots) || !s.slots[h].ok {
		var zero R
		return zero, false
	}

	return s.slots[h].rec, true
}

// At returns a pointer to the record stored at h, or nil if absent.
// The pointer stays valid until the next Put that grows the store.
// Complexity: O(1).
func (s *Store[R]) At(h int) *R {
	if h < 0 || h >= len(s.slots) || !s.slots[h].ok {
		return nil
	}

	return &s.slots[h].rec
}

// Has reports whether a record is stored at h.
func (s *Store[R]) Has(h int) bool {
	return h >= 0 && h < len(s.slots) && s.slots[h].ok
}

// Put stores rec at h, growing the backing array when h is beyond capacity.
// It reports whether the store grew.
//
// Growth policy:
//   - new capacity = max(2*old+1, h+1), so a run of Puts is amortized O(1).
//   - Existing entries are copied unchanged.
//
// h must be non-negative.
func (s *Store[R]) Put(h int, rec R) bool {
	grew := false
	if h >= len(s.slots) {
		s.grow(h)
		grew = true
	}
	if !s.slots[h].ok {
		s.live++
	}
	s.slots[h] = slot[R]{rec: rec, ok: true}

	return grew
}

// Delete marks h absent. Handles at or beyond capacity are ignored, which
// keeps redundant removals from allocating.
// It reports whether a record was present.
func (s *Store[R]) Delete(h int) bool {
	if h < 0 || h >= len(s.slots) || !s.slots[h].ok {
		return false
	}
	s.slots[h] = slot[R]{}
	s.live--

	return true
}

// Len reports how many handles currently hold a record.
func (s *Store[R]) Len() int { return s.live }

// Cap reports the current capacity; every handle below it can be read
// without growth.
func (s *Store[R]) Cap() int { return len(s.slots) }

// Reset drops every record but keeps the allocated capacity.
func (s *Store[R]) Reset() {
	clear(s.slots)
	s.live = 0
}

// Clone returns an independent copy with the same capacity and contents.
// Records are copied by value.
func (s *Store[R]) Clone() *Store[R] {
	slots := make([]slot[R], len(s.slots))
	copy(slots, s.slots)

	return &Store[R]{slots: slots, live: s.live}
}

// grow extends the backing array so that h becomes addressable.
func (s *Store[R]) grow(h int) {
	newCap := 2*len(s.slots) + 1
	if newCap < h+1 {
		newCap = h + 1
	}
	slots := make([]slot[R], newCap)
	copy(slots, s.slots)
	s.slots = slots
}
