// Package idalloc provides dense slot allocation with generation bumping,
// the primitive behind every handle-generation guarantee in the RHI and
// render graph (spec.md §8: "the next allocation never reuses the exact
// handle bit-pattern").
package idalloc

import "sync"

// Allocator hands out dense slot indices, reusing freed slots with a bumped
// generation so stale handles can never alias a new occupant.
//
// Safe for concurrent use.
type Allocator struct {
	mu         sync.Mutex
	free       []uint32 // free list of released indices (LIFO, cache-friendly)
	generation []uint32 // generation[i] is the current generation of slot i
	next       uint32   // next never-used index
}

// New returns an empty allocator.
func New() *Allocator {
	return &Allocator{}
}

// Alloc returns a fresh (index, generation) pair. Reuses a released slot
// when one is available, with its generation incremented past the value
// last handed out for that slot.
func (a *Allocator) Alloc() (index, generation uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
		return index, a.generation[index]
	}

	index = a.next
	a.next++
	a.generation = append(a.generation, 0)
	return index, 0
}

// Free releases index for reuse, bumping its generation so any handle
// still referencing the old generation is recognizably stale.
func (a *Allocator) Free(index uint32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index >= uint32(len(a.generation)) {
		return
	}
	a.generation[index]++
	a.free = append(a.free, index)
}

// IsCurrent reports whether generation is still the live generation for
// index (i.e. the slot has not been freed-and-reused since).
func (a *Allocator) IsCurrent(index, generation uint32) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if index >= uint32(len(a.generation)) {
		return false
	}
	return a.generation[index] == generation
}

// Len returns the number of slots ever allocated (including freed ones).
func (a *Allocator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.generation)
}
