// Package dynarray implements a growable, contiguous array of homogeneous
// elements with amortized doubling.
//
// The zero Array is the empty handle: it owns no storage, and every query on
// it returns the zero answer (Len 0, Cap 0, IsEmpty and IsFull true). Storage
// is created by the first growth request.
//
//	var a dynarray.Array[int]
//	if err := a.Reserve(100); err != nil {
//		return err
//	}
//	for i := range 100 {
//		_ = a.Push(i) // no reallocation up to the reserved capacity
//	}
//	last := *a.Last()
//
// Growth may move the elements: slices and pointers obtained from Slice, At
// or Last are invalid after any call that grows the array. A failed growth
// leaves the array exactly as it was.
//
// An Array is not safe for concurrent use.
package dynarray

import (
	"fmt"
	"iter"
)

// header is the array's bookkeeping. len(slots) is the capacity.
type header[T any] struct {
	length int
	slots  []T
}

// Array is a handle to a growable array of T. The zero value is an empty
// array backed by the Go heap; see WithAllocator for other storage.
//
// Copies of an Array share storage until one of them reallocates; after
// that the other copies refer to the old storage.
type Array[T any] struct {
	hdr *header[T]
	mem Allocator
}

// WithAllocator returns an empty array whose storage comes from mem.
// It panics if T contains pointers and mem is not nil.
func WithAllocator[T any](mem Allocator) Array[T] {
	if mem != nil {
		mustBePointerFree[T]()
	}
	return Array[T]{mem: mem}
}

// From returns a heap-backed array holding vals.
func From[T any](vals ...T) Array[T] {
	var a Array[T]
	if len(vals) == 0 {
		return a
	}
	// cannot fail: len(vals) elements already exist in memory
	_ = a.Reserve(len(vals))
	a.hdr.length = copy(a.hdr.slots, vals)
	return a
}

// Cap returns the number of allocated element slots.
func (a *Array[T]) Cap() int {
	if a == nil || a.hdr == nil {
		return 0
	}
	return len(a.hdr.slots)
}

// Len returns the number of occupied slots.
func (a *Array[T]) Len() int {
	if a == nil || a.hdr == nil {
		return 0
	}
	return a.hdr.length
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.Len() == 0 }

// IsFull reports whether the next Push must grow the storage. It is true for
// the empty handle.
func (a *Array[T]) IsFull() bool { return a.Len() == a.Cap() }

// InBounds reports whether i addresses an element. Negative indices count
// from the end: -1 is the last element.
func (a *Array[T]) InBounds(i int) bool {
	n := a.normalize(i)
	return 0 <= n && n < a.Len()
}

// Allocator returns the storage source, nil for the Go heap.
func (a *Array[T]) Allocator() Allocator {
	if a == nil {
		return nil
	}
	return a.mem
}

// Reserve makes room for at least minCap elements without changing Len.
// Elements keep their indices.
func (a *Array[T]) Reserve(minCap int) error {
	if minCap < 0 {
		panic(fmt.Sprintf("dynarray: negative capacity %d", minCap))
	}
	return a.grow(minCap, 0)
}

// Grow extends the length by n, allocating if needed. The new slots are not
// initialized; callers must write them before reading.
func (a *Array[T]) Grow(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("dynarray: negative growth %d", n))
	}
	return a.grow(0, n)
}

// Push appends v.
func (a *Array[T]) Push(v T) error {
	if err := a.grow(0, 1); err != nil {
		return err
	}
	a.hdr.slots[a.hdr.length-1] = v
	return nil
}

// Dispose releases the storage and returns a to the empty handle. Allocator
// memory is reclaimed only when the allocator itself is reset.
func (a *Array[T]) Dispose() {
	if a == nil {
		return
	}
	a.hdr = nil
}

// Clear sets the length to zero and keeps the capacity.
func (a *Array[T]) Clear() {
	if a != nil && a.hdr != nil {
		a.hdr.length = 0
	}
}

// At returns a pointer to element i. Negative i counts from the end.
// It panics if i is out of range.
func (a *Array[T]) At(i int) *T {
	return &a.hdr.slots[a.check(i)]
}

// Get returns element i. Negative i counts from the end.
func (a *Array[T]) Get(i int) T {
	return a.hdr.slots[a.check(i)]
}

// Set stores v at index i. Negative i counts from the end.
func (a *Array[T]) Set(i int, v T) {
	a.hdr.slots[a.check(i)] = v
}

// Last returns a pointer to the last element. It panics on an empty array.
func (a *Array[T]) Last() *T {
	return a.At(-1)
}

// Slice returns the occupied elements. The slice aliases the storage and
// is invalidated by growth.
func (a *Array[T]) Slice() []T {
	if a.Len() == 0 {
		return nil
	}
	return a.hdr.slots[:a.hdr.length:a.hdr.length]
}

// All yields index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Len(); i++ {
			if !yield(i, a.hdr.slots[i]) {
				return
			}
		}
	}
}

// grow is the single growth path: it ensures capacity for max(minCap,
// Len+add) elements and then sets the length to Len+add. Nothing is modified
// unless every step succeeds.
func (a *Array[T]) grow(minCap, add int) error {
	length := a.Len()
	newLen, err := addLength(length, add)
	if err != nil {
		return err
	}
	minCap = max(minCap, newLen)

	if a.Cap() < minCap {
		newCap, err := nextCapacity(a.Cap(), minCap)
		if err != nil {
			return err
		}
		slots, err := allocSlots[T](a.mem, newCap)
		if err != nil {
			return err
		}
		if a.hdr != nil {
			copy(slots, a.hdr.slots[:length])
		}
		a.hdr = &header[T]{length: length, slots: slots}
	}

	if a.hdr != nil {
		a.hdr.length = newLen
	}
	return nil
}

func (a *Array[T]) normalize(i int) int {
	if i < 0 {
		return a.Len() + i
	}
	return i
}

func (a *Array[T]) check(i int) int {
	n := a.normalize(i)
	if n < 0 || n >= a.Len() {
		panic(fmt.Sprintf("dynarray: index %d out of range with length %d", i, a.Len()))
	}
	return n
}
