package dynarray

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Allocator supplies storage for arrays that should not live on the Go heap.
// Allocate returns size bytes aligned to align, or an error if the request
// cannot be met. *arena.Arena and *arena.SafeArena implement it.
//
// Memory from an Allocator is not scanned by the garbage collector, so only
// pointer-free element types may be stored in it.
type Allocator interface {
	Allocate(size, align uintptr) (unsafe.Pointer, error)
}

// allocSlots returns storage for n elements: from mem when it is set, from
// the heap otherwise. Heap slots are zeroed; allocator slots are not.
func allocSlots[T any](mem Allocator, n int) ([]T, error) {
	var zero T
	size, err := storageSize(unsafe.Sizeof(zero), n)
	if err != nil {
		return nil, err
	}
	if mem == nil || size == 0 {
		return make([]T, n), nil
	}
	p, err := mem.Allocate(size, unsafe.Alignof(zero))
	if err != nil {
		return nil, fmt.Errorf("dynarray: allocate %d elements (%d bytes): %w", n, size, err)
	}
	if p == nil {
		return nil, fmt.Errorf("dynarray: allocator returned no memory for %d bytes", size)
	}
	return unsafe.Slice((*T)(p), n), nil
}

// mustBePointerFree panics if T cannot be kept in allocator memory.
func mustBePointerFree[T any]() {
	t := reflect.TypeFor[T]()
	if hasPointers(t) {
		panic(fmt.Sprintf("dynarray: element type %v contains pointers and cannot use allocator storage", t))
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
