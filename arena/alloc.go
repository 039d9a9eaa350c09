package arena

import "unsafe"

// typedAlign is the alignment used for a T: its own alignment, but never
// less than a pointer.
func typedAlign[T any]() uintptr {
	var zero T
	return max(unsafe.Alignof(zero), ptrAlign)
}

// Alloc returns a zeroed T placed in the arena, or nil when the limit would
// be exceeded. T must not contain Go pointers. The pointer is valid until
// the next Reset or Release.
func Alloc[T any](a *Arena) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		a.panicIfReleased()
		return &zero
	}
	p, err := a.Allocate(size, typedAlign[T]())
	if err != nil {
		return nil
	}
	clear(unsafe.Slice((*byte)(p), size))
	return (*T)(p)
}

// AllocSlice returns n uninitialized elements of T placed in the arena. It
// returns nil for n <= 0 and when the request overflows or exceeds the
// limit.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		a.panicIfReleased()
		return make([]T, n)
	}
	if uintptr(n) > ^uintptr(0)/elemSize {
		return nil
	}
	p, err := a.Allocate(elemSize*uintptr(n), typedAlign[T]())
	if err != nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// AllocSliceZeroed is AllocSlice with the elements cleared.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}
