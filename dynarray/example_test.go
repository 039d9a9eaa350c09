package dynarray_test

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/krc/arena"
	"github.com/pavanmanishd/krc/dynarray"
)

func Example() {
	var a dynarray.Array[int] // empty handle, no storage yet
	fmt.Println(a.Len(), a.Cap(), a.IsEmpty(), a.IsFull())

	for i := 1; i <= 10; i++ {
		if err := a.Push(i * i); err != nil {
			panic(err)
		}
	}
	fmt.Println(a.Len(), a.Cap())
	fmt.Println(a.Get(0), a.Get(-1), a.InBounds(10), a.InBounds(-11))

	// Output:
	// 0 0 true true
	// 10 16
	// 1 100 false false
}

func ExampleArray_Reserve() {
	var a dynarray.Array[float64]
	if err := a.Reserve(100); err != nil {
		panic(err)
	}
	fmt.Println(a.Len(), a.Cap())

	if err := a.Grow(3); err != nil {
		panic(err)
	}
	a.Set(0, 1.5)
	a.Set(1, 2.5)
	a.Set(-1, 3.5)
	fmt.Println(a.Slice(), a.Cap())

	// Output:
	// 0 100
	// [1.5 2.5 3.5] 100
}

func ExampleWithAllocator() {
	mem := arena.NewArena(512, arena.WithLimit(512))
	defer mem.Release()

	points := dynarray.WithAllocator[[2]int32](mem)
	var err error
	for i := int32(0); err == nil; i++ {
		err = points.Push([2]int32{i, -i})
	}
	fmt.Println(errors.Is(err, arena.ErrLimitExceeded))
	fmt.Println(points.Len(), *points.Last())

	// Output:
	// true
	// 32 [31 -31]
}
