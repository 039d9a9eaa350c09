// Package arena implements a chunked bump allocator (memory arena) for Go.
//
// # Overview
//
// An arena allocator is a fast memory allocation strategy that allocates
// memory in large chunks and then hands out portions of those chunks
// on demand. In this module it is the off-heap storage source for
// dynarray.Array: both Arena and SafeArena satisfy dynarray.Allocator.
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default chunk size
//	defer a.Release()      // Clean up when done
//
//	// Allocate raw bytes
//	buf := a.AllocBytes(1024)
//
//	// Allocate typed values
//	ptr := arena.Alloc[MyStruct](a)
//	slice := arena.AllocSlice[int](a, 100)
//
//	// Back a growable array with the arena
//	arr := dynarray.WithAllocator[int](a)
//	err := arr.Push(42)
//
//	// Reset for reuse
//	a.Reset()
//
// # Limits
//
// WithLimit caps the total bytes the arena may reserve. Once the cap is
// reached, Allocate returns an error wrapping ErrLimitExceeded and the
// typed helpers return nil. A failed allocation leaves the arena as it was.
//
//	a := arena.NewArena(4096, arena.WithLimit(1<<20))
//
// # Thread Safety
//
// The basic Arena type is not thread-safe. For concurrent access, use SafeArena:
//
//	safeArena := arena.NewSafeArena(0)
//	defer safeArena.Release()
//
//	buf := safeArena.AllocBytes(1024)
//	ptr := arena.SafeAlloc[MyStruct](safeArena)
//
// # Memory Layout
//
// The arena allocates memory in chunks (default 64KB). When a chunk fills up,
// the next chunk left over from a Reset is tried, and only then is a new
// chunk allocated. AllocBytes and the typed helpers align to at least the
// pointer size; Allocate honours the caller's alignment.
//
// # Important Notes
//
//   - Allocated memory is only valid while the arena exists
//   - No individual deallocation - use Reset() or Release() for bulk cleanup
//   - Memory is not automatically zeroed unless using Alloc() or AllocSliceZeroed()
//   - Chunks are not scanned by the garbage collector; stored values must not
//     contain Go pointers
//
// # Metrics and Monitoring
//
//	metrics := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization*100)
//	fmt.Printf("Memory in use: %d bytes\n", metrics.SizeInUse)
//	fmt.Printf("Total capacity: %d bytes\n", metrics.Capacity)
package arena
