package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// ptrAlign is the minimum alignment of AllocBytes and the typed helpers.
const ptrAlign = unsafe.Sizeof(uintptr(0))

// ErrLimitExceeded is returned when growing the arena would take its total
// capacity past the limit set with WithLimit.
var ErrLimitExceeded = errors.New("arena: limit exceeded")

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// bump carves size bytes aligned to align out of the chunk, or returns nil
// when they do not fit.
func (c *chunk) bump(size, align uintptr) unsafe.Pointer {
	if len(c.buf) == 0 {
		return nil
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(c.buf)))
	off := alignUp(base+c.offset, align) - base
	n := uintptr(len(c.buf))
	if size > n || off > n-size {
		return nil
	}
	c.offset = off + size
	return unsafe.Pointer(&c.buf[off])
}

// Arena is a chunked bump allocator. Not goroutine-safe by default.
// Use SafeArena for concurrent access.
type Arena struct {
	chunks    []chunk
	chunkSize int
	limit     int // 0 means unlimited
	capacity  int // sum of len(chunk.buf)
	cur       int // index of the chunk allocations are bumped from
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used. A limit smaller than the
// chunk size shrinks the first chunk to the limit.
func NewArena(chunkSize int, opts ...Option) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	for _, opt := range opts {
		opt(a)
	}
	if a.limit > 0 && a.chunkSize > a.limit {
		a.chunkSize = a.limit
	}
	// cannot fail: chunkSize <= limit
	_ = a.grow(a.chunkSize)
	return a
}

// Allocate returns size bytes aligned to align. Align must be a power of two;
// zero selects pointer alignment. The memory is not zeroed and is not scanned
// by the garbage collector, so it must not hold Go pointers.
//
// Allocate returns (nil, nil) for size 0 and an error wrapping
// ErrLimitExceeded when a new chunk would exceed the limit. A failed call
// leaves the arena unchanged.
func (a *Arena) Allocate(size, align uintptr) (unsafe.Pointer, error) {
	a.panicIfReleased()
	if align == 0 {
		align = ptrAlign
	}
	if align&(align-1) != 0 {
		panic(fmt.Sprintf("arena: alignment %d is not a power of two", align))
	}
	if size == 0 {
		return nil, nil
	}

	// Fast path: bump the current chunk, then any chunk left over from Reset.
	for i := a.cur; i < len(a.chunks); i++ {
		if p := a.chunks[i].bump(size, align); p != nil {
			a.cur = i
			return p, nil
		}
	}

	// Slow path: need new chunk. Chunks start word aligned, so only larger
	// alignments need slack.
	need := size
	if align > ptrAlign {
		need += align - 1
	}
	if need < size || need > uintptr(maxInt) {
		return nil, fmt.Errorf("%w: request of %d bytes", ErrLimitExceeded, size)
	}
	if err := a.grow(int(need)); err != nil {
		return nil, err
	}
	return a.chunks[a.cur].bump(size, align), nil
}

// AllocBytes returns a []byte slice pointing into the arena's backing chunk.
// The caller must ensure the arena remains reachable while the returned slice is in use.
// Returns nil if n <= 0 or if the arena limit would be exceeded.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	p, err := a.Allocate(uintptr(n), ptrAlign)
	if err != nil {
		return nil
	}
	// Use unsafe slice creation to avoid bounds checks
	return unsafe.Slice((*byte)(p), n)
}

// EnsureCapacity ensures the current chunk has at least n free bytes.
// If not, it grows the arena with a new chunk.
func (a *Arena) EnsureCapacity(n int) error {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}
	c := &a.chunks[a.cur]
	off := alignPtr(c.offset)
	if uintptr(n)+off > uintptr(len(c.buf)) {
		return a.grow(n)
	}
	return nil
}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Memory handed out before Reset must no longer be used.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.cur = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.chunks = nil
	a.capacity = 0
	a.cur = 0
}

// grow appends a new chunk of at least need bytes, clamped to what remains
// of the limit.
func (a *Arena) grow(need int) error {
	size := max(a.chunkSize, need)
	if a.limit > 0 {
		remaining := a.limit - a.capacity
		if need > remaining {
			return fmt.Errorf("%w: need %d bytes, %d of %d remaining",
				ErrLimitExceeded, need, remaining, a.limit)
		}
		size = min(size, remaining)
	}
	a.chunks = append(a.chunks, chunk{buf: newChunkBuf(size)})
	a.capacity += size
	a.cur = len(a.chunks) - 1
	return nil
}

// newChunkBuf returns size bytes of word-aligned memory that the garbage
// collector does not scan.
func newChunkBuf(size int) []byte {
	words := make([]uintptr, (size+int(ptrAlign)-1)/int(ptrAlign))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(words))), size)
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

const maxInt = int(^uint(0) >> 1)

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	return alignUp(off, ptrAlign)
}

func alignUp(off, align uintptr) uintptr {
	mask := align - 1
	return (off + mask) & ^mask
}
