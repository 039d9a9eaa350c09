package arena

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		opts      []Option
		expected  int
	}{
		{"default chunk size", 0, nil, DefaultChunkSize},
		{"negative chunk size", -1, nil, DefaultChunkSize},
		{"custom chunk size", 8192, nil, 8192},
		{"limit below chunk size", 8192, []Option{WithLimit(1000)}, 1000},
		{"limit above chunk size", 1024, []Option{WithLimit(1 << 20)}, 1024},
		{"non-positive limit ignored", 1024, []Option{WithLimit(-5)}, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.chunkSize, tt.opts...)
			if a.chunkSize != tt.expected {
				t.Errorf("NewArena(%d) chunk size = %d, want %d", tt.chunkSize, a.chunkSize, tt.expected)
			}
			if len(a.chunks) != 1 {
				t.Errorf("NewArena(%d) chunks = %d, want 1", tt.chunkSize, len(a.chunks))
			}
			if a.Capacity() != tt.expected {
				t.Errorf("NewArena(%d) capacity = %d, want %d", tt.chunkSize, a.Capacity(), tt.expected)
			}
		})
	}
}

func TestArenaAllocBytes(t *testing.T) {
	a := NewArena(1024)

	b1 := a.AllocBytes(100)
	if len(b1) != 100 {
		t.Errorf("AllocBytes(100) length = %d, want 100", len(b1))
	}
	if a.AllocBytes(0) != nil {
		t.Error("AllocBytes(0) should return nil")
	}
	if a.AllocBytes(-1) != nil {
		t.Error("AllocBytes(-1) should return nil")
	}

	// Larger than a chunk forces growth
	b4 := a.AllocBytes(2000)
	if len(b4) != 2000 {
		t.Errorf("AllocBytes(2000) length = %d, want 2000", len(b4))
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after large allocation = %d, want 2", a.NumChunks())
	}
}

func TestArenaAllocate(t *testing.T) {
	aligns := []uintptr{0, 1, 2, 4, 8, 16, 64}
	for _, align := range aligns {
		t.Run(fmt.Sprintf("align-%d", align), func(t *testing.T) {
			a := NewArena(1024)
			// Misalign the bump offset first
			if _, err := a.Allocate(3, 1); err != nil {
				t.Fatalf("Allocate(3, 1) error = %v", err)
			}
			p, err := a.Allocate(24, align)
			if err != nil {
				t.Fatalf("Allocate(24, %d) error = %v", align, err)
			}
			want := align
			if want == 0 {
				want = ptrAlign
			}
			if uintptr(p)%want != 0 {
				t.Errorf("Allocate(24, %d) = %p, not aligned to %d", align, p, want)
			}
		})
	}
}

func TestArenaAllocateZeroSize(t *testing.T) {
	a := NewArena(64)
	p, err := a.Allocate(0, 8)
	if p != nil || err != nil {
		t.Errorf("Allocate(0, 8) = (%p, %v), want (nil, nil)", p, err)
	}
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after zero-size Allocate = %d, want 0", a.SizeInUse())
	}
}

func TestArenaAllocateBadAlignment(t *testing.T) {
	a := NewArena(64)
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for alignment 3")
		}
	}()
	a.Allocate(8, 3)
}

func TestArenaLimit(t *testing.T) {
	a := NewArena(256, WithLimit(512))

	if _, err := a.Allocate(200, 8); err != nil {
		t.Fatalf("first Allocate error = %v", err)
	}
	// Does not fit the first chunk; second chunk uses the remaining 256 bytes
	if _, err := a.Allocate(200, 8); err != nil {
		t.Fatalf("second Allocate error = %v", err)
	}
	if a.Capacity() != 512 {
		t.Errorf("Capacity = %d, want 512", a.Capacity())
	}

	chunks, inUse := a.NumChunks(), a.SizeInUse()
	p, err := a.Allocate(200, 8)
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("third Allocate error = %v, want ErrLimitExceeded", err)
	}
	if p != nil {
		t.Error("failed Allocate returned a pointer")
	}
	if a.NumChunks() != chunks || a.SizeInUse() != inUse {
		t.Error("failed Allocate changed the arena")
	}

	if a.AllocBytes(200) != nil {
		t.Error("AllocBytes over the limit should return nil")
	}

	// Small requests still fit what is left
	if _, err := a.Allocate(16, 8); err != nil {
		t.Errorf("Allocate(16) within limit error = %v", err)
	}
}

func TestArenaEnsureCapacity(t *testing.T) {
	a := NewArena(1024)
	initialChunks := a.NumChunks()

	if err := a.EnsureCapacity(100); err != nil {
		t.Fatalf("EnsureCapacity(100) error = %v", err)
	}
	if a.NumChunks() != initialChunks {
		t.Errorf("EnsureCapacity(100) changed chunk count")
	}

	if err := a.EnsureCapacity(2000); err != nil {
		t.Fatalf("EnsureCapacity(2000) error = %v", err)
	}
	if a.NumChunks() != initialChunks+1 {
		t.Errorf("EnsureCapacity(2000) chunks = %d, want %d", a.NumChunks(), initialChunks+1)
	}

	limited := NewArena(1024, WithLimit(1024))
	if err := limited.EnsureCapacity(2000); !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("EnsureCapacity past limit error = %v, want ErrLimitExceeded", err)
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(1024)

	a.AllocBytes(100)
	a.AllocBytes(200)
	if a.SizeInUse() == 0 {
		t.Error("Expected non-zero size in use after allocations")
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() == 0 {
		t.Error("Expected chunks to remain after Reset()")
	}
}

func TestArenaResetReusesChunks(t *testing.T) {
	a := NewArena(1024)
	for i := 0; i < 4; i++ {
		a.AllocBytes(1000)
	}
	chunks := a.NumChunks()
	if chunks != 4 {
		t.Fatalf("NumChunks = %d, want 4", chunks)
	}

	for round := 0; round < 3; round++ {
		a.Reset()
		for i := 0; i < 4; i++ {
			if b := a.AllocBytes(1000); len(b) != 1000 {
				t.Fatalf("round %d: AllocBytes(1000) length = %d", round, len(b))
			}
		}
		if a.NumChunks() != chunks {
			t.Errorf("round %d: NumChunks = %d, want %d", round, a.NumChunks(), chunks)
		}
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(1024)
	a.AllocBytes(100)

	a.Release()

	if a.chunks != nil {
		t.Error("Expected chunks to be nil after Release()")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	a.AllocBytes(100)
}

func TestAlignPtr(t *testing.T) {
	tests := []struct {
		input    uintptr
		expected uintptr
	}{
		{0, 0},
		{1, ptrAlign},
		{ptrAlign, ptrAlign},
		{ptrAlign + 1, ptrAlign * 2},
	}

	for _, tt := range tests {
		result := alignPtr(tt.input)
		if result != tt.expected {
			t.Errorf("alignPtr(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}

	if got := alignUp(17, 16); got != 32 {
		t.Errorf("alignUp(17, 16) = %d, want 32", got)
	}
	if got := alignUp(5, 1); got != 5 {
		t.Errorf("alignUp(5, 1) = %d, want 5", got)
	}
}

func BenchmarkArenaAllocBytes(b *testing.B) {
	a := NewArena(1024 * 1024)
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.AllocBytes(size)
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})
	}
}

func BenchmarkArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a := NewArena(1024 * 1024)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.AllocBytes(64)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 64)
		}
	})
}
