package arena

// ArenaMetrics is a point-in-time view of an arena's memory.
type ArenaMetrics struct {
	SizeInUse   int     // bytes handed out, alignment padding included
	Capacity    int     // bytes reserved across all chunks
	NumChunks   int     // chunks currently held
	ChunkSize   int     // size of a regular chunk
	Utilization float64 // SizeInUse / Capacity, 0 when empty
	Limit       int     // 0 if unlimited
}

// SizeInUse returns the bytes handed out since the last Reset, including
// alignment padding.
func (a *Arena) SizeInUse() int {
	n := 0
	for _, c := range a.chunks {
		n += int(c.offset)
	}
	return n
}

// NumChunks returns how many chunks the arena holds.
func (a *Arena) NumChunks() int { return len(a.chunks) }

// Capacity returns the bytes reserved across all chunks.
func (a *Arena) Capacity() int { return a.capacity }

// Utilization returns SizeInUse as a fraction of Capacity.
func (a *Arena) Utilization() float64 {
	if a.capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(a.capacity)
}

// ChunkSize returns the size of a regular chunk.
func (a *Arena) ChunkSize() int { return a.chunkSize }

// Limit returns the capacity cap set with WithLimit, or 0 if there is none.
func (a *Arena) Limit() int { return a.limit }

// Metrics returns all statistics at once.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.capacity,
		NumChunks:   len(a.chunks),
		ChunkSize:   a.chunkSize,
		Utilization: a.Utilization(),
		Limit:       a.limit,
	}
}

// Metrics returns a consistent snapshot taken under the lock. The single
// value getters below are built on it.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

func (s *SafeArena) SizeInUse() int { return s.Metrics().SizeInUse }
func (s *SafeArena) NumChunks() int { return s.Metrics().NumChunks }
func (s *SafeArena) Capacity() int { return s.Metrics().Capacity }
func (s *SafeArena) Utilization() float64 { return s.Metrics().Utilization }
func (s *SafeArena) ChunkSize() int { return s.Metrics().ChunkSize }
func (s *SafeArena) Limit() int { return s.Metrics().Limit }
