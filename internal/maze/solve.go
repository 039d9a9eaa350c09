package maze

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/pavanmanishd/krc/chain"
	"github.com/pavanmanishd/krc/dynarray"
	"github.com/pavanmanishd/krc/internal/grid"
)

// step is a breadth-first search queue entry.
type step struct {
	link chain.Link
	pos  grid.Pos
}

var stepLink = unsafe.Offsetof(step{}.link)

// Solve returns the cells on the path from one position to another,
// inclusive, found by breadth-first search.
func (m *Maze) Solve(from, to grid.Pos) ([]grid.Pos, error) {
	if !m.cells.Contains(from) || !m.cells.Contains(to) {
		return nil, fmt.Errorf("maze: path %v to %v leaves the %dx%d maze", from, to, m.Height(), m.Width())
	}

	// came[i] is 1 + the index of the cell i was reached from; 0 is unseen.
	var came dynarray.Array[int]
	if err := came.Grow(m.cells.Len()); err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	clear(came.Slice())

	steps := make([]step, m.cells.Len())
	used := 0
	var queue chain.Chain
	enqueue := func(p grid.Pos) {
		s := &steps[used]
		used++
		s.pos = p
		queue.Append(&s.link)
	}

	start := m.cells.Index(from)
	came.Set(start, start+1)
	enqueue(from)

	for !queue.IsEmpty() {
		l := queue.First()
		queue.Remove(l)
		p := chain.Entry[step](l, stepLink).pos
		if p == to {
			break
		}
		cell := *m.cells.Cell(p)
		for _, d := range [...]Dir{North, South, East, West} {
			if !cell.Has(d) {
				continue
			}
			q := neighbor(p, d)
			qi := m.cells.Index(q)
			if came.Get(qi) != 0 {
				continue
			}
			came.Set(qi, m.cells.Index(p)+1)
			enqueue(q)
		}
	}

	end := m.cells.Index(to)
	if came.Get(end) == 0 {
		return nil, fmt.Errorf("maze: %v is unreachable from %v", to, from)
	}
	var path []grid.Pos
	for i := end; ; i = came.Get(i) - 1 {
		path = append(path, grid.Pos{Row: i / m.Width(), Col: i % m.Width()})
		if i == start {
			break
		}
	}
	slices.Reverse(path)
	return path, nil
}
