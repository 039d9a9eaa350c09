// Package grid stores a fixed rows x cols matrix in a single dynarray.
package grid

import (
	"errors"
	"fmt"
	"iter"

	"fortio.org/safecast"

	"github.com/pavanmanishd/krc/dynarray"
)

// ErrSize is returned for non-positive or overflowing dimensions.
var ErrSize = errors.New("grid: invalid size")

// Pos addresses a cell.
type Pos struct {
	Row, Col int
}

// Grid is a row-major matrix of T.
type Grid[T any] struct {
	rows, cols int
	cells      dynarray.Array[T]
}

// New returns a zeroed rows x cols grid. Storage comes from mem, or the heap
// when mem is nil; allocator storage requires a pointer-free T.
func New[T any](rows, cols int, mem dynarray.Allocator) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, rows, cols)
	}
	n, err := cellCount(rows, cols)
	if err != nil {
		return nil, err
	}

	g := &Grid[T]{rows: rows, cols: cols, cells: dynarray.WithAllocator[T](mem)}
	if err := g.cells.Grow(n); err != nil {
		return nil, fmt.Errorf("grid: %dx%d cells: %w", rows, cols, err)
	}
	clear(g.cells.Slice())
	return g, nil
}

func cellCount(rows, cols int) (int, error) {
	r, err := safecast.Conv[uint64](rows)
	if err != nil {
		return 0, fmt.Errorf("%w: rows %d: %w", ErrSize, rows, err)
	}
	c, err := safecast.Conv[uint64](cols)
	if err != nil {
		return 0, fmt.Errorf("%w: cols %d: %w", ErrSize, cols, err)
	}
	if c != 0 && r > (1<<63-1)/c {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrSize, rows, cols)
	}
	n, err := safecast.Conv[int](r * c)
	if err != nil {
		return 0, fmt.Errorf("%w: %dx%d overflows: %w", ErrSize, rows, cols, err)
	}
	return n, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid[T]) Len() int { return g.cells.Len() }

// Contains reports whether p is inside the grid.
func (g *Grid[T]) Contains(p Pos) bool {
	return 0 <= p.Row && p.Row < g.rows && 0 <= p.Col && p.Col < g.cols
}

// Index returns the row-major index of p. It panics if p is outside.
func (g *Grid[T]) Index(p Pos) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d", p, g.rows, g.cols))
	}
	return p.Row*g.cols + p.Col
}

// At returns a pointer to the cell at row, col. The pointer stays valid for
// the life of the grid.
func (g *Grid[T]) At(row, col int) *T {
	return g.cells.At(g.Index(Pos{row, col}))
}

// Cell is At for a Pos.
func (g *Grid[T]) Cell(p Pos) *T {
	return g.cells.At(g.Index(p))
}

// Positions yields every position in row-major order.
func (g *Grid[T]) Positions() iter.Seq[Pos] {
	return func(yield func(Pos) bool) {
		for r := range g.rows {
			for c := range g.cols {
				if !yield(Pos{r, c}) {
					return
				}
			}
		}
	}
}
