// Package maze builds binary-tree mazes on a grid and draws them as text.
//
// Cells are visited in row-major order starting from the second one. Each
// cell opens a passage to its north or west neighbor, picked at random
// among those that exist, so the result is a spanning tree rooted at the
// top-left cell.
package maze

import (
	"errors"
	"fmt"

	"github.com/pavanmanishd/krc/dynarray"
	"github.com/pavanmanishd/krc/internal/grid"
	"github.com/pavanmanishd/krc/xorshift"
)

// Dir is a set of passage directions.
type Dir uint8

const (
	North Dir = 1 << iota
	South
	East
	West
)

// Cell records the passages leaving a cell.
type Cell struct {
	Open Dir
}

// Has reports whether the cell has a passage toward d.
func (c Cell) Has(d Dir) bool { return c.Open&d != 0 }

// Options select the maze size and random sequence.
type Options struct {
	Width, Height int
	Seed          uint32
	Params        int
}

// ErrEmpty is returned for a maze with no cells.
var ErrEmpty = errors.New("maze: width and height must be positive")

// Maze is a generated maze.
type Maze struct {
	cells *grid.Grid[Cell]
	opts  Options
}

// Generate carves a maze. Cell storage comes from mem, or the heap when mem
// is nil.
func Generate(opts Options, mem dynarray.Allocator) (*Maze, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmpty, opts.Width, opts.Height)
	}
	cells, err := grid.New[Cell](opts.Height, opts.Width, mem)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}

	rng := xorshift.New(opts.Seed, opts.Params)
	var choices [2]Dir
	first := true
	for p := range cells.Positions() {
		if first {
			first = false
			continue
		}
		n := 0
		if p.Row > 0 {
			choices[n] = North
			n++
		}
		if p.Col > 0 {
			choices[n] = West
			n++
		}

		next := p
		var back Dir
		if choices[rng.Intn(n)] == North {
			next.Row--
			cells.Cell(p).Open |= North
			back = South
		} else {
			next.Col--
			cells.Cell(p).Open |= West
			back = East
		}
		cells.Cell(next).Open |= back
	}
	return &Maze{cells: cells, opts: opts}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.cells.Cols() }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.cells.Rows() }

// Seed returns the seed the maze was generated from.
func (m *Maze) Seed() uint32 { return m.opts.Seed }

// At returns the cell at row, col.
func (m *Maze) At(row, col int) Cell { return *m.cells.At(row, col) }

// Passages counts the open passages. A perfect maze has one fewer than it
// has cells.
func (m *Maze) Passages() int {
	n := 0
	for p := range m.cells.Positions() {
		c := m.cells.Cell(p)
		if c.Has(North) {
			n++
		}
		if c.Has(West) {
			n++
		}
	}
	return n
}

// neighbor returns the position across d from p.
func neighbor(p grid.Pos, d Dir) grid.Pos {
	switch d {
	case North:
		p.Row--
	case South:
		p.Row++
	case East:
		p.Col++
	case West:
		p.Col--
	}
	return p
}
