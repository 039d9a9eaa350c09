package maze

import (
	"bufio"
	"io"

	"github.com/pavanmanishd/krc/internal/grid"
)

// Render draws the maze with three text lines per row: north passages,
// then the cell with its west and east passages, then south passages.
func (m *Maze) Render(w io.Writer) error {
	return m.RenderPath(w, nil)
}

// RenderPath draws the maze like Render and marks the cells of path with
// '*' instead of '+'.
func (m *Maze) RenderPath(w io.Writer, path []grid.Pos) error {
	onPath := make(map[grid.Pos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	bw := bufio.NewWriter(w)
	for row := range m.Height() {
		for col := range m.Width() {
			bw.WriteString(vertical(m.At(row, col).Has(North)))
		}
		bw.WriteByte('\n')

		for col := range m.Width() {
			c := m.At(row, col)
			bw.WriteByte(horizontal(c.Has(West)))
			if onPath[grid.Pos{Row: row, Col: col}] {
				bw.WriteByte('*')
			} else {
				bw.WriteByte('+')
			}
			bw.WriteByte(horizontal(c.Has(East)))
		}
		bw.WriteByte('\n')

		for col := range m.Width() {
			bw.WriteString(vertical(m.At(row, col).Has(South)))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func vertical(open bool) string {
	if open {
		return " | "
	}
	return "   "
}

func horizontal(open bool) byte {
	if open {
		return '-'
	}
	return ' '
}
