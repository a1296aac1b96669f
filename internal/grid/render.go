package grid

import "strings"

const border = "+-------+-------+-------+\n"

// RenderedLines is the line count of Render output, used by terminal
// animators to move the cursor back over a drawn frame.
const RenderedLines = 13

// Render returns the fixed ASCII-box layout with 3×3 block separators and '.'
// for empty cells:
//
//	+-------+-------+-------+
//	| . . . | . . . | . 9 . |
//	| . 9 . | 7 . . | 2 1 . |
//	...
//	+-------+-------+-------+
//
// Pure function of the current state.
func (g *Grid) Render() string {
	return g.RenderWith(func(r, c int, v uint8) string {
		if v == 0 {
			return ". "
		}
		return string([]byte{'0' + v, ' '})
	})
}

// RenderWith renders the box layout with a custom cell formatter. format
// receives each cell's position and value (0 = empty) and returns the cell's
// text, normally two display columns wide — possibly with ANSI codes around
// it. The borders and separators stay in one place here; renderers such as a
// terminal animator only decide how a single cell looks.
func (g *Grid) RenderWith(format func(r, c int, v uint8) string) string {
	var b strings.Builder
	b.Grow(RenderedLines * 26)
	for r := 0; r < Size; r++ {
		if r%3 == 0 {
			b.WriteString(border)
		}
		b.WriteString("| ")
		for c := 0; c < Size; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			b.WriteString(format(r, c, g.values[cellIndex(r, c)]))
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// String implements fmt.Stringer using Render.
func (g *Grid) String() string { return g.Render() }
