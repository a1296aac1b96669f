package grid

import "fmt"

// Parse builds a grid from a flat textual description. Digits 1–9 are clues,
// newlines are ignored, and any other character marks an empty cell. The
// description must yield exactly 81 cells.
func Parse(src string) (*Grid, error) {
	values := make([]uint8, 0, Cells)
	for _, ch := range src {
		switch {
		case ch == '\n' || ch == '\r':
			continue
		case ch >= '1' && ch <= '9':
			values = append(values, uint8(ch-'0'))
		default:
			values = append(values, 0)
		}
	}
	return New(values)
}

// Flat returns the 81-character row-major form: digits for values, '.' for
// empty cells. Parse(g.Flat()) reconstructs the same values, with every
// value treated as a clue.
func (g *Grid) Flat() string {
	buf := make([]byte, Cells)
	for i, v := range g.values {
		if v == 0 {
			buf[i] = '.'
		} else {
			buf[i] = '0' + v
		}
	}
	return string(buf)
}

// MustParse is Parse for tests and fixtures; it panics on malformed input.
func MustParse(src string) *Grid {
	g, err := Parse(src)
	if err != nil {
		panic(fmt.Sprintf("grid: %v", err))
	}
	return g
}
