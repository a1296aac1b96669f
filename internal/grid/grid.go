// Package grid implements the 9×9 Sudoku board: cell storage, fixed-clue
// tracking, and incremental candidate bookkeeping via per-unit bitmasks.
package grid

import (
	"fmt"
	"math/bits"
)

const (
	// Size is the board edge length.
	Size = 9
	// Cells is the total cell count.
	Cells = Size * Size
)

// fullMask has bits 1..9 set: the candidate mask of an unconstrained cell.
const fullMask uint16 = 0x3fe

// Grid holds the board state. Candidates are derived from per-row, per-column
// and per-box masks of used values, updated on every Set/Unset.
type Grid struct {
	values [Cells]uint8
	fixed  [Cells]bool
	rows   [Size]uint16
	cols   [Size]uint16
	boxes  [Size]uint16
	empty  int
}

func cellIndex(r, c int) int { return r*Size + c }

// BoxOf returns the 3×3 box index of a cell.
func BoxOf(r, c int) int { return (r/3)*3 + c/3 }

func checkCoord(r, c int) error {
	if r < 0 || r >= Size || c < 0 || c >= Size {
		return fmt.Errorf("%w: coordinate (%d,%d) out of range", ErrInvalidInput, r, c)
	}
	return nil
}

// New builds a grid from 81 row-major values, 0 meaning empty. Every non-zero
// entry becomes a fixed clue. Wrong length, digits outside 1..9, and clue sets
// that already duplicate a value within a unit are rejected with ErrInvalidInput.
func New(values []uint8) (*Grid, error) {
	if len(values) != Cells {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidInput, len(values), Cells)
	}
	g := &Grid{empty: Cells}
	for i, v := range values {
		if v == 0 {
			continue
		}
		if v > 9 {
			return nil, fmt.Errorf("%w: cell %d holds %d, clues must be 1..9", ErrInvalidInput, i, v)
		}
		r, c := i/Size, i%Size
		if err := g.place(r, c, v); err != nil {
			return nil, fmt.Errorf("%w: clue %d at row %d col %d conflicts with another clue", ErrInvalidInput, v, r, c)
		}
		g.fixed[i] = true
	}
	return g, nil
}

// place assigns without fixed-cell or occupancy checks; callers guarantee the
// cell is empty.
func (g *Grid) place(r, c int, v uint8) error {
	bit := uint16(1) << v
	b := BoxOf(r, c)
	if g.rows[r]&bit != 0 || g.cols[c]&bit != 0 || g.boxes[b]&bit != 0 {
		return fmt.Errorf("%w: %d already used in row %d, col %d or its box", ErrConstraintViolation, v, r, c)
	}
	g.values[cellIndex(r, c)] = v
	g.rows[r] |= bit
	g.cols[c] |= bit
	g.boxes[b] |= bit
	g.empty--
	return nil
}

// Set assigns v to an empty cell. Re-assigning the value a cell already holds
// is a no-op; any other write to an occupied or fixed cell, or a value already
// used in the cell's row/col/box, fails with ErrConstraintViolation.
func (g *Grid) Set(r, c int, v uint8) error {
	if err := checkCoord(r, c); err != nil {
		return err
	}
	if v < 1 || v > 9 {
		return fmt.Errorf("%w: value %d out of range", ErrInvalidInput, v)
	}
	i := cellIndex(r, c)
	if cur := g.values[i]; cur != 0 {
		if cur == v {
			return nil
		}
		if g.fixed[i] {
			return fmt.Errorf("%w: row %d col %d is a fixed clue holding %d", ErrConstraintViolation, r, c, cur)
		}
		return fmt.Errorf("%w: row %d col %d already holds %d", ErrConstraintViolation, r, c, cur)
	}
	return g.place(r, c, v)
}

// Unset clears a non-fixed cell back to unresolved. Clearing an already-empty
// cell is a no-op; clearing a clue fails with ErrFixedCell.
func (g *Grid) Unset(r, c int) error {
	if err := checkCoord(r, c); err != nil {
		return err
	}
	i := cellIndex(r, c)
	if g.fixed[i] {
		return fmt.Errorf("%w: row %d col %d", ErrFixedCell, r, c)
	}
	v := g.values[i]
	if v == 0 {
		return nil
	}
	bit := uint16(1) << v
	g.values[i] = 0
	g.rows[r] &^= bit
	g.cols[c] &^= bit
	g.boxes[BoxOf(r, c)] &^= bit
	g.empty++
	return nil
}

// Value returns the cell's value, 0 when unresolved.
func (g *Grid) Value(r, c int) uint8 { return g.values[cellIndex(r, c)] }

// Fixed reports whether the cell is an original clue.
func (g *Grid) Fixed(r, c int) bool { return g.fixed[cellIndex(r, c)] }

// Candidates returns the bitmask of values still placeable in an empty cell
// (bit v set for candidate v). Occupied cells have no candidates.
func (g *Grid) Candidates(r, c int) uint16 {
	i := cellIndex(r, c)
	if g.values[i] != 0 {
		return 0
	}
	return ^(g.rows[r] | g.cols[c] | g.boxes[BoxOf(r, c)]) & fullMask
}

// CandidateCount returns the number of candidates of a cell.
func (g *Grid) CandidateCount(r, c int) int {
	return bits.OnesCount16(g.Candidates(r, c))
}

// CandidateValues returns the candidates of a cell in ascending order.
func (g *Grid) CandidateValues(r, c int) []uint8 {
	mask := g.Candidates(r, c)
	if mask == 0 {
		return nil
	}
	vals := make([]uint8, 0, bits.OnesCount16(mask))
	for v := uint8(1); v <= 9; v++ {
		if mask&(1<<v) != 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

// EmptyCount returns the number of unresolved cells.
func (g *Grid) EmptyCount() int { return g.empty }

// IsComplete reports whether every cell has a value.
func (g *Grid) IsComplete() bool { return g.empty == 0 }

// IsValid reports whether no unit contains a duplicate value. It rescans all
// 27 units instead of trusting the incremental masks so it can serve as an
// independent check.
func (g *Grid) IsValid() bool {
	for r := 0; r < Size; r++ {
		m := uint16(0)
		for c := 0; c < Size; c++ {
			if !accumulate(&m, g.values[cellIndex(r, c)]) {
				return false
			}
		}
	}
	for c := 0; c < Size; c++ {
		m := uint16(0)
		for r := 0; r < Size; r++ {
			if !accumulate(&m, g.values[cellIndex(r, c)]) {
				return false
			}
		}
	}
	for b := 0; b < Size; b++ {
		m := uint16(0)
		br, bc := (b/3)*3, (b%3)*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				if !accumulate(&m, g.values[cellIndex(br+dr, bc+dc)]) {
					return false
				}
			}
		}
	}
	return true
}

func accumulate(m *uint16, v uint8) bool {
	if v == 0 {
		return true
	}
	bit := uint16(1) << v
	if *m&bit != 0 {
		return false
	}
	*m |= bit
	return true
}

// Clone returns an independent deep copy.
func (g *Grid) Clone() *Grid {
	g2 := *g
	return &g2
}

// Equal reports whether two grids hold the same values and clue flags.
func (g *Grid) Equal(o *Grid) bool {
	return g.values == o.values && g.fixed == o.fixed
}
