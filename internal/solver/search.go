package solver

import (
	"context"
	"errors"
	"math/bits"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
)

// session is the state of one solve call: the private working grid, collected
// solutions, and the optional step channel.
type session struct {
	ctx       context.Context
	g         *grid.Grid
	limit     int
	steps     chan<- Step
	solutions []*grid.Grid
	nodes     int
}

// assign sets a cell on the working grid and emits the step.
func (s *session) assign(row, col int, v uint8) error {
	if err := s.g.Set(row, col, v); err != nil {
		return err
	}
	return s.emit(row, col, v)
}

// clear unsets a cell on the working grid and emits the step.
func (s *session) clear(row, col int) error {
	if err := s.g.Unset(row, col); err != nil {
		return err
	}
	return s.emit(row, col, 0)
}

// emit blocks until the consumer receives the step or the context ends.
// With no step channel attached it is a no-op, so observation never changes
// the search outcome.
func (s *session) emit(row, col int, v uint8) error {
	if s.steps == nil {
		return nil
	}
	select {
	case s.steps <- Step{Cell: domain.CellCoord{Row: row, Col: col}, Value: v}:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

// propagate applies naked singles to a fixed point. It returns the assigned
// cells (for undo on backtrack) and whether the branch is dead because some
// unresolved cell has no candidates left.
func (s *session) propagate() (trail []domain.CellCoord, dead bool, err error) {
	for {
		progress := false
		for i := 0; i < grid.Cells; i++ {
			row, col := i/grid.Size, i%grid.Size
			if s.g.Value(row, col) != 0 {
				continue
			}
			mask := s.g.Candidates(row, col)
			if mask == 0 {
				return trail, true, nil
			}
			if bits.OnesCount16(mask) == 1 {
				v := uint8(bits.TrailingZeros16(mask))
				if err := s.assign(row, col, v); err != nil {
					return trail, false, err
				}
				trail = append(trail, domain.CellCoord{Row: row, Col: col})
				progress = true
			}
		}
		if !progress {
			return trail, false, nil
		}
	}
}

// undo reverses propagation assignments in reverse order.
func (s *session) undo(trail []domain.CellCoord) error {
	for i := len(trail) - 1; i >= 0; i-- {
		if err := s.clear(trail[i].Row, trail[i].Col); err != nil {
			return err
		}
	}
	return nil
}

// search explores one node: propagate, then branch on the most constrained
// cell. It returns true when the solution limit has been reached and the
// search should stop unwinding without further exploration.
func (s *session) search() (bool, error) {
	if err := s.ctx.Err(); err != nil {
		return true, err
	}
	s.nodes++

	trail, dead, err := s.propagate()
	if err != nil {
		return true, err
	}
	if dead {
		return false, s.undo(trail)
	}
	if s.g.IsComplete() {
		s.solutions = append(s.solutions, s.g.Clone())
		if s.limit > 0 && len(s.solutions) >= s.limit {
			return true, nil
		}
		return false, s.undo(trail)
	}

	row, col := s.pickCell()
	for _, v := range s.g.CandidateValues(row, col) {
		if err := s.assign(row, col, v); err != nil {
			if errors.Is(err, grid.ErrConstraintViolation) {
				// Speculative assignment rejected: try the next candidate.
				continue
			}
			return true, err
		}
		stop, err := s.search()
		if stop || err != nil {
			return true, err
		}
		if err := s.clear(row, col); err != nil {
			return true, err
		}
	}
	return false, s.undo(trail)
}

// pickCell returns the unresolved cell with the fewest candidates, preferring
// the lowest row-major index on ties. Only called when the grid is incomplete
// and propagation has settled, so every unresolved cell has ≥2 candidates.
func (s *session) pickCell() (int, int) {
	best, bestCount := 0, 10
	for i := 0; i < grid.Cells; i++ {
		row, col := i/grid.Size, i%grid.Size
		if s.g.Value(row, col) != 0 {
			continue
		}
		n := s.g.CandidateCount(row, col)
		if n < bestCount {
			best, bestCount = i, n
			if n == 2 {
				break
			}
		}
	}
	return best / grid.Size, best % grid.Size
}
