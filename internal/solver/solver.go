// Package solver implements constraint propagation plus backtracking search
// over a grid.
//
// Every search node first applies naked-single elimination to a fixed point:
// any unresolved cell with exactly one candidate is assigned immediately, and
// a cell with zero candidates fails the branch. If cells remain, the node
// branches on the unresolved cell with the fewest candidates (ties broken by
// lowest row-major index) trying candidates in ascending order, so solution
// discovery order is fully deterministic.
//
// The solver works on a private clone of the caller's grid and returns
// independent snapshots; clue cells are never reassigned.
package solver

import (
	"context"
	"time"

	"svw.info/doku/internal/grid"
	"svw.info/doku/internal/ports"
)

// Backtracker is the propagation + backtracking solver.
type Backtracker struct{}

func NewBacktracker() *Backtracker { return &Backtracker{} }

// Solve returns up to limit solved grids in discovery order (limit 0 = all).
// An unsolvable grid yields an empty slice and no error; the only error is
// context cancellation.
func (s *Backtracker) Solve(ctx context.Context, g *grid.Grid, limit int) ([]*grid.Grid, ports.Stats, error) {
	start := time.Now()
	sess := &session{ctx: ctx, g: g.Clone(), limit: normalizeLimit(limit)}
	_, err := sess.search()
	return sess.solutions, ports.Stats{Nodes: sess.nodes, Duration: time.Since(start)}, err
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *Backtracker) Unique(ctx context.Context, g *grid.Grid) (bool, ports.Stats, error) {
	sols, st, err := s.Solve(ctx, g, 2)
	if err != nil {
		return false, st, err
	}
	return len(sols) == 1, st, nil
}

func normalizeLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}
