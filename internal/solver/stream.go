package solver

import (
	"context"
	"time"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
	"svw.info/doku/internal/ports"
)

// Step is one grid mutation observed during solving. Value 0 means the cell
// was cleared while backtracking.
type Step struct {
	Cell  domain.CellCoord
	Value uint8
}

// Run is an in-flight streamed solve. The consumer drains Steps at its own
// pace; each send blocks the search until received, so a slow consumer slows
// solving but never changes its outcome. Cancelling the context abandons the
// search, closes the channel, and Wait returns the cancellation error along
// with any solutions completed before it.
type Run struct {
	steps chan Step
	done  chan struct{}

	solutions []*grid.Grid
	stats     ports.Stats
	err       error
}

// Stream starts a solve whose every set/unset is delivered on Steps. The
// search runs on its own goroutine; the caller must drain Steps (or cancel
// ctx) and then call Wait for the result.
func (s *Backtracker) Stream(ctx context.Context, g *grid.Grid, limit int) *Run {
	r := &Run{
		steps: make(chan Step),
		done:  make(chan struct{}),
	}
	go func() {
		defer close(r.done)
		defer close(r.steps)
		start := time.Now()
		sess := &session{ctx: ctx, g: g.Clone(), limit: normalizeLimit(limit), steps: r.steps}
		_, err := sess.search()
		r.solutions = sess.solutions
		r.stats = ports.Stats{Nodes: sess.nodes, Duration: time.Since(start)}
		r.err = err
	}()
	return r
}

// Steps returns the ordered, finite step sequence. It is closed when the
// search finishes or is abandoned.
func (r *Run) Steps() <-chan Step { return r.steps }

// Wait blocks until the search goroutine has finished and returns the
// solutions in discovery order.
func (r *Run) Wait() ([]*grid.Grid, ports.Stats, error) {
	<-r.done
	return r.solutions, r.stats, r.err
}
