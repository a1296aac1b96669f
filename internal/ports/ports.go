package ports

import (
	"context"
	"time"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds solutions for a grid. Solve returns up to limit solved grids
// in deterministic discovery order (limit 0 = all); an unsolvable input
// yields an empty slice, not an error. Unique reports whether exactly one
// solution exists.
type Solver interface {
	Solve(ctx context.Context, g *grid.Grid, limit int) ([]*grid.Grid, Stats, error)
	Unique(ctx context.Context, g *grid.Grid) (bool, Stats, error)
}

// Hinter suggests the next forced assignment, if any.
type Hinter interface {
	Hint(ctx context.Context, g *grid.Grid) (domain.CellCoord, uint8, bool, error)
}

// Storage persists and retrieves puzzles by identifier.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
