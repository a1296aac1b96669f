package hint

import (
	"context"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first unresolved cell (row-major) whose candidates have
// narrowed to a single value.
func (h *Singles) Hint(ctx context.Context, g *grid.Grid) (domain.CellCoord, uint8, bool, error) {
	for r := 0; r < grid.Size; r++ {
		for c := 0; c < grid.Size; c++ {
			if g.Value(r, c) != 0 {
				continue
			}
			if vals := g.CandidateValues(r, c); len(vals) == 1 {
				return domain.CellCoord{Row: r, Col: c}, vals[0], true, nil
			}
		}
	}
	return domain.CellCoord{}, 0, false, nil
}
