package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/doku/internal/domain"
	"svw.info/doku/internal/grid"
	"svw.info/doku/internal/ports"
)

// Service wires the solver, hinter and puzzle storage behind one API.
type Service struct {
	Solver  ports.Solver
	Hinter  ports.Hinter
	Storage ports.Storage
}

func NewService(s ports.Solver, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Solver: s, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g *grid.Grid, limit int) ([]*grid.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g, limit)
}

func (u *Service) Unique(ctx context.Context, g *grid.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *grid.Grid) (domain.CellCoord, uint8, bool, error) {
	if u.Hinter == nil {
		return domain.CellCoord{}, 0, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// SolveByID loads a stored puzzle and solves it. Stored givens are re-parsed
// and re-validated here; the store carries no uniqueness guarantee.
func (u *Service) SolveByID(ctx context.Context, id string, limit int) (*domain.Puzzle, []*grid.Grid, ports.Stats, error) {
	if u.Solver == nil || u.Storage == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	p, err := u.Storage.Load(ctx, id)
	if err != nil {
		return nil, nil, ports.Stats{}, err
	}
	g, err := grid.Parse(p.Givens)
	if err != nil {
		return nil, nil, ports.Stats{}, fmt.Errorf("stored puzzle %s: %w", id, err)
	}
	sols, st, err := u.Solver.Solve(ctx, g, limit)
	return p, sols, st, err
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
