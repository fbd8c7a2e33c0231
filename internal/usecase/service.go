package usecase

import (
	"context"
	"errors"

	"svw.info/sudokusolve/internal/domain"
	"svw.info/sudokusolve/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Loader    ports.Loader
}

func NewService(s ports.Solver, v ports.Validator, l ports.Loader) *Service {
	return &Service{Solver: s, Validator: v, Loader: l}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Load(ctx context.Context, path string) (*domain.Board, error) {
	if u.Loader == nil {
		return nil, errNotConfigured
	}
	return u.Loader.Load(ctx, path)
}
