package usecase

import (
	"context"
	"errors"

	"github.com/shubhs27/Snap-n-Solve/internal/domain"
	"github.com/shubhs27/Snap-n-Solve/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Analyzer  ports.Analyzer
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, a ports.Analyzer, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Analyzer: a, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, string, error) {
	if u.Validator == nil {
		return false, "", errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Analyze(ctx context.Context, b *domain.Board) (domain.Report, error) {
	if u.Analyzer == nil {
		return domain.Report{}, errNotConfigured
	}
	return u.Analyzer.Analyze(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, c *domain.Capture) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, c)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Capture, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.CaptureMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
