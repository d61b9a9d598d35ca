package usecase

import (
	"context"
	"errors"

	"svw.info/skyscraper/internal/clues"
	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/ports"
)

// Service is the application facade over the core components. Missing
// dependencies surface as errors rather than nil dereferences so the
// adapters can report misconfiguration cleanly.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, cl domain.Clues) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, cl)
}

func (u *Service) Generate(ctx context.Context, size int, seed uint64) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, size, seed)
}

func (u *Service) Check(ctx context.Context, b *domain.Board, cl domain.Clues) (domain.CheckReport, error) {
	if u.Validator == nil {
		return domain.CheckReport{}, errNotConfigured
	}
	return u.Validator.Check(ctx, b, cl)
}

// ComputeClues derives the clue set of a complete board. Pure, so it
// needs no injected dependency.
func (u *Service) ComputeClues(b *domain.Board) domain.Clues {
	return clues.Compute(b)
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
