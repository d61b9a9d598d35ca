package ports

import (
	"context"
	"time"

	"svw.info/skyscraper/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds boards matching a clue set.
type Solver interface {
	// Solve returns the first board, in the solver's fixed search
	// order, whose computed clues equal cl.
	Solve(ctx context.Context, cl domain.Clues) (*domain.Board, Stats, error)
	// CountUpTo counts distinct complete solutions, stopping as soon
	// as limit is reached.
	CountUpTo(ctx context.Context, cl domain.Clues, limit int) (int, Stats, error)
}

// Generator produces boards whose clue sets admit exactly one solution.
type Generator interface {
	Generate(ctx context.Context, size int, seed uint64) (*domain.Puzzle, Stats, error)
}

// Validator performs search-free checks of a board against a clue set.
type Validator interface {
	Check(ctx context.Context, b *domain.Board, cl domain.Clues) (domain.CheckReport, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
