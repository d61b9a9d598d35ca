package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/skyscraper/internal/clues"
	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/ports"
	"svw.info/skyscraper/internal/solver"
)

func TestGenerateSizesProduceUniquePuzzles(t *testing.T) {
	s := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(s)

	for _, size := range []int{1, 2, 3, 4, 5, 6} {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		p, st, err := g.Generate(ctx, size, 12345)
		cancel()
		if err != nil {
			t.Fatalf("Generate(%d) failed: %v", size, err)
		}
		if !p.Board.IsLatinSquare() {
			t.Fatalf("Generate(%d): board is not a latin square: %v", size, p.Board.Cells)
		}
		if got := clues.Compute(&p.Board); !got.Equal(p.Clues) {
			t.Fatalf("Generate(%d): stored clues differ from recomputed ones", size)
		}
		count, _, err := s.CountUpTo(context.Background(), p.Clues, 2)
		if err != nil {
			t.Fatalf("CountUpTo failed: %v", err)
		}
		if count != 1 {
			t.Fatalf("Generate(%d): clue set admits %d solutions", size, count)
		}
		t.Logf("size=%d nodes=%d dur=%v", size, st.Nodes, st.Duration)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	a, _, err := g.Generate(context.Background(), 5, 777)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, _, err := g.Generate(context.Background(), 5, 777)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !a.Board.Equal(&b.Board) {
		t.Fatalf("same seed produced different boards:\n%v\n%v", a.Board.Cells, b.Board.Cells)
	}
	if !a.Clues.Equal(b.Clues) {
		t.Fatal("same seed produced different clue sets")
	}
	if a.Seed != 777 || a.Size != 5 {
		t.Fatalf("puzzle metadata wrong: seed=%d size=%d", a.Seed, a.Size)
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	_, _, err := g.Generate(context.Background(), 0, 1)
	if !errors.Is(err, domain.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestGenerateHonorsContext(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := g.Generate(ctx, 4, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// solutionless is a Solver stub reporting zero solutions, which for a
// clue set derived from a real board means the engine is broken.
type solutionless struct{}

func (solutionless) Solve(ctx context.Context, cl domain.Clues) (*domain.Board, ports.Stats, error) {
	return nil, ports.Stats{}, domain.ErrNoSolution
}

func (solutionless) CountUpTo(ctx context.Context, cl domain.Clues, limit int) (int, ports.Stats, error) {
	return 0, ports.Stats{}, nil
}

func TestGeneratePanicsOnImpossibleZeroCount(t *testing.T) {
	g := NewUniqueGenerator(solutionless{})
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on a zero solution count")
		}
	}()
	_, _, _ = g.Generate(context.Background(), 3, 1)
}
