package generator

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"svw.info/skyscraper/internal/clues"
	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/ports"
)

// Generate produces a puzzle whose clue set has exactly one satisfying
// board. The rng is seeded once from seed and never reseeded, so the
// whole retry sequence, and therefore the result, is a pure function of
// (size, seed).
func (g *UniqueGenerator) Generate(ctx context.Context, size int, seed uint64) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewPCG(seed, seed))
	retries := g.MaxAttempts
	if retries <= 0 {
		retries = defaultMaxAttempts
	}
	nodes := 0
	for attempt := 0; attempt < retries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, statsSince(start, nodes), err
		}
		board, err := domain.RandomLatinSquare(size, rng)
		if err != nil {
			return nil, statsSince(start, nodes), err
		}
		cl := clues.Compute(board)
		count, st, err := g.Solver.CountUpTo(ctx, cl, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, statsSince(start, nodes), err
		}
		if count == 0 {
			// The candidate board itself satisfies its own clues, so a
			// zero count means the solver or clue computation is broken.
			panic(fmt.Sprintf("generator: clue set of a generated %d×%d board has no solution", size, size))
		}
		if count > 1 {
			continue
		}
		p := &domain.Puzzle{
			ID:        uuid.NewString(),
			Seed:      seed,
			Size:      size,
			Board:     *board,
			Clues:     cl,
			CreatedAt: time.Now().UnixNano(),
		}
		return p, statsSince(start, nodes), nil
	}
	return nil, statsSince(start, nodes), fmt.Errorf("%w after %d attempts", domain.ErrExhausted, retries)
}

func statsSince(start time.Time, nodes int) ports.Stats {
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
