package solver

import (
	"context"
	"time"

	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/ports"
)

// Solve returns the first board whose computed clues equal cl, or
// domain.ErrNoSolution once the search space is exhausted.
func (s *BacktrackingSolver) Solve(ctx context.Context, cl domain.Clues) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := cl.Validate(); err != nil {
		return nil, ports.Stats{}, err
	}
	n := cl.BoardSize()
	grid := newGrid(n)
	idx := 0
	nodes := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, statsSince(start, nodes), err
		}
		nodes++
		if placeOK(grid, n, cl, idx) {
			idx++
			if idx == n*n {
				return boardFrom(grid, n), statsSince(start, nodes), nil
			}
			continue
		}
		grid[idx]++
		for grid[idx] > n {
			// Out of candidates here; backtrack.
			grid[idx] = 1
			if idx == 0 {
				return nil, statsSince(start, nodes), domain.ErrNoSolution
			}
			idx--
			grid[idx]++
		}
	}
}
