package solver

import (
	"context"
	"time"

	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/ports"
)

// CountUpTo counts distinct complete solutions for cl, stopping as soon
// as limit solutions are found. The generator calls it with limit 2 to
// decide whether a clue set pins down exactly one board.
func (s *BacktrackingSolver) CountUpTo(ctx context.Context, cl domain.Clues, limit int) (int, ports.Stats, error) {
	start := time.Now()
	if err := cl.Validate(); err != nil {
		return 0, ports.Stats{}, err
	}
	if limit < 1 {
		return 0, ports.Stats{}, nil
	}
	n := cl.BoardSize()
	grid := newGrid(n)
	idx := 0
	nodes := 0
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return count, statsSince(start, nodes), err
		}
		nodes++
		if placeOK(grid, n, cl, idx) {
			idx++
			if idx < n*n {
				continue
			}
			count++
			if count >= limit {
				return count, statsSince(start, nodes), nil
			}
			// Resume with the next candidate in the last cell.
			idx--
		}
		grid[idx]++
		for grid[idx] > n {
			grid[idx] = 1
			if idx == 0 {
				return count, statsSince(start, nodes), nil
			}
			idx--
			grid[idx]++
		}
	}
}
