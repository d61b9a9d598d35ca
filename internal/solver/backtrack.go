package solver

import (
	"time"

	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/ports"
)

// BacktrackingSolver fills cells in row-major order, trying candidate
// values in ascending order. The search walks an explicit cell index
// instead of recursing, so its depth does not grow with board size and
// the visit order is fixed and reproducible for a given clue set.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers used by Solve/CountUpTo (in other files) ---

// sight is the range of visible-peak counts a partially filled line can
// still reach, viewed from its near side.
type sight struct {
	min, max int
}

func (s sight) contains(v int) bool { return s.min <= v && v <= s.max }

// scanSight inspects the first cells entries of a line, walking grid
// from start by step. If the tallest building has not appeared yet, at
// least one more peak is certain; further peaks are bounded both by the
// values still taller than the running maximum and by the cells left
// unfilled.
func scanSight(grid []int, n, start, step, cells int) sight {
	highest := 0
	count := 0
	for i := 0; i < cells; i++ {
		if v := grid[start+i*step]; v > highest {
			highest = v
			count++
		}
	}
	extra := n - highest
	if left := n - cells; left < extra {
		extra = left
	}
	s := sight{min: count, max: count + extra}
	if highest != n {
		s.min++
	}
	return s
}

// visibleFrom counts visible peaks over a complete line of n cells,
// walking grid from start by step.
func visibleFrom(grid []int, n, start, step int) int {
	highest := 0
	count := 0
	for i := 0; i < n; i++ {
		if v := grid[start+i*step]; v > highest {
			highest = v
			count++
		}
	}
	return count
}

// placeOK reports whether the value at cell idx is consistent with the
// filled prefix of the grid: no duplicate in its row or column prefix,
// the left/top clues still reachable, and the right/bottom clues met
// exactly once their line is complete.
func placeOK(grid []int, n int, cl domain.Clues, idx int) bool {
	x, y := idx%n, idx/n
	v := grid[idx]
	for i := 0; i < x; i++ {
		if grid[y*n+i] == v {
			return false
		}
	}
	for i := 0; i < y; i++ {
		if grid[i*n+x] == v {
			return false
		}
	}
	if !scanSight(grid, n, y*n, 1, x+1).contains(cl.Left[y]) {
		return false
	}
	if x == n-1 && visibleFrom(grid, n, y*n+n-1, -1) != cl.Right[y] {
		return false
	}
	if !scanSight(grid, n, x, n, y+1).contains(cl.Top[x]) {
		return false
	}
	if y == n-1 && visibleFrom(grid, n, x+(n-1)*n, -n) != cl.Bottom[x] {
		return false
	}
	return true
}

// newGrid returns a flat row-major grid with every cell at its first
// candidate value.
func newGrid(n int) []int {
	grid := make([]int, n*n)
	for i := range grid {
		grid[i] = 1
	}
	return grid
}

func boardFrom(grid []int, n int) *domain.Board {
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
		copy(cells[r], grid[r*n:(r+1)*n])
	}
	return &domain.Board{Size: n, Cells: cells}
}

func statsSince(start time.Time, nodes int) ports.Stats {
	return ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
