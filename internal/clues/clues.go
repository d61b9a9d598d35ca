// Package clues derives edge-visibility clue vectors from a complete
// board. A cell is visible from a side iff its height strictly exceeds
// every height scanned before it on that line.
package clues

import "svw.info/skyscraper/internal/domain"

// Visible counts the visible cells of line scanned front to back.
func Visible(line []int) int {
	max := 0
	count := 0
	for _, v := range line {
		if v > max {
			max = v
			count++
		}
	}
	return count
}

// Compute derives the four clue vectors of a complete board. It is pure
// and total for any board whose cells are filled.
func Compute(b *domain.Board) domain.Clues {
	n := b.Size
	cl := domain.Clues{
		Top:    make([]int, n),
		Bottom: make([]int, n),
		Left:   make([]int, n),
		Right:  make([]int, n),
	}
	line := make([]int, n)
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			line[r] = b.Cells[r][c]
		}
		cl.Top[c] = Visible(line)
		reverse(line)
		cl.Bottom[c] = Visible(line)
	}
	for r := 0; r < n; r++ {
		copy(line, b.Cells[r])
		cl.Left[r] = Visible(line)
		reverse(line)
		cl.Right[r] = Visible(line)
	}
	return cl
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
