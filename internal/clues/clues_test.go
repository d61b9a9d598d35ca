package clues_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/skyscraper/internal/clues"
	"svw.info/skyscraper/internal/domain"
)

func TestVisible(t *testing.T) {
	cases := []struct {
		name string
		line []int
		want int
	}{
		{"ascending", []int{1, 2, 3, 4}, 4},
		{"descending", []int{4, 3, 2, 1}, 1},
		{"two peaks from the left", []int{2, 1, 4, 3}, 2},
		{"two peaks from the right", []int{3, 4, 1, 2}, 2},
		{"single cell", []int{1}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, clues.Visible(tc.line))
		})
	}
}

func TestComputeSymmetricBoard(t *testing.T) {
	b := &domain.Board{Size: 4, Cells: [][]int{
		{2, 1, 4, 3},
		{1, 4, 3, 2},
		{4, 3, 2, 1},
		{3, 2, 1, 4},
	}}
	cl := clues.Compute(b)
	require.Equal(t, []int{2, 2, 1, 2}, cl.Top)
	require.Equal(t, []int{2, 3, 4, 1}, cl.Bottom)
	require.Equal(t, []int{2, 2, 1, 2}, cl.Left)
	require.Equal(t, []int{2, 3, 4, 1}, cl.Right)
}

func TestComputeReferenceBoard(t *testing.T) {
	b := &domain.Board{Size: 4, Cells: [][]int{
		{4, 1, 3, 2},
		{3, 2, 4, 1},
		{1, 3, 2, 4},
		{2, 4, 1, 3},
	}}
	cl := clues.Compute(b)
	want := domain.Clues{
		Top:    []int{1, 4, 2, 2},
		Bottom: []int{3, 1, 3, 2},
		Left:   []int{1, 2, 3, 2},
		Right:  []int{3, 2, 1, 2},
	}
	require.True(t, cl.Equal(want), "got %+v", cl)
}

func TestComputeSingleCell(t *testing.T) {
	b := &domain.Board{Size: 1, Cells: [][]int{{1}}}
	cl := clues.Compute(b)
	require.Equal(t, domain.Clues{Top: []int{1}, Bottom: []int{1}, Left: []int{1}, Right: []int{1}}, cl)
}
