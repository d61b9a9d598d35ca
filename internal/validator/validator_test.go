package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/skyscraper/internal/clues"
	"svw.info/skyscraper/internal/domain"
	"svw.info/skyscraper/internal/validator"
)

func referenceBoard() *domain.Board {
	return &domain.Board{Size: 4, Cells: [][]int{
		{4, 1, 3, 2},
		{3, 2, 4, 1},
		{1, 3, 2, 4},
		{2, 4, 1, 3},
	}}
}

func TestCheckAcceptsMatchingBoard(t *testing.T) {
	b := referenceBoard()
	rep, err := validator.New().Check(context.Background(), b, clues.Compute(b))
	require.NoError(t, err)
	require.True(t, rep.OK(), "report: %+v", rep)
}

func TestCheckDimensionMismatch(t *testing.T) {
	v := validator.New()
	b := referenceBoard()
	cl := domain.Clues{Top: []int{1, 2}, Bottom: []int{1, 2}, Left: []int{1, 2}, Right: []int{1, 2}}
	rep, err := v.Check(context.Background(), b, cl)
	require.NoError(t, err)
	require.Equal(t, domain.CheckDimensionMismatch, rep.Reason)

	rep, err = v.Check(context.Background(), nil, clues.Compute(b))
	require.NoError(t, err)
	require.Equal(t, domain.CheckDimensionMismatch, rep.Reason)
}

func TestCheckRejectsDuplicates(t *testing.T) {
	b := referenceBoard()
	cl := clues.Compute(b)
	// A duplicate breaks the latin invariant regardless of the clues.
	b.Cells[0][0] = 1
	rep, err := validator.New().Check(context.Background(), b, cl)
	require.NoError(t, err)
	require.Equal(t, domain.CheckNotLatinSquare, rep.Reason)
	require.NotEmpty(t, rep.Conflicts)
}

func TestCheckRejectsSingleClueChange(t *testing.T) {
	b := referenceBoard()
	base := clues.Compute(b)
	v := validator.New()

	perturb := []struct {
		name string
		side domain.Side
		mut  func(*domain.Clues)
	}{
		{"top", domain.SideTop, func(c *domain.Clues) { c.Top[2]++ }},
		{"bottom", domain.SideBottom, func(c *domain.Clues) { c.Bottom[0]-- }},
		{"left", domain.SideLeft, func(c *domain.Clues) { c.Left[3]++ }},
		{"right", domain.SideRight, func(c *domain.Clues) { c.Right[1]++ }},
	}
	for _, tc := range perturb {
		t.Run(tc.name, func(t *testing.T) {
			cl := domain.Clues{
				Top:    append([]int(nil), base.Top...),
				Bottom: append([]int(nil), base.Bottom...),
				Left:   append([]int(nil), base.Left...),
				Right:  append([]int(nil), base.Right...),
			}
			tc.mut(&cl)
			rep, err := v.Check(context.Background(), b, cl)
			require.NoError(t, err)
			require.Equal(t, domain.CheckClueMismatch, rep.Reason)
			require.Equal(t, tc.side, rep.Side)
			require.NotEqual(t, rep.Expected, rep.Got)
		})
	}
}

func TestCheckRejectsOutOfRangeValues(t *testing.T) {
	b := &domain.Board{Size: 2, Cells: [][]int{{1, 2}, {2, 3}}}
	cl := domain.Clues{Top: []int{2, 1}, Bottom: []int{1, 2}, Left: []int{2, 1}, Right: []int{1, 2}}
	rep, err := validator.New().Check(context.Background(), b, cl)
	require.NoError(t, err)
	require.Equal(t, domain.CheckNotLatinSquare, rep.Reason)
}
