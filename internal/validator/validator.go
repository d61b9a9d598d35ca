package validator

import (
	"context"

	"svw.info/skyscraper/internal/clues"
	"svw.info/skyscraper/internal/domain"
)

// FastValidator checks a supplied board against a clue set without any
// search: dimensions first, then the Latin-square invariant, then
// element-wise clue equality.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Check(ctx context.Context, b *domain.Board, cl domain.Clues) (domain.CheckReport, error) {
	n := cl.BoardSize()
	if n < 1 || b == nil || b.Size != n || len(b.Cells) != n {
		return domain.CheckReport{Reason: domain.CheckDimensionMismatch}, nil
	}
	for r := 0; r < n; r++ {
		if len(b.Cells[r]) != n {
			return domain.CheckReport{Reason: domain.CheckDimensionMismatch}, nil
		}
	}
	if conf := duplicates(b); len(conf) > 0 {
		return domain.CheckReport{Reason: domain.CheckNotLatinSquare, Conflicts: conf}, nil
	}
	if !b.IsLatinSquare() {
		// Values out of range with no duplicates.
		return domain.CheckReport{Reason: domain.CheckNotLatinSquare}, nil
	}
	got := clues.Compute(b)
	sides := []struct {
		side      domain.Side
		want, has []int
	}{
		{domain.SideTop, cl.Top, got.Top},
		{domain.SideBottom, cl.Bottom, got.Bottom},
		{domain.SideLeft, cl.Left, got.Left},
		{domain.SideRight, cl.Right, got.Right},
	}
	for _, s := range sides {
		for i := 0; i < n; i++ {
			if s.want[i] != s.has[i] {
				return domain.CheckReport{
					Reason:   domain.CheckClueMismatch,
					Side:     s.side,
					Index:    i,
					Expected: s.want[i],
					Got:      s.has[i],
				}, nil
			}
		}
	}
	return domain.CheckReport{Reason: domain.CheckOK}, nil
}

// duplicates collects cells that repeat a value already seen in their
// row or column. Out-of-range values are ignored here; IsLatinSquare
// catches them.
func duplicates(b *domain.Board) []domain.CellCoord {
	n := b.Size
	conf := make([]domain.CellCoord, 0, 4)
	for r := 0; r < n; r++ {
		m := 0
		for c := 0; c < n; c++ {
			val := b.Cells[r][c]
			if val < 1 || val > n {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	for c := 0; c < n; c++ {
		m := 0
		for r := 0; r < n; r++ {
			val := b.Cells[r][c]
			if val < 1 || val > n {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	return conf
}
