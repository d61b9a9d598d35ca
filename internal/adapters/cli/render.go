package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"svw.info/skyscraper/internal/domain"
)

// Format selects one of the four display layouts.
type Format int

const (
	// FormatBoth frames the solved grid with its clue header.
	FormatBoth Format = iota
	// FormatSolution prints only the solved grid.
	FormatSolution
	// FormatHeader prints the clue frame around an empty grid.
	FormatHeader
	// FormatHeaderLine prints the clue set on a single line.
	FormatHeaderLine
)

func (f Format) String() string {
	switch f {
	case FormatSolution:
		return "solution"
	case FormatHeader:
		return "header"
	case FormatHeaderLine:
		return "header-line"
	default:
		return "both"
	}
}

// ParseFormat maps a flag value onto a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "solution":
		return FormatSolution, nil
	case "header":
		return FormatHeader, nil
	case "header-line":
		return FormatHeaderLine, nil
	case "both":
		return FormatBoth, nil
	default:
		return FormatBoth, fmt.Errorf("cli: unknown output format %q", s)
	}
}

var (
	headerColor   = color.New(color.FgYellow)
	solutionColor = color.New(color.FgHiBlue)
)

// Render writes the board and clue set to out in the requested layout.
// Cells are left-aligned and padded to the decimal width of the board
// size so multi-digit heights line up.
func Render(out io.Writer, b *domain.Board, cl domain.Clues, f Format) error {
	switch f {
	case FormatSolution:
		w := digitWidth(b.Size)
		for _, row := range b.Cells {
			if _, err := solutionColor.Fprintln(out, padJoin(row, w)); err != nil {
				return err
			}
		}
		return nil
	case FormatHeaderLine:
		line := make([]string, 0, 4*cl.BoardSize())
		for _, vec := range [][]int{cl.Top, cl.Bottom, cl.Left, cl.Right} {
			for _, v := range vec {
				line = append(line, strconv.Itoa(v))
			}
		}
		_, err := headerColor.Fprintln(out, strings.Join(line, " "))
		return err
	case FormatHeader:
		return renderFramed(out, b, cl, false)
	default:
		return renderFramed(out, b, cl, true)
	}
}

// renderFramed prints the clue header around the grid, optionally
// hiding the grid itself.
func renderFramed(out io.Writer, b *domain.Board, cl domain.Clues, showSolution bool) error {
	n := b.Size
	w := digitWidth(n)
	margin := strings.Repeat(" ", w+1)

	edge := func(vec []int) error {
		if _, err := io.WriteString(out, margin); err != nil {
			return err
		}
		if _, err := headerColor.Fprint(out, padJoin(vec, w)); err != nil {
			return err
		}
		_, err := io.WriteString(out, margin+"\n")
		return err
	}

	if err := edge(cl.Top); err != nil {
		return err
	}
	blank := strings.Repeat(" ", n*(w+1)-1)
	for r := 0; r < n; r++ {
		if _, err := headerColor.Fprintf(out, "%-*d ", w, cl.Left[r]); err != nil {
			return err
		}
		if showSolution {
			if _, err := solutionColor.Fprint(out, padJoin(b.Cells[r], w)); err != nil {
				return err
			}
		} else if _, err := io.WriteString(out, blank); err != nil {
			return err
		}
		if _, err := headerColor.Fprintf(out, " %-*d\n", w, cl.Right[r]); err != nil {
			return err
		}
	}
	return edge(cl.Bottom)
}

func padJoin(vals []int, w int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%-*d", w, v)
	}
	return strings.Join(parts, " ")
}

func digitWidth(n int) int {
	w := 0
	for n != 0 {
		n /= 10
		w++
	}
	return w
}
