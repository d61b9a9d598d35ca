package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/skyscraper/internal/domain"
)

// Clue-line format: 4·N space-separated integers in the fixed order
// top[1..N] bottom[1..N] left[1..N] right[1..N].

var (
	// ErrClueCount indicates the number of clue values is zero or not a
	// multiple of 4.
	ErrClueCount = errors.New("cli: clue count must be a positive multiple of 4")
	// ErrClueRange indicates a clue of zero or above the board size.
	ErrClueRange = errors.New("cli: clue values must be between 1 and the board size")
	// ErrBadInteger indicates a token that is not a positive integer.
	ErrBadInteger = errors.New("cli: invalid integer")
)

// ParseClueLine parses the single-line clue format into a clue set.
func ParseClueLine(s string) (domain.Clues, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields)%4 != 0 {
		return domain.Clues{}, ErrClueCount
	}
	values := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return domain.Clues{}, fmt.Errorf("%w: %q", ErrBadInteger, f)
		}
		values[i] = v
	}
	n := len(values) / 4
	for _, v := range values {
		if v < 1 || v > n {
			return domain.Clues{}, fmt.Errorf("%w: %d (size %d)", ErrClueRange, v, n)
		}
	}
	return domain.Clues{
		Top:    values[0:n],
		Bottom: values[n : 2*n],
		Left:   values[2*n : 3*n],
		Right:  values[3*n : 4*n],
	}, nil
}

// ParseBoard reads n lines of n space-separated integers in [1, n].
// Blank lines are skipped, matching what a shell pipeline tends to
// produce around the grid.
func ParseBoard(r io.Reader, n int) (*domain.Board, error) {
	b, err := domain.NewBoard(n)
	if err != nil {
		return nil, err
	}
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if row >= n {
			return nil, fmt.Errorf("cli: expected %d rows, got more", n)
		}
		fields := strings.Fields(line)
		if len(fields) != n {
			return nil, fmt.Errorf("cli: row %d: expected %d columns, got %d", row+1, n, len(fields))
		}
		for c, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadInteger, f)
			}
			if v < 1 || v > n {
				return nil, fmt.Errorf("cli: row %d: value %d out of range 1..%d", row+1, v, n)
			}
			b.Cells[row][c] = v
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != n {
		return nil, fmt.Errorf("cli: expected %d rows, got %d", n, row)
	}
	return b, nil
}
