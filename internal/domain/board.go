package domain

import "math/rand/v2"

// NewBoard builds an n×n board of unset cells.
func NewBoard(n int) (*Board, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
	}
	return &Board{Size: n, Cells: cells}, nil
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([][]int, b.Size)
	for r := range cells {
		cells[r] = make([]int, b.Size)
		copy(cells[r], b.Cells[r])
	}
	return &Board{Size: b.Size, Cells: cells}
}

// Equal reports whether two boards have identical size and cells.
func (b *Board) Equal(o *Board) bool {
	if b.Size != o.Size {
		return false
	}
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.Cells[r][c] != o.Cells[r][c] {
				return false
			}
		}
	}
	return true
}

// IsLatinSquare reports whether every row and every column holds each
// value in 1..N exactly once.
func (b *Board) IsLatinSquare() bool {
	n := b.Size
	if n < 1 || len(b.Cells) != n {
		return false
	}
	for r := 0; r < n; r++ {
		if len(b.Cells[r]) != n {
			return false
		}
		rowSeen := 0
		colSeen := 0
		for c := 0; c < n; c++ {
			rv := b.Cells[r][c]
			cv := b.Cells[c][r]
			if rv < 1 || rv > n || cv < 1 || cv > n {
				return false
			}
			rowBit := 1 << rv
			colBit := 1 << cv
			if rowSeen&rowBit != 0 || colSeen&colBit != 0 {
				return false
			}
			rowSeen |= rowBit
			colSeen |= colBit
		}
	}
	return true
}

// RandomLatinSquare draws a filled n×n Latin square from rng. It starts
// from the cyclic base square base[r][c] = (r+c) mod n and applies
// independent random row and column permutations plus a random symbol
// relabeling, so the result is valid by construction and a pure
// function of the rng stream.
func RandomLatinSquare(n int, rng *rand.Rand) (*Board, error) {
	b, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	rows := rng.Perm(n)
	cols := rng.Perm(n)
	symbols := rng.Perm(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			b.Cells[r][c] = symbols[(rows[r]+cols[c])%n] + 1
		}
	}
	return b, nil
}
