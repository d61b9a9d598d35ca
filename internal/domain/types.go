package domain

// Board holds an N×N grid of building heights in [1, N].
// Cells is indexed [row][col]; a zero value marks an unset cell during
// search. Boards handed back to callers are complete and are not
// mutated afterwards.
type Board struct {
	Size  int     `json:"size"`
	Cells [][]int `json:"cells"`
}

// Clues holds the four edge-visibility vectors of a board, each of
// length Size. Entries follow the natural index order of the row or
// column they constrain.
type Clues struct {
	Top    []int `json:"top"`
	Bottom []int `json:"bottom"`
	Left   []int `json:"left"`
	Right  []int `json:"right"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted Skyscraper board with its clue set and metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      uint64 `json:"seed,omitempty"`
	Size      int    `json:"size"`
	Board     Board  `json:"board"`
	Clues     Clues  `json:"clues"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}

// BoardSize reports the board size implied by the clue vectors, or 0 if
// the four vectors disagree in length.
func (c Clues) BoardSize() int {
	n := len(c.Top)
	if len(c.Bottom) != n || len(c.Left) != n || len(c.Right) != n {
		return 0
	}
	return n
}

// Validate reports whether the clue set is well formed: four vectors of
// equal nonzero length with every value in [1, N].
func (c Clues) Validate() error {
	n := c.BoardSize()
	if n < 1 {
		return ErrMalformedClues
	}
	for _, vec := range [][]int{c.Top, c.Bottom, c.Left, c.Right} {
		for _, v := range vec {
			if v < 1 || v > n {
				return ErrMalformedClues
			}
		}
	}
	return nil
}

// Equal reports element-wise equality of two clue sets.
func (c Clues) Equal(o Clues) bool {
	return intsEqual(c.Top, o.Top) && intsEqual(c.Bottom, o.Bottom) &&
		intsEqual(c.Left, o.Left) && intsEqual(c.Right, o.Right)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
