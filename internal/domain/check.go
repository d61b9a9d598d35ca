package domain

// CheckReason classifies why a board failed validation against a clue
// set. Validation failures are results, not errors: callers report the
// precise reason and move on.
type CheckReason int

const (
	CheckOK CheckReason = iota
	CheckDimensionMismatch
	CheckNotLatinSquare
	CheckClueMismatch
)

func (r CheckReason) String() string {
	switch r {
	case CheckOK:
		return "ok"
	case CheckDimensionMismatch:
		return "dimension mismatch"
	case CheckNotLatinSquare:
		return "not a latin square"
	case CheckClueMismatch:
		return "clue mismatch"
	default:
		return "unknown"
	}
}

// CheckReport carries the outcome of validating a board against clues.
// Side, Index, Expected and Got are set for clue mismatches; Conflicts
// lists duplicate cells for Latin-square violations.
type CheckReport struct {
	Reason    CheckReason `json:"reason"`
	Side      Side        `json:"side"`
	Index     int         `json:"index"`
	Expected  int         `json:"expected"`
	Got       int         `json:"got"`
	Conflicts []CellCoord `json:"conflicts,omitempty"`
}

// OK reports whether the check passed.
func (r CheckReport) OK() bool { return r.Reason == CheckOK }
