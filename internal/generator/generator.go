package generator

import "svw.info/skyscraper/internal/ports"

// defaultMaxAttempts caps the uniqueness retry loop. Acceptance is
// frequent for sizes 3 and up, so the cap is a safety valve rather than
// a tuning knob.
const defaultMaxAttempts = 1000

// UniqueGenerator draws candidate boards from a seeded stream and keeps
// the first one whose clue set admits exactly one solution, verified
// with the provided Solver.
type UniqueGenerator struct {
	Solver ports.Solver
	// MaxAttempts overrides the retry cap when positive.
	MaxAttempts int
}

// NewUniqueGenerator wires a generator that uses the given solver for
// uniqueness checks.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
