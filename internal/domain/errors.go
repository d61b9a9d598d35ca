package domain

import "errors"

var (
	// ErrInvalidSize indicates a requested board size below 1.
	ErrInvalidSize = errors.New("skyscraper: board size must be at least 1")
	// ErrMalformedClues indicates a clue set with wrong vector lengths
	// or a clue value outside [1, N].
	ErrMalformedClues = errors.New("skyscraper: malformed clue set")
	// ErrNoSolution indicates the search space was exhausted without a
	// board matching the clue set.
	ErrNoSolution = errors.New("skyscraper: no solution found")
	// ErrExhausted indicates the generator hit its retry cap without
	// producing a uniquely solvable clue set.
	ErrExhausted = errors.New("skyscraper: generation retry limit exceeded")
)
