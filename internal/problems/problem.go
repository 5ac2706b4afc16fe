// Package problems formulates classic constraint satisfaction problems as
// finite-domain models: cryptarithmetic puzzles, map coloring, N-Queens and
// Sudoku.
package problems

import "csplab/internal/csp"

// Problem is a classic CSP: it knows how to formulate itself as a model, how
// to verify a candidate solution against its own semantics (independently of
// any solver) and how to display a solution.
type Problem interface {
	Name() string
	Model() (*csp.Model, error)
	Verify(solution csp.Solution) bool
	Format(solution csp.Solution) string
}
