package csp

import (
	"testing"

	"csplab/internal/sat"

	"github.com/stretchr/testify/assert"
)

func TestLiteralLayout(t *testing.T) {
	model := NewModel()
	x := model.NewVariable("x", 0, 2)
	y := model.NewVariable("y", 5, 6)

	enc := newEncoder(model)

	// Booleans are laid out in declaration order, one block per variable
	assert.Equal(t, int64(1), enc.literal(x, 0))
	assert.Equal(t, int64(2), enc.literal(x, 1))
	assert.Equal(t, int64(3), enc.literal(x, 2))
	assert.Equal(t, int64(4), enc.literal(y, 5))
	assert.Equal(t, int64(5), enc.literal(y, 6))
	assert.Equal(t, int64(5), enc.total)
}

func TestDomainClauses(t *testing.T) {
	model := NewModel()
	model.NewVariable("x", 0, 2)

	enc := newEncoder(model)
	clauses := enc.domainClauses()

	// One at-least-one clause plus C(3, 2) at-most-one clauses
	assert.Len(t, clauses, 4)
	assert.Equal(t, []int64{1, 2, 3}, clauses[0])
	assert.Contains(t, clauses, []int64{-1, -2})
	assert.Contains(t, clauses, []int64{-1, -3})
	assert.Contains(t, clauses, []int64{-2, -3})
}

func TestDecode(t *testing.T) {
	model := NewModel()
	model.NewVariable("x", 0, 2)
	model.NewVariable("y", 5, 6)

	enc := newEncoder(model)
	solution := enc.decode(sat.SATSolution{-1, -2, 3, 4, -5})

	assert.Equal(t, Solution{"x": 2, "y": 5}, solution)
}

func TestSolveWithSATBackend(t *testing.T) {
	solver := NewSATSolver(sat.NewGophersatSolver())

	t.Run("linear equation with disequality", func(t *testing.T) {
		// Arrange
		model := NewModel()
		x := model.NewVariable("x", 0, 4)
		y := model.NewVariable("y", 0, 4)
		model.AddConstraint(LinearEq{Coeffs: []int64{1, 1}, Vars: []Variable{x, y}, Constant: 7})
		model.AddConstraint(NotEqualOffset{X: x, Y: y})

		// Act
		solution, stats, err := solver.Solve(model)

		// Assert
		assert.Nil(t, err)
		assert.NotNil(t, solution)
		assert.Equal(t, int64(7), solution["x"]+solution["y"])
		assert.NotEqual(t, solution["x"], solution["y"])
		assert.Equal(t, uint64(10), stats.Variables)
	})

	t.Run("all-different pinned to a unique solution", func(t *testing.T) {
		// Arrange
		model := NewModel()
		a := model.NewVariable("a", 0, 2)
		b := model.NewVariable("b", 0, 2)
		c := model.NewVariable("c", 0, 2)
		model.AddConstraint(AllDifferent{Vars: []Variable{a, b, c}})
		model.AddConstraint(Assign{Var: a, Value: 2})
		model.AddConstraint(NotEqualOffset{X: b, Y: a, Offset: -1})

		// Act
		solution, _, err := solver.Solve(model)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Solution{"a": 2, "b": 0, "c": 1}, solution)
	})

	t.Run("unsatisfiable equation", func(t *testing.T) {
		// Arrange
		model := NewModel()
		x := model.NewVariable("x", 0, 3)
		model.AddConstraint(LinearEq{Coeffs: []int64{2}, Vars: []Variable{x}, Constant: 7})

		// Act
		solution, _, err := solver.Solve(model)

		// Assert
		assert.Nil(t, err)
		assert.Nil(t, solution)
	})

	t.Run("offset disequalities prune diagonals", func(t *testing.T) {
		// Arrange: two queens on a 2x2 board cannot avoid each other
		model := NewModel()
		q0 := model.NewVariable("q0", 0, 1)
		q1 := model.NewVariable("q1", 0, 1)
		model.AddConstraint(AllDifferent{Vars: []Variable{q0, q1}})
		model.AddConstraint(NotEqualOffset{X: q0, Y: q1, Offset: 1})
		model.AddConstraint(NotEqualOffset{X: q0, Y: q1, Offset: -1})

		// Act
		solution, _, err := solver.Solve(model)

		// Assert
		assert.Nil(t, err)
		assert.Nil(t, solution)
	})

	t.Run("invalid model is rejected", func(t *testing.T) {
		model := NewModel()
		x := model.NewVariable("x", 0, 3)
		model.AddConstraint(Assign{Var: x, Value: 11})

		_, _, err := solver.Solve(model)

		assert.NotNil(t, err)
	})
}

func TestBackendsAgree(t *testing.T) {
	// The same model must be satisfiable for both embedded backends
	build := func() *Model {
		model := NewModel()
		a := model.NewVariable("a", 1, 9)
		b := model.NewVariable("b", 0, 9)
		c := model.NewVariable("c", 0, 9)
		model.AddConstraint(AllDifferent{Vars: []Variable{a, b, c}})
		model.AddConstraint(LinearEq{Coeffs: []int64{1, 1, 1}, Vars: []Variable{a, b, c}, Constant: 6})
		return model
	}

	for _, solver := range []Solver{
		NewSATSolver(sat.NewGophersatSolver()),
		NewSATSolver(sat.NewGiniSolver()),
	} {
		solution, _, err := solver.Solve(build())
		assert.Nil(t, err)
		assert.NotNil(t, solution)
		assert.Equal(t, int64(6), solution["a"]+solution["b"]+solution["c"])
	}
}
