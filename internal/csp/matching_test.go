package csp

import (
	"fmt"
	"testing"

	"csplab/internal/sat"

	"github.com/stretchr/testify/assert"
)

func TestAllDifferentFeasible(t *testing.T) {
	t.Run("enough values", func(t *testing.T) {
		// Arrange
		model := NewModel()
		constraint := AllDifferent{Vars: []Variable{
			model.NewVariable("a", 0, 1),
			model.NewVariable("b", 0, 1),
			model.NewVariable("c", 2, 2),
		}}

		// Act
		feasible, err := allDifferentFeasible(constraint)

		// Assert
		assert.Nil(t, err)
		assert.True(t, feasible)
	})

	t.Run("three pigeons in two holes", func(t *testing.T) {
		// Arrange
		model := NewModel()
		constraint := AllDifferent{Vars: []Variable{
			model.NewVariable("a", 0, 1),
			model.NewVariable("b", 0, 1),
			model.NewVariable("c", 0, 1),
		}}

		// Act
		feasible, err := allDifferentFeasible(constraint)

		// Assert
		assert.Nil(t, err)
		assert.False(t, feasible)
	})

	t.Run("hall violation with enough values overall", func(t *testing.T) {
		// Arrange: three variables share the two values {0, 1} while a fourth
		// one keeps the union large
		model := NewModel()
		constraint := AllDifferent{Vars: []Variable{
			model.NewVariable("a", 0, 1),
			model.NewVariable("b", 0, 1),
			model.NewVariable("c", 0, 1),
			model.NewVariable("d", 0, 9),
		}}

		// Act
		feasible, err := allDifferentFeasible(constraint)

		// Assert
		assert.Nil(t, err)
		assert.False(t, feasible)
	})
}

func TestInfeasibleShortCircuitsSolvers(t *testing.T) {
	// Arrange: a large pigeonhole instance that a matching settles immediately
	model := NewModel()
	scope := make([]Variable, 0, 50)
	for i := range 50 {
		scope = append(scope, model.NewVariable(fmt.Sprintf("p%v", i), 0, 48))
	}
	model.AddConstraint(AllDifferent{Vars: scope})

	solver := NewSATSolver(sat.NewGophersatSolver())

	// Act
	solution, stats, err := solver.Solve(model)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, solution)
	assert.Equal(t, Stats{}, stats) // Nothing was encoded
}
