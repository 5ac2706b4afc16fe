package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetInstances(t *testing.T) {
	instances := getInstances()
	assert.NotEmpty(t, instances)

	// Every builtin instance must formulate into a valid model
	for _, instance := range instances {
		model, err := instance.Problem.Model()
		assert.Nil(t, err, instance.Name)
		assert.Nil(t, model.Validate(), instance.Name)
	}
}

func TestAvailableSolvers(t *testing.T) {
	available := availableSolvers(getSolvers())

	names := make([]string, 0, len(available))
	for _, solver := range available {
		names = append(names, solver.Name)
	}

	// The in-process solvers are always available
	assert.Contains(t, names, "gophersat")
	assert.Contains(t, names, "gini")
}

func TestMeasure(t *testing.T) {
	solvers := getSolvers()

	satisfiable := measure(getInstances()[0], solvers[0]) // send-more-money with gophersat
	assert.Equal(t, solved, satisfiable.Result)
	assert.NotZero(t, satisfiable.Variables)
	assert.NotZero(t, satisfiable.Clauses)

	unsat := measure(BenchmarkInstance{Name: "australia-2", Problem: getInstances()[3].Problem}, solvers[0])
	assert.Equal(t, unsatisfiable, unsat.Result)
}
