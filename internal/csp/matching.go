package csp

import (
	"github.com/onsi/gomega/matchers/support/goraph/bipartitegraph"
	"github.com/samber/lo"
)

// allDifferentFeasible checks Hall's condition for an all-different
// constraint by computing a maximum matching between its variables and the
// union of their domain values. If some variable stays unmatched the
// constraint (and therefore the whole model) is unsatisfiable, so backends
// can report UNSAT without ever invoking a solver.
func allDifferentFeasible(constraint AllDifferent) (bool, error) {
	valueSet := make(map[int64]bool)
	for _, variable := range constraint.Vars {
		for value := variable.Low; value <= variable.High; value++ {
			valueSet[value] = true
		}
	}

	if len(valueSet) < len(constraint.Vars) {
		return false, nil
	}

	// Build neighbors predicate: a variable can be matched with every value of
	// its domain
	neighbors := func(variableAny any, valueAny any) (bool, error) {
		variable := variableAny.(Variable)
		value := valueAny.(int64)

		return value >= variable.Low && value <= variable.High, nil
	}

	// Transform variables and values to slices of any
	variablesAny := lo.Map(constraint.Vars, func(variable Variable, _ int) any { return variable })
	valuesAny := lo.Map(lo.Keys(valueSet), func(value int64, _ int) any { return value })

	graph, err := bipartitegraph.NewBipartiteGraph(variablesAny, valuesAny, neighbors)
	if err != nil {
		return false, err
	}

	matching := graph.LargestMatching()

	// Check the matching covers every variable
	return len(matching) >= len(constraint.Vars), nil
}

// infeasible reports whether some all-different constraint of the model is
// already hopeless before encoding.
func infeasible(m *Model) (bool, error) {
	for _, constraint := range m.constraints {
		allDifferent, ok := constraint.(AllDifferent)
		if !ok {
			continue
		}

		feasible, err := allDifferentFeasible(allDifferent)
		if err != nil {
			return false, err
		}
		if !feasible {
			return true, nil
		}
	}
	return false, nil
}
