package csp

import (
	"csplab/internal/smt"

	"github.com/samber/lo"
)

// encodeSMT renders a model as an SMT instance: every variable becomes a
// bounded Int constant and every constraint an assertion.
func encodeSMT(m *Model) smt.Instance {
	return smt.Instance{
		Variables: lo.Map(m.variables, func(variable Variable, _ int) smt.Variable {
			return smt.Variable{Name: variable.Name, Low: variable.Low, High: variable.High}
		}),
		Assertions: lo.Map(m.constraints, func(constraint Constraint, _ int) string {
			return constraint.assertion()
		}),
	}
}
