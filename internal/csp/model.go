// Package csp models finite-domain constraint satisfaction problems over
// bounded integer variables and solves them through pluggable SAT and SMT
// backends.
package csp

import (
	"fmt"
	"regexp"
)

// namePattern keeps variable names usable both as SMT-LIB2 symbols and as
// solution keys.
var namePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Variable is a decision variable with an inclusive integer domain.
type Variable struct {
	Name string
	Low  int64
	High int64
}

func (v Variable) domainSize() int64 {
	return v.High - v.Low + 1
}

// Solution maps every variable name of a model to a value inside its domain.
type Solution map[string]int64

// Model is an ordered collection of variables and the constraints over them.
type Model struct {
	variables   []Variable
	index       map[string]int
	constraints []Constraint
}

func NewModel() *Model {
	return &Model{
		index: map[string]int{},
	}
}

// NewVariable declares a variable with the given inclusive bounds and
// registers it on the model. Declaration order is preserved, so encodings are
// deterministic.
func (m *Model) NewVariable(name string, low, high int64) Variable {
	variable := Variable{Name: name, Low: low, High: high}
	if _, ok := m.index[name]; !ok {
		m.index[name] = len(m.variables)
		m.variables = append(m.variables, variable)
	}
	return variable
}

func (m *Model) AddConstraint(constraint Constraint) {
	m.constraints = append(m.constraints, constraint)
}

func (m *Model) Variables() []Variable {
	return m.variables
}

func (m *Model) Constraints() []Constraint {
	return m.constraints
}

// Validate checks the model is well-formed: at least one variable, valid and
// unique names, non-empty domains and constraints whose scopes refer to
// declared variables.
func (m *Model) Validate() error {
	if len(m.variables) == 0 {
		return fmt.Errorf("model has no variables")
	}

	for _, variable := range m.variables {
		if !namePattern.MatchString(variable.Name) {
			return fmt.Errorf("invalid variable name %q", variable.Name)
		}
		if variable.Low > variable.High {
			return fmt.Errorf("variable %q has an empty domain [%v, %v]", variable.Name, variable.Low, variable.High)
		}
	}

	for _, constraint := range m.constraints {
		if err := constraint.validate(m); err != nil {
			return err
		}
	}

	return nil
}

// declared reports whether the variable was registered on the model with the
// exact same bounds.
func (m *Model) declared(variable Variable) bool {
	position, ok := m.index[variable.Name]
	return ok && m.variables[position] == variable
}
