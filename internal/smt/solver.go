package smt

import (
	"fmt"
	"strconv"
	"strings"
)

type SMTSolver interface {
	Solve(Instance) (Assignment, error) // Returns a model of the instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// ParseAssignment reads the S-expression printed by a get-value command,
// e.g. "((S 9)\n (E 5))", into an Assignment. Negative values use the
// SMT-LIB2 unary minus form "(- n)".
func ParseAssignment(valuesOutput string) (Assignment, error) {
	flattened := strings.NewReplacer("(", " ", ")", " ").Replace(valuesOutput)
	fields := strings.Fields(flattened)

	assignment := make(Assignment)
	for i := 0; i < len(fields); i++ {
		name := fields[i]

		if i++; i >= len(fields) {
			return nil, fmt.Errorf("value missing for variable %q in solver output", name)
		}

		negated := false
		if fields[i] == "-" {
			negated = true
			if i++; i >= len(fields) {
				return nil, fmt.Errorf("dangling minus for variable %q in solver output", name)
			}
		}

		value, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for variable %q in solver output: %v", name, err)
		}
		if negated {
			value = -value
		}

		assignment[name] = value
	}

	return assignment, nil
}
