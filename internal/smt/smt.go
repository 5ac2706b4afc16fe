// Package smt builds SMT-LIB2 problems over bounded integers and delegates
// the satisfiability check to an external SMT solver.
package smt

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Variable is a bounded integer constant of the problem.
type Variable struct {
	Name string
	Low  int64
	High int64
}

// Assignment maps variable names to the values of a satisfying model.
type Assignment map[string]int64

// Instance is an SMT problem: declarations plus assertions, in order.
type Instance struct {
	Variables  []Variable
	Assertions []string
}

// Literal renders an integer the way SMT-LIB2 expects it: negative numbers
// are written with the unary minus form "(- n)".
func Literal(value int64) string {
	if value < 0 {
		return fmt.Sprintf("(- %d)", -value)
	}
	return fmt.Sprintf("%d", value)
}

// ToSMTLIB emits the instance as an SMT-LIB2 script: every variable is
// declared as an Int and bounded to its domain, every assertion is asserted
// verbatim, then the script checks satisfiability and queries the values of
// all declared variables.
func (instance Instance) ToSMTLIB() string {
	var builder strings.Builder

	for _, variable := range instance.Variables {
		fmt.Fprintf(&builder, "(declare-const %s Int)\n", variable.Name)
		fmt.Fprintf(&builder,
			"(assert (and (<= %s %s) (<= %s %s)))\n",
			Literal(variable.Low), variable.Name, variable.Name, Literal(variable.High),
		)
	}

	for _, assertion := range instance.Assertions {
		fmt.Fprintf(&builder, "(assert %s)\n", assertion)
	}

	builder.WriteString("(check-sat)\n")

	names := lo.Map(instance.Variables, func(variable Variable, _ int) string { return variable.Name })
	if len(names) > 0 {
		fmt.Fprintf(&builder, "(get-value (%s))\n", strings.Join(names, " "))
	}

	return builder.String()
}
