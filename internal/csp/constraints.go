package csp

import (
	"fmt"
	"strings"

	"csplab/internal/smt"

	"github.com/samber/lo"
)

// Constraint restricts the values the variables of its scope can take
// simultaneously. Every constraint knows how to render itself both as CNF
// clauses over the direct encoding and as an SMT-LIB2 assertion.
type Constraint interface {
	validate(m *Model) error
	clauses(enc *encoder) ([][]int64, error)
	assertion() string
}

// AllDifferent forces all the variables of its scope to take pairwise
// distinct values.
type AllDifferent struct {
	Vars []Variable
}

func (c AllDifferent) validate(m *Model) error {
	if len(c.Vars) < 2 {
		return fmt.Errorf("all-different needs at least two variables")
	}
	return validateScope(m, "all-different", c.Vars)
}

func (c AllDifferent) clauses(enc *encoder) ([][]int64, error) {
	clauses := [][]int64{}

	// For every value shared by a pair of domains, both variables cannot take
	// it at once
	for i := range len(c.Vars) - 1 {
		for j := i + 1; j < len(c.Vars); j++ {
			variable1, variable2 := c.Vars[i], c.Vars[j]
			low := max(variable1.Low, variable2.Low)
			high := min(variable1.High, variable2.High)

			for value := low; value <= high; value++ {
				clauses = append(clauses, []int64{
					-enc.literal(variable1, value),
					-enc.literal(variable2, value),
				})
			}
		}
	}

	return clauses, nil
}

func (c AllDifferent) assertion() string {
	names := lo.Map(c.Vars, func(variable Variable, _ int) string { return variable.Name })
	return fmt.Sprintf("(distinct %s)", strings.Join(names, " "))
}

// LinearEq states that the weighted sum of its scope equals a constant:
// Coeffs[0]*Vars[0] + ... + Coeffs[n-1]*Vars[n-1] = Constant.
type LinearEq struct {
	Coeffs   []int64
	Vars     []Variable
	Constant int64
}

// linearScopeCap bounds the cartesian product of a linear constraint's
// domains, since the CNF rendering enumerates it.
const linearScopeCap = 1 << 20

func (c LinearEq) validate(m *Model) error {
	if len(c.Vars) == 0 {
		return fmt.Errorf("linear equation has an empty scope")
	}
	if len(c.Coeffs) != len(c.Vars) {
		return fmt.Errorf("linear equation has %v coefficients for %v variables", len(c.Coeffs), len(c.Vars))
	}
	if err := validateScope(m, "linear equation", c.Vars); err != nil {
		return err
	}

	names := lo.Map(c.Vars, func(variable Variable, _ int) string { return variable.Name })
	if len(lo.Uniq(names)) != len(names) {
		return fmt.Errorf("linear equation mentions a variable twice: %v", names)
	}

	product := int64(1)
	for _, variable := range c.Vars {
		product *= variable.domainSize()
		if product > linearScopeCap {
			return fmt.Errorf("linear equation scope is too large to encode: %v", names)
		}
	}
	return nil
}

func (c LinearEq) clauses(enc *encoder) ([][]int64, error) {
	clauses := [][]int64{}

	// Enumerate the scope's assignments recursively and block every one whose
	// weighted sum misses the constant
	assignment := make([]int64, len(c.Vars))
	var enumerate func(position int, sum int64)
	enumerate = func(position int, sum int64) {
		if position == len(c.Vars) {
			if sum != c.Constant {
				blocking := make([]int64, len(c.Vars))
				for i, variable := range c.Vars {
					blocking[i] = -enc.literal(variable, assignment[i])
				}
				clauses = append(clauses, blocking)
			}
			return
		}

		variable := c.Vars[position]
		for value := variable.Low; value <= variable.High; value++ {
			assignment[position] = value
			enumerate(position+1, sum+c.Coeffs[position]*value)
		}
	}
	enumerate(0, 0)

	return clauses, nil
}

func (c LinearEq) assertion() string {
	terms := lo.Map(c.Vars, func(variable Variable, i int) string {
		return fmt.Sprintf("(* %s %s)", smt.Literal(c.Coeffs[i]), variable.Name)
	})
	if len(terms) == 1 {
		return fmt.Sprintf("(= %s %s)", terms[0], smt.Literal(c.Constant))
	}
	return fmt.Sprintf("(= (+ %s) %s)", strings.Join(terms, " "), smt.Literal(c.Constant))
}

// NotEqualOffset states X ≠ Y + Offset. With a zero offset it is a plain
// disequality; N-Queens uses the offset form to bar shared diagonals.
type NotEqualOffset struct {
	X      Variable
	Y      Variable
	Offset int64
}

func (c NotEqualOffset) validate(m *Model) error {
	if c.X.Name == c.Y.Name {
		return fmt.Errorf("disequality compares variable %q with itself", c.X.Name)
	}
	return validateScope(m, "disequality", []Variable{c.X, c.Y})
}

func (c NotEqualOffset) clauses(enc *encoder) ([][]int64, error) {
	clauses := [][]int64{}

	// Block the pairs (value, value-Offset) that would make X = Y + Offset
	for value := c.X.Low; value <= c.X.High; value++ {
		other := value - c.Offset
		if other < c.Y.Low || other > c.Y.High {
			continue
		}
		clauses = append(clauses, []int64{
			-enc.literal(c.X, value),
			-enc.literal(c.Y, other),
		})
	}

	return clauses, nil
}

func (c NotEqualOffset) assertion() string {
	if c.Offset == 0 {
		return fmt.Sprintf("(not (= %s %s))", c.X.Name, c.Y.Name)
	}
	return fmt.Sprintf("(not (= %s (+ %s %s)))", c.X.Name, c.Y.Name, smt.Literal(c.Offset))
}

// Assign pins a variable to a single value, e.g. a Sudoku given.
type Assign struct {
	Var   Variable
	Value int64
}

func (c Assign) validate(m *Model) error {
	if err := validateScope(m, "assignment", []Variable{c.Var}); err != nil {
		return err
	}
	if c.Value < c.Var.Low || c.Value > c.Var.High {
		return fmt.Errorf("assignment %v = %v falls outside the domain [%v, %v]", c.Var.Name, c.Value, c.Var.Low, c.Var.High)
	}
	return nil
}

func (c Assign) clauses(enc *encoder) ([][]int64, error) {
	return [][]int64{{enc.literal(c.Var, c.Value)}}, nil
}

func (c Assign) assertion() string {
	return fmt.Sprintf("(= %s %s)", c.Var.Name, smt.Literal(c.Value))
}

func validateScope(m *Model, kind string, scope []Variable) error {
	for _, variable := range scope {
		if !m.declared(variable) {
			return fmt.Errorf("%v constraint mentions undeclared variable %q", kind, variable.Name)
		}
	}
	return nil
}
