package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver backed by the pure-Go gini
// library.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (gs *giniSolver) Solve(instance SAT) (SATSolution, error) {
	g := gini.NewV(int(instance.Variables))

	for _, clause := range instance.Clauses {
		for _, literal := range clause {
			if literal > 0 {
				g.Add(z.Var(literal).Pos())
			} else {
				g.Add(z.Var(-literal).Neg())
			}
		}
		g.Add(0) // 0 terminates the clause
	}

	switch result := g.Solve(); result {
	case 1:
	case -1:
		return nil, nil
	default:
		return nil, fmt.Errorf("gini stopped without an answer: %v", result)
	}

	solution := make(SATSolution, 0, instance.Variables)
	for variable := uint64(1); variable <= instance.Variables; variable++ {
		literal := int64(variable)
		if !g.Value(z.Var(variable).Pos()) {
			literal = -literal
		}
		solution = append(solution, literal)
	}

	return solution, nil
}
