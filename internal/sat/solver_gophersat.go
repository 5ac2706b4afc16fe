package sat

import (
	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver backed by the pure-Go
// gophersat library, so no external binary is required.
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (gs *gophersatSolver) Solve(instance SAT) (SATSolution, error) {
	clauses := make([][]int, len(instance.Clauses))
	for i, clause := range instance.Clauses {
		clauses[i] = make([]int, len(clause))
		for j, literal := range clause {
			clauses[i][j] = int(literal)
		}
	}

	s := solver.New(solver.ParseSlice(clauses))
	if s.Solve() != solver.Sat {
		return nil, nil
	}

	model := s.Model()
	solution := make(SATSolution, 0, instance.Variables)
	for variable := uint64(1); variable <= instance.Variables; variable++ {
		literal := int64(variable)
		// Variables beyond the largest one mentioned in a clause are free: any
		// polarity satisfies the instance
		if int(variable) > len(model) || !model[variable-1] {
			literal = -literal
		}
		solution = append(solution, literal)
	}

	return solution, nil
}
