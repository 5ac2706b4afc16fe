package sat

import (
	"fmt"
	"strings"
)

// SATSolution is the list of literals assigned by a solver: a positive entry
// states the variable is true, a negative one states it is false.
type SATSolution []int64

// SAT is a CNF instance. Variables are numbered from 1 to Variables and each
// clause is a disjunction of non-zero literals.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
