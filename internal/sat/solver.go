package sat

import (
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

type SATSolver interface {
	Solve(SAT) (SATSolution, error) // Returns a solution of the SAT instance if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}

// ParseSolution extracts the assigned literals from the "v" lines of a
// DIMACS-speaking solver's output. The model may span several "v" lines; the
// terminating 0 is dropped.
func ParseSolution(solverOutput string) SATSolution {
	values := lo.Reduce(
		lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
			return len(line) > 1 && line[0] == 'v'
		}),
		func(values []string, line string, _ int) []string {
			return append(values, strings.Fields(line[2:])...)
		},
		[]string{},
	)

	if len(values) == 0 {
		return nil
	}

	var solution SATSolution = make(SATSolution, 0, len(values))
	lo.ForEach(values, func(item string, _ int) {
		value, err := strconv.ParseInt(item, 10, 64)
		if err != nil {
			log.Panicf("invalid literal in solver output: %v", err)
		}
		if value != 0 { // Trailing 0 marks the end of the model
			solution = append(solution, value)
		}
	})

	return solution
}
