package main

import (
	"fmt"
	"log"

	"csplab/internal/csp"
	"csplab/internal/problems"
	"csplab/internal/sat"
)

func main() {
	solver := csp.NewSATSolver(sat.NewGophersatSolver())
	// solver := csp.NewSATSolver(sat.NewGiniSolver())
	// solver := csp.NewSATSolver(sat.NewKissatSolver())
	// solver := csp.NewSMTSolver(smt.NewZ3Solver())

	sendMoreMoney, err := problems.NewCryptarithmetic("SEND+MORE=MONEY")
	if err != nil {
		log.Fatal(err)
	}

	sudoku, err := problems.NewSudoku(`
		53..7....
		6..195...
		.98....6.
		8...6...3
		4..8.3..1
		7...2...6
		.6....28.
		...419..5
		....8..79
	`)
	if err != nil {
		log.Fatal(err)
	}

	eightQueens, err := problems.NewNQueens(8)
	if err != nil {
		log.Fatal(err)
	}

	instances := []problems.Problem{
		sendMoreMoney,
		problems.Australia(3),
		eightQueens,
		sudoku,
	}

	for _, instance := range instances {
		model, err := instance.Model()
		if err != nil {
			log.Fatalf("cannot formulate %v: %v", instance.Name(), err)
		}

		solution, stats, err := solver.Solve(model)
		if err != nil {
			log.Fatalf("an error occurred while solving %v: %v", instance.Name(), err)
		} else if solution == nil {
			fmt.Printf("== %v: not satisfiable\n\n", instance.Name())
			continue
		}

		if !instance.Verify(solution) {
			log.Fatalf("verification failed for %v", instance.Name())
		}

		fmt.Printf("== %v (%v variables, %v clauses)\n", instance.Name(), stats.Variables, stats.Clauses)
		fmt.Println(instance.Format(solution))
	}

	fmt.Println("Well done!")
}
