package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"csplab/internal/csp"
	"csplab/internal/problems"
	"csplab/internal/sat"
	"csplab/internal/smt"
)

var (
	validSolvers = []string{"gophersat", "gini", "kissat", "cadical", "cryptominisat", "z3"}
	solvers      = map[string]func() csp.Solver{
		"gophersat": func() csp.Solver { return csp.NewSATSolver(sat.NewGophersatSolver()) },
		"gini":      func() csp.Solver { return csp.NewSATSolver(sat.NewGiniSolver()) },
		"kissat":    func() csp.Solver { return csp.NewSATSolver(sat.NewKissatSolver()) },
		"cadical":   func() csp.Solver { return csp.NewSATSolver(sat.NewCadicalSolver()) },
		"cryptominisat": func() csp.Solver {
			return csp.NewSATSolver(sat.NewCryptominisatSolver())
		},
		"z3": func() csp.Solver { return csp.NewSMTSolver(smt.NewZ3Solver()) },
	}
)

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "gophersat", "Solver to use. Allowed values are: \"gophersat\", \"gini\", \"kissat\", \"cadical\", \"cryptominisat\", \"z3\", where \"gophersat\" is the default. The first two run in-process; the rest require the corresponding binary on the PATH")
	filePathPtr := flag.String("file", "", "Path to the JSON input file describing the problem instance")
	outFilePathPtr := flag.String("out", "", "Path to the file where the solution will be written as JSON; if empty, only the formatted solution is printed to the Standard Output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	input, err := problems.InputFromJson(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	problem, err := input.ToProblem()
	if err != nil {
		log.Fatalf("cannot build problem instance: %v", err)
	}

	model, err := problem.Model()
	if err != nil {
		log.Fatalf("cannot formulate %v: %v", problem.Name(), err)
	}

	// Initialize engine and solve
	solver := solvers[solverStr]()
	solution, stats, err := solver.Solve(model)

	if err != nil {
		log.Fatalf("an error occurred while solving: %v", err)
	} else if solution == nil {
		fmt.Printf("Variables: %v\n", stats.Variables)
		fmt.Printf("Clauses: %v\n", stats.Clauses)
		fmt.Println("Not satisfiable")
		os.Exit(20)
	}

	// Verify solution correctness independently of the solver
	if !problem.Verify(solution) {
		fmt.Printf("Variables: %v\n", stats.Variables)
		fmt.Printf("Clauses: %v\n", stats.Clauses)
		fmt.Println("Verification failed")
		os.Exit(15)
	}

	fmt.Println(problem.Format(solution))

	// Marshal solution into json when an output file is requested
	if outFile != "" {
		solutionJson, err := json.Marshal(solution)
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
		if err := os.WriteFile(outFile, solutionJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Variables: %v\n", stats.Variables)
	fmt.Printf("Clauses: %v\n", stats.Clauses)
	os.Exit(10)
}
