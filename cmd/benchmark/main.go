package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"csplab/internal/csp"
	"csplab/internal/problems"
	"csplab/internal/sat"
	"csplab/internal/smt"

	"github.com/samber/lo"
)

type ResultType int

const (
	solved ResultType = iota
	unsatisfiable
	failed
)

var resultTypes = map[ResultType]string{
	solved:        "solved",
	unsatisfiable: "unsatisfiable",
	failed:        "failed",
}

type BenchmarkInstance struct {
	Name    string
	Problem problems.Problem
}

type BenchmarkSolver struct {
	Name   string
	Binary string // Empty for in-process solvers
	Solver csp.Solver
}

type BenchmarkResult struct {
	Instance  string
	Solver    string
	Result    ResultType
	Variables uint64
	Clauses   uint64
	Duration  time.Duration
}

func main() {
	outFilePtr := flag.String("out", "", "Path to the CSV file where results will be written; if empty, they're written into the Standard Output")
	flag.Parse()

	instances := getInstances()
	benchmarkSolvers := availableSolvers(getSolvers())
	results := make([]BenchmarkResult, 0, len(instances)*len(benchmarkSolvers))

	for _, instance := range instances {
		for _, solver := range benchmarkSolvers {
			fmt.Fprintf(os.Stderr, "Benchmarking instance \"%v\" with solver \"%v\"\n", instance.Name, solver.Name)
			results = append(results, measure(instance, solver))
		}
	}

	out := os.Stdout
	if *outFilePtr != "" {
		file, err := os.Create(*outFilePtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	if err := writeResults(out, results); err != nil {
		log.Fatalf("an error occurred while writing results: %v", err)
	}
}

func measure(instance BenchmarkInstance, solver BenchmarkSolver) BenchmarkResult {
	result := BenchmarkResult{
		Instance: instance.Name,
		Solver:   solver.Name,
	}

	model, err := instance.Problem.Model()
	if err != nil {
		result.Result = failed
		return result
	}

	start := time.Now()
	solution, stats, err := solver.Solver.Solve(model)
	result.Duration = time.Since(start)
	result.Variables = stats.Variables
	result.Clauses = stats.Clauses

	switch {
	case err != nil:
		result.Result = failed
	case solution == nil:
		result.Result = unsatisfiable
	case !instance.Problem.Verify(solution):
		result.Result = failed
	default:
		result.Result = solved
	}

	return result
}

func writeResults(out *os.File, results []BenchmarkResult) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if err := writer.Write([]string{"instance", "solver", "result", "variables", "clauses", "milliseconds"}); err != nil {
		return err
	}

	for _, result := range results {
		record := []string{
			result.Instance,
			result.Solver,
			resultTypes[result.Result],
			strconv.FormatUint(result.Variables, 10),
			strconv.FormatUint(result.Clauses, 10),
			strconv.FormatInt(result.Duration.Milliseconds(), 10),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func getInstances() []BenchmarkInstance {
	mustCryptarithmetic := func(puzzle string) problems.Problem {
		problem, err := problems.NewCryptarithmetic(puzzle)
		if err != nil {
			log.Fatalf("invalid builtin puzzle %q: %v", puzzle, err)
		}
		return problem
	}
	mustNQueens := func(size int64) problems.Problem {
		problem, err := problems.NewNQueens(size)
		if err != nil {
			log.Fatalf("invalid builtin board size %v: %v", size, err)
		}
		return problem
	}
	mustSudoku := func(grid string) problems.Problem {
		problem, err := problems.NewSudoku(grid)
		if err != nil {
			log.Fatalf("invalid builtin grid: %v", err)
		}
		return problem
	}

	return []BenchmarkInstance{
		{Name: "send-more-money", Problem: mustCryptarithmetic("SEND+MORE=MONEY")},
		{Name: "two-two-four", Problem: mustCryptarithmetic("TWO+TWO=FOUR")},
		{Name: "australia-3", Problem: problems.Australia(3)},
		{Name: "australia-2", Problem: problems.Australia(2)},
		{Name: "queens-8", Problem: mustNQueens(8)},
		{Name: "queens-12", Problem: mustNQueens(12)},
		{Name: "queens-3", Problem: mustNQueens(3)},
		{Name: "sudoku-easy", Problem: mustSudoku(
			"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
		)},
		{Name: "sudoku-empty", Problem: mustSudoku(strings.Repeat(".", 81))},
	}
}

func getSolvers() []BenchmarkSolver {
	return []BenchmarkSolver{
		{Name: "gophersat", Solver: csp.NewSATSolver(sat.NewGophersatSolver())},
		{Name: "gini", Solver: csp.NewSATSolver(sat.NewGiniSolver())},
		{Name: "kissat", Binary: "kissat", Solver: csp.NewSATSolver(sat.NewKissatSolver())},
		{Name: "cadical", Binary: "cadical", Solver: csp.NewSATSolver(sat.NewCadicalSolver())},
		{Name: "cryptominisat", Binary: "cryptominisat", Solver: csp.NewSATSolver(sat.NewCryptominisatSolver())},
		{Name: "z3", Binary: "z3", Solver: csp.NewSMTSolver(smt.NewZ3Solver())},
	}
}

// availableSolvers keeps the in-process solvers and the external ones whose
// binary is reachable.
func availableSolvers(solvers []BenchmarkSolver) []BenchmarkSolver {
	return lo.Filter(solvers, func(solver BenchmarkSolver, _ int) bool {
		if solver.Binary == "" {
			return true
		}
		_, err := exec.LookPath(solver.Binary)
		return err == nil
	})
}
