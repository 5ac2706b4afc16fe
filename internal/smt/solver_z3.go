package smt

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const z3Path = "z3"

type z3Solver struct{}

func NewZ3Solver() SMTSolver {
	return &z3Solver{}
}

func (solver *z3Solver) Solve(instance Instance) (Assignment, error) {
	script := instance.ToSMTLIB() // Transform the instance into an SMT-LIB2 script

	cmd := exec.Command(z3Path, "-in")
	cmd.Stdin = strings.NewReader(script) // Feed the script into z3's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	// The first line reports the check-sat verdict; the rest is the get-value
	// S-expression when the verdict is sat. An unsat run still complains about
	// the trailing get-value, so the verdict is inspected before the exit code.
	verdict, values, _ := strings.Cut(stdOut.String(), "\n")
	switch strings.TrimSpace(verdict) {
	case "sat":
		return ParseAssignment(values)
	case "unsat":
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("an error occurred during z3 execution: %v : %v", err.Error(), stderr.String())
	}
	return nil, fmt.Errorf("z3 could not decide the instance: %v", verdict)
}
