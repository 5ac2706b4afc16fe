package csp

import (
	"csplab/internal/sat"
	"csplab/internal/smt"
)

// Stats reports the size of the encoded instance handed to the backend. For
// SAT backends Clauses counts CNF clauses; for SMT backends it counts
// assertions.
type Stats struct {
	Variables uint64
	Clauses   uint64
}

// Solver decides a model. A nil Solution with a nil error means the model is
// unsatisfiable.
type Solver interface {
	Solve(m *Model) (Solution, Stats, error)
}

type satBackedSolver struct {
	solver sat.SATSolver
}

// NewSATSolver wraps a CNF solver into a model solver using the direct
// encoding.
func NewSATSolver(solver sat.SATSolver) Solver {
	return &satBackedSolver{solver: solver}
}

func (s *satBackedSolver) Solve(m *Model) (Solution, Stats, error) {
	if err := m.Validate(); err != nil {
		return nil, Stats{}, err
	}

	// A Hall-violating all-different constraint settles the matter without
	// encoding anything
	if hopeless, err := infeasible(m); err != nil {
		return nil, Stats{}, err
	} else if hopeless {
		return nil, Stats{}, nil
	}

	enc := newEncoder(m)
	instance, err := enc.encode()
	if err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{Variables: instance.Variables, Clauses: uint64(len(instance.Clauses))}

	solution, err := s.solver.Solve(instance)
	if err != nil {
		return nil, stats, err
	} else if solution == nil { // Return nil if the instance is not satisfiable
		return nil, stats, nil
	}

	return enc.decode(solution), stats, nil
}

type smtBackedSolver struct {
	solver smt.SMTSolver
}

// NewSMTSolver wraps an SMT solver into a model solver; constraints are
// asserted natively instead of being compiled to clauses.
func NewSMTSolver(solver smt.SMTSolver) Solver {
	return &smtBackedSolver{solver: solver}
}

func (s *smtBackedSolver) Solve(m *Model) (Solution, Stats, error) {
	if err := m.Validate(); err != nil {
		return nil, Stats{}, err
	}

	if hopeless, err := infeasible(m); err != nil {
		return nil, Stats{}, err
	} else if hopeless {
		return nil, Stats{}, nil
	}

	instance := encodeSMT(m)
	stats := Stats{Variables: uint64(len(instance.Variables)), Clauses: uint64(len(instance.Assertions))}

	assignment, err := s.solver.Solve(instance)
	if err != nil {
		return nil, stats, err
	} else if assignment == nil { // Return nil if the instance is not satisfiable
		return nil, stats, nil
	}

	solution := make(Solution, len(assignment))
	for name, value := range assignment {
		solution[name] = value
	}

	return solution, stats, nil
}
