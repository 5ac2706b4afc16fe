package csp

import (
	"log"

	"csplab/internal/sat"
)

// encoder renders a model into CNF through the direct encoding: one boolean
// per (variable, value) pair, laid out in declaration order so that boolean
// indices can be mapped back to assignments.
type encoder struct {
	model   *Model
	offsets []int64
	total   int64
}

func newEncoder(m *Model) *encoder {
	enc := &encoder{
		model:   m,
		offsets: make([]int64, len(m.variables)),
	}
	for i, variable := range m.variables {
		enc.offsets[i] = enc.total
		enc.total += variable.domainSize()
	}
	return enc
}

// literal returns the CNF literal stating "variable takes value".
func (enc *encoder) literal(variable Variable, value int64) int64 {
	position, ok := enc.model.index[variable.Name]
	if !ok || value < variable.Low || value > variable.High {
		log.Panicf("no literal for %v = %v", variable.Name, value)
	}
	return enc.offsets[position] + (value - variable.Low) + 1
}

// domainClauses state that every variable takes exactly one value of its
// domain: an at-least-one clause plus pairwise at-most-one clauses.
func (enc *encoder) domainClauses() [][]int64 {
	clauses := [][]int64{}

	for _, variable := range enc.model.variables {
		atLeastOne := make([]int64, 0, variable.domainSize())
		for value := variable.Low; value <= variable.High; value++ {
			atLeastOne = append(atLeastOne, enc.literal(variable, value))
		}
		clauses = append(clauses, atLeastOne)

		for value1 := variable.Low; value1 < variable.High; value1++ {
			for value2 := value1 + 1; value2 <= variable.High; value2++ {
				clauses = append(clauses, []int64{
					-enc.literal(variable, value1),
					-enc.literal(variable, value2),
				})
			}
		}
	}

	return clauses
}

// encode builds the full CNF instance: domain clauses first, then every
// constraint's clauses in registration order.
func (enc *encoder) encode() (sat.SAT, error) {
	instance := sat.SAT{
		Variables: uint64(enc.total),
		Clauses:   enc.domainClauses(),
	}

	for _, constraint := range enc.model.constraints {
		clauses, err := constraint.clauses(enc)
		if err != nil {
			return sat.SAT{}, err
		}
		instance.Clauses = append(instance.Clauses, clauses...)
	}

	return instance, nil
}

// decode maps a SAT solution back to an assignment of the model's variables.
func (enc *encoder) decode(solution sat.SATSolution) Solution {
	positives := make(map[int64]bool, len(solution))
	for _, literal := range solution {
		if literal > 0 {
			positives[literal] = true
		}
	}

	assignment := make(Solution, len(enc.model.variables))
	for _, variable := range enc.model.variables {
		for value := variable.Low; value <= variable.High; value++ {
			if positives[enc.literal(variable, value)] {
				assignment[variable.Name] = value
				break
			}
		}
	}

	return assignment
}
