// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package encoder decides equivalence of Clifford circuits by reduction to
// SAT.  Each circuit is simulated symbolically as a bank of stabilizer
// tableaux, one per chosen input state; the canonical generator reached after
// every layer is interned into a registry of dense identifiers, and the
// per-layer identifier transitions of both circuits are lowered into a
// bit-vector miter whose unsatisfiability proves equivalence.
package encoder

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lucasberent/qsatencoder/pkg/bitvec"
	"github.com/lucasberent/qsatencoder/pkg/circuit"
)

// SatEncoder orchestrates one equivalence or satisfiability query:
// preprocessing, instance construction, solving and statistics collection.
// A SatEncoder is single-use and not safe for concurrent use.
type SatEncoder struct {
	stats Statistics
}

// NewSatEncoder creates an encoder for a single query.
func NewSatEncoder() *SatEncoder {
	return &SatEncoder{}
}

// Stats returns the statistics gathered by this encoder so far.
func (p *SatEncoder) Stats() *Statistics {
	return &p.stats
}

// ToJSON serialises the gathered statistics.
func (p *SatEncoder) ToJSON() ([]byte, error) {
	return p.stats.ToJSON()
}

// TestEqual checks whether two Clifford circuits produce the same output on
// every given input state (on the all-zero state if inputs is empty).  Both
// circuits must be non-empty Clifford circuits; otherwise ErrNotClifford or
// ErrEmptyCircuit is returned along with a false verdict.  A true verdict
// means the constructed miter was unsatisfiable; an inconclusive solver
// result yields false and ErrSolverUnknown, from which no equivalence claim
// may be derived.
func (p *SatEncoder) TestEqual(one *circuit.QuantumComputation, two *circuit.QuantumComputation,
	inputs []string) (bool, error) {
	if !circuit.IsClifford(one) || !circuit.IsClifford(two) {
		return false, ErrNotClifford
	}
	//
	if one.Empty() || two.Empty() {
		return false, ErrEmptyCircuit
	}
	//
	p.stats.NumInputs = uint64(len(inputs))
	p.stats.NumQubits = uint64(one.NQubits())
	// Both circuits share one registry, so identifiers compare directly.
	registry := NewRegistry()
	dagOne := circuit.ConstructDAG(one)
	dagTwo := circuit.ConstructDAG(two)
	repOne := p.preprocessCircuit(dagOne, inputs, registry)
	repTwo := p.preprocessCircuit(dagTwo, inputs, registry)
	//
	log.Debugf("preprocessing complete - elapsed time (ms) for this task: %d", p.stats.PreprocTime)
	//
	solver := bitvec.NewSolver()
	p.constructMiterInstance(repOne, repTwo, registry, solver)
	//
	log.Debugf("SAT construction complete - elapsed time (ms) for this task: %d", p.stats.SatConstructionTime)
	//
	result := p.isSatisfiable(solver)
	if result == bitvec.Unknown {
		return false, ErrSolverUnknown
	}
	//
	p.stats.Equivalent = result == bitvec.Unsat
	//
	return p.stats.Equivalent, nil
}

// CheckSatisfiability constructs the single-circuit encoding of a Clifford
// circuit over the given input states and records its satisfiability in the
// statistics.  Non-Clifford circuits yield ErrNotClifford; an inconclusive
// solver result yields ErrSolverUnknown with the satisfiable flag left
// false.
func (p *SatEncoder) CheckSatisfiability(qc *circuit.QuantumComputation, inputs []string) error {
	if !circuit.IsClifford(qc) {
		return ErrNotClifford
	}
	//
	p.stats.NumInputs = uint64(len(inputs))
	p.stats.NumQubits = uint64(qc.NQubits())
	//
	registry := NewRegistry()
	dag := circuit.ConstructDAG(qc)
	representation := p.preprocessCircuit(dag, inputs, registry)
	//
	log.Debugf("preprocessing complete - elapsed time (ms) for this task: %d", p.stats.PreprocTime)
	//
	solver := bitvec.NewSolver()
	p.constructSatInstance(representation, registry, solver)
	//
	log.Debugf("SAT construction complete - elapsed time (ms) for this task: %d", p.stats.SatConstructionTime)
	//
	if p.isSatisfiable(solver) == bitvec.Unknown {
		return ErrSolverUnknown
	}
	//
	return nil
}

// isSatisfiable runs the solver check, recording the solving time, the
// satisfiable flag and the backend statistics.
func (p *SatEncoder) isSatisfiable(solver *bitvec.Solver) bitvec.Result {
	log.Debug("starting SAT solving")
	//
	start := time.Now()
	result := solver.Check()
	p.stats.SolvingTime = time.Since(start).Milliseconds()
	//
	if result == bitvec.Sat {
		p.stats.Satisfiable = true
	}
	//
	p.stats.SolverStats = solver.Stats()
	//
	return result
}
