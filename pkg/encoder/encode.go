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
package encoder

import (
	"fmt"
	"math/bits"
	"sort"
	"time"

	"github.com/lucasberent/qsatencoder/pkg/bitvec"
)

// sortedKeys returns the keys of layer in ascending order.
func sortedKeys(layer map[GeneratorID]GeneratorID) []GeneratorID {
	keys := make([]GeneratorID, 0, len(layer))
	for k := range layer {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// bitwidth returns the number of bits needed to encode m distinct
// identifiers, which is always at least one.
func bitwidth(m uint) uint {
	if m <= 2 {
		return 1
	}
	//
	return uint(bits.Len(uint(m - 1)))
}

// constructSatInstance encodes a single circuit representation for a
// satisfiability query.  One bit-vector variable is created per layer
// boundary and each transition (from -> to) of layer k contributes the
// implication (x^k = from) => (x^k+1 = to).  Since transition keys are unique
// within a layer, the implication form already pins a functional trajectory.
func (p *SatEncoder) constructSatInstance(representation *CircuitRepresentation,
	registry *Registry, solver *bitvec.Solver) {
	start := time.Now()
	//
	generatorCnt := registry.Size()
	p.stats.NumGenerators = uint64(generatorCnt)
	//
	width := bitwidth(generatorCnt)
	//
	vars := p.layerVariables(representation, solver, width, "x^")
	//
	for level, layer := range representation.GeneratorMappings {
		for _, from := range sortedKeys(layer) {
			to := layer[from]
			left := solver.EqConst(vars[level], uint64(from))
			right := solver.EqConst(vars[level+1], uint64(to))
			solver.Assert(solver.Implies(left, right))
			p.stats.NumFunctionalConstr++
		}
	}
	//
	p.blockIllegalValues(solver, vars, generatorCnt, width)
	//
	p.stats.SatConstructionTime = time.Since(start).Milliseconds()
}

// constructMiterInstance encodes two circuit representations over a shared
// registry as a miter: each circuit's trajectory is pinned with per-layer
// biconditionals, the symbolic inputs are equated and restricted to
// identifiers of legal input states, and the outputs are required to differ.
// The instance is unsatisfiable iff the circuits agree on every represented
// input.
func (p *SatEncoder) constructMiterInstance(one *CircuitRepresentation, two *CircuitRepresentation,
	registry *Registry, solver *bitvec.Solver) {
	start := time.Now()
	//
	generatorCnt := registry.Size()
	p.stats.NumGenerators = uint64(generatorCnt)
	//
	width := bitwidth(generatorCnt)
	//
	varsOne := p.encodeCircuit(one, solver, width, generatorCnt, "x^")
	varsTwo := p.encodeCircuit(two, solver, width, generatorCnt, "x'^")
	// Same symbolic input generator, disagreeing outputs.
	equalInputs := solver.Eq(varsOne[0], varsTwo[0])
	unequalOutputs := solver.Eq(varsOne[len(varsOne)-1], varsTwo[len(varsTwo)-1]).Not()
	// Restrict inputs to identifiers that describe legal input states.
	nrOfInputs := uint64(registry.NumInputGenerators())
	inputOne := solver.Ult(varsOne[0], nrOfInputs)
	inputTwo := solver.Ult(varsTwo[0], nrOfInputs)
	//
	solver.Assert(equalInputs)
	solver.Assert(unequalOutputs)
	solver.Assert(inputOne)
	solver.Assert(inputTwo)
	//
	p.stats.SatConstructionTime = time.Since(start).Milliseconds()
}

// encodeCircuit emits the biconditional transition constraints and blocking
// constraints of one circuit within a miter, returning its layer variables.
func (p *SatEncoder) encodeCircuit(representation *CircuitRepresentation, solver *bitvec.Solver,
	width uint, generatorCnt uint, prefix string) []bitvec.Vector {
	vars := p.layerVariables(representation, solver, width, prefix)
	//
	for level, layer := range representation.GeneratorMappings {
		for _, from := range sortedKeys(layer) {
			to := layer[from]
			left := solver.EqConst(vars[level], uint64(from))
			right := solver.EqConst(vars[level+1], uint64(to))
			solver.Assert(solver.Iff(left, right))
			p.stats.NumFunctionalConstr++
		}
	}
	//
	p.blockIllegalValues(solver, vars, generatorCnt, width)
	//
	return vars
}

// layerVariables creates one bit-vector variable per layer boundary of the
// given representation.
func (p *SatEncoder) layerVariables(representation *CircuitRepresentation, solver *bitvec.Solver,
	width uint, prefix string) []bitvec.Vector {
	depth := len(representation.GeneratorMappings)
	vars := make([]bitvec.Vector, depth+1)
	//
	for k := 0; k <= depth; k++ {
		vars[k] = solver.NewVector(fmt.Sprintf("%s%d", prefix, k), width)
		p.stats.NumSatVars++
	}
	//
	return vars
}

// blockIllegalValues adds "var < m" for every layer variable whenever 2^width
// exceeds the generator count m (including m = 1), excluding bit patterns with
// no corresponding identifier.
func (p *SatEncoder) blockIllegalValues(solver *bitvec.Solver, vars []bitvec.Vector,
	generatorCnt uint, width uint) {
	if uint64(1)<<width == uint64(generatorCnt) {
		return
	}
	//
	for _, v := range vars {
		solver.Assert(solver.Ult(v, uint64(generatorCnt)))
	}
}
