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
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lucasberent/qsatencoder/pkg/circuit"
	"github.com/lucasberent/qsatencoder/pkg/tableau"
)

// CircuitRepresentation is the outcome of preprocessing one circuit: the
// per-layer transitions between generator identifiers, together with the
// canonical keys of every identifier encountered along the way.
type CircuitRepresentation struct {
	// GeneratorMappings holds, for each layer, the transition prev -> next
	// taken by every tracked input state.  Keys are unique within a layer:
	// states that collapsed to the same generator necessarily transition
	// alike, since Clifford updates are deterministic.
	GeneratorMappings []map[GeneratorID]GeneratorID
	// IDGeneratorMap maps every identifier seen during this circuit's
	// preprocessing to its canonical key.
	IDGeneratorMap map[GeneratorID][]byte
}

// qstate pairs the evolving tableau of one input state with the identifier
// its generator was assigned after the previous layer.
type qstate struct {
	tab       *tableau.State
	prevGenID GeneratorID
}

// preprocessCircuit drives a bank of tableaux (one per input state) through
// the layers of the given DAG, interning the canonical generator of every
// tableau after every layer and recording the per-layer identifier
// transitions.  The registry is shared between the two circuits of an
// equivalence query; its input-generator count freezes after the first
// circuit has interned its level-0 generators.
func (p *SatEncoder) preprocessCircuit(dag circuit.DAG, inputs []string, registry *Registry) *CircuitRepresentation {
	start := time.Now()
	//
	nrOfQubits := uint(len(dag))
	nrOfLevels := dag.Depth()
	//
	if depth := uint64(nrOfLevels); depth > p.stats.CircuitDepth {
		p.stats.CircuitDepth = depth
	}
	//
	representation := &CircuitRepresentation{
		GeneratorMappings: make([]map[GeneratorID]GeneratorID, nrOfLevels),
		IDGeneratorMap:    make(map[GeneratorID][]byte),
	}
	//
	for k := range representation.GeneratorMappings {
		representation.GeneratorMappings[k] = make(map[GeneratorID]GeneratorID)
	}
	// One tableau per input state; no inputs means the all-zero state.
	var states []*qstate
	//
	if len(inputs) == 0 {
		states = []*qstate{{tab: tableau.New(nrOfQubits)}}
	} else {
		for _, input := range inputs {
			states = append(states, &qstate{tab: tableau.NewFromInput(nrOfQubits, input)})
		}
	}
	// Intern the level-0 generators.
	for _, state := range states {
		id, _ := registry.Intern(state.tab.LevelGenerator())
		key, _ := registry.Lookup(id)
		representation.IDGeneratorMap[id] = key
		state.prevGenID = id
	}
	// Identifiers allocated so far describe legal input states.
	registry.FreezeInputs()
	//
	for level := uint(0); level < nrOfLevels; level++ {
		for q := uint(0); q < nrOfQubits; q++ {
			if level >= uint(len(dag[q])) || dag[q][level] == nil {
				continue
			}
			//
			p.stats.NumGates++
			p.applyOperation(states, dag[q][level], q)
		}
		// Extract and intern the generator reached by every state.
		for _, state := range states {
			id, _ := registry.Intern(state.tab.LevelGenerator())
			key, _ := registry.Lookup(id)
			representation.IDGeneratorMap[id] = key
			representation.GeneratorMappings[level][state.prevGenID] = id
			state.prevGenID = id
		}
	}
	//
	p.stats.PreprocTime += time.Since(start).Milliseconds()
	//
	return representation
}

// applyOperation applies one DAG gate visit to every tracked tableau,
// decomposing derived Clifford gates into the H / S / CNOT primitives.  A
// CNOT is referenced from both of its rows and applied only when visited at
// the control.  The identity contributes no update, and unsupported gates are
// skipped.
func (p *SatEncoder) applyOperation(states []*qstate, op *circuit.Operation, qubit uint) {
	target := op.Target()
	//
	for _, state := range states {
		switch {
		case op.Type == circuit.H:
			state.tab.ApplyH(target)
		case op.Type == circuit.S:
			state.tab.ApplyS(target)
		case op.Type == circuit.Sdag: // Sdag = SSS
			state.tab.ApplyS(target)
			state.tab.ApplyS(target)
			state.tab.ApplyS(target)
		case op.Type == circuit.Z: // Z = HSSH
			state.tab.ApplyH(target)
			state.tab.ApplyS(target)
			state.tab.ApplyS(target)
			state.tab.ApplyH(target)
		case op.Type == circuit.X && !op.Controlled(): // X = HSS
			state.tab.ApplyH(target)
			state.tab.ApplyS(target)
			state.tab.ApplyS(target)
		case op.Type == circuit.Y: // Y = HSSS
			state.tab.ApplyH(target)
			state.tab.ApplyS(target)
			state.tab.ApplyS(target)
			state.tab.ApplyS(target)
		case op.Type == circuit.X && op.Controlled():
			// Referenced at control and target; act once, at the control.
			if qubit == op.Control() {
				state.tab.ApplyCNOT(op.Control(), target)
			}
		case op.Type == circuit.I:
			// no update
		default:
			log.Debugf("skipping unsupported operation %s", op.Type)
		}
	}
}
