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
	"errors"
	"os"
	"reflect"
	"testing"

	"github.com/lucasberent/qsatencoder/pkg/circuit"
)

func Test_Encoder_EmptyCircuits(t *testing.T) {
	one := circuit.NewQuantumComputation(1)
	two := circuit.NewQuantumComputation(1)
	//
	equal, err := NewSatEncoder().TestEqual(one, two, nil)
	//
	if equal {
		t.Errorf("empty circuits reported equivalent")
	}
	//
	if !errors.Is(err, ErrEmptyCircuit) {
		t.Errorf("expected ErrEmptyCircuit, got %v", err)
	}
	// One empty circuit suffices for rejection.
	two.H(0)
	//
	if _, err := NewSatEncoder().TestEqual(one, two, nil); !errors.Is(err, ErrEmptyCircuit) {
		t.Errorf("expected ErrEmptyCircuit, got %v", err)
	}
}

func Test_Encoder_HHIdentity(t *testing.T) {
	// H.H == H.H.H.H on the all-zero state.
	one := circuit.NewQuantumComputation(1)
	one.H(0)
	one.H(0)
	//
	two := circuit.NewQuantumComputation(1)
	for i := 0; i < 4; i++ {
		two.H(0)
	}
	//
	checkEqual(t, one, two, nil, true)
}

func Test_Encoder_HOddPowers(t *testing.T) {
	// H == H.H.H on the all-zero state.
	one := circuit.NewQuantumComputation(1)
	one.H(0)
	//
	two := circuit.NewQuantumComputation(1)
	for i := 0; i < 3; i++ {
		two.H(0)
	}
	//
	checkEqual(t, one, two, nil, true)
}

func Test_Encoder_HvsS(t *testing.T) {
	one := circuit.NewQuantumComputation(1)
	one.H(0)
	//
	two := circuit.NewQuantumComputation(1)
	two.S(0)
	//
	checkEqual(t, one, two, []string{"z"}, false)
}

func Test_Encoder_CNOTCNOTIdentity(t *testing.T) {
	// An identity circuit against a double CNOT, over all four X/Z basis
	// product inputs.
	one := circuit.NewQuantumComputation(2)
	one.I(0)
	//
	two := circuit.NewQuantumComputation(2)
	two.CX(0, 1)
	two.CX(0, 1)
	//
	inputs := []string{"zz", "zx", "xz", "xx"}
	enc := NewSatEncoder()
	//
	equal, err := enc.TestEqual(one, two, inputs)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if !equal {
		t.Errorf("double CNOT not equivalent to identity")
	}
	// Preprocessing visits the identity once and each CNOT twice.
	stats := enc.Stats()
	checkStat(t, "numGates", stats.NumGates, 5)
	checkStat(t, "circDepth", stats.CircuitDepth, 2)
	checkStat(t, "numInputs", stats.NumInputs, 4)
	checkStat(t, "nrOfQubits", stats.NumQubits, 2)
	// Four input generators plus the three new ones reached mid-circuit.
	checkStat(t, "numGenerators", stats.NumGenerators, 7)
	// Two layer boundaries for the identity, three for the double CNOT.
	checkStat(t, "numSatVarsCreated", stats.NumSatVars, 5)
	// Four transitions per layer.
	checkStat(t, "numFuncConstr", stats.NumFunctionalConstr, 12)
	// Equivalent queries leave the satisfiable flag untouched.
	if !stats.Equivalent || stats.Satisfiable {
		t.Errorf("unexpected verdict flags (%t, %t)", stats.Equivalent, stats.Satisfiable)
	}
}

func Test_Encoder_ZvsHSSH(t *testing.T) {
	// The Z gate against its own decomposition, over all six stabilizer
	// inputs.
	one := circuit.NewQuantumComputation(1)
	one.Z(0)
	//
	two := circuit.NewQuantumComputation(1)
	two.H(0)
	two.S(0)
	two.S(0)
	two.H(0)
	//
	checkEqual(t, one, two, []string{"z", "Z", "x", "X", "y", "Y"}, true)
}

func Test_Encoder_SdagVsSSS(t *testing.T) {
	one := circuit.NewQuantumComputation(1)
	one.Sdag(0)
	//
	two := circuit.NewQuantumComputation(1)
	two.S(0)
	two.S(0)
	two.S(0)
	//
	checkEqual(t, one, two, []string{"z", "Z", "x", "X", "y", "Y"}, true)
}

func Test_Encoder_ZvsIdentity(t *testing.T) {
	// Z differs from the identity on the Z-basis inputs.  Here every
	// interned generator is an input generator and their count is a power
	// of two, so the input restriction clauses restrict nothing.
	one := circuit.NewQuantumComputation(1)
	one.Z(0)
	//
	two := circuit.NewQuantumComputation(1)
	two.I(0)
	//
	checkEqual(t, one, two, []string{"z", "Z"}, false)
}

func Test_Encoder_NonClifford(t *testing.T) {
	one := circuit.NewQuantumComputation(1)
	one.H(0)
	//
	two := circuit.NewQuantumComputation(1)
	two.T(0)
	//
	enc := NewSatEncoder()
	equal, err := enc.TestEqual(one, two, nil)
	//
	if equal {
		t.Errorf("non-Clifford circuit reported equivalent")
	}
	//
	if !errors.Is(err, ErrNotClifford) {
		t.Errorf("expected ErrNotClifford, got %v", err)
	}
	// The solver must not have been touched.
	stats := enc.Stats()
	checkStat(t, "numSatVarsCreated", stats.NumSatVars, 0)
	//
	if stats.SolverStats != nil {
		t.Errorf("solver statistics present despite rejection")
	}
}

func Test_Encoder_CheckSatisfiability(t *testing.T) {
	// The implication encoding of any circuit has a model following the
	// generator trajectory.
	qc := circuit.NewQuantumComputation(1)
	qc.H(0)
	//
	enc := NewSatEncoder()
	//
	if err := enc.CheckSatisfiability(qc, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	stats := enc.Stats()
	//
	if !stats.Satisfiable {
		t.Errorf("trajectory encoding reported unsatisfiable")
	}
	//
	checkStat(t, "numGenerators", stats.NumGenerators, 2)
	checkStat(t, "numSatVarsCreated", stats.NumSatVars, 2)
	checkStat(t, "numFuncConstr", stats.NumFunctionalConstr, 1)
}

func Test_Encoder_CheckSatisfiabilityNonClifford(t *testing.T) {
	qc := circuit.NewQuantumComputation(1)
	qc.T(0)
	//
	if err := NewSatEncoder().CheckSatisfiability(qc, nil); !errors.Is(err, ErrNotClifford) {
		t.Errorf("expected ErrNotClifford, got %v", err)
	}
}

func Test_Encoder_QasmFiles(t *testing.T) {
	// Two preparations of a Bell pair, one with a redundant H pair.
	one := readCircuit(t, "../../testdata/bell_pair.qasm")
	two := readCircuit(t, "../../testdata/bell_pair_alt.qasm")
	//
	checkEqual(t, one, two, []string{"zz", "xx"}, true)
	// The z gate against its decomposition.
	one = readCircuit(t, "../../testdata/z_gate.qasm")
	two = readCircuit(t, "../../testdata/z_decomposed.qasm")
	//
	checkEqual(t, one, two, []string{"z", "Z", "x", "X", "y", "Y"}, true)
}

func Test_Encoder_Registry(t *testing.T) {
	registry := NewRegistry()
	//
	idA, fresh := registry.Intern([]byte{0x01})
	if !fresh || idA != 0 {
		t.Errorf("first intern yielded (%d, %t)", idA, fresh)
	}
	//
	idB, fresh := registry.Intern([]byte{0x02})
	if !fresh || idB != 1 {
		t.Errorf("second intern yielded (%d, %t)", idB, fresh)
	}
	// Interning again must return the same identifier without growth.
	for i := 0; i < 3; i++ {
		id, fresh := registry.Intern([]byte{0x01})
		if fresh || id != idA {
			t.Errorf("re-intern yielded (%d, %t)", id, fresh)
		}
	}
	//
	if registry.Size() != 2 {
		t.Errorf("unexpected registry size %d", registry.Size())
	}
	//
	if key, ok := registry.Lookup(idB); !ok || key[0] != 0x02 {
		t.Errorf("lookup of %d yielded (%v, %t)", idB, key, ok)
	}
	//
	if _, ok := registry.Lookup(GeneratorID(5)); ok {
		t.Errorf("lookup of unallocated identifier succeeded")
	}
	// Freezing captures the size once and only once.
	registry.FreezeInputs()
	registry.Intern([]byte{0x03})
	registry.FreezeInputs()
	//
	if registry.NumInputGenerators() != 2 {
		t.Errorf("unexpected input generator count %d", registry.NumInputGenerators())
	}
}

func Test_Encoder_Preprocess(t *testing.T) {
	qc := circuit.NewQuantumComputation(1)
	qc.H(0)
	qc.H(0)
	//
	enc := NewSatEncoder()
	registry := NewRegistry()
	rep := enc.preprocessCircuit(circuit.ConstructDAG(qc), nil, registry)
	//
	if len(rep.GeneratorMappings) != 2 {
		t.Fatalf("unexpected layer count %d", len(rep.GeneratorMappings))
	}
	// |0> flips to |+> and back.
	checkMapping(t, rep, 0, 0, 1)
	checkMapping(t, rep, 1, 1, 0)
	//
	if registry.Size() != 2 {
		t.Errorf("unexpected registry size %d", registry.Size())
	}
	//
	if registry.NumInputGenerators() != 1 {
		t.Errorf("unexpected input generator count %d", registry.NumInputGenerators())
	}
	//
	if len(rep.IDGeneratorMap) != 2 {
		t.Errorf("unexpected id map size %d", len(rep.IDGeneratorMap))
	}
}

func Test_Encoder_PreprocessCollapsedInputs(t *testing.T) {
	// Duplicate input states collapse to one tracked identifier, and the
	// per-layer mapping holds a single transition for them.
	qc := circuit.NewQuantumComputation(2)
	qc.H(0)
	//
	enc := NewSatEncoder()
	registry := NewRegistry()
	rep := enc.preprocessCircuit(circuit.ConstructDAG(qc), []string{"zz", "zz", "zz"}, registry)
	//
	if registry.NumInputGenerators() != 1 {
		t.Errorf("unexpected input generator count %d", registry.NumInputGenerators())
	}
	//
	if entries := len(rep.GeneratorMappings[0]); entries != 1 {
		t.Errorf("collapsed states produced %d transitions", entries)
	}
}

func Test_Encoder_StatisticsRoundTrip(t *testing.T) {
	stats := Statistics{
		NumGates:            17,
		NumQubits:           3,
		NumSatVars:          9,
		NumGenerators:       12,
		NumFunctionalConstr: 30,
		CircuitDepth:        5,
		NumInputs:           4,
		Equivalent:          true,
		Satisfiable:         false,
		PreprocTime:         12,
		SolvingTime:         345,
		SatConstructionTime: 6,
		SolverStats:         map[string]float64{"vars": 100, "clauses": 250.5},
	}
	//
	data, err := stats.ToJSON()
	if err != nil {
		t.Fatalf("marshalling failed: %v", err)
	}
	//
	var restored Statistics
	//
	if err := restored.FromJSON(data); err != nil {
		t.Fatalf("unmarshalling failed: %v", err)
	}
	//
	if !reflect.DeepEqual(stats, restored) {
		t.Errorf("round trip mismatch: %v vs %v", stats, restored)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkEqual(t *testing.T, one *circuit.QuantumComputation, two *circuit.QuantumComputation,
	inputs []string, expected bool) {
	t.Helper()
	//
	equal, err := NewSatEncoder().TestEqual(one, two, inputs)
	//
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if equal != expected {
		t.Errorf("unexpected verdict %t (expected %t)", equal, expected)
	}
}

func readCircuit(t *testing.T, filename string) *circuit.QuantumComputation {
	t.Helper()
	//
	bytes, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading %s: %v", filename, err)
	}
	//
	qc, err := circuit.Parse(string(bytes))
	if err != nil {
		t.Fatalf("parsing %s: %v", filename, err)
	}
	//
	return qc
}

func checkStat(t *testing.T, name string, actual uint64, expected uint64) {
	t.Helper()
	//
	if actual != expected {
		t.Errorf("unexpected %s %d (expected %d)", name, actual, expected)
	}
}

func checkMapping(t *testing.T, rep *CircuitRepresentation, layer int, from GeneratorID, to GeneratorID) {
	t.Helper()
	//
	if next, ok := rep.GeneratorMappings[layer][from]; !ok || next != to {
		t.Errorf("layer %d maps %d to (%d, %t), expected %d", layer, from, next, ok, to)
	}
}
