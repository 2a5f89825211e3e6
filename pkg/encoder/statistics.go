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
	"encoding/json"
	"fmt"
	"strings"
)

// Statistics collects the measurable facts of one equivalence or
// satisfiability query.  The JSON field names form a fixed schema consumed by
// external benchmark tooling and must not change.  All timings are integer
// milliseconds.
type Statistics struct {
	// NumGates counts gate visits during preprocessing.  A CNOT is visited
	// from both its control and target row and hence counted twice.
	NumGates uint64 `json:"numGates"`
	// NumQubits is the qubit count of the (first) query circuit.
	NumQubits uint64 `json:"nrOfQubits"`
	// NumSatVars counts the bit-vector variables created by the encoder.
	NumSatVars uint64 `json:"numSatVarsCreated"`
	// NumGenerators is the total number of distinct generators interned.
	NumGenerators uint64 `json:"numGenerators"`
	// NumFunctionalConstr counts the per-layer transition constraints.
	NumFunctionalConstr uint64 `json:"numFuncConstr"`
	// CircuitDepth is the largest layer count seen across preprocessing
	// passes.
	CircuitDepth uint64 `json:"circDepth"`
	// NumInputs is the number of input states given in the query.  Repeated
	// entries are each counted; duplicates are not removed.
	NumInputs uint64 `json:"numInputs"`
	// Equivalent records the verdict of an equivalence query.
	Equivalent bool `json:"equivalent"`
	// Satisfiable records whether the constructed instance has a model.
	Satisfiable bool `json:"satisfiable"`
	// PreprocTime accumulates preprocessing time across both circuits.
	PreprocTime int64 `json:"preprocTime"`
	// SolvingTime is the time spent inside the solver check.
	SolvingTime int64 `json:"solvingTime"`
	// SatConstructionTime is the time spent constructing the instance.
	SatConstructionTime int64 `json:"satConstructionTime"`
	// SolverStats holds named numeric statistics reported by the solver
	// backend.
	SolverStats map[string]float64 `json:"z3map"`
}

// ToJSON serialises these statistics under the fixed schema.
func (p *Statistics) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// FromJSON populates these statistics from their JSON form, such that
// FromJSON(ToJSON(s)) reproduces s exactly.
func (p *Statistics) FromJSON(data []byte) error {
	return json.Unmarshal(data, p)
}

// String produces a one-line human-readable summary.
func (p *Statistics) String() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "%d gates, ", p.NumGates)
	fmt.Fprintf(&builder, "%d qubits, ", p.NumQubits)
	fmt.Fprintf(&builder, "%d sat variables, ", p.NumSatVars)
	fmt.Fprintf(&builder, "%d generators, ", p.NumGenerators)
	fmt.Fprintf(&builder, "%d functional constraints, ", p.NumFunctionalConstr)
	fmt.Fprintf(&builder, "%d depth, ", p.CircuitDepth)
	fmt.Fprintf(&builder, "%d input states, ", p.NumInputs)
	fmt.Fprintf(&builder, "%t equivalent, ", p.Equivalent)
	fmt.Fprintf(&builder, "%t satisfiable, ", p.Satisfiable)
	fmt.Fprintf(&builder, "%dms preprocessing, ", p.PreprocTime)
	fmt.Fprintf(&builder, "%dms solving, ", p.SolvingTime)
	fmt.Fprintf(&builder, "%dms SAT instance construction", p.SatConstructionTime)
	//
	return builder.String()
}
