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
package circuit

// DAG is the per-qubit view of a circuit: entry q is the ordered list of gate
// references touching qubit q.  Entries can be nil, denoting that the qubit
// idles at that position.  A CNOT is referenced from both its control and its
// target row at the same position, which consumers deduplicate by acting only
// at the control.
type DAG [][]*Operation

// Depth returns the length of the longest per-qubit gate list.
func (p DAG) Depth() uint {
	depth := uint(0)
	//
	for _, ops := range p {
		if n := uint(len(ops)); n > depth {
			depth = n
		}
	}
	//
	return depth
}

// ConstructDAG builds the per-qubit DAG of the given circuit.  Single-qubit
// gates are appended to their target row.  Multi-qubit gates first pad the
// rows of every involved qubit with nil entries to a common length, ensuring
// the gate is referenced at the same position in each row.
func ConstructDAG(qc *QuantumComputation) DAG {
	dag := make(DAG, qc.NQubits())
	//
	for _, op := range qc.Operations() {
		qubits := make([]uint, 0, len(op.Targets)+len(op.Controls))
		qubits = append(qubits, op.Targets...)
		qubits = append(qubits, op.Controls...)
		// Align involved rows so the gate lands on one shared level.
		if len(qubits) > 1 {
			level := 0
			for _, q := range qubits {
				if n := len(dag[q]); n > level {
					level = n
				}
			}
			for _, q := range qubits {
				for len(dag[q]) < level {
					dag[q] = append(dag[q], nil)
				}
			}
		}
		//
		for _, q := range qubits {
			dag[q] = append(dag[q], op)
		}
	}
	//
	return dag
}
