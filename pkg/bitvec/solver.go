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
package bitvec

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	log "github.com/sirupsen/logrus"
)

// Result describes the outcome of a solver check.
type Result int

const (
	// Unknown indicates the solver could not decide the query.
	Unknown Result = iota
	// Sat indicates the asserted terms have a model.
	Sat
	// Unsat indicates the asserted terms have no model.
	Unsat
)

// String returns the conventional lower-case name of this result.
func (r Result) String() string {
	switch r {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	}
	//
	return "unknown"
}

// Solver couples a term context with a gini SAT solver instance.  Terms are
// built through the embedded context, asserted as roots, and decided by a
// single Check call.  A Solver is scoped to one query; there is no
// incremental reuse.
type Solver struct {
	*Context
	sat   *gini.Gini
	roots []z.Lit
	stats map[string]float64
}

// NewSolver creates a fresh solver with an empty term context.
func NewSolver() *Solver {
	return &Solver{
		Context: NewContext(),
		sat:     gini.New(),
		stats:   make(map[string]float64),
	}
}

// Assert requires the given term to hold in every model.
func (p *Solver) Assert(m z.Lit) {
	p.roots = append(p.roots, m)
}

// Assertions returns the number of terms asserted so far.
func (p *Solver) Assertions() uint {
	return uint(len(p.roots))
}

// Check lowers the accumulated terms to CNF and decides their joint
// satisfiability.  Statistics of the run are retained and can be read with
// Stats afterwards.
func (p *Solver) Check() Result {
	counter := &countingAdder{dst: p.sat}
	// Lower the full circuit, then pin roots with unit clauses.  The
	// constant variable is pinned first since Tseitinization leaves it
	// unconstrained.
	p.circuit.ToCnf(counter)
	counter.Add(p.circuit.T)
	counter.Add(z.LitNull)
	//
	for _, root := range p.roots {
		counter.Add(root)
		counter.Add(z.LitNull)
	}
	//
	verdict := p.sat.Solve()
	//
	result := Unknown
	switch verdict {
	case 1:
		result = Sat
	case -1:
		result = Unsat
	default:
		log.Warnf("solver returned inconclusive verdict %d", verdict)
	}
	//
	p.stats["vars"] = float64(p.sat.MaxVar())
	p.stats["clauses"] = float64(counter.clauses)
	p.stats["circuitNodes"] = float64(p.circuit.Len())
	p.stats["assertions"] = float64(len(p.roots))
	//
	return result
}

// Stats returns the named numeric statistics gathered by the last Check.
func (p *Solver) Stats() map[string]float64 {
	return p.stats
}

// countingAdder forwards clause literals to the underlying solver whilst
// counting clause terminators.
type countingAdder struct {
	dst     *gini.Gini
	clauses uint
}

// Add implements inter.Adder, forwarding to the solver.
func (p *countingAdder) Add(m z.Lit) {
	if m == z.LitNull {
		p.clauses++
	}
	//
	p.dst.Add(m)
}
