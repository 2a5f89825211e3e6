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

// Package bitvec provides the fragment of bit-vector logic needed to encode
// generator transition systems: fixed-width variables, equality with
// constants and other vectors, unsigned comparison against constants,
// implication and biconditional.  Terms are combinational circuit nodes
// (github.com/go-air/gini/logic) which are lowered to CNF and decided by the
// gini SAT solver.
package bitvec

import (
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Vector is a fixed-width bit-vector term over a Context, held least
// significant bit first.
type Vector struct {
	name string
	bits []z.Lit
}

// Name returns the name this vector was declared under.
func (p Vector) Name() string {
	return p.name
}

// Width returns the number of bits of this vector.
func (p Vector) Width() uint {
	return uint(len(p.bits))
}

// Context builds bit-vector terms as nodes of a combinational circuit.
type Context struct {
	circuit *logic.C
	// Number of vector variables declared so far.
	nvars uint
}

// NewContext creates an empty term context.
func NewContext() *Context {
	return &Context{circuit: logic.NewC()}
}

// NewVector declares a fresh bit-vector variable of the given width.  Width
// zero vectors are not representable; callers must request at least one bit.
func (p *Context) NewVector(name string, width uint) Vector {
	bits := make([]z.Lit, width)
	//
	for i := range bits {
		bits[i] = p.circuit.Lit()
	}
	//
	p.nvars++
	//
	return Vector{name: name, bits: bits}
}

// Vars returns the number of vector variables declared in this context.
func (p *Context) Vars() uint {
	return p.nvars
}

// EqConst builds the term "v = value".  Bits of value at or above the width
// of v must be zero.
func (p *Context) EqConst(v Vector, value uint64) z.Lit {
	eq := p.circuit.T
	//
	for i, bit := range v.bits {
		if value&(1<<uint(i)) != 0 {
			eq = p.circuit.And(eq, bit)
		} else {
			eq = p.circuit.And(eq, bit.Not())
		}
	}
	//
	return eq
}

// Eq builds the term "a = b" for two vectors of identical width.
func (p *Context) Eq(a Vector, b Vector) z.Lit {
	eq := p.circuit.T
	//
	for i, bit := range a.bits {
		eq = p.circuit.And(eq, p.circuit.Xor(bit, b.bits[i]).Not())
	}
	//
	return eq
}

// Ult builds the term "v < bound" under unsigned interpretation, for a
// constant bound.  Folding from the least significant bit upwards, the vector
// is below the bound iff the current bit is below the bound's bit, or equal
// to it and the remainder already below.
func (p *Context) Ult(v Vector, bound uint64) z.Lit {
	// A bound beyond the representable range is no restriction at all.
	if width := uint(len(v.bits)); width < 64 && bound >= 1<<width {
		return p.circuit.T
	}
	//
	lt := p.circuit.F
	//
	for i, bit := range v.bits {
		if bound&(1<<uint(i)) != 0 {
			lt = p.circuit.Or(bit.Not(), lt)
		} else {
			lt = p.circuit.And(bit.Not(), lt)
		}
	}
	//
	return lt
}

// Implies builds the term "a => b".
func (p *Context) Implies(a z.Lit, b z.Lit) z.Lit {
	return p.circuit.Implies(a, b)
}

// Iff builds the term "a <=> b".
func (p *Context) Iff(a z.Lit, b z.Lit) z.Lit {
	return p.circuit.Xor(a, b).Not()
}

// And builds the term "a and b".
func (p *Context) And(a z.Lit, b z.Lit) z.Lit {
	return p.circuit.And(a, b)
}

// Not negates a term.
func (p *Context) Not(a z.Lit) z.Lit {
	return a.Not()
}
