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
package tableau

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// State represents the stabilizer tableau of an n-qubit pure stabilizer
// state.  Row i encodes the stabilizer generator whose Pauli on qubit j is I
// if X[i][j]=Z[i][j]=0, X if (1,0), Z if (0,1) and Y if (1,1), with sign
// (-1)^r[i].  The matrices are held column-wise: x[j] (resp. z[j]) holds bit
// j of every row, so that a Clifford update on qubit j touches a constant
// number of bitsets regardless of n.
type State struct {
	n uint
	// x[j] holds column j of the X matrix, indexed by row.
	x []*bitset.BitSet
	// z[j] holds column j of the Z matrix, indexed by row.
	z []*bitset.BitSet
	// r holds the phase bit of every row (0 means +1, 1 means -1).
	r *bitset.BitSet
}

// New constructs the tableau of the all-zero computational state on n qubits,
// which is stabilised by Z_0 ... Z_{n-1}: X = 0, Z = Id_n, r = 0.
func New(n uint) *State {
	s := &State{
		n: n,
		x: make([]*bitset.BitSet, n),
		z: make([]*bitset.BitSet, n),
		r: bitset.New(n),
	}
	//
	for j := uint(0); j < n; j++ {
		s.x[j] = bitset.New(n)
		s.z[j] = bitset.New(n)
		s.z[j].Set(j)
	}
	//
	return s
}

// NewFromInput constructs the tableau of a product stabilizer state described
// by an input string over {z, Z, x, X, y, Y}.  Character i re-prepares qubit
// i; positions beyond the string length (and unrecognised characters) are
// treated as an implicit 'z'.  Characters at positions >= n are ignored.  An
// empty string denotes the all-zero state.
func NewFromInput(n uint, input string) *State {
	s := New(n)
	//
	for i, c := range input {
		q := uint(i)
		switch c {
		case 'Z': // stabilised by -Z, i.e. |1>
			s.ApplyH(q)
			s.ApplyS(q)
			s.ApplyS(q)
			s.ApplyH(q)
		case 'x': // stabilised by +X, i.e. |+>
			s.ApplyH(q)
		case 'X': // stabilised by -X, i.e. |->
			s.ApplyH(q)
			s.ApplyS(q)
			s.ApplyS(q)
		case 'y': // stabilised by +Y
			s.ApplyH(q)
			s.ApplyS(q)
		case 'Y': // stabilised by -Y
			s.ApplyH(q)
			s.ApplyS(q)
			s.ApplyS(q)
			s.ApplyS(q)
		}
	}
	//
	return s
}

// NQubits returns the number of qubits represented by this tableau.
func (s *State) NQubits() uint {
	return s.n
}

// ApplyH applies a Hadamard gate on the given target qubit to every row:
// r ^= x.z, then the X and Z columns of the target are exchanged.
// Out-of-range targets are ignored.
func (s *State) ApplyH(target uint) {
	if target >= s.n {
		return
	}
	//
	s.r.InPlaceSymmetricDifference(s.x[target].Intersection(s.z[target]))
	s.x[target], s.z[target] = s.z[target], s.x[target]
}

// ApplyS applies a phase gate on the given target qubit to every row:
// r ^= x.z, then z ^= x.  Out-of-range targets are ignored.
func (s *State) ApplyS(target uint) {
	if target >= s.n {
		return
	}
	//
	s.r.InPlaceSymmetricDifference(s.x[target].Intersection(s.z[target]))
	s.z[target].InPlaceSymmetricDifference(s.x[target])
}

// ApplyCNOT applies a controlled-NOT with the given control and target qubits
// to every row: r ^= x_c.z_t.(x_t ^ z_c ^ 1), then x_t ^= x_c and z_c ^= z_t.
// Out-of-range indices are ignored.
func (s *State) ApplyCNOT(control uint, target uint) {
	if target >= s.n || control >= s.n {
		return
	}
	// Phase update reads the columns before they are modified.
	phase := s.x[control].Intersection(s.z[target])
	phase.InPlaceIntersection(s.x[target].SymmetricDifference(s.z[control]).Complement())
	s.r.InPlaceSymmetricDifference(phase)
	//
	s.x[target].InPlaceSymmetricDifference(s.x[control])
	s.z[control].InPlaceSymmetricDifference(s.z[target])
}

// LevelGenerator extracts the canonical key of this tableau: for each row in
// row order, n X bits followed by n Z bits followed by the phase bit, packed
// into a compact byte string.  Bitwise-equal tableaux produce identical keys
// and distinct tableaux produce distinct keys, so the result can be used
// directly as a map key.
func (s *State) LevelGenerator() []byte {
	rowBits := 2*s.n + 1
	rowBytes := (rowBits + 7) / 8
	key := make([]byte, s.n*rowBytes)
	//
	for i := uint(0); i < s.n; i++ {
		row := key[i*rowBytes:]
		for j := uint(0); j < s.n; j++ {
			if s.x[j].Test(i) {
				row[j/8] |= 1 << (j % 8)
			}
			if s.z[j].Test(i) {
				k := s.n + j
				row[k/8] |= 1 << (k % 8)
			}
		}
		if s.r.Test(i) {
			k := 2 * s.n
			row[k/8] |= 1 << (k % 8)
		}
	}
	//
	return key
}

// Clone creates a true copy of this tableau which shares no state with the
// original.
func (s *State) Clone() *State {
	c := &State{
		n: s.n,
		x: make([]*bitset.BitSet, s.n),
		z: make([]*bitset.BitSet, s.n),
		r: s.r.Clone(),
	}
	//
	for j := uint(0); j < s.n; j++ {
		c.x[j] = s.x[j].Clone()
		c.z[j] = s.z[j].Clone()
	}
	//
	return c
}

// Equal checks whether two tableaux are bitwise equal.
func (s *State) Equal(other *State) bool {
	if s.n != other.n || !s.r.Equal(other.r) {
		return false
	}
	//
	for j := uint(0); j < s.n; j++ {
		if !s.x[j].Equal(other.x[j]) || !s.z[j].Equal(other.z[j]) {
			return false
		}
	}
	//
	return true
}

// String produces a human-readable dump of the tableau with one row per
// generator, in the form "xxx|zzz|r".  Useful for debugging only.
func (s *State) String() string {
	var builder strings.Builder
	//
	for i := uint(0); i < s.n; i++ {
		for j := uint(0); j < s.n; j++ {
			builder.WriteByte(bitChar(s.x[j].Test(i)))
		}
		builder.WriteByte('|')
		for j := uint(0); j < s.n; j++ {
			builder.WriteByte(bitChar(s.z[j].Test(i)))
		}
		builder.WriteByte('|')
		builder.WriteByte(bitChar(s.r.Test(i)))
		builder.WriteByte('\n')
	}
	//
	return builder.String()
}

func bitChar(bit bool) byte {
	if bit {
		return '1'
	}
	return '0'
}
