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

// GeneratorID is a dense identifier allocated by a Registry for a distinct
// canonical generator.  Identifiers of generators interned through the same
// registry compare directly, which is what makes a miter over two circuits
// meaningful.
type GeneratorID uint

// Registry maintains a bijection between canonical generator keys and dense
// identifiers starting at zero.  It grows monotonically: an identifier, once
// allocated, is never reassigned.  A registry is scoped to a single query and
// shared by the preprocessing passes of both circuits; the encoder only ever
// reads it.
type Registry struct {
	ids  map[string]GeneratorID
	keys [][]byte
	// Number of identifiers allocated when the first circuit finished
	// interning its level-0 generators.  Only these identifiers describe
	// legal input states.
	inputGenerators uint
	frozen          bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]GeneratorID)}
}

// Intern returns the identifier of the given canonical key, allocating a
// fresh one on first sight.  The second result is true iff this call
// performed the allocation.
func (p *Registry) Intern(key []byte) (GeneratorID, bool) {
	if id, ok := p.ids[string(key)]; ok {
		return id, false
	}
	//
	id := GeneratorID(len(p.keys))
	p.ids[string(key)] = id
	p.keys = append(p.keys, key)
	//
	return id, true
}

// Lookup returns the canonical key behind a previously interned identifier.
func (p *Registry) Lookup(id GeneratorID) ([]byte, bool) {
	if uint(id) >= uint(len(p.keys)) {
		return nil, false
	}
	//
	return p.keys[id], true
}

// Size returns the number of identifiers allocated so far.
func (p *Registry) Size() uint {
	return uint(len(p.keys))
}

// FreezeInputs snapshots the current size as the number of input generators.
// Only the first call has an effect; the preprocessor invokes it after
// interning the level-0 generators of each circuit, so the snapshot captures
// exactly the identifiers describing legal input states.
func (p *Registry) FreezeInputs() {
	if !p.frozen {
		p.inputGenerators = p.Size()
		p.frozen = true
	}
}

// NumInputGenerators returns the number of identifiers corresponding to
// legal input states, as captured by FreezeInputs.
func (p *Registry) NumInputGenerators() uint {
	return p.inputGenerators
}
