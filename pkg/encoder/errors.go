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

import "errors"

var (
	// ErrNotClifford is returned when a query circuit contains a gate
	// outside the Clifford set and, hence, cannot be encoded.
	ErrNotClifford = errors.New("circuit is not a Clifford circuit")
	// ErrEmptyCircuit is returned when a query circuit contains no
	// operations at all.
	ErrEmptyCircuit = errors.New("circuit contains no operations")
	// ErrSolverUnknown is returned when the solver cannot decide a query.
	// No equivalence claim may be derived from it.
	ErrSolverUnknown = errors.New("solver returned unknown")
)
