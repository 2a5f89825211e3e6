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

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for the OpenQASM subset accepted by Parse.
var (
	qregRegex       = regexp.MustCompile(`^qreg\s+\w+\[(\d+)\]$`)
	cregRegex       = regexp.MustCompile(`^creg\s+\w+\[(\d+)\]$`)
	singleGateRegex = regexp.MustCompile(`^(\w+)\s+\w+\[(\d+)\]$`)
	twoQubitRegex   = regexp.MustCompile(`^(\w+)\s+\w+\[(\d+)\]\s*,\s*\w+\[(\d+)\]$`)
)

// Parse reads a circuit from a restricted OpenQASM 2 dialect: a single qreg
// declaration followed by applications of the gates id, h, s, sdg, x, y, z, t
// and cx.  Gate names are matched case-insensitively, and "i" and "cnot" are
// accepted as aliases of id and cx.  The version header, include lines, creg
// declarations, comments and blank lines are accepted and ignored.  Anything
// else is a parse error.
func Parse(source string) (*QuantumComputation, error) {
	var qc *QuantumComputation
	//
	for num, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		// Strip trailing comment (if any).
		if i := strings.Index(line, "//"); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		//
		if line == "" || isHeader(line) {
			continue
		}
		//
		line = strings.TrimSuffix(line, ";")
		//
		if m := qregRegex.FindStringSubmatch(line); m != nil {
			if qc != nil {
				return nil, parseError(num, "duplicate qreg declaration")
			}
			n, _ := strconv.ParseUint(m[1], 10, 32)
			qc = NewQuantumComputation(uint(n))
			continue
		}
		if cregRegex.MatchString(line) {
			continue
		}
		if qc == nil {
			return nil, parseError(num, "gate before qreg declaration")
		}
		if err := parseGate(qc, num, line); err != nil {
			return nil, err
		}
	}
	//
	if qc == nil {
		return nil, fmt.Errorf("missing qreg declaration")
	}
	//
	return qc, nil
}

// Check whether a given line is part of the (ignored) OpenQASM preamble.
func isHeader(line string) bool {
	return strings.HasPrefix(line, "OPENQASM") || strings.HasPrefix(line, "include")
}

// Parse a single gate statement into the given circuit.
func parseGate(qc *QuantumComputation, num int, line string) error {
	if m := twoQubitRegex.FindStringSubmatch(line); m != nil {
		if name := strings.ToLower(m[1]); name != "cx" && name != "cnot" {
			return parseError(num, "unsupported two-qubit gate %q", m[1])
		}
		control, err := parseQubit(qc, num, m[2])
		if err != nil {
			return err
		}
		target, err := parseQubit(qc, num, m[3])
		if err != nil {
			return err
		}
		if control == target {
			return parseError(num, "control and target coincide")
		}
		qc.CX(control, target)
		//
		return nil
	}
	//
	if m := singleGateRegex.FindStringSubmatch(line); m != nil {
		target, err := parseQubit(qc, num, m[2])
		if err != nil {
			return err
		}
		//
		switch strings.ToLower(m[1]) {
		case "id", "i":
			qc.I(target)
		case "h":
			qc.H(target)
		case "s":
			qc.S(target)
		case "sdg":
			qc.Sdag(target)
		case "x":
			qc.X(target)
		case "y":
			qc.Y(target)
		case "z":
			qc.Z(target)
		case "t":
			qc.T(target)
		default:
			return parseError(num, "unsupported gate %q", m[1])
		}
		//
		return nil
	}
	//
	return parseError(num, "malformed statement %q", line)
}

// Parse a qubit index, checking it lies within the declared register.
func parseQubit(qc *QuantumComputation, num int, text string) (uint, error) {
	q, err := strconv.ParseUint(text, 10, 32)
	//
	if err != nil {
		return 0, parseError(num, "invalid qubit index %q", text)
	} else if uint(q) >= qc.NQubits() {
		return 0, parseError(num, "qubit index %d out of range", q)
	}
	//
	return uint(q), nil
}

func parseError(num int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("line %d: %s", num+1, msg)
}
