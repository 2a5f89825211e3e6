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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lucasberent/qsatencoder/pkg/circuit"
	"github.com/lucasberent/qsatencoder/pkg/encoder"
)

// Get an expected flag, or exit with code 2 if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Get an expected string flag, or exit with code 2 if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// Parse a circuit file, exiting with a diagnostic on failure.
func readCircuitFile(filename string) *circuit.QuantumComputation {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var qc *circuit.QuantumComputation
		//
		if qc, err = circuit.Parse(string(bytes)); err == nil {
			return qc
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// Split a comma-separated list of stabilizer input strings, such as
// "zz,zx,xz".  An empty flag value means no inputs (the all-zero state).
func splitInputs(flag string) []string {
	if flag == "" {
		return nil
	}
	//
	return strings.Split(flag, ",")
}

// Append the statistics of a completed query to the given benchmark file (if
// any), one JSON object per line.
func appendStats(filename string, stats *encoder.Statistics) {
	if filename == "" {
		return
	}
	//
	data, err := stats.ToJSON()
	//
	if err == nil {
		var file *os.File
		//
		file, err = os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			defer file.Close()
			_, err = fmt.Fprintf(file, "%s\n", data)
		}
	}
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
