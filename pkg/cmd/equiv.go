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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lucasberent/qsatencoder/pkg/encoder"
	"github.com/lucasberent/qsatencoder/pkg/util"
)

// equivCmd represents the equiv command.
var equivCmd = &cobra.Command{
	Use:   "equiv [flags] circuit_file circuit_file",
	Short: "Check two Clifford circuits for equivalence.",
	Long: `Check two Clifford circuits for equivalence on a set of stabilizer
input states.  Circuits are given as OpenQASM files restricted to the gates
id, h, s, sdg, x, y, z and cx.  Input states are strings over {z,Z,x,X,y,Y},
e.g. "zz" for |00>; when none are given the all-zero state is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		inputs := splitInputs(getString(cmd, "inputs"))
		one := readCircuitFile(args[0])
		two := readCircuitFile(args[1])
		//
		perf := util.NewPerfStats()
		enc := encoder.NewSatEncoder()
		equal, err := enc.TestEqual(one, two, inputs)
		perf.Log("equivalence query")
		//
		if err != nil {
			log.Errorf("equivalence check failed: %v", err)
		}
		//
		log.Info(enc.Stats().String())
		appendStats(getString(cmd, "stats"), enc.Stats())
		//
		if equal {
			fmt.Println("equivalent")
		} else {
			fmt.Println("not equivalent")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
	equivCmd.Flags().String("inputs", "", "comma-separated stabilizer input states")
	equivCmd.Flags().String("stats", "", "append query statistics to given JSON file")
}
