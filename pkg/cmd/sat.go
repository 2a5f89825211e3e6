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

// satCmd represents the sat command.
var satCmd = &cobra.Command{
	Use:   "sat [flags] circuit_file",
	Short: "Check satisfiability of a Clifford circuit's encoding.",
	Long: `Construct the bit-vector encoding of a single Clifford circuit over
a set of stabilizer input states and check its satisfiability.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		inputs := splitInputs(getString(cmd, "inputs"))
		qc := readCircuitFile(args[0])
		//
		perf := util.NewPerfStats()
		enc := encoder.NewSatEncoder()
		//
		if err := enc.CheckSatisfiability(qc, inputs); err != nil {
			log.Errorf("satisfiability check failed: %v", err)
			os.Exit(1)
		}
		//
		perf.Log("satisfiability query")
		//
		log.Info(enc.Stats().String())
		appendStats(getString(cmd, "stats"), enc.Stats())
		//
		if enc.Stats().Satisfiable {
			fmt.Println("sat")
		} else {
			fmt.Println("unsat")
		}
	},
}

func init() {
	rootCmd.AddCommand(satCmd)
	satCmd.Flags().String("inputs", "", "comma-separated stabilizer input states")
	satCmd.Flags().String("stats", "", "append query statistics to given JSON file")
}
