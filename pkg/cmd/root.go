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
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is empty unless set at link time (-ldflags "-X"); it is *not* set
// when installing via "go install".
var Version string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "qsatencoder",
	Short: "A SAT-based equivalence checker for Clifford circuits.",
	Long: `Decides equivalence of Clifford circuits by symbolic stabilizer
simulation and reduction to a bit-vector miter decided by SAT.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(getFlag(cmd, "verbose"))
	},
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("qsatencoder ")
			if Version != "" {
				// Set at link time
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main() and only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureLogging selects the log level and a formatter appropriate for the
// output device (colours on a terminal, full timestamps otherwise).
func configureLogging(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	//
	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   interactive,
		DisableColors: !interactive,
		FullTimestamp: !interactive,
	})
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
