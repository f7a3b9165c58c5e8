/**
Licensed to the Apache Software Foundation (ASF) under one
or more contributor license agreements.  See the NOTICE file
distributed with this work for additional information
regarding copyright ownership.  The ASF licenses this file
to you under the Apache License, Version 2.0 (the
'License'); you may not use this file except in compliance
with the License.  You may obtain a copy of the License at
http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing,
software distributed under the License is distributed on an
'AS IS' BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
KIND, either express or implied.  See the License for the
specific language governing permissions and limitations
under the License.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Drop references to objects that do not exist",
	Long: `Removes build files whose file reference is gone and list entries pointing at
missing objects, then writes the project. The pruned GUIDs are printed one per line.`,
	Args: cobra.NoArgs,
	RunE: runRepair,
}

var repairFlags projectFlagValues

func init() {
	rootCmd.AddCommand(repairCmd)
	addProjectFlags(repairCmd, &repairFlags, true)
}

func runRepair(cmd *cobra.Command, args []string) error {
	p, logger, err := loadProject(cmd, &repairFlags)
	if err != nil {
		return err
	}
	pruned := append(p.RepairedOnLoad(), p.RepairStructure()...)
	if repairFlags.output != stdoutPath {
		seen := make(map[string]bool)
		for _, guid := range pruned {
			if !seen[guid] {
				seen[guid] = true
				fmt.Fprintln(cmd.OutOrStdout(), guid)
			}
		}
	}
	return saveProject(cmd, p, &repairFlags, logger)
}
