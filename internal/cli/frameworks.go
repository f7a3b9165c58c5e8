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
	"github.com/spf13/cobra"
)

var addFrameworkCmd = &cobra.Command{
	Use:   "add-framework <name>",
	Short: "Link an SDK framework or library",
	Long: `Adds <name> (UIKit.framework, libz.tbd, libsqlite3.dylib) to the Frameworks
group under SDKROOT and links it into --target (default: the first target).`,
	Args: cobra.ExactArgs(1),
	RunE: runAddFramework,
}

type frameworkFlagValues struct {
	projectFlagValues
	target string
	weak   bool
}

var addFrameworkFlags frameworkFlagValues

var removeFrameworkCmd = &cobra.Command{
	Use:   "remove-framework <name>",
	Short: "Unlink an SDK framework or library",
	Long: `Unlinks <name> from --target (default: the first target). The reference is
deleted once no target links it anymore.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemoveFramework,
}

var removeFrameworkFlags frameworkFlagValues

func init() {
	rootCmd.AddCommand(addFrameworkCmd)
	addProjectFlags(addFrameworkCmd, &addFrameworkFlags.projectFlagValues, true)
	addFrameworkCmd.Flags().StringVarP(&addFrameworkFlags.target, "target", "t", "", "Target to link into (default: first target)")
	addFrameworkCmd.Flags().BoolVar(&addFrameworkFlags.weak, "weak", false, "Link weakly")

	rootCmd.AddCommand(removeFrameworkCmd)
	addProjectFlags(removeFrameworkCmd, &removeFrameworkFlags.projectFlagValues, true)
	removeFrameworkCmd.Flags().StringVarP(&removeFrameworkFlags.target, "target", "t", "", "Target to unlink from (default: first target)")
}

func runAddFramework(cmd *cobra.Command, args []string) error {
	p, logger, err := loadProject(cmd, &addFrameworkFlags.projectFlagValues)
	if err != nil {
		return err
	}
	target, err := resolveTarget(p, addFrameworkFlags.target)
	if err != nil {
		return err
	}
	if err := p.AddFrameworkToProject(target, args[0], addFrameworkFlags.weak); err != nil {
		return err
	}
	logger.Info("linked framework", "name", args[0], "weak", addFrameworkFlags.weak)
	return saveProject(cmd, p, &addFrameworkFlags.projectFlagValues, logger)
}

func runRemoveFramework(cmd *cobra.Command, args []string) error {
	p, logger, err := loadProject(cmd, &removeFrameworkFlags.projectFlagValues)
	if err != nil {
		return err
	}
	target, err := resolveTarget(p, removeFrameworkFlags.target)
	if err != nil {
		return err
	}
	if !p.ContainsFramework(target, args[0]) {
		logger.Warn("framework is not linked", "name", args[0])
	}
	p.RemoveFrameworkFromProject(target, args[0])
	return saveProject(cmd, p, &removeFrameworkFlags.projectFlagValues, logger)
}
