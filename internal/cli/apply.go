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
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soapywu/pbxkit/internal/config"
	"github.com/soapywu/pbxkit/pbxproj"
)

var applyCmd = &cobra.Command{
	Use:   "apply <plan.yaml>",
	Short: "Apply a YAML plan of edits",
	Long: `Applies a plan file in one pass: known regions, file removals, files, folders,
frameworks, build properties and shell scripts. Applying the same plan twice leaves
the project unchanged.

Example plan:

  files:
    - path: Sources/Foo.m
      project_path: Classes/Foo.m
      targets: [App]
  frameworks:
    - name: UIKit.framework
      weak: true
  build_properties:
    - target: App
      name: OTHER_LDFLAGS
      add: [-ObjC]`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

var applyFlags projectFlagValues

func init() {
	rootCmd.AddCommand(applyCmd)
	addProjectFlags(applyCmd, &applyFlags, true)
}

func runApply(cmd *cobra.Command, args []string) error {
	plan, err := config.LoadPlan(args[0])
	if err != nil {
		return err
	}
	p, logger, err := loadProject(cmd, &applyFlags)
	if err != nil {
		return err
	}
	if err := applyPlan(p, plan, logger); err != nil {
		return fmt.Errorf("apply %s: %w", args[0], err)
	}
	return saveProject(cmd, p, &applyFlags, logger)
}

func applyPlan(p *pbxproj.Project, plan *config.Plan, logger *slog.Logger) error {
	for _, region := range plan.KnownRegions {
		p.AddKnownRegion(region)
	}

	for _, path := range plan.RemoveFiles {
		guid := findFile(p, path)
		if guid == "" {
			logger.Warn("file to remove not found", "path", path)
			continue
		}
		p.RemoveFile(guid)
	}

	for _, f := range plan.Files {
		if err := applyFileEntry(p, f, false); err != nil {
			return err
		}
	}
	for _, f := range plan.Folders {
		if err := applyFileEntry(p, f, true); err != nil {
			return err
		}
	}

	for _, fw := range plan.Frameworks {
		targets := fw.Targets
		if len(targets) == 0 {
			targets = []string{""}
		}
		for _, name := range targets {
			target, err := resolveTarget(p, name)
			if err != nil {
				return fmt.Errorf("framework %s: %w", fw.Name, err)
			}
			if err := p.AddFrameworkToProject(target, fw.Name, fw.Weak); err != nil {
				return fmt.Errorf("framework %s: %w", fw.Name, err)
			}
		}
	}

	for _, bp := range plan.BuildProperties {
		owner := p.ProjectGUID()
		if bp.Target != "" {
			var err error
			if owner, err = resolveTarget(p, bp.Target); err != nil {
				return fmt.Errorf("build property %s: %w", bp.Name, err)
			}
		}
		var err error
		if bp.Set != nil {
			err = p.SetBuildProperty(owner, bp.Name, *bp.Set)
		} else {
			err = p.UpdateBuildProperty(owner, bp.Name, bp.Add, bp.Remove)
		}
		if err != nil {
			return fmt.Errorf("build property %s: %w", bp.Name, err)
		}
	}

	for _, s := range plan.ShellScripts {
		target, err := resolveTarget(p, s.Target)
		if err != nil {
			return fmt.Errorf("shell script %s: %w", s.Name, err)
		}
		if hasShellScript(p, target, s.Name, s.Script) {
			continue
		}
		guid, err := p.AddShellScriptBuildPhase(target, s.Name, s.ShellPath, s.Script)
		if err != nil {
			return fmt.Errorf("shell script %s: %w", s.Name, err)
		}
		if phase, ok := p.BuildPhase(guid).(*pbxproj.ShellScriptBuildPhase); ok {
			if len(s.InputPaths) > 0 {
				phase.SetInputPaths(s.InputPaths)
			}
			if len(s.OutputPaths) > 0 {
				phase.SetOutputPaths(s.OutputPaths)
			}
		}
	}
	return nil
}

func applyFileEntry(p *pbxproj.Project, f config.FileEntry, folder bool) error {
	tree, err := pbxproj.ParseSourceTree(f.SourceTree)
	if err != nil {
		return fmt.Errorf("file %s: %w", f.Path, err)
	}
	if _, err := addFile(p, f.Path, f.ProjectPath, tree, folder, f.Targets, f.CompileFlags); err != nil {
		return fmt.Errorf("file %s: %w", f.Path, err)
	}
	return nil
}

func hasShellScript(p *pbxproj.Project, targetGUID, name, script string) bool {
	for _, guid := range p.BuildPhaseGUIDs(targetGUID) {
		phase, ok := p.BuildPhase(guid).(*pbxproj.ShellScriptBuildPhase)
		if ok && phase.ShellScript() == script && (name == "" || phase.Name() == name) {
			return true
		}
	}
	return false
}
