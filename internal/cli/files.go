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

	"github.com/soapywu/pbxkit/pbxproj"
)

var addFileCmd = &cobra.Command{
	Use:   "add-file <path>",
	Short: "Add a file reference and optionally build it into targets",
	Long: `Adds a file reference for <path>, relative to --source-tree. The file is shown
at --project-path in the navigator (default: <path>); missing groups are created.
Each --target receives the file in the build phase matching its type.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddFile,
}

type addFileFlagValues struct {
	projectFlagValues
	projectPath  string
	sourceTree   string
	targets      []string
	compileFlags string
	folder       bool
}

var addFileFlags = defaultAddFileFlags()

func defaultAddFileFlags() addFileFlagValues {
	return addFileFlagValues{sourceTree: "source"}
}

var removeFileCmd = &cobra.Command{
	Use:   "remove-file <path>",
	Short: "Remove a file reference from the project and every target",
	Long: `Removes the file shown at <path> in the navigator, or found at <path> relative
to any source tree. Groups left empty are removed as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemoveFile,
}

var removeFileFlags projectFlagValues

func init() {
	rootCmd.AddCommand(addFileCmd)
	addProjectFlags(addFileCmd, &addFileFlags.projectFlagValues, true)
	addFileCmd.Flags().StringVar(&addFileFlags.projectPath, "project-path", "", "Path in the project navigator (default: the file path)")
	addFileCmd.Flags().StringVar(&addFileFlags.sourceTree, "source-tree", addFileFlags.sourceTree, "Base of the path: source, sdk, build, developer, absolute")
	addFileCmd.Flags().StringSliceVarP(&addFileFlags.targets, "target", "t", nil, "Target to build the file into (repeatable)")
	addFileCmd.Flags().StringVar(&addFileFlags.compileFlags, "compile-flags", "", "Per-file compiler flags")
	addFileCmd.Flags().BoolVar(&addFileFlags.folder, "folder", false, "Add a folder reference instead of a file")

	rootCmd.AddCommand(removeFileCmd)
	addProjectFlags(removeFileCmd, &removeFileFlags, true)
}

func runAddFile(cmd *cobra.Command, args []string) error {
	p, logger, err := loadProject(cmd, &addFileFlags.projectFlagValues)
	if err != nil {
		return err
	}
	tree, err := pbxproj.ParseSourceTree(addFileFlags.sourceTree)
	if err != nil {
		return err
	}
	guid, err := addFile(p, args[0], addFileFlags.projectPath, tree, addFileFlags.folder, addFileFlags.targets, addFileFlags.compileFlags)
	if err != nil {
		return err
	}
	logger.Info("added file", "path", args[0], "guid", guid)
	return saveProject(cmd, p, &addFileFlags.projectFlagValues, logger)
}

func addFile(p *pbxproj.Project, path, projectPath string, tree pbxproj.SourceTree, folder bool, targets []string, compileFlags string) (string, error) {
	if projectPath == "" {
		projectPath = path
	}
	var guid string
	var err error
	if folder {
		guid, err = p.AddFolderReference(path, projectPath, tree)
	} else {
		guid, err = p.AddFile(path, projectPath, tree)
	}
	if err != nil {
		return "", err
	}
	for _, name := range targets {
		target, err := resolveTarget(p, name)
		if err != nil {
			return "", err
		}
		if compileFlags != "" {
			err = p.AddFileToBuildWithFlags(target, guid, compileFlags)
		} else {
			err = p.AddFileToBuild(target, guid)
		}
		if err != nil {
			return "", fmt.Errorf("build %s into %s: %w", path, name, err)
		}
	}
	return guid, nil
}

func runRemoveFile(cmd *cobra.Command, args []string) error {
	p, logger, err := loadProject(cmd, &removeFileFlags)
	if err != nil {
		return err
	}
	guid := findFile(p, args[0])
	if guid == "" {
		return fmt.Errorf("%w: file %q", pbxproj.ErrNotFound, args[0])
	}
	p.RemoveFile(guid)
	logger.Info("removed file", "path", args[0], "guid", guid)
	return saveProject(cmd, p, &removeFileFlags, logger)
}
