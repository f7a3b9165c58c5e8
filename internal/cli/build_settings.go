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

var setBuildPropertyCmd = &cobra.Command{
	Use:   "set-build-property <name> <value>",
	Short: "Set a build setting",
	Long: `Sets <name> to <value> in every configuration of --target, or of the project
when no target is given. --config limits the change to one configuration.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProperty(cmd, &setBuildPropertyFlags, args, false)
	},
}

var addBuildPropertyCmd = &cobra.Command{
	Use:   "add-build-property <name> <value>",
	Short: "Add a value to a list build setting",
	Long: `Adds <value> to <name> in every configuration of --target, or of the project
when no target is given. A single valued setting becomes a list; a value already
present is not repeated.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProperty(cmd, &addBuildPropertyFlags, args, true)
	},
}

var removeBuildPropertyCmd = &cobra.Command{
	Use:   "remove-build-property <name> [value]",
	Short: "Remove a build setting or one of its values",
	Long: `Removes <name> from every configuration of --target, or of the project when no
target is given. With <value> only that value is removed; the setting goes away
with its last value.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRemoveBuildProperty,
}

type buildPropertyFlagValues struct {
	projectFlagValues
	target string
	config string
}

var (
	setBuildPropertyFlags    buildPropertyFlagValues
	addBuildPropertyFlags    buildPropertyFlagValues
	removeBuildPropertyFlags buildPropertyFlagValues
)

func init() {
	for _, c := range []struct {
		cmd   *cobra.Command
		flags *buildPropertyFlagValues
	}{
		{setBuildPropertyCmd, &setBuildPropertyFlags},
		{addBuildPropertyCmd, &addBuildPropertyFlags},
		{removeBuildPropertyCmd, &removeBuildPropertyFlags},
	} {
		rootCmd.AddCommand(c.cmd)
		addProjectFlags(c.cmd, &c.flags.projectFlagValues, true)
		c.cmd.Flags().StringVarP(&c.flags.target, "target", "t", "", "Target to change (default: the project)")
		c.cmd.Flags().StringVarP(&c.flags.config, "config", "c", "", "Only change this configuration, e.g. Debug")
	}
}

func runBuildProperty(cmd *cobra.Command, flags *buildPropertyFlagValues, args []string, add bool) error {
	p, logger, err := loadProject(cmd, &flags.projectFlagValues)
	if err != nil {
		return err
	}
	owner, configGUID, err := buildPropertyScope(p, flags)
	if err != nil {
		return err
	}
	name, value := args[0], args[1]

	if configGUID != "" {
		if add {
			err = p.AddBuildPropertyForConfig(configGUID, name, value)
		} else {
			err = p.SetBuildPropertyForConfig(configGUID, name, value)
		}
	} else if add {
		err = p.AddBuildProperty(owner, name, value)
	} else {
		err = p.SetBuildProperty(owner, name, value)
	}
	if err != nil {
		return err
	}
	logger.Info("updated build setting", "name", name, "value", value, "config", flags.config)
	return saveProject(cmd, p, &flags.projectFlagValues, logger)
}

func runRemoveBuildProperty(cmd *cobra.Command, args []string) error {
	flags := &removeBuildPropertyFlags
	p, logger, err := loadProject(cmd, &flags.projectFlagValues)
	if err != nil {
		return err
	}
	owner, configGUID, err := buildPropertyScope(p, flags)
	if err != nil {
		return err
	}
	name := args[0]

	switch {
	case configGUID != "" && len(args) == 2:
		p.BuildConfiguration(configGUID).RemovePropertyValue(name, args[1])
	case configGUID != "":
		p.BuildConfiguration(configGUID).RemoveProperty(name)
	case len(args) == 2:
		err = p.RemoveBuildPropertyValue(owner, name, args[1])
	default:
		err = p.RemoveBuildProperty(owner, name)
	}
	if err != nil {
		return err
	}
	logger.Info("removed build setting", "name", name, "config", flags.config)
	return saveProject(cmd, p, &flags.projectFlagValues, logger)
}

// buildPropertyScope resolves --target and --config to the owner GUID and, when a
// configuration was named, its GUID.
func buildPropertyScope(p *pbxproj.Project, flags *buildPropertyFlagValues) (string, string, error) {
	owner := p.ProjectGUID()
	if flags.target != "" {
		var err error
		if owner, err = resolveTarget(p, flags.target); err != nil {
			return "", "", err
		}
	}
	if flags.config == "" {
		return owner, "", nil
	}
	configGUID := p.BuildConfigByName(owner, flags.config)
	if configGUID == "" {
		return "", "", fmt.Errorf("%w: configuration %q", pbxproj.ErrNotFound, flags.config)
	}
	return owner, configGUID, nil
}
