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

// Package cli implements the pbxproj command line tool.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pbxproj",
	Short: "Read, edit and write Xcode project.pbxproj files",
	Long: `pbxproj edits Xcode project files without Xcode.

Every command reads a project.pbxproj (or the .xcodeproj directory holding it),
repairs dangling references, applies its edit and writes the file back in the
layout Xcode produces, so an unchanged project round-trips byte for byte.

Environment:
  PBXPROJ_LOG_LEVEL     debug, info, warn or error (default info)
  PBXPROJ_LOG_FORMAT    text or json (default text)
  PBXPROJ_PROJECT_NAME  name used in the project configuration list comment`,
	SilenceUsage: true,
}

type rootFlagValues struct {
	verbose   bool
	logFormat string
}

var rootFlags rootFlagValues

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFormat, "log-format", "", "Log format, text or json (overrides PBXPROJ_LOG_FORMAT)")
}
