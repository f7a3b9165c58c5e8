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

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Rewrite a project in Xcode's canonical layout",
	Long: `Reads the project and writes it back. Objects are grouped into sections,
sorted by GUID and annotated with the comments Xcode writes.`,
	Args: cobra.NoArgs,
	RunE: runFormat,
}

var formatFlags projectFlagValues

func init() {
	rootCmd.AddCommand(formatCmd)
	addProjectFlags(formatCmd, &formatFlags, true)
}

func runFormat(cmd *cobra.Command, args []string) error {
	p, logger, err := loadProject(cmd, &formatFlags)
	if err != nil {
		return err
	}
	if err := saveProject(cmd, p, &formatFlags, logger); err != nil {
		return fmt.Errorf("format: %w", err)
	}
	return nil
}
