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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soapywu/pbxkit/internal/config"
	"github.com/soapywu/pbxkit/internal/logging"
	"github.com/soapywu/pbxkit/pbxproj"
)

// ErrProjectRequired is returned when a command runs without --project.
var ErrProjectRequired = errors.New("--project is required")

const stdoutPath = "-"

type projectFlagValues struct {
	project string
	output  string
}

func addProjectFlags(cmd *cobra.Command, flags *projectFlagValues, writes bool) {
	cmd.Flags().StringVarP(&flags.project, "project", "p", "", "Path to project.pbxproj or to the .xcodeproj directory")
	if writes {
		cmd.Flags().StringVarP(&flags.output, "output", "o", "", `Where to write the result, "-" for stdout (default: in place)`)
	}
}

// projectFilePath resolves an .xcodeproj directory to the project.pbxproj inside it.
func projectFilePath(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, "project.pbxproj")
	}
	return path
}

func newLogger(cmd *cobra.Command) (*slog.Logger, config.Settings, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, settings, err
	}
	level := settings.LogLevel
	if rootFlags.verbose {
		level = "debug"
	}
	format := settings.LogFormat
	if rootFlags.logFormat != "" {
		format = rootFlags.logFormat
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return nil, settings, err
	}
	return logger, settings, nil
}

// loadProject reads the project named by --project.
func loadProject(cmd *cobra.Command, flags *projectFlagValues) (*pbxproj.Project, *slog.Logger, error) {
	if strings.TrimSpace(flags.project) == "" {
		return nil, nil, ErrProjectRequired
	}
	logger, settings, err := newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	opts := []pbxproj.Option{pbxproj.WithLogger(logger)}
	if settings.ProjectName != "" {
		opts = append(opts, pbxproj.WithProjectName(settings.ProjectName))
	}
	p := pbxproj.New(opts...)
	path := projectFilePath(flags.project)
	if err := p.ReadFromFile(path); err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", path, err)
	}
	if repaired := p.RepairedOnLoad(); len(repaired) > 0 {
		logger.Info("repaired dangling references", "count", len(repaired))
	}
	return p, logger, nil
}

// saveProject writes the project to --output, or back to --project when unset.
func saveProject(cmd *cobra.Command, p *pbxproj.Project, flags *projectFlagValues, logger *slog.Logger) error {
	if flags.output == stdoutPath {
		_, err := io.WriteString(cmd.OutOrStdout(), p.WriteToString())
		return err
	}
	path := flags.output
	if path == "" {
		path = projectFilePath(flags.project)
	} else {
		path = projectFilePath(path)
	}
	if err := p.WriteToFile(path); err != nil {
		return err
	}
	logger.Debug("wrote project", "path", path)
	return nil
}

// resolveTarget finds a target by name; an empty name selects the first target.
func resolveTarget(p *pbxproj.Project, name string) (string, error) {
	if name == "" {
		targets := p.Targets()
		if len(targets) == 0 {
			return "", fmt.Errorf("%w: project has no targets", pbxproj.ErrNotFound)
		}
		return targets[0].GUID(), nil
	}
	if guid := p.TargetGUIDByName(name); guid != "" {
		return guid, nil
	}
	return "", fmt.Errorf("%w: target %q (have %s)", pbxproj.ErrNotFound, name, strings.Join(p.TargetNames(), ", "))
}

// findFile looks a file up by project path, then by real path in any source tree.
func findFile(p *pbxproj.Project, path string) string {
	if guid := p.FindFileGUIDByProjectPath(path); guid != "" {
		return guid
	}
	return p.FindFileGUIDByRealPath(path)
}
