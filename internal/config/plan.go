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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrPlanNotFound is returned when the plan file does not exist.
// Callers can check for this with errors.Is(err, config.ErrPlanNotFound).
var ErrPlanNotFound = errors.New("plan file not found")

// ErrInvalidPlan wraps every validation failure of a plan.
var ErrInvalidPlan = errors.New("invalid plan")

const (
	DefaultSourceTree = "source"
	DefaultShellPath  = "/bin/sh"
)

// Plan is a batch of edits applied to one project, in this order: known regions, file
// removals, files, folders, frameworks, build properties, shell scripts.
type Plan struct {
	Files           []FileEntry          `yaml:"files"`
	Folders         []FileEntry          `yaml:"folders"`
	Frameworks      []FrameworkEntry     `yaml:"frameworks"`
	RemoveFiles     []string             `yaml:"remove_files"`
	BuildProperties []BuildPropertyEntry `yaml:"build_properties"`
	ShellScripts    []ShellScriptEntry   `yaml:"shell_scripts"`
	KnownRegions    []string             `yaml:"known_regions"`
}

// FileEntry adds a file or folder reference. ProjectPath defaults to Path. Targets name
// the targets whose build phases receive the file; none means reference only.
type FileEntry struct {
	Path         string   `yaml:"path"`
	ProjectPath  string   `yaml:"project_path,omitempty"`
	SourceTree   string   `yaml:"source_tree,omitempty"`
	Targets      []string `yaml:"targets,omitempty"`
	CompileFlags string   `yaml:"compile_flags,omitempty"`
}

// FrameworkEntry links an SDK framework or library. Without targets the first target
// of the project is used.
type FrameworkEntry struct {
	Name    string   `yaml:"name"`
	Targets []string `yaml:"targets,omitempty"`
	Weak    bool     `yaml:"weak,omitempty"`
}

// BuildPropertyEntry edits one build setting in every configuration of a target, or of
// the project when Target is empty. Set replaces the value; Add and Remove edit it as a
// list of values.
type BuildPropertyEntry struct {
	Target string   `yaml:"target,omitempty"`
	Name   string   `yaml:"name"`
	Set    *string  `yaml:"set,omitempty"`
	Add    []string `yaml:"add,omitempty"`
	Remove []string `yaml:"remove,omitempty"`
}

type ShellScriptEntry struct {
	Target      string   `yaml:"target"`
	Name        string   `yaml:"name,omitempty"`
	ShellPath   string   `yaml:"shell_path,omitempty"`
	Script      string   `yaml:"script"`
	InputPaths  []string `yaml:"input_paths,omitempty"`
	OutputPaths []string `yaml:"output_paths,omitempty"`
}

// LoadPlan reads and validates a plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPlanNotFound, path)
		}
		return nil, fmt.Errorf("read plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan decodes a plan, fills in defaults and validates it. Unknown keys are errors.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	plan.applyDefaults()
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (p *Plan) applyDefaults() {
	for _, files := range [][]FileEntry{p.Files, p.Folders} {
		for i := range files {
			if files[i].ProjectPath == "" {
				files[i].ProjectPath = files[i].Path
			}
			if files[i].SourceTree == "" {
				files[i].SourceTree = DefaultSourceTree
			}
		}
	}
	for i := range p.ShellScripts {
		if p.ShellScripts[i].ShellPath == "" {
			p.ShellScripts[i].ShellPath = DefaultShellPath
		}
	}
}

// Validate reports the first missing required field.
func (p *Plan) Validate() error {
	for i, f := range p.Files {
		if strings.TrimSpace(f.Path) == "" {
			return fmt.Errorf("%w: files[%d]: path is required", ErrInvalidPlan, i)
		}
	}
	for i, f := range p.Folders {
		if strings.TrimSpace(f.Path) == "" {
			return fmt.Errorf("%w: folders[%d]: path is required", ErrInvalidPlan, i)
		}
		if f.CompileFlags != "" {
			return fmt.Errorf("%w: folders[%d]: compile_flags do not apply to folders", ErrInvalidPlan, i)
		}
	}
	for i, fw := range p.Frameworks {
		if strings.TrimSpace(fw.Name) == "" {
			return fmt.Errorf("%w: frameworks[%d]: name is required", ErrInvalidPlan, i)
		}
	}
	for i, path := range p.RemoveFiles {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("%w: remove_files[%d]: empty path", ErrInvalidPlan, i)
		}
	}
	for i, bp := range p.BuildProperties {
		if strings.TrimSpace(bp.Name) == "" {
			return fmt.Errorf("%w: build_properties[%d]: name is required", ErrInvalidPlan, i)
		}
		if bp.Set == nil && len(bp.Add) == 0 && len(bp.Remove) == 0 {
			return fmt.Errorf("%w: build_properties[%d]: one of set, add or remove is required", ErrInvalidPlan, i)
		}
		if bp.Set != nil && (len(bp.Add) > 0 || len(bp.Remove) > 0) {
			return fmt.Errorf("%w: build_properties[%d]: set cannot be combined with add or remove", ErrInvalidPlan, i)
		}
	}
	for i, s := range p.ShellScripts {
		if strings.TrimSpace(s.Target) == "" {
			return fmt.Errorf("%w: shell_scripts[%d]: target is required", ErrInvalidPlan, i)
		}
		if s.Script == "" {
			return fmt.Errorf("%w: shell_scripts[%d]: script is required", ErrInvalidPlan, i)
		}
	}
	for i, region := range p.KnownRegions {
		if strings.TrimSpace(region) == "" {
			return fmt.Errorf("%w: known_regions[%d]: empty region", ErrInvalidPlan, i)
		}
	}
	return nil
}

// IsEmpty reports whether the plan would change nothing.
func (p *Plan) IsEmpty() bool {
	return len(p.Files) == 0 && len(p.Folders) == 0 && len(p.Frameworks) == 0 &&
		len(p.RemoveFiles) == 0 && len(p.BuildProperties) == 0 && len(p.ShellScripts) == 0 &&
		len(p.KnownRegions) == 0
}
