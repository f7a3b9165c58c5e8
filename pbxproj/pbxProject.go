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

// Package pbxproj reads, edits and writes Xcode project.pbxproj files. A Project keeps
// typed objects per isa, indexes them by project and real path, and writes the file
// back in the layout Xcode produces.
package pbxproj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/soapywu/pbxkit/element"
	"github.com/soapywu/pbxkit/pbxparser"
)

// Project is an in-memory project file. It is not safe for concurrent use.
type Project struct {
	logger     *slog.Logger
	guidSource GUIDSource
	name       string

	root     *element.Dict
	objects  *sections
	uuids    map[string]struct{}
	repaired []string

	projectPathToFile  map[string]*FileReference
	fileToProjectPath  map[string]string
	realPathToFile     map[SourceTree]map[string]*FileReference
	parents            map[string]GroupLike
	projectPathToGroup map[string]*Group
	groupToProjectPath map[string]string
	buildFilesByTarget map[string]map[string]*BuildFile
}

type Option func(*Project)

// WithGUIDSource replaces the random identifier source, mainly for reproducible output.
func WithGUIDSource(source GUIDSource) Option {
	return func(p *Project) {
		p.guidSource = source
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		p.logger = logger
	}
}

// WithProjectName sets the name used in the project configuration list comment. When
// unset it is taken from the enclosing .xcodeproj directory or the first target.
func WithProjectName(name string) Option {
	return func(p *Project) {
		p.name = name
	}
}

func New(opts ...Option) *Project {
	p := &Project{}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.guidSource == nil {
		p.guidSource = NewRandomGUID
	}
	p.reset()
	return p
}

func (p *Project) reset() {
	p.root = element.NewDict()
	p.objects = newSections()
	p.uuids = make(map[string]struct{})
	p.repaired = nil
	p.refreshAuxMaps()
}

func (p *Project) ReadFromString(text string) error {
	root, err := pbxparser.ParseText(text)
	if err != nil {
		return fmt.Errorf("parse project: %w", err)
	}
	return p.load(root)
}

// ReadFromFile reads a project.pbxproj file. The project name defaults to the name of
// the enclosing .xcodeproj directory.
func (p *Project) ReadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read project file: %w", err)
	}
	if p.name == "" {
		p.name = projectNameFromPath(path)
	}
	return p.ReadFromString(string(data))
}

// ReadFrom implements io.ReaderFrom.
func (p *Project) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), fmt.Errorf("read project: %w", err)
	}
	return int64(len(data)), p.ReadFromString(string(data))
}

func (p *Project) WriteToString() string {
	return NewPbxWriter(p).String()
}

func (p *Project) WriteToFile(path string) error {
	if err := os.WriteFile(path, []byte(p.WriteToString()), 0644); err != nil {
		return fmt.Errorf("write project file: %w", err)
	}
	return nil
}

// WriteTo implements io.WriterTo.
func (p *Project) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.WriteToString())
	return int64(n), err
}

// Dump writes the element tree as indented JSON, objects in write order.
func (p *Project) Dump(writer io.Writer) error {
	buffer := bytes.NewBuffer([]byte{})
	jsonEncoder := json.NewEncoder(buffer)
	jsonEncoder.SetEscapeHTML(false)
	jsonEncoder.SetIndent("", "  ")
	if err := jsonEncoder.Encode(p.Contents()); err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	_, err := writer.Write(buffer.Bytes())
	return err
}

// Contents returns a copy of the whole file as one element tree.
func (p *Project) Contents() *element.Dict {
	p.sync()
	root := p.root.Clone()
	objects := element.NewDict()
	for _, obj := range p.objects.all() {
		objects.Set(obj.GUID(), obj.Props().Clone())
	}
	root.Set("objects", objects)
	return root
}

func (p *Project) load(root *element.Dict) error {
	objects := root.GetDict("objects")
	if objects == nil {
		return fmt.Errorf("%w: no objects table", ErrInvalidProject)
	}
	p.reset()
	for _, item := range objects.Items() {
		props, ok := item.Data.(*element.Dict)
		if !ok || props.GetString("isa") == "" {
			p.logger.Warn("skipping object without isa", "guid", item.Key)
			continue
		}
		obj := loadObject(item.Key, props)
		p.objects.forIsa(obj.Isa()).insert(obj)
		p.uuids[item.Key] = struct{}{}
	}
	root.Set("objects", element.NewDict())
	p.root = root
	if p.projectObject() == nil {
		return fmt.Errorf("%w: root object %q is not a PBXProject", ErrInvalidProject, root.GetString("rootObject"))
	}

	p.repaired = p.RepairStructure()
	p.refreshAuxMaps()
	p.logger.Debug("loaded project",
		"name", p.Name(),
		"objects", len(p.uuids),
		"targets", p.objects.nativeTargets.Len(),
		"pruned", len(p.repaired),
	)
	return nil
}

// RepairedOnLoad returns the GUIDs the repair pass pruned while the project was read.
func (p *Project) RepairedOnLoad() []string {
	return append([]string(nil), p.repaired...)
}

// sync flushes pending typed changes of every object into its dict.
func (p *Project) sync() {
	for _, obj := range p.objects.all() {
		obj.base().flush()
	}
}

func (p *Project) createObject(props *element.Dict) objectImpl {
	obj := loadObject(p.generateGUID(), props)
	p.objects.forIsa(obj.Isa()).insert(obj)
	return obj
}

func (p *Project) removeObject(guid string) {
	p.objects.remove(guid)
}

func (p *Project) projectObject() *ProjectObject {
	if obj := p.objects.projects.Get(p.root.GetString("rootObject")); obj != nil {
		return obj
	}
	if objs := p.objects.projects.Objects(); len(objs) > 0 {
		return objs[0]
	}
	return nil
}

// Name is the project name used in comments.
func (p *Project) Name() string {
	if p.name != "" {
		return p.name
	}
	if targets := p.Targets(); len(targets) > 0 {
		return targets[0].Name()
	}
	return ""
}

func projectNameFromPath(path string) string {
	dir := filepath.Base(filepath.Dir(path))
	if strings.HasSuffix(dir, ".xcodeproj") {
		return strings.TrimSuffix(dir, ".xcodeproj")
	}
	return ""
}

// ProjectGUID returns the GUID of the PBXProject object.
func (p *Project) ProjectGUID() string {
	if obj := p.projectObject(); obj != nil {
		return obj.GUID()
	}
	return ""
}

// ProjectObject returns the PBXProject object, or nil before a project is loaded.
func (p *Project) ProjectObject() *ProjectObject {
	return p.projectObject()
}

func (p *Project) MainGroupGUID() string {
	if obj := p.projectObject(); obj != nil {
		return obj.mainGroup
	}
	return ""
}

func (p *Project) Object(guid string) Object {
	if obj := p.objects.get(guid); obj != nil {
		return obj
	}
	return nil
}

func (p *Project) FileReference(guid string) *FileReference {
	return p.objects.fileRefs.Get(guid)
}

func (p *Project) Group(guid string) *Group {
	return p.objects.groups.Get(guid)
}

func (p *Project) VariantGroup(guid string) *VariantGroup {
	return p.objects.variantGroups.Get(guid)
}

func (p *Project) NativeTarget(guid string) *NativeTarget {
	return p.objects.nativeTargets.Get(guid)
}

func (p *Project) BuildFile(guid string) *BuildFile {
	return p.objects.buildFiles.Get(guid)
}

func (p *Project) BuildConfiguration(guid string) *XCBuildConfiguration {
	return p.objects.buildConfigs.Get(guid)
}

func (p *Project) ConfigurationList(guid string) *XCConfigurationList {
	return p.objects.configLists.Get(guid)
}

// BuildPhase returns the typed build phase with guid, or nil.
func (p *Project) BuildPhase(guid string) BuildPhase {
	if phase, ok := p.objects.get(guid).(BuildPhase); ok {
		return phase
	}
	return nil
}

func (p *Project) groupLike(guid string) GroupLike {
	if group, ok := p.objects.get(guid).(GroupLike); ok {
		return group
	}
	return nil
}

// Targets returns the native targets in the order the project lists them.
func (p *Project) Targets() []*NativeTarget {
	obj := p.projectObject()
	if obj == nil {
		return nil
	}
	var targets []*NativeTarget
	for _, guid := range obj.targets.items {
		if target := p.NativeTarget(guid); target != nil {
			targets = append(targets, target)
		}
	}
	return targets
}

func (p *Project) TargetNames() []string {
	var names []string
	for _, target := range p.Targets() {
		names = append(names, target.Name())
	}
	return names
}

func (p *Project) TargetGUIDByName(name string) string {
	for _, target := range p.Targets() {
		if target.Name() == name {
			return target.GUID()
		}
	}
	return ""
}

// BuildPhaseGUIDs returns the phases of a target in build order.
func (p *Project) BuildPhaseGUIDs(targetGUID string) []string {
	if target := p.NativeTarget(targetGUID); target != nil {
		return target.phases.Items()
	}
	return nil
}
