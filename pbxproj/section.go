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

package pbxproj

import "sort"

// anySection is the isa-independent view of a section used by the index and the writer.
type anySection interface {
	Name() string
	Len() int
	GUIDs() []string
	get(guid string) objectImpl
	insert(obj objectImpl)
	remove(guid string)
}

// section holds the objects of one isa, keyed by GUID.
type section[T objectImpl] struct {
	name    string
	entries map[string]T
}

func newSection[T objectImpl](name string) *section[T] {
	return &section[T]{name: name, entries: make(map[string]T)}
}

func (s *section[T]) Name() string {
	return s.name
}

func (s *section[T]) Len() int {
	return len(s.entries)
}

func (s *section[T]) Get(guid string) T {
	return s.entries[guid]
}

// GUIDs returns the keys sorted the way the writer emits them.
func (s *section[T]) GUIDs() []string {
	guids := make([]string, 0, len(s.entries))
	for guid := range s.entries {
		guids = append(guids, guid)
	}
	sort.Strings(guids)
	return guids
}

// Objects returns the entries in GUID order.
func (s *section[T]) Objects() []T {
	objs := make([]T, 0, len(s.entries))
	for _, guid := range s.GUIDs() {
		objs = append(objs, s.entries[guid])
	}
	return objs
}

func (s *section[T]) get(guid string) objectImpl {
	obj, ok := s.entries[guid]
	if !ok {
		return nil
	}
	return obj
}

func (s *section[T]) insert(obj objectImpl) {
	s.entries[obj.GUID()] = obj.(T)
}

func (s *section[T]) remove(guid string) {
	delete(s.entries, guid)
}

// knownSectionNames are written in this order; sections of any other isa follow in the
// order they were first seen.
var knownSectionNames = []string{
	"PBXAggregateTarget",
	"PBXBuildFile",
	"PBXBuildRule",
	"PBXContainerItemProxy",
	"PBXCopyFilesBuildPhase",
	"PBXFileReference",
	"PBXFrameworksBuildPhase",
	"PBXGroup",
	"PBXHeadersBuildPhase",
	"PBXLegacyTarget",
	"PBXNativeTarget",
	"PBXProject",
	"PBXReferenceProxy",
	"PBXResourcesBuildPhase",
	"PBXShellScriptBuildPhase",
	"PBXSourcesBuildPhase",
	"PBXTargetDependency",
	"PBXVariantGroup",
	"XCBuildConfiguration",
	"XCConfigurationList",
	"XCRemoteSwiftPackageReference",
	"XCSwiftPackageProductDependency",
	"XCVersionGroup",
}

type sections struct {
	buildFiles       *section[*BuildFile]
	fileRefs         *section[*FileReference]
	groups           *section[*Group]
	variantGroups    *section[*VariantGroup]
	nativeTargets    *section[*NativeTarget]
	sourcesPhases    *section[*SourcesBuildPhase]
	frameworksPhases *section[*FrameworksBuildPhase]
	resourcesPhases  *section[*ResourcesBuildPhase]
	copyFilesPhases  *section[*CopyFilesBuildPhase]
	shellPhases      *section[*ShellScriptBuildPhase]
	containerProxies *section[*ContainerItemProxy]
	referenceProxies *section[*ReferenceProxy]
	targetDeps       *section[*TargetDependency]
	buildConfigs     *section[*XCBuildConfiguration]
	configLists      *section[*XCConfigurationList]
	projects         *section[*ProjectObject]

	byName map[string]anySection
	extra  []string
}

func newSections() *sections {
	s := &sections{
		buildFiles:       newSection[*BuildFile]("PBXBuildFile"),
		fileRefs:         newSection[*FileReference]("PBXFileReference"),
		groups:           newSection[*Group]("PBXGroup"),
		variantGroups:    newSection[*VariantGroup]("PBXVariantGroup"),
		nativeTargets:    newSection[*NativeTarget]("PBXNativeTarget"),
		sourcesPhases:    newSection[*SourcesBuildPhase]("PBXSourcesBuildPhase"),
		frameworksPhases: newSection[*FrameworksBuildPhase]("PBXFrameworksBuildPhase"),
		resourcesPhases:  newSection[*ResourcesBuildPhase]("PBXResourcesBuildPhase"),
		copyFilesPhases:  newSection[*CopyFilesBuildPhase]("PBXCopyFilesBuildPhase"),
		shellPhases:      newSection[*ShellScriptBuildPhase]("PBXShellScriptBuildPhase"),
		containerProxies: newSection[*ContainerItemProxy]("PBXContainerItemProxy"),
		referenceProxies: newSection[*ReferenceProxy]("PBXReferenceProxy"),
		targetDeps:       newSection[*TargetDependency]("PBXTargetDependency"),
		buildConfigs:     newSection[*XCBuildConfiguration]("XCBuildConfiguration"),
		configLists:      newSection[*XCConfigurationList]("XCConfigurationList"),
		projects:         newSection[*ProjectObject]("PBXProject"),
		byName:           make(map[string]anySection),
	}
	for _, sec := range []anySection{
		s.buildFiles, s.fileRefs, s.groups, s.variantGroups, s.nativeTargets, s.sourcesPhases,
		s.frameworksPhases, s.resourcesPhases, s.copyFilesPhases, s.shellPhases, s.containerProxies,
		s.referenceProxies, s.targetDeps, s.buildConfigs, s.configLists, s.projects,
	} {
		s.byName[sec.Name()] = sec
	}
	return s
}

// forIsa returns the section for isa, creating a generic one for unmodeled kinds.
func (s *sections) forIsa(isa string) anySection {
	if sec, ok := s.byName[isa]; ok {
		return sec
	}
	sec := newSection[*GenericObject](isa)
	s.byName[isa] = sec
	if !containsString(knownSectionNames, isa) {
		s.extra = append(s.extra, isa)
	}
	return sec
}

// ordered returns the non-empty sections in write order.
func (s *sections) ordered() []anySection {
	var result []anySection
	for _, name := range append(append([]string(nil), knownSectionNames...), s.extra...) {
		if sec, ok := s.byName[name]; ok && sec.Len() > 0 {
			result = append(result, sec)
		}
	}
	return result
}

func (s *sections) get(guid string) objectImpl {
	for _, sec := range s.byName {
		if obj := sec.get(guid); obj != nil {
			return obj
		}
	}
	return nil
}

func (s *sections) remove(guid string) {
	for _, sec := range s.byName {
		sec.remove(guid)
	}
}

// all returns every object, section by section in write order.
func (s *sections) all() []objectImpl {
	var result []objectImpl
	for _, sec := range s.ordered() {
		for _, guid := range sec.GUIDs() {
			result = append(result, sec.get(guid))
		}
	}
	return result
}
