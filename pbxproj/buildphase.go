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

import (
	"strconv"

	"github.com/soapywu/pbxkit/element"
)

// BuildPhase is one step of a target's build holding a list of build files.
type BuildPhase interface {
	Object
	// Name is the explicit phase name or the default Xcode shows for its kind.
	Name() string
	Files() *GUIDList
}

type buildPhaseBase struct {
	object
	files GUIDList
	name  string
}

var buildPhaseChecker = newCommentChecker("files/*")

func (b *buildPhaseBase) Files() *GUIDList { return &b.files }

func (b *buildPhaseBase) displayName(def string) string {
	if b.name != "" {
		return b.name
	}
	return def
}

func (b *buildPhaseBase) updateVars() {
	b.files.load(&b.object, b.props.GetArray("files"))
	b.name = b.props.GetString("name")
}

func (b *buildPhaseBase) updateProps() {
	b.props.Set("files", b.files.toArray())
	b.props.SetStringOrDelete("name", b.name)
}

func (b *buildPhaseBase) commentChecker() *commentChecker { return buildPhaseChecker }
func (b *buildPhaseBase) guidLists() []*GUIDList          { return []*GUIDList{&b.files} }

type SourcesBuildPhase struct {
	buildPhaseBase
}

func (b *SourcesBuildPhase) Name() string { return b.displayName("Sources") }

type FrameworksBuildPhase struct {
	buildPhaseBase
}

func (b *FrameworksBuildPhase) Name() string { return b.displayName("Frameworks") }

type ResourcesBuildPhase struct {
	buildPhaseBase
}

func (b *ResourcesBuildPhase) Name() string { return b.displayName("Resources") }

type CopyFilesBuildPhase struct {
	buildPhaseBase
	dstPath          string
	dstSubfolderSpec string
}

func (b *CopyFilesBuildPhase) Name() string             { return b.displayName("CopyFiles") }
func (b *CopyFilesBuildPhase) DstPath() string          { return b.dstPath }
func (b *CopyFilesBuildPhase) DstSubfolderSpec() string { return b.dstSubfolderSpec }

func (b *CopyFilesBuildPhase) updateVars() {
	b.buildPhaseBase.updateVars()
	b.dstPath = b.props.GetString("dstPath")
	b.dstSubfolderSpec = b.props.GetString("dstSubfolderSpec")
}

func (b *CopyFilesBuildPhase) updateProps() {
	b.buildPhaseBase.updateProps()
	b.props.SetString("dstPath", b.dstPath)
	b.props.SetString("dstSubfolderSpec", b.dstSubfolderSpec)
}

type ShellScriptBuildPhase struct {
	buildPhaseBase
	shellPath   string
	shellScript string
	inputPaths  []string
	outputPaths []string
}

func (b *ShellScriptBuildPhase) Name() string          { return b.displayName("ShellScript") }
func (b *ShellScriptBuildPhase) ShellPath() string     { return b.shellPath }
func (b *ShellScriptBuildPhase) ShellScript() string   { return b.shellScript }
func (b *ShellScriptBuildPhase) InputPaths() []string  { return append([]string(nil), b.inputPaths...) }
func (b *ShellScriptBuildPhase) OutputPaths() []string { return append([]string(nil), b.outputPaths...) }

func (b *ShellScriptBuildPhase) SetShellScript(script string) {
	b.shellScript = script
	b.touch()
}

func (b *ShellScriptBuildPhase) SetInputPaths(paths []string) {
	b.inputPaths = append([]string(nil), paths...)
	b.touch()
}

func (b *ShellScriptBuildPhase) SetOutputPaths(paths []string) {
	b.outputPaths = append([]string(nil), paths...)
	b.touch()
}

func (b *ShellScriptBuildPhase) updateVars() {
	b.buildPhaseBase.updateVars()
	b.shellPath = b.props.GetString("shellPath")
	b.shellScript = b.props.GetString("shellScript")
	b.inputPaths = b.props.GetArray("inputPaths").Strings()
	b.outputPaths = b.props.GetArray("outputPaths").Strings()
}

func (b *ShellScriptBuildPhase) updateProps() {
	b.buildPhaseBase.updateProps()
	b.props.SetString("shellPath", b.shellPath)
	b.props.SetString("shellScript", b.shellScript)
	b.props.Set("inputPaths", stringsToArray(b.inputPaths))
	b.props.Set("outputPaths", stringsToArray(b.outputPaths))
}

func newBuildPhaseProps(isa string) *element.Dict {
	return element.NewDictWithData(
		element.Item("isa", element.String(isa)),
		element.Item("buildActionMask", element.String("2147483647")),
		element.Item("files", element.NewArray()),
		element.Item("runOnlyForDeploymentPostprocessing", element.String("0")),
	)
}

func (p *Project) newSourcesBuildPhase() *SourcesBuildPhase {
	return p.createObject(newBuildPhaseProps("PBXSourcesBuildPhase")).(*SourcesBuildPhase)
}

func (p *Project) newFrameworksBuildPhase() *FrameworksBuildPhase {
	return p.createObject(newBuildPhaseProps("PBXFrameworksBuildPhase")).(*FrameworksBuildPhase)
}

func (p *Project) newResourcesBuildPhase() *ResourcesBuildPhase {
	return p.createObject(newBuildPhaseProps("PBXResourcesBuildPhase")).(*ResourcesBuildPhase)
}

func (p *Project) newCopyFilesBuildPhase(name, dstPath string, subfolderSpec int) *CopyFilesBuildPhase {
	props := newBuildPhaseProps("PBXCopyFilesBuildPhase")
	props.SetString("dstPath", dstPath)
	props.SetString("dstSubfolderSpec", strconv.Itoa(subfolderSpec))
	props.SetStringOrDelete("name", name)
	return p.createObject(props).(*CopyFilesBuildPhase)
}

func (p *Project) newShellScriptBuildPhase(name, shellPath, shellScript string) *ShellScriptBuildPhase {
	props := newBuildPhaseProps("PBXShellScriptBuildPhase")
	props.Set("inputPaths", element.NewArray())
	props.SetStringOrDelete("name", name)
	props.Set("outputPaths", element.NewArray())
	props.SetString("shellPath", shellPath)
	props.SetString("shellScript", shellScript)
	return p.createObject(props).(*ShellScriptBuildPhase)
}
