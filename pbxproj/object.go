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
	"strings"

	"github.com/soapywu/pbxkit/element"
)

// Object is an entry of the objects table. Typed fields are the source of truth while
// editing; Props flushes them back into the backing dict.
type Object interface {
	GUID() string
	Isa() string
	// Props returns the backing dict, synchronized with any pending typed changes.
	Props() *element.Dict
	// Reload re-reads the typed fields after Props was edited directly.
	Reload()
	base() *object
}

type objectImpl interface {
	Object
	updateVars()
	updateProps()
	commentChecker() *commentChecker
	guidLists() []*GUIDList
}

type object struct {
	guid  string
	props *element.Dict
	dirty bool
	self  objectImpl
}

func (o *object) GUID() string {
	return o.guid
}

func (o *object) Isa() string {
	return o.props.GetString("isa")
}

func (o *object) Props() *element.Dict {
	o.flush()
	return o.props
}

func (o *object) Reload() {
	o.self.updateVars()
	o.dirty = false
}

func (o *object) base() *object {
	return o
}

func (o *object) touch() {
	o.dirty = true
}

func (o *object) flush() {
	if o.dirty {
		o.self.updateProps()
		o.dirty = false
	}
}

func (o *object) updateVars()                     {}
func (o *object) updateProps()                    {}
func (o *object) commentChecker() *commentChecker { return emptyChecker }
func (o *object) guidLists() []*GUIDList          { return nil }

// loadObject wraps a parsed dict in the type registered for its isa.
func loadObject(guid string, props *element.Dict) objectImpl {
	var obj objectImpl
	switch props.GetString("isa") {
	case "PBXBuildFile":
		obj = &BuildFile{}
	case "PBXFileReference":
		obj = &FileReference{}
	case "PBXGroup":
		obj = &Group{}
	case "PBXVariantGroup":
		obj = &VariantGroup{}
	case "PBXNativeTarget":
		obj = &NativeTarget{}
	case "PBXSourcesBuildPhase":
		obj = &SourcesBuildPhase{}
	case "PBXFrameworksBuildPhase":
		obj = &FrameworksBuildPhase{}
	case "PBXResourcesBuildPhase":
		obj = &ResourcesBuildPhase{}
	case "PBXCopyFilesBuildPhase":
		obj = &CopyFilesBuildPhase{}
	case "PBXShellScriptBuildPhase":
		obj = &ShellScriptBuildPhase{}
	case "PBXContainerItemProxy":
		obj = &ContainerItemProxy{}
	case "PBXReferenceProxy":
		obj = &ReferenceProxy{}
	case "PBXTargetDependency":
		obj = &TargetDependency{}
	case "XCBuildConfiguration":
		obj = &XCBuildConfiguration{}
	case "XCConfigurationList":
		obj = &XCConfigurationList{}
	case "PBXProject":
		obj = &ProjectObject{}
	default:
		obj = &GenericObject{}
	}
	b := obj.base()
	b.guid = guid
	b.props = props
	b.self = obj
	obj.updateVars()
	return obj
}

// commentChecker selects the fields whose GUID values get a /* comment */ on output.
// Paths are slash separated with * matching any key or array element.
type commentChecker struct {
	level int
	paths [][]string
}

var emptyChecker = &commentChecker{}

func newCommentChecker(paths ...string) *commentChecker {
	c := &commentChecker{}
	for _, p := range paths {
		c.paths = append(c.paths, strings.Split(p, "/"))
	}
	return c
}

func (c *commentChecker) contains(s string) bool {
	for _, p := range c.paths {
		if len(p) == c.level+1 && (p[c.level] == "*" || p[c.level] == s) {
			return true
		}
	}
	return false
}

func (c *commentChecker) next(s string) *commentChecker {
	n := &commentChecker{level: c.level + 1}
	for _, p := range c.paths {
		if len(p) > c.level+1 && (p[c.level] == "*" || p[c.level] == s) {
			n.paths = append(n.paths, p)
		}
	}
	return n
}
