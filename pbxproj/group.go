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

import "github.com/soapywu/pbxkit/element"

// GroupLike is implemented by PBXGroup and PBXVariantGroup.
type GroupLike interface {
	Object
	Name() string
	Path() string
	SourceTree() SourceTree
	Children() *GUIDList
}

type groupBase struct {
	object
	children GUIDList
	name     string
	path     string
	tree     SourceTree
}

var groupChecker = newCommentChecker("children/*")

func (g *groupBase) Name() string           { return g.name }
func (g *groupBase) Path() string           { return g.path }
func (g *groupBase) SourceTree() SourceTree { return g.tree }
func (g *groupBase) Children() *GUIDList    { return &g.children }

func (g *groupBase) SetName(name string) {
	g.name = name
	g.touch()
}

func (g *groupBase) SetPath(path string) {
	g.path = path
	g.touch()
}

func (g *groupBase) updateVars() {
	g.children.load(&g.object, g.props.GetArray("children"))
	g.path = g.props.GetString("path")
	g.name = g.props.GetString("name")
	if g.name == "" {
		g.name = g.path
	}
	g.tree = SourceTree(g.props.GetString("sourceTree"))
}

func (g *groupBase) updateProps() {
	g.props.Set("children", g.children.toArray())
	if g.name == g.path {
		g.props.Delete("name")
	} else {
		g.props.SetStringOrDelete("name", g.name)
	}
	g.props.SetStringOrDelete("path", g.path)
	g.props.SetStringOrDelete("sourceTree", string(g.tree))
}

func (g *groupBase) commentChecker() *commentChecker { return groupChecker }
func (g *groupBase) guidLists() []*GUIDList          { return []*GUIDList{&g.children} }

type Group struct {
	groupBase
}

// VariantGroup holds the localized variants of one resource.
type VariantGroup struct {
	groupBase
}

func newGroupProps(isa, name, path string, tree SourceTree) *element.Dict {
	props := element.NewDictWithData(
		element.Item("isa", element.String(isa)),
		element.Item("children", element.NewArray()),
	)
	if name != path {
		props.SetStringOrDelete("name", name)
	}
	props.SetStringOrDelete("path", path)
	props.SetString("sourceTree", string(tree))
	return props
}

func (p *Project) newGroup(name, path string, tree SourceTree) *Group {
	return p.createObject(newGroupProps("PBXGroup", name, path, tree)).(*Group)
}

func (p *Project) newVariantGroup(name string) *VariantGroup {
	return p.createObject(newGroupProps("PBXVariantGroup", name, "", SourceTreeGroup)).(*VariantGroup)
}
