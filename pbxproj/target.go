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

type NativeTarget struct {
	object
	name             string
	productName      string
	productType      string
	productReference string
	buildConfigList  string
	phases           GUIDList
	dependencies     GUIDList
	buildRules       GUIDList
}

var nativeTargetChecker = newCommentChecker(
	"buildPhases/*", "buildRules/*", "dependencies/*", "productReference/*", "buildConfigurationList/*",
	"packageProductDependencies/*",
)

func (t *NativeTarget) Name() string                  { return t.name }
func (t *NativeTarget) ProductName() string           { return t.productName }
func (t *NativeTarget) ProductType() string           { return t.productType }
func (t *NativeTarget) ProductReference() string      { return t.productReference }
func (t *NativeTarget) BuildConfigurationList() string { return t.buildConfigList }
func (t *NativeTarget) Phases() *GUIDList             { return &t.phases }
func (t *NativeTarget) Dependencies() *GUIDList       { return &t.dependencies }
func (t *NativeTarget) BuildRules() *GUIDList         { return &t.buildRules }

func (t *NativeTarget) SetName(name string) {
	t.name = name
	t.touch()
}

func (t *NativeTarget) SetProductName(name string) {
	t.productName = name
	t.touch()
}

func (t *NativeTarget) updateVars() {
	t.name = t.props.GetString("name")
	t.productName = t.props.GetString("productName")
	t.productType = t.props.GetString("productType")
	t.productReference = t.props.GetString("productReference")
	t.buildConfigList = t.props.GetString("buildConfigurationList")
	t.phases.load(&t.object, t.props.GetArray("buildPhases"))
	t.dependencies.load(&t.object, t.props.GetArray("dependencies"))
	t.buildRules.load(&t.object, t.props.GetArray("buildRules"))
}

func (t *NativeTarget) updateProps() {
	t.props.SetString("name", t.name)
	t.props.SetStringOrDelete("productName", t.productName)
	t.props.SetStringOrDelete("productType", t.productType)
	t.props.SetStringOrDelete("productReference", t.productReference)
	t.props.SetStringOrDelete("buildConfigurationList", t.buildConfigList)
	t.props.Set("buildPhases", t.phases.toArray())
	t.props.Set("dependencies", t.dependencies.toArray())
	t.props.Set("buildRules", t.buildRules.toArray())
}

func (t *NativeTarget) commentChecker() *commentChecker { return nativeTargetChecker }

func (t *NativeTarget) guidLists() []*GUIDList {
	return []*GUIDList{&t.phases, &t.dependencies, &t.buildRules}
}

func (p *Project) newNativeTarget(name, productType, productReference, buildConfigList string) *NativeTarget {
	props := element.NewDictWithData(
		element.Item("isa", element.String("PBXNativeTarget")),
		element.Item("buildConfigurationList", element.String(buildConfigList)),
		element.Item("buildPhases", element.NewArray()),
		element.Item("buildRules", element.NewArray()),
		element.Item("dependencies", element.NewArray()),
		element.Item("name", element.String(name)),
		element.Item("productName", element.String(name)),
		element.Item("productReference", element.String(productReference)),
		element.Item("productType", element.String(productType)),
	)
	return p.createObject(props).(*NativeTarget)
}
