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

// ProjectObject is the PBXProject entry the root object points at.
type ProjectObject struct {
	object
	targets         GUIDList
	buildConfigList string
	mainGroup       string
	productRefGroup string
	knownRegions    []string
	attributes      *element.Dict
}

var projectObjectChecker = newCommentChecker(
	"buildConfigurationList/*", "mainGroup/*", "productRefGroup/*",
	"projectReferences/*/ProductGroup/*", "projectReferences/*/ProjectRef/*", "targets/*",
)

func (o *ProjectObject) Targets() *GUIDList             { return &o.targets }
func (o *ProjectObject) BuildConfigurationList() string { return o.buildConfigList }
func (o *ProjectObject) MainGroup() string              { return o.mainGroup }
func (o *ProjectObject) ProductRefGroup() string        { return o.productRefGroup }
func (o *ProjectObject) KnownRegions() []string         { return append([]string(nil), o.knownRegions...) }

// targetAttributes returns the per-target attribute dict, creating it on demand.
func (o *ProjectObject) targetAttributes(targetGUID string) *element.Dict {
	all := o.attributes.GetDict("TargetAttributes")
	if all == nil {
		all = element.NewDict()
		o.attributes.Set("TargetAttributes", all)
	}
	attrs := all.GetDict(targetGUID)
	if attrs == nil {
		attrs = element.NewDict()
		all.Set(targetGUID, attrs)
	}
	return attrs
}

func (o *ProjectObject) updateVars() {
	o.targets.load(&o.object, o.props.GetArray("targets"))
	o.buildConfigList = o.props.GetString("buildConfigurationList")
	o.mainGroup = o.props.GetString("mainGroup")
	o.productRefGroup = o.props.GetString("productRefGroup")
	o.knownRegions = o.props.GetArray("knownRegions").Strings()
	if attrs := o.props.GetDict("attributes"); attrs != nil {
		o.attributes = attrs.Clone()
	} else {
		o.attributes = element.NewDict()
	}
}

func (o *ProjectObject) updateProps() {
	o.props.Set("targets", o.targets.toArray())
	o.props.SetStringOrDelete("buildConfigurationList", o.buildConfigList)
	o.props.SetStringOrDelete("mainGroup", o.mainGroup)
	o.props.SetStringOrDelete("productRefGroup", o.productRefGroup)
	o.props.Set("knownRegions", stringsToArray(o.knownRegions))
	o.props.Set("attributes", o.attributes.Clone())
}

func (o *ProjectObject) commentChecker() *commentChecker { return projectObjectChecker }
func (o *ProjectObject) guidLists() []*GUIDList          { return []*GUIDList{&o.targets} }

// GenericObject keeps an entry of an isa without a typed model verbatim.
type GenericObject struct {
	object
}

var genericChecker = newCommentChecker(
	"baseConfigurationReference/*", "buildConfigurationList/*", "buildConfigurations/*", "buildPhases/*",
	"buildRules/*", "children/*", "containerPortal/*", "dependencies/*", "fileRef/*", "files/*",
	"mainGroup/*", "package/*", "packageProductDependencies/*", "productRef/*", "productReference/*",
	"remoteRef/*", "target/*", "targetProxy/*", "targets/*", "currentVersion/*", "versionGroups/*",
)

var genericListKeys = []string{"buildPhases", "children", "dependencies", "files", "packageProductDependencies", "targets"}

func (g *GenericObject) commentChecker() *commentChecker { return genericChecker }

// pruneMissing removes references to unknown objects from the well-known list fields.
func (g *GenericObject) pruneMissing(exists func(string) bool) []string {
	var dropped []string
	for _, key := range genericListKeys {
		arr := g.props.GetArray(key)
		if arr == nil {
			continue
		}
		kept := arr.Values[:0]
		for _, v := range arr.Values {
			if s, ok := v.(element.String); ok && !exists(string(s)) {
				dropped = append(dropped, string(s))
				continue
			}
			kept = append(kept, v)
		}
		arr.Values = kept
	}
	return dropped
}
