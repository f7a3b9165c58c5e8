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

import "strings"

// guidCommentMap holds the /* comment */ written after each GUID. The first comment
// registered for a GUID wins.
type guidCommentMap map[string]string

func (m guidCommentMap) add(guid, comment string) {
	if guid == "" || comment == "" {
		return
	}
	if _, ok := m[guid]; !ok {
		m[guid] = comment
	}
}

// buildCommentMap derives the comments from the current object graph.
func (p *Project) buildCommentMap() guidCommentMap {
	comments := make(guidCommentMap)
	s := p.objects

	for _, g := range s.groups.Objects() {
		comments.add(g.GUID(), g.Name())
	}
	for _, g := range s.variantGroups.Objects() {
		comments.add(g.GUID(), g.Name())
	}
	for _, c := range s.containerProxies.Objects() {
		comments.add(c.GUID(), "PBXContainerItemProxy")
	}
	for _, r := range s.referenceProxies.Objects() {
		comments.add(r.GUID(), r.Path())
	}
	for _, d := range s.targetDeps.Objects() {
		comments.add(d.GUID(), "PBXTargetDependency")
	}
	for _, c := range s.buildConfigs.Objects() {
		comments.add(c.GUID(), c.Name())
	}
	for _, t := range s.nativeTargets.Objects() {
		comments.add(t.GUID(), t.Name())
		comments.add(t.buildConfigList, `Build configuration list for PBXNativeTarget "`+t.Name()+`"`)
	}
	for _, obj := range s.projects.Objects() {
		comments.add(obj.GUID(), "Project object")
		comments.add(obj.buildConfigList, `Build configuration list for PBXProject "`+p.Name()+`"`)
	}
	comments.add(p.root.GetString("rootObject"), "Project object")
	for _, f := range s.fileRefs.Objects() {
		comments.add(f.GUID(), f.Name())
	}

	for _, obj := range p.genericObjects() {
		comments.add(obj.GUID(), genericComment(obj))
		if list := obj.props.GetString("buildConfigurationList"); list != "" {
			comments.add(list, "Build configuration list for "+obj.Isa()+` "`+obj.props.GetString("name")+`"`)
		}
	}

	for _, obj := range s.all() {
		switch phase := obj.(type) {
		case BuildPhase:
			comments.add(phase.GUID(), phase.Name())
			p.addBuildFileComments(comments, phase.Files().items, phase.Name())
		case *GenericObject:
			if strings.HasSuffix(phase.Isa(), "BuildPhase") {
				p.addBuildFileComments(comments, phase.props.GetArray("files").Strings(), genericComment(phase))
			}
		}
	}
	return comments
}

func (p *Project) addBuildFileComments(comments guidCommentMap, buildFiles []string, phaseName string) {
	for _, guid := range buildFiles {
		bf := p.BuildFile(guid)
		if bf == nil {
			continue
		}
		name := comments[bf.reference()]
		if name != "" {
			comments.add(guid, name+" in "+phaseName)
		}
	}
}

func (p *Project) genericObjects() []*GenericObject {
	var result []*GenericObject
	for _, obj := range p.objects.all() {
		if generic, ok := obj.(*GenericObject); ok {
			result = append(result, generic)
		}
	}
	return result
}

func genericComment(obj *GenericObject) string {
	isa := obj.Isa()
	props := obj.props
	switch {
	case strings.HasSuffix(isa, "BuildPhase"):
		if name := props.GetString("name"); name != "" {
			return name
		}
		return strings.TrimSuffix(strings.TrimPrefix(isa, "PBX"), "BuildPhase")
	case isa == "PBXBuildRule":
		return isa
	case isa == "XCSwiftPackageProductDependency":
		return props.GetString("productName")
	case isa == "XCRemoteSwiftPackageReference":
		repo := props.GetString("repositoryURL")
		repo = repo[strings.LastIndex(repo, "/")+1:]
		return isa + ` "` + strings.TrimSuffix(repo, ".git") + `"`
	}
	if name := props.GetString("name"); name != "" {
		return name
	}
	return props.GetString("path")
}
