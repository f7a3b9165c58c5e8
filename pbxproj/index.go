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

// refreshAuxMaps rebuilds the path and build file indexes by walking down from the main
// group. Project paths join display names; real paths only inherit the parent's location
// for <group>-relative children.
func (p *Project) refreshAuxMaps() {
	p.projectPathToFile = make(map[string]*FileReference)
	p.fileToProjectPath = make(map[string]string)
	p.realPathToFile = make(map[SourceTree]map[string]*FileReference)
	p.parents = make(map[string]GroupLike)
	p.projectPathToGroup = make(map[string]*Group)
	p.groupToProjectPath = make(map[string]string)
	p.buildFilesByTarget = make(map[string]map[string]*BuildFile)

	if main := p.Group(p.MainGroupGUID()); main != nil {
		p.indexGroup(main, "", "", SourceTreeSource, make(map[string]bool))
	}

	for _, target := range p.objects.nativeTargets.Objects() {
		files := make(map[string]*BuildFile)
		for _, phaseGUID := range target.phases.items {
			phase := p.BuildPhase(phaseGUID)
			if phase == nil {
				continue
			}
			for _, guid := range phase.Files().items {
				if bf := p.objects.buildFiles.Get(guid); bf != nil && bf.fileRef != "" {
					files[bf.fileRef] = bf
				}
			}
		}
		p.buildFilesByTarget[target.GUID()] = files
	}
}

func (p *Project) indexGroup(group GroupLike, projectPath, realPath string, realTree SourceTree, seen map[string]bool) {
	if seen[group.GUID()] {
		return
	}
	seen[group.GUID()] = true
	_, variant := group.(*VariantGroup)

	for _, guid := range group.Children().items {
		switch child := p.objects.get(guid).(type) {
		case *FileReference:
			p.parents[guid] = group
			if variant {
				continue
			}
			childProjectPath := combinePath(projectPath, child.name)
			childRealPath, childTree := combineRealPath(realPath, realTree, child.path, child.tree)
			p.projectPathToFile[childProjectPath] = child
			p.fileToProjectPath[guid] = childProjectPath
			p.realPathIndex(childTree)[childRealPath] = child
		case *Group:
			p.parents[guid] = group
			childProjectPath := combinePath(projectPath, child.name)
			childRealPath, childTree := combineRealPath(realPath, realTree, child.path, child.tree)
			p.projectPathToGroup[childProjectPath] = child
			p.groupToProjectPath[guid] = childProjectPath
			p.indexGroup(child, childProjectPath, childRealPath, childTree, seen)
		case *VariantGroup:
			p.parents[guid] = group
			p.indexGroup(child, projectPath, realPath, realTree, seen)
		}
	}
}

func (p *Project) realPathIndex(tree SourceTree) map[string]*FileReference {
	index, ok := p.realPathToFile[tree]
	if !ok {
		index = make(map[string]*FileReference)
		p.realPathToFile[tree] = index
	}
	return index
}

// FindFileGUIDByProjectPath returns the file reference shown at projectPath, or "".
func (p *Project) FindFileGUIDByProjectPath(projectPath string) string {
	if ref := p.projectPathToFile[fixSlashes(projectPath)]; ref != nil {
		return ref.GUID()
	}
	return ""
}

// FindFileGUIDByRealPath returns the file reference at realPath relative to one of trees,
// or "". Without trees every source tree is searched.
func (p *Project) FindFileGUIDByRealPath(realPath string, trees ...SourceTree) string {
	realPath = fixSlashes(realPath)
	if len(trees) == 0 {
		trees = realPathTrees
	}
	for _, tree := range trees {
		if ref := p.realPathToFile[tree][realPath]; ref != nil {
			return ref.GUID()
		}
	}
	return ""
}

func (p *Project) ContainsFileByProjectPath(projectPath string) bool {
	return p.FindFileGUIDByProjectPath(projectPath) != ""
}

func (p *Project) ContainsFileByRealPath(realPath string, trees ...SourceTree) bool {
	return p.FindFileGUIDByRealPath(realPath, trees...) != ""
}

func (p *Project) FindGroupGUIDByProjectPath(projectPath string) string {
	if group := p.projectPathToGroup[fixSlashes(projectPath)]; group != nil {
		return group.GUID()
	}
	return ""
}

// ProjectPathForFile returns where a file reference is shown in the navigator, or "".
func (p *Project) ProjectPathForFile(fileGUID string) string {
	return p.fileToProjectPath[fileGUID]
}

// BuildFileForSourceFile returns the build file that places fileGUID in targetGUID, or nil.
func (p *Project) BuildFileForSourceFile(targetGUID, fileGUID string) *BuildFile {
	return p.buildFilesByTarget[targetGUID][fileGUID]
}
