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

import "fmt"

// AddFile adds a file reference for realPath, relative to tree, shown at projectPath in the
// navigator. Missing groups along projectPath are created. When a reference already exists
// at projectPath or at realPath its GUID is returned unchanged.
func (p *Project) AddFile(realPath, projectPath string, tree SourceTree) (string, error) {
	return p.addFileImpl(realPath, projectPath, tree, false)
}

// AddFolderReference adds a folder reference; its contents are copied as a whole.
func (p *Project) AddFolderReference(realPath, projectPath string, tree SourceTree) (string, error) {
	return p.addFileImpl(realPath, projectPath, tree, true)
}

func (p *Project) addFileImpl(realPath, projectPath string, tree SourceTree, folder bool) (string, error) {
	if !tree.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSourceTree, tree)
	}
	if tree == SourceTreeGroup {
		return "", fmt.Errorf("%w: %s cannot anchor a real path", ErrInvalidSourceTree, tree)
	}
	realPath = fixSlashes(realPath)
	projectPath = fixSlashes(projectPath)
	if !folder && extensionOf(realPath) != extensionOf(projectPath) {
		return "", fmt.Errorf("%w: %q and %q", ErrExtensionMismatch, realPath, projectPath)
	}

	if guid := p.FindFileGUIDByProjectPath(projectPath); guid != "" {
		return guid, nil
	}
	if guid := p.FindFileGUIDByRealPath(realPath, tree); guid != "" {
		return guid, nil
	}

	dir, name := splitDir(projectPath)
	parent := p.createSourceGroup(dir)
	if parent == nil {
		return "", fmt.Errorf("%w: project has no main group", ErrInvalidProject)
	}
	var ref *FileReference
	if folder {
		ref = p.newFolderReference(realPath, name, tree)
	} else {
		ref = p.newFileReference(realPath, name, tree, false)
	}
	parent.Children().Add(ref.GUID())
	p.refreshAuxMaps()
	p.logger.Debug("added file", "guid", ref.GUID(), "path", realPath, "projectPath", projectPath)
	return ref.GUID(), nil
}

// createSourceGroup returns the group shown at projectPath, creating missing levels as
// groups named after, and relative to, each path segment.
func (p *Project) createSourceGroup(projectPath string) *Group {
	parent := p.Group(p.MainGroupGUID())
	if parent == nil {
		return nil
	}
	current := ""
	for _, segment := range splitPath(projectPath) {
		current = combinePath(current, segment)
		if group := p.projectPathToGroup[current]; group != nil {
			parent = group
			continue
		}
		group := p.newGroup(segment, segment, SourceTreeGroup)
		parent.Children().Add(group.GUID())
		p.parents[group.GUID()] = parent
		p.projectPathToGroup[current] = group
		p.groupToProjectPath[group.GUID()] = current
		parent = group
	}
	return parent
}

// RemoveFile deletes a file reference, its build files in every target and any groups
// left empty by the removal. The main group is never removed.
func (p *Project) RemoveFile(fileGUID string) {
	ref := p.FileReference(fileGUID)
	if ref == nil {
		return
	}
	if parent := p.parents[fileGUID]; parent != nil {
		parent.Children().Remove(fileGUID)
		p.removeGroupIfEmpty(parent)
	}
	for _, target := range p.objects.nativeTargets.Objects() {
		p.RemoveFileFromBuild(target.GUID(), fileGUID)
	}
	p.removeBuildFilesFor(fileGUID)
	p.removeObject(fileGUID)
	p.refreshAuxMaps()
	p.logger.Debug("removed file", "guid", fileGUID, "path", ref.Path())
}

func (p *Project) removeGroupIfEmpty(group GroupLike) {
	g, ok := group.(*Group)
	if !ok || g.children.Len() > 0 || g.GUID() == p.MainGroupGUID() {
		return
	}
	if parent := p.parents[g.GUID()]; parent != nil {
		parent.Children().Remove(g.GUID())
		p.removeGroupIfEmpty(parent)
	}
	delete(p.parents, g.GUID())
	p.removeObject(g.GUID())
}

// removeBuildFilesFor drops build files referencing fileGUID that no target index knows
// about, such as entries of header phases.
func (p *Project) removeBuildFilesFor(fileGUID string) {
	for _, bf := range p.objects.buildFiles.Objects() {
		if bf.fileRef == fileGUID {
			p.detachBuildFile(bf.GUID())
		}
	}
}

func (p *Project) detachBuildFile(buildFileGUID string) {
	for _, obj := range p.objects.all() {
		switch obj := obj.(type) {
		case BuildPhase:
			obj.Files().Remove(buildFileGUID)
		case *GenericObject:
			obj.pruneMissing(func(guid string) bool { return guid != buildFileGUID })
		}
	}
	p.removeObject(buildFileGUID)
}

// AddFileToBuild adds a file to the phase of target that matches its type, creating the
// phase when missing. Headers and non-buildable files are skipped; adding twice is a no-op.
func (p *Project) AddFileToBuild(targetGUID, fileGUID string) error {
	return p.addFileToBuildImpl(targetGUID, fileGUID, false, "")
}

// AddFileToBuildWithFlags is AddFileToBuild with per-file compiler flags.
func (p *Project) AddFileToBuildWithFlags(targetGUID, fileGUID, compileFlags string) error {
	return p.addFileToBuildImpl(targetGUID, fileGUID, false, compileFlags)
}

func (p *Project) addFileToBuildImpl(targetGUID, fileGUID string, weak bool, compileFlags string) error {
	target := p.NativeTarget(targetGUID)
	if target == nil {
		return fmt.Errorf("%w: target %s", ErrNotFound, targetGUID)
	}
	kind, err := p.phaseKindForFile(fileGUID)
	if err != nil {
		return err
	}
	if !kind.Buildable() || p.BuildFileForSourceFile(targetGUID, fileGUID) != nil {
		return nil
	}
	phase := p.buildPhaseForKind(target, kind)
	p.addBuildFileToPhase(target, phase, fileGUID, weak, compileFlags)
	return nil
}

// AddFileToBuildSection adds a file to a specific phase of target regardless of its type.
func (p *Project) AddFileToBuildSection(targetGUID, phaseGUID, fileGUID string) error {
	target := p.NativeTarget(targetGUID)
	if target == nil {
		return fmt.Errorf("%w: target %s", ErrNotFound, targetGUID)
	}
	phase := p.BuildPhase(phaseGUID)
	if phase == nil || !target.phases.Contains(phaseGUID) {
		return fmt.Errorf("%w: build phase %s of target %s", ErrNotFound, phaseGUID, target.Name())
	}
	if p.Object(fileGUID) == nil {
		return fmt.Errorf("%w: file %s", ErrNotFound, fileGUID)
	}
	if p.BuildFileForSourceFile(targetGUID, fileGUID) != nil {
		return nil
	}
	p.addBuildFileToPhase(target, phase, fileGUID, false, "")
	return nil
}

func (p *Project) addBuildFileToPhase(target *NativeTarget, phase BuildPhase, fileGUID string, weak bool, compileFlags string) {
	bf := p.newBuildFile(fileGUID, weak, compileFlags)
	phase.Files().Add(bf.GUID())
	files := p.buildFilesByTarget[target.GUID()]
	if files == nil {
		files = make(map[string]*BuildFile)
		p.buildFilesByTarget[target.GUID()] = files
	}
	files[fileGUID] = bf
}

func (p *Project) phaseKindForFile(fileGUID string) (PhaseKind, error) {
	switch obj := p.Object(fileGUID).(type) {
	case *FileReference:
		if obj.IsFolderReference() {
			return PhaseResource, nil
		}
		name := obj.path
		if extensionOf(name) == "" {
			name = obj.name
		}
		return PhaseKindByExtension(name), nil
	case *VariantGroup:
		return PhaseResource, nil
	case *ReferenceProxy:
		return PhaseKindByExtension(obj.path), nil
	}
	return PhaseNotBuildable, fmt.Errorf("%w: file %s", ErrNotFound, fileGUID)
}

// buildPhaseForKind returns the first phase of target for kind, appending a new one when
// the target has none.
func (p *Project) buildPhaseForKind(target *NativeTarget, kind PhaseKind) BuildPhase {
	for _, guid := range target.phases.items {
		switch phase := p.objects.get(guid).(type) {
		case *SourcesBuildPhase:
			if kind == PhaseSource {
				return phase
			}
		case *FrameworksBuildPhase:
			if kind == PhaseFramework {
				return phase
			}
		case *ResourcesBuildPhase:
			if kind == PhaseResource {
				return phase
			}
		case *CopyFilesBuildPhase:
			if kind == PhaseCopyFile {
				return phase
			}
		}
	}

	var phase BuildPhase
	switch kind {
	case PhaseSource:
		phase = p.newSourcesBuildPhase()
	case PhaseFramework:
		phase = p.newFrameworksBuildPhase()
	case PhaseCopyFile:
		phase = p.newCopyFilesBuildPhase("Embed App Extensions", "", SUBFOLDERSPEC_BY_DESTINATION["plugins"])
	default:
		phase = p.newResourcesBuildPhase()
	}
	target.phases.Add(phase.GUID())
	p.logger.Debug("created build phase", "target", target.Name(), "phase", phase.Name())
	return phase
}

// RemoveFileFromBuild removes the build file placing fileGUID in targetGUID, if any.
func (p *Project) RemoveFileFromBuild(targetGUID, fileGUID string) {
	bf := p.BuildFileForSourceFile(targetGUID, fileGUID)
	if bf == nil {
		return
	}
	delete(p.buildFilesByTarget[targetGUID], fileGUID)
	if target := p.NativeTarget(targetGUID); target != nil {
		for _, guid := range target.phases.items {
			if phase := p.BuildPhase(guid); phase != nil {
				phase.Files().Remove(bf.GUID())
			}
		}
	}
	p.removeObject(bf.GUID())
}

// AddFrameworkToProject adds an SDK framework or library to the Frameworks group and
// links it into target, weakly when weak is set.
func (p *Project) AddFrameworkToProject(targetGUID, framework string, weak bool) error {
	if p.NativeTarget(targetGUID) == nil {
		return fmt.Errorf("%w: target %s", ErrNotFound, targetGUID)
	}
	fileGUID, err := p.AddFile(frameworkRealPath(framework), "Frameworks/"+framework, SourceTreeSdk)
	if err != nil {
		return err
	}
	return p.addFileToBuildImpl(targetGUID, fileGUID, weak, "")
}

// RemoveFrameworkFromProject unlinks a framework from target and deletes its reference
// once no target links it.
func (p *Project) RemoveFrameworkFromProject(targetGUID, framework string) {
	fileGUID := p.FindFileGUIDByRealPath(frameworkRealPath(framework), SourceTreeSdk)
	if fileGUID == "" {
		return
	}
	p.RemoveFileFromBuild(targetGUID, fileGUID)
	for _, files := range p.buildFilesByTarget {
		if files[fileGUID] != nil {
			return
		}
	}
	p.RemoveFile(fileGUID)
}

// ContainsFramework reports whether target links framework.
func (p *Project) ContainsFramework(targetGUID, framework string) bool {
	fileGUID := p.FindFileGUIDByRealPath(frameworkRealPath(framework), SourceTreeSdk)
	return fileGUID != "" && p.BuildFileForSourceFile(targetGUID, fileGUID) != nil
}
