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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 46;
	objects = {
		P1 = {isa = PBXProject; mainGroup = G1; targets = (T1, A1); projectDirPath = ""; };
		G1 = {isa = PBXGroup; children = (F1, V1); sourceTree = "<group>"; };
		F1 = {isa = PBXFileReference; lastKnownFileType = sourcecode.c.h; path = foo.h; sourceTree = "<group>"; };
		V1 = {isa = PBXVariantGroup; children = (F2); name = Main.storyboard; sourceTree = "<group>"; };
		F2 = {isa = PBXFileReference; name = Base; path = Base.lproj/Main.storyboard; sourceTree = "<group>"; };
		T1 = {isa = PBXNativeTarget; buildPhases = (H1, R1); buildRules = (); dependencies = (); name = App; };
		H1 = {isa = PBXHeadersBuildPhase; files = (B1, B9); };
		B1 = {isa = PBXBuildFile; fileRef = F1; settings = {ATTRIBUTES = (Public, ); }; };
		R1 = {isa = PBXResourcesBuildPhase; files = (); };
		Z1 = {isa = XCZebraThing; children = (F1); name = Zebra; };
		A1 = {isa = PBXAggregateTarget; buildPhases = (); name = Agg; };
		Q1 = {comment = "no isa"; };
	};
	rootObject = P1;
}
`

func loadMixed(t *testing.T) *Project {
	t.Helper()
	p := New(WithGUIDSource(sequentialGUIDs()), WithLogger(discardLogger()))
	require.NoError(t, p.ReadFromString(mixedProject))
	return p
}

func sectionNames(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "/* Begin ") {
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(line, "/* Begin "), " section */"))
		}
	}
	return names
}

func TestWriter_SectionOrder(t *testing.T) {
	out := loadMixed(t).WriteToString()
	assert.Equal(t, []string{
		"PBXAggregateTarget",
		"PBXBuildFile",
		"PBXFileReference",
		"PBXGroup",
		"PBXHeadersBuildPhase",
		"PBXNativeTarget",
		"PBXProject",
		"PBXResourcesBuildPhase",
		"PBXVariantGroup",
		"XCZebraThing",
	}, sectionNames(out))
}

func TestWriter_GenericObjects(t *testing.T) {
	p := loadMixed(t)
	out := p.WriteToString()

	assert.Contains(t, out, "\t\tB1 /* foo.h in Headers */ = {isa = PBXBuildFile; fileRef = F1 /* foo.h */; settings = {ATTRIBUTES = (Public, ); }; };\n")
	assert.Contains(t, out, "\t\tH1 /* Headers */ = {\n\t\t\tisa = PBXHeadersBuildPhase;\n\t\t\tfiles = (\n\t\t\t\tB1 /* foo.h in Headers */,\n\t\t\t);\n\t\t};\n")
	assert.Contains(t, out, "\t\tZ1 /* Zebra */ = {\n\t\t\tisa = XCZebraThing;\n\t\t\tchildren = (\n\t\t\t\tF1 /* foo.h */,\n\t\t\t);\n\t\t\tname = Zebra;\n\t\t};\n")
	assert.Contains(t, out, "\t\tA1 /* Agg */ = {")
	assert.Contains(t, out, "\t\t\t\tA1 /* Agg */,\n")
	assert.Contains(t, out, "\t\tV1 /* Main.storyboard */ = {")
	assert.Contains(t, out, "\t\t\t\tF2 /* Base */,\n")
	assert.Contains(t, out, "projectDirPath = \"\";")
	assert.NotContains(t, out, "B9")
	assert.NotContains(t, out, "Q1")

	again := New(WithLogger(discardLogger()))
	require.NoError(t, again.ReadFromString(out))
	assert.Equal(t, out, again.WriteToString())
}

func TestWriter_OmitEmpty(t *testing.T) {
	p := loadMixed(t)
	out := NewPbxWriter(p, WithOmitEmpty()).String()
	assert.NotContains(t, out, "projectDirPath")
	assert.True(t, strings.HasPrefix(out, HEAD_COMMENT+"\n{\n"))
	assert.True(t, strings.HasSuffix(out, "\trootObject = P1 /* Project object */;\n}\n"))
}

func TestWriter_StringWriter(t *testing.T) {
	p := loadMixed(t)
	var sb strings.Builder
	sb.WriteString("prefix\n")
	out := NewPbxWriter(p, WithStringWriter(&sb)).String()
	assert.True(t, strings.HasPrefix(out, "prefix\n"+HEAD_COMMENT))
	assert.Equal(t, out, sb.String())
}

func TestVariantGroupIndexing(t *testing.T) {
	p := loadMixed(t)

	assert.Equal(t, "F1", p.FindFileGUIDByProjectPath("foo.h"))
	assert.Empty(t, p.FindFileGUIDByProjectPath("Main.storyboard/Base"))
	assert.Empty(t, p.FindFileGUIDByRealPath("Base.lproj/Main.storyboard"))
	assert.NotNil(t, p.VariantGroup("V1"))

	require.NoError(t, p.AddFileToBuild("T1", "V1"))
	assert.Contains(t, p.WriteToString(), "/* Main.storyboard in Resources */,")
}

func TestRemoveFile_DetachesFromGenericPhase(t *testing.T) {
	p := loadMixed(t)

	p.RemoveFile("F1")
	assert.Nil(t, p.Object("F1"))
	assert.Nil(t, p.Object("B1"))

	pruned := p.RepairStructure()
	assert.Equal(t, []string{"F1"}, pruned)

	out := p.WriteToString()
	assert.Contains(t, out, "\t\t\tfiles = (\n\t\t\t);\n")
	assert.NotContains(t, out, "F1")
	assert.Contains(t, out, "V1 /* Main.storyboard */,")
}

func TestCommentChecker(t *testing.T) {
	c := newCommentChecker("children/*", "projectReferences/*/ProductGroup/*")

	assert.False(t, c.contains("children"))
	children := c.next("children")
	assert.True(t, children.contains("ANY"))
	assert.False(t, children.next("ANY").contains("ANY"))

	refs := c.next("projectReferences").next("*").next("ProductGroup")
	assert.True(t, refs.contains("GUID"))
	assert.False(t, c.next("projectReferences").next("*").next("ProjectRef").contains("GUID"))

	assert.False(t, emptyChecker.contains("x"))
	assert.False(t, emptyChecker.next("x").contains("x"))
}

func TestSourceTree(t *testing.T) {
	tests := []struct {
		in   string
		want SourceTree
	}{
		{"sdk", SourceTreeSdk},
		{"SDKROOT", SourceTreeSdk},
		{"Group", SourceTreeGroup},
		{"<group>", SourceTreeGroup},
		{"SOURCE_ROOT", SourceTreeSource},
		{"build", SourceTreeBuild},
	}
	for _, tt := range tests {
		got, err := ParseSourceTree(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseSourceTree("nowhere")
	assert.ErrorIs(t, err, ErrInvalidSourceTree)
	assert.Equal(t, "<absolute>", SourceTreeAbsolute.String())
}

func TestFileTypes(t *testing.T) {
	assert.Equal(t, "sourcecode.c.objc", FileTypeByExtension("Foo.M"))
	assert.Equal(t, "wrapper.framework", FileTypeByExtension("UIKit.framework"))
	assert.Equal(t, DEFAULT_FILETYPE, FileTypeByExtension("blob.dat"))

	assert.Equal(t, PhaseSource, PhaseKindByExtension("a.swift"))
	assert.Equal(t, PhaseHeader, PhaseKindByExtension("a.h"))
	assert.Equal(t, PhaseResource, PhaseKindByExtension("a.dat"))
	assert.Equal(t, PhaseFramework, PhaseKindByExtension("libz.tbd"))
	assert.Equal(t, PhaseCopyFile, PhaseKindByExtension("Widget.appex"))

	assert.True(t, IsBuildable("a.m"))
	assert.False(t, IsBuildable("a.h"))
	assert.False(t, IsBuildable("Info.plist"))

	assert.Equal(t, "4", encodingForFile("a.m"))
	assert.Empty(t, encodingForFile("a.png"))

	assert.Equal(t, "System/Library/Frameworks/UIKit.framework", frameworkRealPath("UIKit.framework"))
	assert.Equal(t, "usr/lib/libz.tbd", frameworkRealPath("libz.tbd"))
	assert.Equal(t, "usr/lib/libsqlite3.dylib", frameworkRealPath("libsqlite3.dylib"))
}

func TestGUIDList(t *testing.T) {
	owner := &object{}
	var l GUIDList
	l.load(owner, nil)
	assert.Equal(t, 0, l.Len())
	assert.False(t, owner.dirty)

	l.Add("A")
	l.Add("B")
	l.Add("A")
	assert.Equal(t, []string{"A", "B"}, l.Items())
	assert.True(t, owner.dirty)

	items := l.Items()
	items[0] = "X"
	assert.True(t, l.Contains("A"))

	assert.True(t, l.Remove("A"))
	assert.False(t, l.Remove("A"))
	l.Add("C")
	dropped := l.retain(func(guid string) bool { return guid != "B" })
	assert.Equal(t, []string{"B"}, dropped)
	assert.Equal(t, []string{"C"}, l.Items())
	assert.Equal(t, []string{"C"}, l.toArray().Strings())
}

func TestPathHelpers(t *testing.T) {
	assert.Equal(t, "a/b", fixSlashes(`a\b`))
	assert.Equal(t, "a/b", combinePath("a", "b"))
	assert.Equal(t, "b", combinePath("", "b"))
	assert.Equal(t, "a", combinePath("a", ""))

	path, tree := combineRealPath("Classes", SourceTreeSource, "Foo.m", SourceTreeGroup)
	assert.Equal(t, "Classes/Foo.m", path)
	assert.Equal(t, SourceTreeSource, tree)
	path, tree = combineRealPath("Classes", SourceTreeSource, "usr/lib/libz.tbd", SourceTreeSdk)
	assert.Equal(t, "usr/lib/libz.tbd", path)
	assert.Equal(t, SourceTreeSdk, tree)

	dir, name := splitDir("a/b/c.m")
	assert.Equal(t, "a/b", dir)
	assert.Equal(t, "c.m", name)
	dir, name = splitDir("c.m")
	assert.Empty(t, dir)
	assert.Equal(t, "c.m", name)

	assert.Equal(t, []string{"a", "b"}, splitPath("/a//b/"))
	assert.Equal(t, ".m", extensionOf("dir.x/Foo.M"))
}
