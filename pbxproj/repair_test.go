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

// packageProject links one Swift package product, one product that is gone and one
// file that is gone.
const packageProject = `// !$*UTF8*$!
{
	archiveVersion = 1;
	objectVersion = 56;
	objects = {
		P1 = {isa = PBXProject; mainGroup = G1; packageReferences = (RP1); targets = (T1); };
		G1 = {isa = PBXGroup; children = (); sourceTree = "<group>"; };
		T1 = {isa = PBXNativeTarget; buildPhases = (FW1); buildRules = (); dependencies = (); name = App; packageProductDependencies = (PD1); };
		FW1 = {isa = PBXFrameworksBuildPhase; buildActionMask = 2147483647; files = (BB1, BB3, BB4); runOnlyForDeploymentPostprocessing = 0; };
		BB1 = {isa = PBXBuildFile; productRef = PD1; };
		BB3 = {isa = PBXBuildFile; productRef = PD9; };
		BB4 = {isa = PBXBuildFile; fileRef = DEAD; };
		PD1 = {isa = XCSwiftPackageProductDependency; package = RP1; productName = Alamofire; };
		RP1 = {isa = XCRemoteSwiftPackageReference; repositoryURL = "https://github.com/Alamofire/Alamofire.git"; requirement = {kind = upToNextMajorVersion; minimumVersion = 5.0.0; }; };
	};
	rootObject = P1;
}
`

func TestRepair_KeepsPackageProductBuildFiles(t *testing.T) {
	p := New(WithGUIDSource(sequentialGUIDs()), WithLogger(discardLogger()))
	require.NoError(t, p.ReadFromString(packageProject))

	assert.ElementsMatch(t, []string{"BB3", "BB4"}, p.RepairedOnLoad())
	require.NotNil(t, p.BuildFile("BB1"))
	assert.Equal(t, "PD1", p.BuildFile("BB1").ProductRef())
	assert.Empty(t, p.BuildFile("BB1").FileRef())
	assert.Equal(t, []string{"BB1"}, p.BuildPhase("FW1").Files().Items())

	out := p.WriteToString()
	assert.Contains(t, out, "BB1 /* Alamofire in Frameworks */ = {isa = PBXBuildFile; productRef = PD1 /* Alamofire */; };")
	assert.NotContains(t, out, "BB3")
	assert.NotContains(t, out, "BB4")

	again := New(WithLogger(discardLogger()))
	require.NoError(t, again.ReadFromString(out))
	assert.Empty(t, again.RepairedOnLoad())
	assert.Equal(t, out, again.WriteToString())
}

func TestAddFile_RejectsUnknownSourceTree(t *testing.T) {
	p := loadDemo(t)
	before := p.WriteToString()

	_, err := p.AddFile("x/a.m", "Classes/a.m", SourceTree("NOT_A_TREE"))
	assert.ErrorIs(t, err, ErrInvalidSourceTree)
	_, err = p.AddFolderReference("x/assets", "Assets", SourceTree(""))
	assert.ErrorIs(t, err, ErrInvalidSourceTree)
	_, err = p.AddFile("x/a.m", "Classes/a.m", SourceTreeGroup)
	assert.ErrorIs(t, err, ErrInvalidSourceTree)

	assert.Empty(t, p.FindFileGUIDByProjectPath("Classes/a.m"))
	assert.Equal(t, before, p.WriteToString())
}

func TestSourceTree_Valid(t *testing.T) {
	for _, tree := range []SourceTree{SourceTreeAbsolute, SourceTreeGroup, SourceTreeSource, SourceTreeBuild, SourceTreeDeveloper, SourceTreeSdk} {
		assert.True(t, tree.Valid(), tree)
	}
	assert.False(t, SourceTree("NOT_A_TREE").Valid())
	assert.False(t, SourceTree("").Valid())
	assert.False(t, SourceTree("source").Valid())
}

func TestWriter_FlushesPendingEdits(t *testing.T) {
	p := loadMixed(t)
	guid, err := p.AddFile("x/a.m", "a.m", SourceTreeSource)
	require.NoError(t, err)

	w := NewPbxWriter(p, WithOmitEmpty())
	out := w.String()
	assert.Equal(t, 2, strings.Count(out, guid), "file reference entry and group child")
	assert.Equal(t, out, w.String())
}

func TestBuildFile_Settings(t *testing.T) {
	p := loadMixed(t)
	bf := p.BuildFile("B1")
	require.NotNil(t, bf)

	bf.AddAssetTag("onDemand")
	bf.AddAssetTag("onDemand")
	bf.SetCodeSignOnCopy(true)
	bf.SetRemoveHeadersOnCopy(true)

	again := New(WithLogger(discardLogger()))
	require.NoError(t, again.ReadFromString(p.WriteToString()))
	reloaded := again.BuildFile("B1")
	assert.Equal(t, []string{"onDemand"}, reloaded.AssetTags())
	assert.True(t, reloaded.CodeSignOnCopy())
	assert.True(t, reloaded.RemoveHeadersOnCopy())
	assert.False(t, reloaded.Weak())

	bf.RemoveAssetTag("onDemand")
	bf.SetCodeSignOnCopy(false)
	bf.SetRemoveHeadersOnCopy(false)
	out := p.WriteToString()
	assert.NotContains(t, out, "ASSET_TAGS")
	assert.NotContains(t, out, "CodeSignOnCopy")
	assert.Contains(t, out, "Public")
}
