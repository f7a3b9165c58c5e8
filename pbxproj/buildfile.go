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

// BuildFile places a file reference into one build phase, with per-file settings.
type BuildFile struct {
	object
	fileRef      string
	productRef   string
	compileFlags string
	attributes   []string
	assetTags    []string
}

var buildFileChecker = newCommentChecker("fileRef/*", "productRef/*")

func (b *BuildFile) FileRef() string      { return b.fileRef }
func (b *BuildFile) ProductRef() string   { return b.productRef }
func (b *BuildFile) CompileFlags() string { return b.compileFlags }
func (b *BuildFile) AssetTags() []string  { return append([]string(nil), b.assetTags...) }

// reference is the object the build file builds: its file reference, or the Swift
// package product when it has none.
func (b *BuildFile) reference() string {
	if b.fileRef != "" {
		return b.fileRef
	}
	return b.productRef
}

func (b *BuildFile) SetCompileFlags(flags string) {
	if b.compileFlags != flags {
		b.compileFlags = flags
		b.touch()
	}
}

func (b *BuildFile) Weak() bool                { return containsString(b.attributes, "Weak") }
func (b *BuildFile) CodeSignOnCopy() bool      { return containsString(b.attributes, "CodeSignOnCopy") }
func (b *BuildFile) RemoveHeadersOnCopy() bool { return containsString(b.attributes, "RemoveHeadersOnCopy") }

func (b *BuildFile) SetWeak(on bool)                { b.setAttribute("Weak", on) }
func (b *BuildFile) SetCodeSignOnCopy(on bool)      { b.setAttribute("CodeSignOnCopy", on) }
func (b *BuildFile) SetRemoveHeadersOnCopy(on bool) { b.setAttribute("RemoveHeadersOnCopy", on) }

func (b *BuildFile) setAttribute(name string, on bool) {
	var changed bool
	if b.attributes, changed = setFlag(b.attributes, name, on); changed {
		b.touch()
	}
}

func (b *BuildFile) AddAssetTag(tag string) {
	var changed bool
	if b.assetTags, changed = setFlag(b.assetTags, tag, true); changed {
		b.touch()
	}
}

func (b *BuildFile) RemoveAssetTag(tag string) {
	var changed bool
	if b.assetTags, changed = setFlag(b.assetTags, tag, false); changed {
		b.touch()
	}
}

func (b *BuildFile) updateVars() {
	b.fileRef = b.props.GetString("fileRef")
	b.productRef = b.props.GetString("productRef")
	settings := b.props.GetDict("settings")
	b.compileFlags = settings.GetString("COMPILER_FLAGS")
	b.attributes = settings.GetArray("ATTRIBUTES").Strings()
	b.assetTags = settings.GetArray("ASSET_TAGS").Strings()
}

func (b *BuildFile) updateProps() {
	b.props.SetStringOrDelete("fileRef", b.fileRef)
	b.props.SetStringOrDelete("productRef", b.productRef)
	settings := b.props.GetDict("settings")
	if settings == nil {
		settings = element.NewDict()
	}
	settings.SetStringOrDelete("COMPILER_FLAGS", b.compileFlags)
	setStringsOrDelete(settings, "ATTRIBUTES", b.attributes)
	setStringsOrDelete(settings, "ASSET_TAGS", b.assetTags)
	if settings.IsEmpty() {
		b.props.Delete("settings")
	} else {
		b.props.Set("settings", settings)
	}
}

func (b *BuildFile) commentChecker() *commentChecker { return buildFileChecker }

func (p *Project) newBuildFile(fileRef string, weak bool, compileFlags string) *BuildFile {
	props := element.NewDictWithData(
		element.Item("isa", element.String("PBXBuildFile")),
		element.Item("fileRef", element.String(fileRef)),
	)
	bf := p.createObject(props).(*BuildFile)
	bf.SetWeak(weak)
	bf.SetCompileFlags(compileFlags)
	return bf
}
