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

// FileReference points at a file or folder on disk. Name falls back to the path.
type FileReference struct {
	object
	name              string
	path              string
	tree              SourceTree
	lastKnownFileType string
	explicitFileType  string
}

func (f *FileReference) Name() string                  { return f.name }
func (f *FileReference) Path() string                  { return f.path }
func (f *FileReference) SourceTree() SourceTree        { return f.tree }
func (f *FileReference) LastKnownFileType() string     { return f.lastKnownFileType }
func (f *FileReference) ExplicitFileType() string      { return f.explicitFileType }
func (f *FileReference) IsFolderReference() bool       { return f.lastKnownFileType == FOLDER_FILETYPE }

// FileType is the explicit type when set, the last known one otherwise.
func (f *FileReference) FileType() string {
	if f.explicitFileType != "" {
		return f.explicitFileType
	}
	return f.lastKnownFileType
}

func (f *FileReference) SetName(name string) {
	f.name = name
	f.touch()
}

func (f *FileReference) SetPath(path string) {
	f.path = path
	f.touch()
}

func (f *FileReference) SetSourceTree(tree SourceTree) {
	f.tree = tree
	f.touch()
}

func (f *FileReference) SetLastKnownFileType(fileType string) {
	f.lastKnownFileType = fileType
	f.touch()
}

func (f *FileReference) updateVars() {
	f.path = f.props.GetString("path")
	f.name = f.props.GetString("name")
	if f.name == "" {
		f.name = f.path
	}
	f.tree = SourceTree(f.props.GetString("sourceTree"))
	f.lastKnownFileType = f.props.GetString("lastKnownFileType")
	f.explicitFileType = f.props.GetString("explicitFileType")
}

func (f *FileReference) updateProps() {
	f.props.SetStringOrDelete("path", f.path)
	if f.name == f.path {
		f.props.Delete("name")
	} else {
		f.props.SetStringOrDelete("name", f.name)
	}
	f.props.SetStringOrDelete("sourceTree", string(f.tree))
	f.props.SetStringOrDelete("lastKnownFileType", f.lastKnownFileType)
	f.props.SetStringOrDelete("explicitFileType", f.explicitFileType)
}

func (p *Project) newFileReference(realPath, name string, tree SourceTree, folder bool) *FileReference {
	props := element.NewDictWithData(element.Item("isa", element.String("PBXFileReference")))
	if folder {
		props.SetString("lastKnownFileType", FOLDER_FILETYPE)
	} else {
		props.SetStringOrDelete("fileEncoding", encodingForFile(name))
		props.SetString("lastKnownFileType", FileTypeByExtension(name))
	}
	if name != realPath {
		props.SetString("name", name)
	}
	props.SetString("path", realPath)
	props.SetString("sourceTree", string(tree))
	return p.createObject(props).(*FileReference)
}

func (p *Project) newFolderReference(realPath, name string, tree SourceTree) *FileReference {
	return p.newFileReference(realPath, name, tree, true)
}

func (p *Project) newProductReference(path, productType string) *FileReference {
	props := element.NewDictWithData(
		element.Item("isa", element.String("PBXFileReference")),
		element.Item("explicitFileType", element.String(FILETYPE_BY_PRODUCTTYPE[productType])),
		element.Item("includeInIndex", element.String("0")),
		element.Item("path", element.String(path)),
		element.Item("sourceTree", element.String(string(DEFAULT_PRODUCT_SOURCETREE))),
	)
	return p.createObject(props).(*FileReference)
}
