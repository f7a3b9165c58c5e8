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
	"path"
	"strconv"
	"strings"
)

// PhaseKind is the build phase a file type is compiled, linked or copied by.
type PhaseKind int

const (
	PhaseNotBuildable PhaseKind = iota
	PhaseFramework
	PhaseResource
	PhaseSource
	PhaseCopyFile
	PhaseHeader
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseFramework:
		return "Frameworks"
	case PhaseResource:
		return "Resources"
	case PhaseSource:
		return "Sources"
	case PhaseCopyFile:
		return "CopyFiles"
	case PhaseHeader:
		return "Headers"
	}
	return "NotBuildable"
}

// Buildable reports whether AddFileToBuild places files of this kind in a phase.
func (k PhaseKind) Buildable() bool {
	return k != PhaseNotBuildable && k != PhaseHeader
}

const (
	DEFAULT_PRODUCT_SOURCETREE = SourceTreeBuild
	DEFAULT_FILETYPE           = "file"
	DEFAULT_ENCODING_VALUE     = 4
	FOLDER_FILETYPE            = "folder"
)

type fileTypeDesc struct {
	name  string
	phase PhaseKind
	text  bool
}

var FILETYPE_BY_EXTENSION = map[string]fileTypeDesc{
	".a":              {"archive.ar", PhaseFramework, false},
	".aif":            {"sound.aif", PhaseResource, false},
	".app":            {"wrapper.application", PhaseNotBuildable, false},
	".appex":          {"wrapper.app-extension", PhaseCopyFile, false},
	".bin":            {"archive.macbinary", PhaseResource, false},
	".bundle":         {"wrapper.plug-in", PhaseResource, false},
	".c":              {"sourcecode.c.c", PhaseSource, true},
	".cc":             {"sourcecode.cpp.cpp", PhaseSource, true},
	".cpp":            {"sourcecode.cpp.cpp", PhaseSource, true},
	".css":            {"text.css", PhaseResource, true},
	".cxx":            {"sourcecode.cpp.cpp", PhaseSource, true},
	".dylib":          {"compiled.mach-o.dylib", PhaseFramework, false},
	".entitlements":   {"text.plist.entitlements", PhaseNotBuildable, true},
	".framework":      {"wrapper.framework", PhaseFramework, false},
	".h":              {"sourcecode.c.h", PhaseHeader, true},
	".hpp":            {"sourcecode.cpp.h", PhaseHeader, true},
	".html":           {"text.html", PhaseResource, true},
	".icns":           {"image.icns", PhaseResource, false},
	".jpg":            {"image.jpeg", PhaseResource, false},
	".js":             {"sourcecode.javascript", PhaseResource, true},
	".json":           {"text.json", PhaseResource, true},
	".m":              {"sourcecode.c.objc", PhaseSource, true},
	".markdown":       {"text", PhaseNotBuildable, true},
	".mdimporter":     {"wrapper.cfbundle", PhaseResource, false},
	".metal":          {"sourcecode.metal", PhaseSource, true},
	".mm":             {"sourcecode.cpp.objcpp", PhaseSource, true},
	".octest":         {"wrapper.cfbundle", PhaseResource, false},
	".pch":            {"sourcecode.c.h", PhaseHeader, true},
	".plist":          {"text.plist.xml", PhaseNotBuildable, true},
	".png":            {"image.png", PhaseResource, false},
	".s":              {"sourcecode.asm", PhaseSource, true},
	".sh":             {"text.script.sh", PhaseNotBuildable, true},
	".storyboard":     {"file.storyboard", PhaseResource, false},
	".strings":        {"text.plist.strings", PhaseResource, true},
	".swift":          {"sourcecode.swift", PhaseSource, true},
	".tbd":            {"sourcecode.text-based-dylib-definition", PhaseFramework, false},
	".txt":            {"text", PhaseResource, true},
	".xcassets":       {"folder.assetcatalog", PhaseResource, false},
	".xcconfig":       {"text.xcconfig", PhaseNotBuildable, true},
	".xcdatamodel":    {"wrapper.xcdatamodel", PhaseSource, false},
	".xcdatamodeld":   {"wrapper.xcdatamodeld", PhaseSource, false},
	".xcodeproj":      {"wrapper.pb-project", PhaseNotBuildable, false},
	".xcprivacy":      {"text.xml", PhaseResource, true},
	".xctest":         {"wrapper.cfbundle", PhaseNotBuildable, false},
	".xib":            {"file.xib", PhaseResource, false},
	".xml":            {"text.xml", PhaseResource, true},
	".zip":            {"archive.zip", PhaseResource, false},
}

// PATH_BY_FILETYPE is where SDK-provided libraries of each type live under SDKROOT.
var PATH_BY_FILETYPE = map[string]string{
	"compiled.mach-o.dylib":                  "usr/lib/",
	"sourcecode.text-based-dylib-definition": "usr/lib/",
	"wrapper.framework":                      "System/Library/Frameworks/",
}

// Product types by the short target type names accepted by AddTarget.
var PRODUCTTYPE_BY_TARGETTYPE = map[string]string{
	"application":       "com.apple.product-type.application",
	"app_extension":     "com.apple.product-type.app-extension",
	"bundle":            "com.apple.product-type.bundle",
	"command_line_tool": "com.apple.product-type.tool",
	"dynamic_library":   "com.apple.product-type.library.dynamic",
	"framework":         "com.apple.product-type.framework",
	"static_library":    "com.apple.product-type.library.static",
	"unit_test_bundle":  "com.apple.product-type.bundle.unit-test",
	"watch_app":         "com.apple.product-type.application.watchapp",
	"watch2_app":        "com.apple.product-type.application.watchapp2",
	"watch_extension":   "com.apple.product-type.watchkit-extension",
	"watch2_extension":  "com.apple.product-type.watchkit2-extension",
}

var FILETYPE_BY_PRODUCTTYPE = map[string]string{
	"com.apple.product-type.application":            "wrapper.application",
	"com.apple.product-type.app-extension":          "wrapper.app-extension",
	"com.apple.product-type.bundle":                 "wrapper.plug-in",
	"com.apple.product-type.tool":                   "compiled.mach-o.dylib",
	"com.apple.product-type.library.dynamic":        "compiled.mach-o.dylib",
	"com.apple.product-type.framework":              "wrapper.framework",
	"com.apple.product-type.library.static":         "archive.ar",
	"com.apple.product-type.bundle.unit-test":       "wrapper.cfbundle",
	"com.apple.product-type.application.watchapp":   "wrapper.application",
	"com.apple.product-type.application.watchapp2":  "wrapper.application",
	"com.apple.product-type.watchkit-extension":     "wrapper.app-extension",
	"com.apple.product-type.watchkit2-extension":    "wrapper.app-extension",
}

// SUBFOLDERSPEC_BY_DESTINATION maps copy-files destinations to dstSubfolderSpec codes.
var SUBFOLDERSPEC_BY_DESTINATION = map[string]int{
	"absolute_path":      0,
	"executables":        6,
	"frameworks":         10,
	"java_resources":     15,
	"plugins":            13,
	"products_directory": 16,
	"resources":          7,
	"shared_frameworks":  11,
	"shared_support":     12,
	"wrapper":            1,
	"xpc_services":       0,
}

func lookupFileType(name string) (fileTypeDesc, bool) {
	desc, ok := FILETYPE_BY_EXTENSION[strings.ToLower(path.Ext(name))]
	return desc, ok
}

// FileTypeByExtension returns the lastKnownFileType for a file name.
func FileTypeByExtension(name string) string {
	if desc, ok := lookupFileType(name); ok {
		return desc.name
	}
	return DEFAULT_FILETYPE
}

// PhaseKindByExtension classifies a file name. Unknown extensions are resources.
func PhaseKindByExtension(name string) PhaseKind {
	if desc, ok := lookupFileType(name); ok {
		return desc.phase
	}
	return PhaseResource
}

// IsBuildable reports whether a file with this name would be added to a build phase.
func IsBuildable(name string) bool {
	return PhaseKindByExtension(name).Buildable()
}

func encodingForFile(name string) string {
	if desc, ok := lookupFileType(name); ok && desc.text {
		return strconv.Itoa(DEFAULT_ENCODING_VALUE)
	}
	return ""
}

// frameworkRealPath is the SDKROOT-relative location of a system framework or library.
func frameworkRealPath(framework string) string {
	if dir, ok := PATH_BY_FILETYPE[FileTypeByExtension(framework)]; ok {
		return dir + framework
	}
	return PATH_BY_FILETYPE["wrapper.framework"] + framework
}

var EXTENSION_BY_PRODUCTTYPE = map[string]string{
	"com.apple.product-type.application":           ".app",
	"com.apple.product-type.app-extension":         ".appex",
	"com.apple.product-type.bundle":                ".bundle",
	"com.apple.product-type.tool":                  "",
	"com.apple.product-type.library.dynamic":       ".dylib",
	"com.apple.product-type.framework":             ".framework",
	"com.apple.product-type.library.static":        ".a",
	"com.apple.product-type.bundle.unit-test":      ".xctest",
	"com.apple.product-type.application.watchapp":  ".app",
	"com.apple.product-type.application.watchapp2": ".app",
	"com.apple.product-type.watchkit-extension":    ".appex",
	"com.apple.product-type.watchkit2-extension":   ".appex",
}
