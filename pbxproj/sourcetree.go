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
	"fmt"
	"strings"
)

// SourceTree is the base a file or group path is relative to, stored as the token Xcode writes.
type SourceTree string

const (
	SourceTreeAbsolute  SourceTree = "<absolute>"
	SourceTreeGroup     SourceTree = "<group>"
	SourceTreeSource    SourceTree = "SOURCE_ROOT"
	SourceTreeBuild     SourceTree = "BUILT_PRODUCTS_DIR"
	SourceTreeDeveloper SourceTree = "DEVELOPER_DIR"
	SourceTreeSdk       SourceTree = "SDKROOT"
)

var sourceTreeAliases = map[string]SourceTree{
	"absolute":  SourceTreeAbsolute,
	"group":     SourceTreeGroup,
	"source":    SourceTreeSource,
	"build":     SourceTreeBuild,
	"developer": SourceTreeDeveloper,
	"sdk":       SourceTreeSdk,
}

// realPathTrees is the lookup order used when no tree is given.
var realPathTrees = []SourceTree{
	SourceTreeSource, SourceTreeGroup, SourceTreeAbsolute, SourceTreeBuild, SourceTreeDeveloper, SourceTreeSdk,
}

func (t SourceTree) String() string {
	return string(t)
}

// Valid reports whether t is one of the trees Xcode defines.
func (t SourceTree) Valid() bool {
	for _, known := range realPathTrees {
		if t == known {
			return true
		}
	}
	return false
}

// ParseSourceTree accepts either the Xcode token (SDKROOT, <group>) or a short alias (sdk, group).
func ParseSourceTree(s string) (SourceTree, error) {
	if t, ok := sourceTreeAliases[strings.ToLower(s)]; ok {
		return t, nil
	}
	for _, t := range sourceTreeAliases {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSourceTree, s)
}
