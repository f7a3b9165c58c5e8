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
	"strings"
)

// fixSlashes normalizes Windows separators to the forward slashes project files use.
func fixSlashes(s string) string {
	return strings.ReplaceAll(s, "\\", "/")
}

func combinePath(base, rel string) string {
	if base == "" {
		return rel
	}
	if rel == "" {
		return base
	}
	return base + "/" + rel
}

// combineRealPath resolves a child path against its parent the way Xcode does: only
// <group>-relative children inherit the parent's location.
func combineRealPath(parentPath string, parentTree SourceTree, childPath string, childTree SourceTree) (string, SourceTree) {
	if childTree != SourceTreeGroup {
		return childPath, childTree
	}
	return combinePath(parentPath, childPath), parentTree
}

func splitDir(p string) (string, string) {
	i := strings.LastIndex(p, "/")
	if i < 0 {
		return "", p
	}
	return p[:i], p[i+1:]
}

func splitPath(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

func extensionOf(p string) string {
	return strings.ToLower(path.Ext(p))
}
