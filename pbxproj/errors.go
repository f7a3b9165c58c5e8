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

import "errors"

var (
	// ErrExtensionMismatch is returned when a file's real path and project path disagree on
	// the extension Xcode uses to infer its type.
	ErrExtensionMismatch = errors.New("real path and project path extensions do not match")
	// ErrInvalidSourceTree is returned for a source tree that cannot anchor the operation.
	ErrInvalidSourceTree = errors.New("invalid source tree")
	// ErrInvalidArgument covers other malformed arguments.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned by mutations addressed at an unknown object. Queries never
	// return it; they return a zero value instead.
	ErrNotFound = errors.New("object not found")
	// ErrInvalidProject is returned when a parsed file lacks the objects or project root.
	ErrInvalidProject = errors.New("invalid project file")
)
