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
	"os"
	"strings"

	"github.com/soapywu/pbxkit/element"
)

const (
	INDENT       = "\t"
	HEAD_COMMENT = "// !$*UTF8*$!"
)

type StringWriter interface {
	WriteString(string) (int, error)
	String() string
}

type PbxWriterOption func(w *PbxWriter)

// WithOmitEmpty drops empty string values from dicts.
func WithOmitEmpty() PbxWriterOption {
	return func(w *PbxWriter) {
		w.omitEmptyValues = true
	}
}

// WithStringWriter renders into writer. Every String call appends a full rendering to it.
func WithStringWriter(writer StringWriter) PbxWriterOption {
	return func(w *PbxWriter) {
		w.stringWriter = writer
		w.ownsWriter = false
	}
}

// PbxWriter renders a project in the layout Xcode writes.
type PbxWriter struct {
	stringWriter    StringWriter
	ownsWriter      bool
	omitEmptyValues bool
	project         *Project
	comments        guidCommentMap
}

var rootChecker = newCommentChecker("rootObject/*")

func NewPbxWriter(project *Project, options ...PbxWriterOption) *PbxWriter {
	w := &PbxWriter{
		project:      project,
		stringWriter: &strings.Builder{},
		ownsWriter:   true,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func indent(x int) string {
	return strings.Repeat(INDENT, x)
}

func (w *PbxWriter) raw(s string) {
	_, _ = w.stringWriter.WriteString(s)
}

// String flushes pending edits, renders the project and returns everything written so far.
func (w *PbxWriter) String() string {
	if w.ownsWriter {
		w.stringWriter = &strings.Builder{}
	}
	w.project.sync()
	w.comments = w.project.buildCommentMap()
	w.writeHeadComment()
	w.writeProject()
	return w.stringWriter.String()
}

func (w *PbxWriter) Write(filePath string) error {
	return os.WriteFile(filePath, []byte(w.String()), 0644)
}

func (w *PbxWriter) writeHeadComment() {
	w.raw(HEAD_COMMENT + "\n")
}

func (w *PbxWriter) writeProject() {
	root := w.project.root
	w.raw("{")
	for _, key := range root.SortedKeys() {
		if key == "objects" {
			w.raw("\n" + indent(1) + "objects = {")
			w.writeObjectsSections()
			w.raw("\n" + indent(1) + "};")
			continue
		}
		val, _ := root.Get(key)
		w.writeKeyValue(key, val, 1, false, rootChecker)
	}
	w.raw("\n}\n")
}

func (w *PbxWriter) writeObjectsSections() {
	for _, sec := range w.project.objects.ordered() {
		w.raw("\n\n/* Begin " + sec.Name() + " section */")
		for _, guid := range sec.GUIDs() {
			obj := sec.get(guid)
			isa := obj.Isa()
			w.writeSectionEntry(obj, isa == "PBXBuildFile" || isa == "PBXFileReference")
		}
		w.raw("\n/* End " + sec.Name() + " section */")
	}
}

func (w *PbxWriter) writeSectionEntry(obj objectImpl, compact bool) {
	w.raw("\n" + indent(2))
	w.writeString(obj.GUID(), true)
	w.raw(" = ")
	w.writeDict(obj.base().props, 2, compact, obj.commentChecker())
	w.raw(";")
}

func (w *PbxWriter) writeString(s string, comment bool) {
	w.raw(element.QuoteIfNeeded(s))
	if c, ok := w.comments[s]; ok && comment {
		w.raw(" /* " + c + " */")
	}
}

func (w *PbxWriter) writeKeyValue(key string, val element.Element, level int, compact bool, checker *commentChecker) {
	if s, ok := val.(element.String); ok && s == "" && w.omitEmptyValues {
		return
	}
	if !compact {
		w.raw("\n" + indent(level))
	}
	w.writeString(key, checker.contains(key))
	w.raw(" = ")
	w.writeValue(val, level, compact, checker.next(key))
	w.raw(";")
	if compact {
		w.raw(" ")
	}
}

func (w *PbxWriter) writeValue(val element.Element, level int, compact bool, checker *commentChecker) {
	switch v := val.(type) {
	case element.String:
		w.writeString(string(v), checker.contains(string(v)))
	case *element.Dict:
		w.writeDict(v, level, compact, checker)
	case *element.Array:
		w.writeArray(v, level, compact, checker)
	}
}

func (w *PbxWriter) writeDict(d *element.Dict, level int, compact bool, checker *commentChecker) {
	w.raw("{")
	for _, key := range d.SortedKeys() {
		val, _ := d.Get(key)
		w.writeKeyValue(key, val, level+1, compact, checker)
	}
	if !compact {
		w.raw("\n" + indent(level))
	}
	w.raw("}")
}

func (w *PbxWriter) writeArray(arr *element.Array, level int, compact bool, checker *commentChecker) {
	w.raw("(")
	for _, val := range arr.Values {
		if !compact {
			w.raw("\n" + indent(level+1))
		}
		if s, ok := val.(element.String); ok {
			w.writeString(string(s), checker.contains(string(s)))
		} else {
			w.writeValue(val, level+1, compact, checker.next("*"))
		}
		w.raw(",")
		if compact {
			w.raw(" ")
		}
	}
	if !compact {
		w.raw("\n" + indent(level))
	}
	w.raw(")")
}
