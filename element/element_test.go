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

package element

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDict_SetKeepsFirstPosition(t *testing.T) {
	d := NewDict()
	d.SetString("b", "1")
	d.SetString("a", "2")
	d.SetString("b", "3")

	assert.Equal(t, []string{"b", "a"}, d.Keys())
	assert.Equal(t, "3", d.GetString("b"))
	assert.Equal(t, 2, d.Len())
}

func TestDict_DeleteReindexes(t *testing.T) {
	d := NewDictWithData(
		Item("a", String("1")),
		Item("b", String("2")),
		Item("c", String("3")),
	)
	d.Delete("a")
	d.SetString("c", "4")
	d.Delete("missing")

	assert.Equal(t, []string{"b", "c"}, d.Keys())
	assert.Equal(t, "4", d.GetString("c"))
}

func TestDict_SortedKeysPutsIsaFirst(t *testing.T) {
	d := NewDictWithData(
		Item("path", String("x")),
		Item("isa", String("PBXGroup")),
		Item("children", NewArray()),
		Item("Name", String("upper sorts before lower")),
	)

	assert.Equal(t, []string{"isa", "Name", "children", "path"}, d.SortedKeys())
}

func TestDict_TypedGettersOnMismatch(t *testing.T) {
	d := NewDictWithData(Item("files", NewStringArray("A")))

	assert.Equal(t, "", d.GetString("files"))
	assert.Nil(t, d.GetDict("files"))
	assert.Equal(t, []string{"A"}, d.GetArray("files").Strings())

	var nilDict *Dict
	assert.False(t, nilDict.Has("x"))
	assert.Equal(t, 0, nilDict.Len())
}

func TestDict_ForeachBreak(t *testing.T) {
	d := NewDictWithData(Item("a", String("1")), Item("b", String("2")))
	var seen []string
	d.Foreach(func(key string, _ Element) IterateActionType {
		seen = append(seen, key)
		return IterateActionBreak
	})
	assert.Equal(t, []string{"a"}, seen)
}

func TestDict_CloneIsDeep(t *testing.T) {
	inner := NewStringArray("A")
	d := NewDictWithData(Item("files", inner))
	c := d.Clone()
	inner.AppendString("B")

	assert.Equal(t, 1, c.GetArray("files").Len())
}

func TestDict_MarshalJSON(t *testing.T) {
	d := NewDictWithData(
		Item("isa", String("PBXGroup")),
		Item("children", NewStringArray("A", "B")),
		Item("nested", NewDictWithData(Item("k", String("v")))),
	)
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"isa":"PBXGroup","children":["A","B"],"nested":{"k":"v"}}`, string(data))
}

func TestNeedsQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"PBXGroup", false},
		{"main.m", false},
		{"libz_1.2*", false},
		{"System/Library/Frameworks/UIKit.framework", false},
		{"My Framework", true},
		{"<group>", true},
		{"$(inherited)", true},
		{"-ObjC", true},
		{"a//b", true},
		{"a/*b", true},
		{"a*/b", true},
		{`say "hi"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsQuotes(tt.in))
		})
	}
}

func TestQuote_Escapes(t *testing.T) {
	assert.Equal(t, `"a\"b"`, Quote(`a"b`))
	assert.Equal(t, `"a\\b"`, Quote(`a\b`))
	assert.Equal(t, `"a\nb"`, Quote("a\nb"))
	assert.Equal(t, "plain", QuoteIfNeeded("plain"))
	assert.Equal(t, `"My Framework"`, QuoteIfNeeded("My Framework"))
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "bare", Unquote("bare"))
	assert.Equal(t, "", Unquote(`""`))
	assert.Equal(t, `a"b`, Unquote(`"a\"b"`))
	assert.Equal(t, "a\nb", Unquote(`"a\nb"`))
	// an escaped backslash followed by n stays a backslash and an n
	assert.Equal(t, `a\nb`, Unquote(`"a\\nb"`))
	assert.Equal(t, `a\"`, Unquote(`"a\\\""`))
}

func TestQuoteUnquoteInverse(t *testing.T) {
	for _, s := range []string{"", "x", `back\slash`, "new\nline", `"quoted"`, `\n`, `\\"`} {
		assert.Equal(t, s, Unquote(Quote(s)), "value %q", s)
	}
}
