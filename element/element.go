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

// Package element holds the format-neutral tree a pbxproj file parses into:
// strings, dictionaries and arrays. Domain objects keep their state in a Dict
// and project typed accessors over it.
package element

import (
	"encoding/json"
	"sort"
)

// Element is one of String, *Dict or *Array.
type Element interface {
	isElement()
}

// String is a scalar value, stored unquoted and unescaped.
type String string

func (String) isElement() {}
func (*Dict) isElement()  {}
func (*Array) isElement() {}

type IterateActionType = int8

const (
	IterateActionContinue IterateActionType = iota
	IterateActionBreak
)

type ApplyFunc = func(key string, val Element) IterateActionType

// Dict maps names to elements. Keys are unique; setting an existing key replaces the value.
type Dict struct {
	m *sliceMap
}

func NewDict() *Dict {
	return &Dict{m: newSliceMap()}
}

// NewDictWithData builds a dict from items in order.
func NewDictWithData(items ...SliceItem) *Dict {
	d := NewDict()
	for _, item := range items {
		d.Set(item.Key, item.Data)
	}
	return d
}

// Item is shorthand for a SliceItem literal.
func Item(key string, v Element) SliceItem {
	return SliceItem{Key: key, Data: v}
}

func (d *Dict) Len() int {
	if d == nil || d.m == nil {
		return 0
	}
	return d.m.size()
}

func (d *Dict) IsEmpty() bool {
	return d.Len() == 0
}

func (d *Dict) Get(key string) (Element, bool) {
	if d == nil || d.m == nil {
		return nil, false
	}
	return d.m.get(key)
}

func (d *Dict) Has(key string) bool {
	if d == nil || d.m == nil {
		return false
	}
	return d.m.has(key)
}

func (d *Dict) Set(key string, v Element) {
	if v == nil {
		d.Delete(key)
		return
	}
	d.m.set(key, v)
}

func (d *Dict) SetString(key, v string) {
	d.m.set(key, String(v))
}

// SetStringOrDelete removes key when v is empty.
func (d *Dict) SetStringOrDelete(key, v string) {
	if v == "" {
		d.Delete(key)
		return
	}
	d.SetString(key, v)
}

func (d *Dict) Delete(key string) {
	if d == nil || d.m == nil {
		return
	}
	d.m.delete(key)
}

// GetString returns the string stored under key, or "" when missing or not a string.
func (d *Dict) GetString(key string) string {
	s, _ := d.LookupString(key)
	return s
}

// LookupString reports whether key holds a string.
func (d *Dict) LookupString(key string) (string, bool) {
	v, ok := d.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(String)
	return string(s), ok
}

// GetDict returns the dict under key, or nil.
func (d *Dict) GetDict(key string) *Dict {
	v, _ := d.Get(key)
	dict, _ := v.(*Dict)
	return dict
}

// GetArray returns the array under key, or nil.
func (d *Dict) GetArray(key string) *Array {
	v, _ := d.Get(key)
	arr, _ := v.(*Array)
	return arr
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	keys := make([]string, 0, d.Len())
	for _, item := range d.Items() {
		keys = append(keys, item.Key)
	}
	return keys
}

// SortedKeys returns the keys the way Xcode writes them: isa first, the rest in ordinal order.
func (d *Dict) SortedKeys() []string {
	keys := make([]string, 0, d.Len())
	hasIsa := false
	for _, item := range d.Items() {
		if item.Key == "isa" {
			hasIsa = true
			continue
		}
		keys = append(keys, item.Key)
	}
	sort.Strings(keys)
	if hasIsa {
		keys = append([]string{"isa"}, keys...)
	}
	return keys
}

func (d *Dict) Items() []*SliceItem {
	if d == nil || d.m == nil {
		return nil
	}
	return d.m.items()
}

func (d *Dict) Foreach(apply ApplyFunc) {
	for _, item := range d.Items() {
		if apply(item.Key, item.Data) == IterateActionBreak {
			break
		}
	}
}

// Clone returns a deep copy.
func (d *Dict) Clone() *Dict {
	c := NewDict()
	for _, item := range d.Items() {
		c.Set(item.Key, Clone(item.Data))
	}
	return c
}

func (d *Dict) toMarshalJSONData() map[string]interface{} {
	dataMap := make(map[string]interface{}, d.Len())
	for _, item := range d.Items() {
		dataMap[item.Key] = toMarshalJSONData(item.Data)
	}
	return dataMap
}

func (d *Dict) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.toMarshalJSONData())
}

// Array is an ordered sequence of elements.
type Array struct {
	Values []Element
}

func NewArray(values ...Element) *Array {
	return &Array{Values: values}
}

// NewStringArray builds an array of strings.
func NewStringArray(values ...string) *Array {
	arr := &Array{Values: make([]Element, 0, len(values))}
	for _, v := range values {
		arr.AppendString(v)
	}
	return arr
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Values)
}

func (a *Array) Append(v Element) {
	a.Values = append(a.Values, v)
}

func (a *Array) AppendString(v string) {
	a.Values = append(a.Values, String(v))
}

// Strings returns the string members, skipping nested containers.
func (a *Array) Strings() []string {
	if a == nil {
		return nil
	}
	result := make([]string, 0, len(a.Values))
	for _, v := range a.Values {
		if s, ok := v.(String); ok {
			result = append(result, string(s))
		}
	}
	return result
}

func (a *Array) Clone() *Array {
	c := &Array{Values: make([]Element, len(a.Values))}
	for i, v := range a.Values {
		c.Values[i] = Clone(v)
	}
	return c
}

func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(toMarshalJSONData(a))
}

// Clone deep-copies any element.
func Clone(e Element) Element {
	switch v := e.(type) {
	case *Dict:
		return v.Clone()
	case *Array:
		return v.Clone()
	default:
		return e
	}
}

func toMarshalJSONData(e Element) interface{} {
	switch v := e.(type) {
	case String:
		return string(v)
	case *Dict:
		return v.toMarshalJSONData()
	case *Array:
		data := make([]interface{}, len(v.Values))
		for i, item := range v.Values {
			data[i] = toMarshalJSONData(item)
		}
		return data
	default:
		return nil
	}
}
