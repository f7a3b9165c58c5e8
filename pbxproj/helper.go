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

// GUIDList is an ordered, duplicate-free list of object references owned by one object.
// Mutations mark the owner dirty.
type GUIDList struct {
	items []string
	owner *object
}

func (l *GUIDList) load(owner *object, arr *element.Array) {
	l.owner = owner
	l.items = arr.Strings()
}

func (l *GUIDList) touch() {
	if l.owner != nil {
		l.owner.touch()
	}
}

// Add appends guid unless it is already present.
func (l *GUIDList) Add(guid string) {
	if l.Contains(guid) {
		return
	}
	l.items = append(l.items, guid)
	l.touch()
}

// Remove deletes guid and reports whether it was present.
func (l *GUIDList) Remove(guid string) bool {
	for i, item := range l.items {
		if item == guid {
			l.items = append(l.items[:i], l.items[i+1:]...)
			l.touch()
			return true
		}
	}
	return false
}

func (l *GUIDList) Contains(guid string) bool {
	for _, item := range l.items {
		if item == guid {
			return true
		}
	}
	return false
}

func (l *GUIDList) Len() int {
	return len(l.items)
}

// Items returns a copy of the references in order.
func (l *GUIDList) Items() []string {
	return append([]string(nil), l.items...)
}

// retain keeps the references accepted by keep and returns the dropped ones.
func (l *GUIDList) retain(keep func(string) bool) []string {
	var dropped []string
	kept := l.items[:0]
	for _, item := range l.items {
		if keep(item) {
			kept = append(kept, item)
		} else {
			dropped = append(dropped, item)
		}
	}
	l.items = kept
	if len(dropped) > 0 {
		l.touch()
	}
	return dropped
}

func (l *GUIDList) toArray() *element.Array {
	return element.NewStringArray(l.items...)
}

func stringsToArray(values []string) *element.Array {
	return element.NewStringArray(values...)
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(values []string, s string) ([]string, bool) {
	for i, v := range values {
		if v == s {
			return append(values[:i:i], values[i+1:]...), true
		}
	}
	return values, false
}

func setStringsOrDelete(d *element.Dict, key string, values []string) {
	if len(values) == 0 {
		d.Delete(key)
		return
	}
	d.Set(key, stringsToArray(values))
}

func setFlag(values []string, flag string, on bool) ([]string, bool) {
	if on == containsString(values, flag) {
		return values, false
	}
	if on {
		return append(values, flag), true
	}
	values, _ = removeString(values, flag)
	return values, true
}
