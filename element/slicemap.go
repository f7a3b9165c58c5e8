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

type mapItem struct {
	data Element
	idx  int
}

// SliceItem is one key/value pair of a Dict, in insertion order.
type SliceItem struct {
	Key  string
	Data Element
}

// sliceMap keeps insertion order next to a hash index so dumps and iteration are stable.
type sliceMap struct {
	mp map[string]*mapItem
	sl []*SliceItem
}

func newSliceMap() *sliceMap {
	return &sliceMap{
		mp: make(map[string]*mapItem),
		sl: make([]*SliceItem, 0),
	}
}

func (m *sliceMap) get(key string) (Element, bool) {
	v, found := m.mp[key]
	if found {
		return v.data, true
	}
	return nil, false
}

// set overwrites in place when the key exists, so a duplicate key keeps its first position.
func (m *sliceMap) set(key string, v Element) {
	old, found := m.mp[key]
	if found {
		old.data = v
		m.sl[old.idx] = &SliceItem{Key: key, Data: v}
		return
	}
	m.sl = append(m.sl, &SliceItem{Key: key, Data: v})
	m.mp[key] = &mapItem{data: v, idx: len(m.sl) - 1}
}

func (m *sliceMap) has(key string) bool {
	_, found := m.mp[key]
	return found
}

func (m *sliceMap) delete(key string) {
	old, found := m.mp[key]
	if !found {
		return
	}
	m.sl = append(m.sl[:old.idx], m.sl[old.idx+1:]...)
	delete(m.mp, key)
	for i := old.idx; i < len(m.sl); i++ {
		m.mp[m.sl[i].Key].idx = i
	}
}

func (m *sliceMap) size() int {
	return len(m.sl)
}

func (m *sliceMap) items() []*SliceItem {
	return m.sl
}
