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

// RepairStructure removes build files whose file reference or package product is gone and
// list entries that point at missing objects, repeating until nothing changes. It returns
// each pruned GUID once, in the order it was first pruned.
func (p *Project) RepairStructure() []string {
	var pruned []string
	seen := make(map[string]bool)
	for {
		step := p.repairStep()
		if len(step) == 0 {
			break
		}
		for _, guid := range step {
			if !seen[guid] {
				seen[guid] = true
				pruned = append(pruned, guid)
			}
		}
	}
	if len(pruned) > 0 {
		p.refreshAuxMaps()
	}
	return pruned
}

func (p *Project) exists(guid string) bool {
	return p.objects.get(guid) != nil
}

func (p *Project) repairStep() []string {
	var pruned []string
	for _, bf := range p.objects.buildFiles.Objects() {
		if ref := bf.reference(); !p.exists(ref) {
			p.logger.Debug("removing build file with missing reference",
				"guid", bf.GUID(), "ref", ref)
			p.removeObject(bf.GUID())
			pruned = append(pruned, bf.GUID())
		}
	}

	for _, obj := range p.objects.all() {
		var dropped []string
		if generic, ok := obj.(*GenericObject); ok {
			dropped = generic.pruneMissing(p.exists)
		} else {
			for _, list := range obj.guidLists() {
				dropped = append(dropped, list.retain(p.exists)...)
			}
		}
		for _, guid := range dropped {
			p.logger.Debug("pruned dangling reference", "owner", obj.GUID(), "isa", obj.Isa(), "guid", guid)
		}
		pruned = append(pruned, dropped...)
	}
	return pruned
}
