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
	"strings"

	"github.com/gofrs/uuid"
)

// GUIDSource produces candidate object identifiers. The project re-draws when a
// candidate is already taken, so a source only has to be mostly unique.
type GUIDSource func() string

// NewRandomGUID returns 24 upper-case hex characters taken from a random UUID.
func NewRandomGUID() string {
	u := uuid.Must(uuid.NewV4())
	return strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[0:24])
}

func (p *Project) generateGUID() string {
	guid := p.guidSource()
	if _, found := p.uuids[guid]; found || p.Object(guid) != nil {
		return p.generateGUID()
	}
	p.uuids[guid] = struct{}{}
	return guid
}
