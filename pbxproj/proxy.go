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

// ContainerItemProxy references an object, possibly in another project, by GUID.
type ContainerItemProxy struct {
	object
	containerPortal      string
	proxyType            string
	remoteGlobalIDString string
	remoteInfo           string
}

var containerItemProxyChecker = newCommentChecker("containerPortal/*")

func (c *ContainerItemProxy) ContainerPortal() string      { return c.containerPortal }
func (c *ContainerItemProxy) ProxyType() string            { return c.proxyType }
func (c *ContainerItemProxy) RemoteGlobalIDString() string { return c.remoteGlobalIDString }
func (c *ContainerItemProxy) RemoteInfo() string           { return c.remoteInfo }

func (c *ContainerItemProxy) updateVars() {
	c.containerPortal = c.props.GetString("containerPortal")
	c.proxyType = c.props.GetString("proxyType")
	c.remoteGlobalIDString = c.props.GetString("remoteGlobalIDString")
	c.remoteInfo = c.props.GetString("remoteInfo")
}

func (c *ContainerItemProxy) updateProps() {
	c.props.SetString("containerPortal", c.containerPortal)
	c.props.SetString("proxyType", c.proxyType)
	c.props.SetString("remoteGlobalIDString", c.remoteGlobalIDString)
	c.props.SetStringOrDelete("remoteInfo", c.remoteInfo)
}

func (c *ContainerItemProxy) commentChecker() *commentChecker { return containerItemProxyChecker }

// ReferenceProxy is a product of another project referenced through a ContainerItemProxy.
type ReferenceProxy struct {
	object
	path      string
	fileType  string
	remoteRef string
	tree      SourceTree
}

var referenceProxyChecker = newCommentChecker("remoteRef/*")

func (r *ReferenceProxy) Path() string           { return r.path }
func (r *ReferenceProxy) FileType() string       { return r.fileType }
func (r *ReferenceProxy) RemoteRef() string      { return r.remoteRef }
func (r *ReferenceProxy) SourceTree() SourceTree { return r.tree }

func (r *ReferenceProxy) updateVars() {
	r.path = r.props.GetString("path")
	r.fileType = r.props.GetString("fileType")
	r.remoteRef = r.props.GetString("remoteRef")
	r.tree = SourceTree(r.props.GetString("sourceTree"))
}

func (r *ReferenceProxy) updateProps() {
	r.props.SetStringOrDelete("path", r.path)
	r.props.SetStringOrDelete("fileType", r.fileType)
	r.props.SetStringOrDelete("remoteRef", r.remoteRef)
	r.props.SetStringOrDelete("sourceTree", string(r.tree))
}

func (r *ReferenceProxy) commentChecker() *commentChecker { return referenceProxyChecker }

// TargetDependency makes one target build after another.
type TargetDependency struct {
	object
	target      string
	targetProxy string
}

var targetDependencyChecker = newCommentChecker("target/*", "targetProxy/*")

func (d *TargetDependency) Target() string      { return d.target }
func (d *TargetDependency) TargetProxy() string { return d.targetProxy }

func (d *TargetDependency) updateVars() {
	d.target = d.props.GetString("target")
	d.targetProxy = d.props.GetString("targetProxy")
}

func (d *TargetDependency) updateProps() {
	d.props.SetStringOrDelete("target", d.target)
	d.props.SetStringOrDelete("targetProxy", d.targetProxy)
}

func (d *TargetDependency) commentChecker() *commentChecker { return targetDependencyChecker }

func (p *Project) newContainerItemProxy(containerPortal, proxyType, remoteGlobalID, remoteInfo string) *ContainerItemProxy {
	props := element.NewDictWithData(
		element.Item("isa", element.String("PBXContainerItemProxy")),
		element.Item("containerPortal", element.String(containerPortal)),
		element.Item("proxyType", element.String(proxyType)),
		element.Item("remoteGlobalIDString", element.String(remoteGlobalID)),
		element.Item("remoteInfo", element.String(remoteInfo)),
	)
	return p.createObject(props).(*ContainerItemProxy)
}

func (p *Project) newTargetDependency(target, targetProxy string) *TargetDependency {
	props := element.NewDictWithData(
		element.Item("isa", element.String("PBXTargetDependency")),
		element.Item("target", element.String(target)),
		element.Item("targetProxy", element.String(targetProxy)),
	)
	return p.createObject(props).(*TargetDependency)
}
