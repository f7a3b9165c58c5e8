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
	"fmt"
	"strconv"
	"strings"

	"github.com/soapywu/pbxkit/element"
)

func (p *Project) target(guid string) (*NativeTarget, error) {
	target := p.NativeTarget(guid)
	if target == nil {
		return nil, fmt.Errorf("%w: target %s", ErrNotFound, guid)
	}
	return target, nil
}

// AddShellScriptBuildPhase appends a run script phase to target and returns its GUID.
func (p *Project) AddShellScriptBuildPhase(targetGUID, name, shellPath, shellScript string) (string, error) {
	target, err := p.target(targetGUID)
	if err != nil {
		return "", err
	}
	phase := p.newShellScriptBuildPhase(name, shellPath, shellScript)
	target.phases.Add(phase.GUID())
	return phase.GUID(), nil
}

// AddCopyFilesBuildPhase appends a copy files phase to target and returns its GUID.
// subfolderSpec is a destination name such as "frameworks" or a numeric code.
func (p *Project) AddCopyFilesBuildPhase(targetGUID, name, dstPath, subfolderSpec string) (string, error) {
	target, err := p.target(targetGUID)
	if err != nil {
		return "", err
	}
	spec, ok := SUBFOLDERSPEC_BY_DESTINATION[strings.ToLower(subfolderSpec)]
	if !ok {
		if spec, err = strconv.Atoi(subfolderSpec); err != nil {
			return "", fmt.Errorf("%w: unknown copy destination %q", ErrInvalidArgument, subfolderSpec)
		}
	}
	phase := p.newCopyFilesBuildPhase(name, dstPath, spec)
	target.phases.Add(phase.GUID())
	return phase.GUID(), nil
}

// AddTargetDependency makes target depend on the target dependencyGUID. Adding an
// existing dependency is a no-op.
func (p *Project) AddTargetDependency(targetGUID, dependencyGUID string) error {
	target, err := p.target(targetGUID)
	if err != nil {
		return err
	}
	dependency, err := p.target(dependencyGUID)
	if err != nil {
		return err
	}
	for _, guid := range target.dependencies.items {
		if dep := p.objects.targetDeps.Get(guid); dep != nil && dep.target == dependencyGUID {
			return nil
		}
	}
	proxy := p.newContainerItemProxy(p.ProjectGUID(), "1", dependencyGUID, dependency.Name())
	dep := p.newTargetDependency(dependencyGUID, proxy.GUID())
	target.dependencies.Add(dep.GUID())
	return nil
}

// AddTarget creates a native target of targetType (see PRODUCTTYPE_BY_TARGETTYPE) with one
// configuration per project configuration and a product reference in the Products group.
// App extensions are embedded into, and made a dependency of, the first target.
func (p *Project) AddTarget(name, targetType, bundleID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: target name missing", ErrInvalidArgument)
	}
	productType, ok := PRODUCTTYPE_BY_TARGETTYPE[targetType]
	if !ok {
		return "", fmt.Errorf("%w: target type %q", ErrInvalidArgument, targetType)
	}
	projectObj := p.projectObject()
	if projectObj == nil {
		return "", fmt.Errorf("%w: no PBXProject object", ErrInvalidProject)
	}
	firstTargets := p.Targets()

	configNames := p.BuildConfigNames()
	if len(configNames) == 0 {
		configNames = []string{"Debug", "Release"}
	}
	var configGUIDs []string
	for _, configName := range configNames {
		settings := element.NewDictWithData(
			element.Item("INFOPLIST_FILE", element.String(name+"/"+name+"-Info.plist")),
			element.Item("PRODUCT_NAME", element.String(name)),
			element.Item("SKIP_INSTALL", element.String("YES")),
		)
		if configName == "Debug" {
			settings.Set("GCC_PREPROCESSOR_DEFINITIONS", element.NewStringArray("DEBUG=1", "$(inherited)"))
		}
		if bundleID != "" {
			settings.SetString("PRODUCT_BUNDLE_IDENTIFIER", bundleID)
		}
		configGUIDs = append(configGUIDs, p.newBuildConfiguration(configName, settings).GUID())
	}
	list := p.newConfigurationList(configGUIDs, configNames[len(configNames)-1])

	product := p.newProductReference(name+EXTENSION_BY_PRODUCTTYPE[productType], productType)
	if products := p.groupLike(projectObj.productRefGroup); products != nil {
		products.Children().Add(product.GUID())
	}

	target := p.newNativeTarget(name, productType, product.GUID(), list.GUID())
	projectObj.targets.Add(target.GUID())
	p.refreshAuxMaps()

	if targetType == "app_extension" && len(firstTargets) > 0 {
		host := firstTargets[0].GUID()
		if err := p.AddFileToBuild(host, product.GUID()); err != nil {
			return "", err
		}
		if bf := p.BuildFileForSourceFile(host, product.GUID()); bf != nil {
			bf.SetRemoveHeadersOnCopy(true)
		}
		if err := p.AddTargetDependency(host, target.GUID()); err != nil {
			return "", err
		}
	}
	p.logger.Debug("added target", "name", name, "guid", target.GUID(), "type", productType)
	return target.GUID(), nil
}

// AddKnownRegion adds a localization region to the project if missing.
func (p *Project) AddKnownRegion(region string) {
	obj := p.projectObject()
	if obj == nil || containsString(obj.knownRegions, region) {
		return
	}
	obj.knownRegions = append(obj.knownRegions, region)
	obj.touch()
}

func (p *Project) RemoveKnownRegion(region string) {
	obj := p.projectObject()
	if obj == nil {
		return
	}
	var removed bool
	if obj.knownRegions, removed = removeString(obj.knownRegions, region); removed {
		obj.touch()
	}
}

func (p *Project) HasKnownRegion(region string) bool {
	obj := p.projectObject()
	return obj != nil && containsString(obj.knownRegions, region)
}

// SetTargetAttribute sets attributes.TargetAttributes.<target>.<key> on the project.
func (p *Project) SetTargetAttribute(targetGUID, key, value string) error {
	if _, err := p.target(targetGUID); err != nil {
		return err
	}
	obj := p.projectObject()
	obj.targetAttributes(targetGUID).SetString(key, value)
	obj.touch()
	return nil
}

// TargetAttribute returns a per-target project attribute, or "".
func (p *Project) TargetAttribute(targetGUID, key string) string {
	obj := p.projectObject()
	if obj == nil {
		return ""
	}
	return obj.attributes.GetDict("TargetAttributes").GetDict(targetGUID).GetString(key)
}
