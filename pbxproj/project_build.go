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

import "fmt"

// configurationList returns the configuration list of a target or of the project.
func (p *Project) configurationList(guid string) *XCConfigurationList {
	if target := p.NativeTarget(guid); target != nil {
		return p.ConfigurationList(target.buildConfigList)
	}
	if obj := p.objects.projects.Get(guid); obj != nil {
		return p.ConfigurationList(obj.buildConfigList)
	}
	return nil
}

func (p *Project) buildConfigurations(guid string) ([]*XCBuildConfiguration, error) {
	list := p.configurationList(guid)
	if list == nil {
		return nil, fmt.Errorf("%w: no configuration list for %s", ErrNotFound, guid)
	}
	var configs []*XCBuildConfiguration
	for _, configGUID := range list.buildConfigs.items {
		if config := p.BuildConfiguration(configGUID); config != nil {
			configs = append(configs, config)
		}
	}
	return configs, nil
}

// BuildConfigGUIDs lists the configurations of a target or the project.
func (p *Project) BuildConfigGUIDs(guid string) []string {
	configs, _ := p.buildConfigurations(guid)
	guids := make([]string, 0, len(configs))
	for _, config := range configs {
		guids = append(guids, config.GUID())
	}
	return guids
}

// BuildConfigByName returns the configuration of a target or the project with name, or "".
func (p *Project) BuildConfigByName(guid, name string) string {
	configs, _ := p.buildConfigurations(guid)
	for _, config := range configs {
		if config.Name() == name {
			return config.GUID()
		}
	}
	return ""
}

// BuildConfigNames lists the project level configuration names.
func (p *Project) BuildConfigNames() []string {
	configs, _ := p.buildConfigurations(p.ProjectGUID())
	names := make([]string, 0, len(configs))
	for _, config := range configs {
		names = append(names, config.Name())
	}
	return names
}

func (p *Project) forEachConfig(guid string, apply func(*XCBuildConfiguration)) error {
	configs, err := p.buildConfigurations(guid)
	if err != nil {
		return err
	}
	for _, config := range configs {
		apply(config)
	}
	return nil
}

func (p *Project) config(configGUID string) (*XCBuildConfiguration, error) {
	config := p.BuildConfiguration(configGUID)
	if config == nil {
		return nil, fmt.Errorf("%w: build configuration %s", ErrNotFound, configGUID)
	}
	return config, nil
}

// SetBuildProperty sets name to value in every configuration of a target or the project.
func (p *Project) SetBuildProperty(guid, name, value string) error {
	return p.forEachConfig(guid, func(c *XCBuildConfiguration) { c.SetProperty(name, value) })
}

// AddBuildProperty adds value to name in every configuration of a target or the project.
func (p *Project) AddBuildProperty(guid, name, value string) error {
	return p.forEachConfig(guid, func(c *XCBuildConfiguration) { c.AddProperty(name, value) })
}

// UpdateBuildProperty removes the values in remove and adds those in add, in every
// configuration of a target or the project.
func (p *Project) UpdateBuildProperty(guid, name string, add, remove []string) error {
	return p.forEachConfig(guid, func(c *XCBuildConfiguration) { c.UpdateProperties(name, add, remove) })
}

func (p *Project) RemoveBuildProperty(guid, name string) error {
	return p.forEachConfig(guid, func(c *XCBuildConfiguration) { c.RemoveProperty(name) })
}

func (p *Project) RemoveBuildPropertyValue(guid, name, value string) error {
	return p.forEachConfig(guid, func(c *XCBuildConfiguration) { c.RemovePropertyValue(name, value) })
}

func (p *Project) SetBuildPropertyForConfig(configGUID, name, value string) error {
	config, err := p.config(configGUID)
	if err != nil {
		return err
	}
	config.SetProperty(name, value)
	return nil
}

func (p *Project) AddBuildPropertyForConfig(configGUID, name, value string) error {
	config, err := p.config(configGUID)
	if err != nil {
		return err
	}
	config.AddProperty(name, value)
	return nil
}

func (p *Project) UpdateBuildPropertyForConfig(configGUID, name string, add, remove []string) error {
	config, err := p.config(configGUID)
	if err != nil {
		return err
	}
	config.UpdateProperties(name, add, remove)
	return nil
}

// GetBuildPropertyForConfig returns a setting of one configuration, or "".
func (p *Project) GetBuildPropertyForConfig(configGUID, name string) string {
	if config := p.BuildConfiguration(configGUID); config != nil {
		return config.Property(name)
	}
	return ""
}
