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

	"github.com/soapywu/pbxkit/element"
)

// XCBuildConfiguration is one named set of build settings. Each setting keeps the shape it
// was read with: a single string or an array of strings.
type XCBuildConfiguration struct {
	object
	name                       string
	baseConfigurationReference string
	settings                   *element.Dict
}

var buildConfigurationChecker = newCommentChecker("baseConfigurationReference/*")

func (c *XCBuildConfiguration) Name() string { return c.name }

func (c *XCBuildConfiguration) BaseConfigurationReference() string {
	return c.baseConfigurationReference
}

func (c *XCBuildConfiguration) SetBaseConfigurationReference(guid string) {
	c.baseConfigurationReference = guid
	c.touch()
}

// Property returns a setting as one string; array settings are joined with spaces.
func (c *XCBuildConfiguration) Property(name string) string {
	v, ok := c.settings.Get(name)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case element.String:
		return string(v)
	case *element.Array:
		return strings.Join(v.Strings(), " ")
	}
	return ""
}

// PropertyValues returns a setting as a list; a single string yields one value.
func (c *XCBuildConfiguration) PropertyValues(name string) []string {
	v, ok := c.settings.Get(name)
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case element.String:
		return []string{string(v)}
	case *element.Array:
		return v.Strings()
	}
	return nil
}

func (c *XCBuildConfiguration) HasProperty(name string) bool {
	return c.settings.Has(name)
}

// SetProperty replaces a setting with a single string value.
func (c *XCBuildConfiguration) SetProperty(name, value string) {
	c.settings.SetString(name, escapeSettingValue(name, value))
	c.touch()
}

// SetPropertyValues replaces a setting with an array value.
func (c *XCBuildConfiguration) SetPropertyValues(name string, values []string) {
	arr := element.NewArray()
	for _, v := range values {
		arr.AppendString(escapeSettingValue(name, v))
	}
	c.settings.Set(name, arr)
	c.touch()
}

// AddProperty adds value to a setting. A missing setting becomes a string; a string
// holding a different value is promoted to an array. Existing values are not repeated.
func (c *XCBuildConfiguration) AddProperty(name, value string) {
	value = escapeSettingValue(name, value)
	v, ok := c.settings.Get(name)
	if !ok {
		c.settings.SetString(name, value)
		c.touch()
		return
	}
	switch v := v.(type) {
	case element.String:
		if string(v) == value {
			return
		}
		c.settings.Set(name, element.NewStringArray(string(v), value))
	case *element.Array:
		if containsString(v.Strings(), value) {
			return
		}
		v.AppendString(value)
	default:
		c.settings.SetString(name, value)
	}
	c.touch()
}

func (c *XCBuildConfiguration) RemoveProperty(name string) {
	if c.settings.Has(name) {
		c.settings.Delete(name)
		c.touch()
	}
}

// RemovePropertyValue removes one value; the setting disappears with its last value.
func (c *XCBuildConfiguration) RemovePropertyValue(name, value string) {
	value = escapeSettingValue(name, value)
	v, ok := c.settings.Get(name)
	if !ok {
		return
	}
	switch v := v.(type) {
	case element.String:
		if string(v) == value {
			c.settings.Delete(name)
			c.touch()
		}
	case *element.Array:
		values, removed := removeString(v.Strings(), value)
		if !removed {
			return
		}
		if len(values) == 0 {
			c.settings.Delete(name)
		} else {
			c.settings.Set(name, stringsToArray(values))
		}
		c.touch()
	}
}

// UpdateProperties treats the setting as a set of values: string settings are split on
// spaces outside quotes. Values in remove are dropped, then missing values in add are
// appended. The original shape is kept; an emptied setting is deleted.
func (c *XCBuildConfiguration) UpdateProperties(name string, add, remove []string) {
	v, exists := c.settings.Get(name)
	var values []string
	isArray := false
	switch v := v.(type) {
	case element.String:
		values = splitSettingValue(string(v))
	case *element.Array:
		values = v.Strings()
		isArray = true
	}
	for _, r := range remove {
		values, _ = removeString(values, escapeSettingValue(name, r))
	}
	for _, a := range add {
		a = escapeSettingValue(name, a)
		if !containsString(values, a) {
			values = append(values, a)
		}
	}
	switch {
	case len(values) == 0:
		if !exists {
			return
		}
		c.settings.Delete(name)
	case isArray || (!exists && len(values) > 1):
		c.settings.Set(name, stringsToArray(values))
	default:
		c.settings.SetString(name, strings.Join(values, " "))
	}
	c.touch()
}

// PropertyNames lists the settings in file order.
func (c *XCBuildConfiguration) PropertyNames() []string {
	return c.settings.Keys()
}

func (c *XCBuildConfiguration) updateVars() {
	c.name = c.props.GetString("name")
	c.baseConfigurationReference = c.props.GetString("baseConfigurationReference")
	if settings := c.props.GetDict("buildSettings"); settings != nil {
		c.settings = settings.Clone()
	} else {
		c.settings = element.NewDict()
	}
}

func (c *XCBuildConfiguration) updateProps() {
	c.props.SetString("name", c.name)
	c.props.SetStringOrDelete("baseConfigurationReference", c.baseConfigurationReference)
	c.props.Set("buildSettings", c.settings.Clone())
}

func (c *XCBuildConfiguration) commentChecker() *commentChecker { return buildConfigurationChecker }

var quotedSearchPathSettings = map[string]bool{
	"LIBRARY_SEARCH_PATHS":   true,
	"FRAMEWORK_SEARCH_PATHS": true,
}

func escapeSettingValue(name, value string) string {
	if !quotedSearchPathSettings[name] || !strings.Contains(value, " ") {
		return value
	}
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value
	}
	return `"` + value + `"`
}

func splitSettingValue(s string) []string {
	var parts []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ' ' && !inQuotes:
			if cur.Len() > 0 {
				parts = append(parts, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

// XCConfigurationList groups the configurations of a target or the project.
type XCConfigurationList struct {
	object
	buildConfigs             GUIDList
	defaultConfigurationName string
}

var configurationListChecker = newCommentChecker("buildConfigurations/*")

func (l *XCConfigurationList) BuildConfigs() *GUIDList         { return &l.buildConfigs }
func (l *XCConfigurationList) DefaultConfigurationName() string { return l.defaultConfigurationName }

func (l *XCConfigurationList) updateVars() {
	l.buildConfigs.load(&l.object, l.props.GetArray("buildConfigurations"))
	l.defaultConfigurationName = l.props.GetString("defaultConfigurationName")
}

func (l *XCConfigurationList) updateProps() {
	l.props.Set("buildConfigurations", l.buildConfigs.toArray())
	l.props.SetStringOrDelete("defaultConfigurationName", l.defaultConfigurationName)
}

func (l *XCConfigurationList) commentChecker() *commentChecker { return configurationListChecker }
func (l *XCConfigurationList) guidLists() []*GUIDList          { return []*GUIDList{&l.buildConfigs} }

func (p *Project) newBuildConfiguration(name string, settings *element.Dict) *XCBuildConfiguration {
	if settings == nil {
		settings = element.NewDict()
	}
	props := element.NewDictWithData(
		element.Item("isa", element.String("XCBuildConfiguration")),
		element.Item("buildSettings", settings),
		element.Item("name", element.String(name)),
	)
	return p.createObject(props).(*XCBuildConfiguration)
}

func (p *Project) newConfigurationList(configs []string, defaultName string) *XCConfigurationList {
	props := element.NewDictWithData(
		element.Item("isa", element.String("XCConfigurationList")),
		element.Item("buildConfigurations", stringsToArray(configs)),
		element.Item("defaultConfigurationIsVisible", element.String("0")),
		element.Item("defaultConfigurationName", element.String(defaultName)),
	)
	return p.createObject(props).(*XCConfigurationList)
}
