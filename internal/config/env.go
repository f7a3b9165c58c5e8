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

// Package config loads the settings of the pbxproj tool: process settings from the
// environment and patch plans from YAML files.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings are read from PBXPROJ_* environment variables. Command line flags override them.
type Settings struct {
	LogLevel    string `env:"PBXPROJ_LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"PBXPROJ_LOG_FORMAT" envDefault:"text"`
	ProjectName string `env:"PBXPROJ_PROJECT_NAME"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}
