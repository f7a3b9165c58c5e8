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

package main

import (
	"log/slog"
	"os"

	"github.com/soapywu/pbxkit/pbxproj"
)

func main() {
	projectPath := "project.pbxproj"
	project := pbxproj.New()
	fatal := func(msg string, err error) {
		if err != nil {
			slog.Error(msg, "error", err)
			os.Exit(1)
		}
	}
	fatal("read project", project.ReadFromFile(projectPath))

	dumpToFile := func(name string) {
		file, err := os.OpenFile(name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		fatal("open dump", err)
		defer file.Close()
		fatal("dump project", project.Dump(file))
	}

	dumpToFile("OriginalProject.json")

	targetGUID := project.TargetGUIDByName(project.Name())
	for _, file := range []string{"foo.h", "foo.m"} {
		fileGUID, err := project.AddFile(file, "Classes/"+file, pbxproj.SourceTreeSource)
		fatal("add file", err)
		if targetGUID != "" {
			fatal("add file to build", project.AddFileToBuild(targetGUID, fileGUID))
		}
	}
	if targetGUID != "" {
		fatal("add framework", project.AddFrameworkToProject(targetGUID, "FooKit.framework", false))
	}

	dumpToFile("ModifiedProject.json")

	fatal("write project", project.WriteToFile("new"+projectPath))
}
