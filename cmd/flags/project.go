// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"os"

	"github.com/luxfi/deployer/pkg/application"
	"github.com/spf13/pflag"
)

const projectDirFlag = "project-dir"

func AddProjectDirFlag(set *pflag.FlagSet, projectDir *string) {
	set.StringVar(projectDir, projectDirFlag, "", "truffle project directory (defaults to the project-dir setting, then the working directory)")
}

// ResolveProjectDir picks the flag value, then the project-dir setting, then
// the working directory.
func ResolveProjectDir(app *application.Deployer, projectDir string) (string, error) {
	if projectDir != "" {
		return projectDir, nil
	}
	if dir := app.Conf.ProjectDir(); dir != "" {
		return dir, nil
	}
	return os.Getwd()
}
