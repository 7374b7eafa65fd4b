// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/luxfi/deployer/pkg/application"
	"github.com/luxfi/deployer/pkg/config"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func SetupTest(t *testing.T) *require.Assertions {
	// use io.Discard to not print anything
	ux.NewUserLog(zap.NewNop(), io.Discard)
	return require.New(t)
}

// SetupTestApp returns an app backed by an in-memory file system
func SetupTestApp(t *testing.T, prompt prompts.Prompter) *application.Deployer {
	ux.NewUserLog(zap.NewNop(), io.Discard)
	v := viper.New()
	config.SetDefaults(v)
	// config writes go to the real file system
	v.SetConfigFile(filepath.Join(t.TempDir(), constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType))
	app := application.New()
	app.Setup(filepath.Join(t.TempDir(), constants.BaseDirName), zap.NewNop(), config.New(v), prompt, afero.NewMemMapFs())
	return app
}

// WriteProject creates a project directory holding the given truffle configuration
func WriteProject(t *testing.T, fs afero.Fs, dir, truffleConfig string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(dir, constants.DefaultPerms755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, constants.TruffleConfigFileName), []byte(truffleConfig), constants.WriteReadReadPerms))
}
