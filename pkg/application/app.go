// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"context"
	"path/filepath"

	"github.com/luxfi/deployer/pkg/azure"
	"github.com/luxfi/deployer/pkg/binutils"
	"github.com/luxfi/deployer/pkg/config"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/dependencies"
	"github.com/luxfi/deployer/pkg/key"
	"github.com/luxfi/deployer/pkg/models"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/validation"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

type Deployer struct {
	Log     *zap.Logger
	baseDir string
	Conf    *config.Config
	Prompt  prompts.Prompter
	Fs      afero.Fs
}

func New() *Deployer {
	return &Deployer{}
}

func (app *Deployer) Setup(baseDir string, log *zap.Logger, conf *config.Config, prompt prompts.Prompter, fs afero.Fs) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
	app.Prompt = prompt
	app.Fs = fs
}

func (app *Deployer) GetBaseDir() string {
	return app.baseDir
}

func (app *Deployer) GetRunDir() string {
	return filepath.Join(app.baseDir, constants.RunDir)
}

func (app *Deployer) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Deployer) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.DefaultConfigFileName+"."+constants.DefaultConfigFileType)
}

func (app *Deployer) NetworkTree() *models.TreeStore {
	return models.NewTreeStore(app.Fs, app.baseDir)
}

func (app *Deployer) MnemonicRepository() *key.Repository {
	return key.NewRepository(app.Fs, app.baseDir)
}

func (app *Deployer) CredentialResolver() *key.Resolver {
	return key.NewResolver(app.Log, app.Fs, app.MnemonicRepository(), app.Prompt)
}

func (app *Deployer) LocalChain() *binutils.LocalChain {
	return binutils.NewLocalChain(app.Log, app.Fs, app.GetRunDir(), app.Conf.LocalChainCommand())
}

func (app *Deployer) Runner() *binutils.Runner {
	return binutils.NewRunner(app.Log)
}

func (app *Deployer) Toolchain() *dependencies.Toolchain {
	return dependencies.NewToolchain(app.Log, app.Runner())
}

// AzureClient returns constants.ErrNoAzureCredentials when the service
// principal is not configured.
func (app *Deployer) AzureClient(ctx context.Context) (*azure.Client, error) {
	return azure.NewClient(ctx, app.Log, app.Conf.AzureCredentials())
}

// ValidationEngine returns an engine with its own debouncer, scoped to
// one interactive session.
func (app *Deployer) ValidationEngine() *validation.Engine {
	return validation.NewEngine(validation.NewDebouncer(app.Conf.DebounceInterval()))
}
