// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"errors"

	"github.com/luxfi/deployer/cmd/flags"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/deploy"
	"github.com/luxfi/deployer/pkg/truffleconfig"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var projectDir string

// deployer contract deploy
func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the contracts of a truffle project",
		Long: `The contract deploy command lets you pick a destination network, prepares
the project configuration for it and runs the project's migrations.

Destinations are the networks already present in truffle-config.yaml plus every
consortium known to the deployer. Deploying to a consortium for the first time
adds a matching entry to truffle-config.yaml.`,
		Args: cobra.NoArgs,
		RunE: deployContracts,
	}
	flags.AddProjectDirFlag(cmd.Flags(), &projectDir)
	return cmd
}

func deployContracts(cmd *cobra.Command, _ []string) error {
	dir, err := flags.ResolveProjectDir(app, projectDir)
	if err != nil {
		return err
	}

	d := deploy.New(deploy.Config{
		Log:         app.Log,
		Prompt:      app.Prompt,
		Toolchain:   app.Toolchain(),
		LocalChain:  app.LocalChain(),
		Runner:      app.Runner(),
		Credentials: app.CredentialResolver(),
		Tree:        app.NetworkTree(),
		OpenConfig: func(dir string) (deploy.ProjectConfig, error) {
			cfg, err := truffleconfig.OpenProject(app.Fs, dir)
			if err != nil {
				return nil, err
			}
			return cfg, nil
		},
		AccessKeys:    accessKeys(cmd),
		DeployCommand: app.Conf.DeployCommand(),
		DeployArgs:    app.Conf.DeployArgs(),
	})

	res, err := d.Deploy(cmd.Context(), dir)
	if err != nil {
		return err
	}
	if res.Status == deploy.StatusCancelled {
		ux.Logger.PrintToUser("Deployment cancelled")
		return nil
	}
	if res.Output != "" {
		ux.Logger.PrintToUser("%s", res.Output)
	}
	return nil
}

// accessKeys returns nil when no service principal is configured so that
// only managed consortium deployments fail.
func accessKeys(cmd *cobra.Command) deploy.AccessKeyProvider {
	client, err := app.AzureClient(cmd.Context())
	if err != nil {
		if !errors.Is(err, constants.ErrNoAzureCredentials) {
			app.Log.Warn("azure client unavailable", zap.Error(err))
		}
		return nil
	}
	return client
}
