// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/luxfi/deployer/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Deployer

func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for the deployer",
		Long: `Read and write deployer settings stored in ~/.deployer/deployer.yaml.

Every key can also be set from the environment with the DEPLOYER_ prefix,
for example DEPLOYER_AZURE_CLIENT_SECRET for azure.client-secret.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newListCmd())
	return cmd
}
