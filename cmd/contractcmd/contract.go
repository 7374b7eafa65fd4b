// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package contractcmd

import (
	"github.com/luxfi/deployer/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Deployer

// deployer contract
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Deploy smart contracts",
		Long: `The contract command suite deploys the contracts of a truffle project
to a local test chain, a public network or a managed consortium.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	// contract deploy
	cmd.AddCommand(newDeployCmd())
	return cmd
}
