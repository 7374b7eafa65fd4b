// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package consortiumcmd

import (
	"github.com/luxfi/deployer/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Deployer

// deployer consortium
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consortium",
		Short: "Manage Azure Blockchain Service consortia",
		Long: `The consortium command suite creates blockchain members on Azure Blockchain
Service and registers the resulting consortia as deployment destinations.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	// consortium create
	cmd.AddCommand(newCreateCmd())
	return cmd
}
