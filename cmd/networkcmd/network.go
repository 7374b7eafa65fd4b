// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/luxfi/deployer/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Deployer

// deployer network
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Manage deployment networks and the local test chain",
		Long: `The network command suite lists and registers the networks contracts can be
deployed to, and starts or stops the local test chain.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	// network list
	cmd.AddCommand(newListCmd())
	// network add
	cmd.AddCommand(newAddCmd())
	// network start
	cmd.AddCommand(newStartCmd())
	// network stop
	cmd.AddCommand(newStopCmd())
	return cmd
}
