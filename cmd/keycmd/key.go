// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"github.com/luxfi/deployer/pkg/application"
	"github.com/spf13/cobra"
)

var app *application.Deployer

// deployer key
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Inspect saved mnemonics",
		Long: `The key command suite shows which mnemonic files are used for which
network and consortium. Mnemonic phrases are never printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	app = injectedApp
	// key list
	cmd.AddCommand(newListCmd())
	return cmd
}
