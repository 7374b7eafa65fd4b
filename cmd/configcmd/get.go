// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"fmt"

	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the effective value of a setting after merging defaults, the config
file and the environment.

Examples:
  deployer config get deploy.command
  deployer config get local-chain.port`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}
}

func runGet(_ *cobra.Command, args []string) error {
	key := args[0]
	if !app.Conf.ConfigValueIsSet(key) {
		return fmt.Errorf("config key %q is not set", key)
	}
	ux.Logger.PrintToUser("%s", displayValue(key, app.Conf.GetConfigStringValue(key)))
	return nil
}
