// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

func runList(*cobra.Command, []string) error {
	table := ux.DefaultTable("Key", "Value")
	for _, key := range app.Conf.Keys() {
		_ = table.Append([]string{key, displayValue(key, app.Conf.GetConfigStringValue(key))})
	}
	return table.Render()
}

// displayValue hides secrets
func displayValue(key, value string) string {
	if key == constants.ConfigAzureClientSecret && value != "" {
		return "********"
	}
	return value
}
