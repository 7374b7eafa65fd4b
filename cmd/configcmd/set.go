// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package configcmd

import (
	"strings"

	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value and write it to the config file.

Known keys:
  project-dir            - Default truffle project directory
  deploy.command         - Command running the migrations (default npx)
  deploy.args            - Its arguments, comma separated; the network name is appended
  local-chain.command    - Command starting the local test chain (default ganache)
  local-chain.port       - Port of the local test chain (default 8545)
  validation.debounce    - Delay before remote name checks (default 300ms)
  azure.tenant-id        - Azure AD tenant of the service principal
  azure.client-id        - Service principal application id
  azure.client-secret    - Service principal secret
  azure.subscription-id  - Subscription holding the consortium members
  azure.location         - Region for new resources (default eastus)

Examples:
  deployer config set local-chain.port 7545
  deployer config set deploy.args truffle,migrate,--network`,
		Args: cobra.ExactArgs(2),
		RunE: runSet,
	}
}

func runSet(_ *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	var value any = args[1]
	if key == constants.ConfigDeployArgs {
		value = strings.Split(args[1], ",")
	}
	if err := app.Conf.SetConfigValue(key, value); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("%s set", key)
	return nil
}
