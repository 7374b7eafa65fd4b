// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"fmt"

	"github.com/luxfi/deployer/pkg/models"
	"github.com/luxfi/deployer/pkg/prompts"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	addKind string
	addName string
	addURL  string
)

// deployer network add
func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a network",
		Long: `The network add command registers a local, test chain, testnet or mainnet
network with its single consortium. Managed consortia are added with
'deployer consortium create'.`,
		Args: cobra.NoArgs,
		RunE: addNetwork,
	}
	cmd.Flags().StringVar(&addKind, "kind", "", "network kind: local, testchain, testnet or mainnet")
	cmd.Flags().StringVar(&addName, "name", "", "network name")
	cmd.Flags().StringVar(&addURL, "url", "", "RPC endpoint of the network")
	return cmd
}

func addNetwork(*cobra.Command, []string) error {
	err := prompts.NewRequirements("deployer network add").
		Require(&addKind, prompts.MissingOpt{
			Flag:   "--kind",
			Prompt: "Network kind (local, testchain, testnet, mainnet)",
			Validate: func(s string) error {
				_, err := unmanagedKind(s)
				return err
			},
		}).
		Require(&addName, prompts.MissingOpt{Flag: "--name", Prompt: "Network name"}).
		Require(&addURL, prompts.MissingOpt{Flag: "--url", Prompt: "Network URL", Validate: prompts.ValidateURLFormat}).
		Resolve(app.Prompt)
	if err != nil {
		return err
	}

	kind, err := unmanagedKind(addKind)
	if err != nil {
		return err
	}
	if err := prompts.ValidateURLFormat(addURL); err != nil {
		return err
	}

	store := app.NetworkTree()
	tree, err := store.Load()
	if err != nil {
		return err
	}
	if _, err := tree.AddNetwork(addName, kind, addURL); err != nil {
		return err
	}
	if err := store.Save(tree); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Network %s added", addName)
	return nil
}

func unmanagedKind(s string) (models.Kind, error) {
	kind, err := models.KindFromString(s)
	if err != nil {
		return models.Undefined, err
	}
	if kind.IsManaged() {
		return models.Undefined, fmt.Errorf("%s consortia are added with 'deployer consortium create'", kind)
	}
	return kind, nil
}
