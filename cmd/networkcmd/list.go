// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"errors"
	"strconv"

	"github.com/luxfi/deployer/cmd/flags"
	"github.com/luxfi/deployer/pkg/constants"
	"github.com/luxfi/deployer/pkg/truffleconfig"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

var listProjectDir string

// deployer network list
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deployment destinations",
		Long: `The network list command prints the networks configured in the project's
truffle-config.yaml followed by every consortium known to the deployer.`,
		Args: cobra.NoArgs,
		RunE: listNetworks,
	}
	flags.AddProjectDirFlag(cmd.Flags(), &listProjectDir)
	return cmd
}

func listNetworks(*cobra.Command, []string) error {
	tree, err := app.NetworkTree().Load()
	if err != nil {
		return err
	}

	table := ux.DefaultTable("Source", "Network", "Kind", "Consortium", "Endpoint", "ID")

	entries, err := projectEntries()
	if err != nil {
		return err
	}
	for _, e := range entries {
		endpoint := ""
		switch {
		case e.Options.Provider != nil:
			endpoint = e.Options.Provider.URL
		case e.Options.Host != "":
			endpoint = e.Options.Host + ":" + strconv.Itoa(e.Options.Port)
		}
		_ = table.Append([]string{constants.TruffleConfigFileName, e.Name, "", "", endpoint, string(e.Options.NetworkID)})
	}

	for _, n := range tree.Networks {
		if len(n.Consortia()) == 0 {
			_ = table.Append([]string{"tree", n.Name, n.Kind.String(), "", "", ""})
			continue
		}
		for _, c := range n.Consortia() {
			id := ""
			if v, ok := c.ID(); ok {
				id = strconv.FormatInt(v, 10)
			}
			_ = table.Append([]string{"tree", n.Name, n.Kind.String(), c.Name(), c.URL(), id})
		}
	}
	return table.Render()
}

// projectEntries returns nothing when the directory holds no truffle project.
func projectEntries() ([]truffleconfig.Network, error) {
	dir, err := flags.ResolveProjectDir(app, listProjectDir)
	if err != nil {
		return nil, err
	}
	cfg, err := truffleconfig.OpenProject(app.Fs, dir)
	if errors.Is(err, constants.ErrTruffleConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg.GetNetworks()
}
