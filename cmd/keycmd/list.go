// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package keycmd

import (
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

// deployer key list
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved mnemonic references",
		Args:  cobra.NoArgs,
		RunE:  listKeys,
	}
}

func listKeys(*cobra.Command, []string) error {
	refs, err := app.MnemonicRepository().References()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		ux.Logger.PrintToUser("No saved mnemonics. One is created the first time you deploy to a public network.")
		return nil
	}
	table := ux.DefaultTable("Network", "Consortium", "Mnemonic File")
	for _, r := range refs {
		_ = table.Append([]string{r.Network, r.Consortium, r.Path})
	}
	return table.Render()
}
