// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"errors"

	"github.com/luxfi/deployer/pkg/binutils"
	"github.com/luxfi/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

// deployer network stop
func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the local test chain",
		Args:  cobra.NoArgs,
		RunE:  stopLocalChain,
	}
}

func stopLocalChain(*cobra.Command, []string) error {
	err := app.LocalChain().Stop()
	if errors.Is(err, binutils.ErrLocalChainNotRunning) {
		ux.Logger.PrintToUser("Local chain already stopped.")
		return nil
	}
	if err != nil {
		return err
	}
	ux.Logger.PrintToUser("Local chain shutdown gracefully")
	return nil
}
