// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/spf13/cobra"
)

var startPort int

// deployer network start
func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the local test chain",
		Long: `The network start command launches the local test chain in the background.
It does nothing when the chain already runs on the requested port.`,
		Args: cobra.NoArgs,
		RunE: startLocalChain,
	}
	cmd.Flags().IntVar(&startPort, "port", 0, "port to listen on (defaults to the local-chain.port setting)")
	return cmd
}

func startLocalChain(cmd *cobra.Command, _ []string) error {
	port := startPort
	if port == 0 {
		port = app.Conf.LocalChainPort()
	}
	_, err := app.LocalChain().Start(cmd.Context(), port)
	return err
}
